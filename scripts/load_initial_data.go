package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/chriso789/pitch-1-sub003/internal/config"
	"github.com/chriso789/pitch-1-sub003/internal/database"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name         string  `yaml:"name"`
	DisplayName  string  `yaml:"display_name"`
	OverheadRate float64 `yaml:"overhead_rate"`
}

type LocationData struct {
	Name       string `yaml:"name"`
	TenantName string `yaml:"tenant_name"`
	Region     string `yaml:"region,omitempty"`
	IsActive   bool   `yaml:"is_active"`
}

type UserData struct {
	Email          string `yaml:"email"`
	FullName       string `yaml:"full_name"`
	PhoneNumber    string `yaml:"phone_number,omitempty"`
	HomeTenantName string `yaml:"home_tenant_name"`
	IsActive       bool   `yaml:"is_active"`
}

type MembershipData struct {
	UserEmail     string   `yaml:"user_email"`
	TenantName    string   `yaml:"tenant_name"`
	Role          string   `yaml:"role"`
	IsActive      bool     `yaml:"is_active"`
	LocationNames []string `yaml:"location_names,omitempty"`
}

type ContactData struct {
	TenantName   string `yaml:"tenant_name"`
	FirstName    string `yaml:"first_name,omitempty"`
	LastName     string `yaml:"last_name"`
	Email        string `yaml:"email,omitempty"`
	PhoneNumber  string `yaml:"phone_number,omitempty"`
	AddressLine  string `yaml:"address_line,omitempty"`
	City         string `yaml:"city,omitempty"`
	State        string `yaml:"state,omitempty"`
	PostalCode   string `yaml:"postal_code,omitempty"`
	LeadSource   string `yaml:"lead_source,omitempty"`
	CreatedBy    string `yaml:"created_by"`
	LocationName string `yaml:"location_name,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type LocationsFile struct {
	Locations []LocationData `yaml:"locations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	locations, err := loadLocations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	contacts, err := loadContacts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create locations
	locationMap := make(map[string]*models.Location)
	locationCreated := 0
	for _, locationData := range locations {
		location, created, err := createLocation(db, locationData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", locationData.Name, err)
		}
		locationMap[locationKey(locationData.TenantName, locationData.Name)] = location
		if created {
			locationCreated++
		}
	}
	log.Printf("📋 Locations: %d created, %d total", locationCreated, len(locations))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create memberships with their location assignments
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, tenantMap, userMap, locationMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.UserEmail, membershipData.TenantName, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create contacts last; contact numbers are handed out per tenant in file
	// order, continuing after whatever the tenant already holds
	contactCreated := 0
	for _, contactData := range contacts {
		_, created, err := createContact(db, contactData, tenantMap, userMap, locationMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create contact %s: %v", contactData.LastName, err)
			continue // Continue with other contacts
		}
		if created {
			contactCreated++
		}
	}
	log.Printf("📋 Contacts: %d created, %d total", contactCreated, len(contacts))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var allTenants []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTenants = append(allTenants, file.Tenants...)
		}
		return nil
	})

	return allTenants, err
}

func loadLocations(dataDir string) ([]LocationData, error) {
	var allLocations []LocationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "locations") {
			var file LocationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allLocations = append(allLocations, file.Locations...)
		}
		return nil
	})

	return allLocations, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMemberships = append(allMemberships, file.Memberships...)
		}
		return nil
	})

	return allMemberships, err
}

func loadContacts(dataDir string) ([]ContactData, error) {
	var allContacts []ContactData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "contacts") {
			var file ContactsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allContacts = append(allContacts, file.Contacts...)
		}
		return nil
	})

	return allContacts, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tenant = models.Tenant{
				Name:         tenantData.Name,
				DisplayName:  tenantData.DisplayName,
				OverheadRate: tenantData.OverheadRate,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query tenant: %w", err)
		}
	}

	return &tenant, false, nil // created = false (existing)
}

func createLocation(db *gorm.DB, locationData LocationData, tenantMap map[string]*models.Tenant) (*models.Location, bool, error) {
	tenant := tenantMap[locationData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for location %s", locationData.TenantName, locationData.Name)
	}

	var location models.Location
	if err := db.Where("name = ? AND tenant_id = ?", locationData.Name, tenant.ID).First(&location).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			location = models.Location{
				TenantScoped: models.TenantScoped{TenantID: tenant.ID},
				Name:         locationData.Name,
				Region:       locationData.Region,
				IsActive:     locationData.IsActive,
			}

			if err := db.Create(&location).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create location: %w", err)
			}
			return &location, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query location: %w", err)
		}
	}

	return &location, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, tenantMap map[string]*models.Tenant) (*models.User, bool, error) {
	tenant := tenantMap[userData.HomeTenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found for user %s", userData.HomeTenantName, userData.Email)
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Email:        userData.Email,
				FullName:     userData.FullName,
				PhoneNumber:  userData.PhoneNumber,
				HomeTenantID: tenant.ID,
				IsActive:     userData.IsActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createMembership(db *gorm.DB, membershipData MembershipData, tenantMap map[string]*models.Tenant, userMap map[string]*models.User, locationMap map[string]*models.Location) (*models.TenantMembership, bool, error) {
	tenant := tenantMap[membershipData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found", membershipData.TenantName)
	}
	user := userMap[membershipData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found", membershipData.UserEmail)
	}
	if !models.Role(membershipData.Role).IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", membershipData.Role)
	}

	var membership models.TenantMembership
	err := db.Where("user_id = ? AND tenant_id = ?", user.ID, tenant.ID).First(&membership).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query membership: %w", err)
	}

	created := false
	if err == gorm.ErrRecordNotFound {
		membership = models.TenantMembership{
			TenantScoped: models.TenantScoped{TenantID: tenant.ID},
			UserID:       user.ID,
			Role:         models.Role(membershipData.Role),
			IsActive:     membershipData.IsActive,
		}

		if err := db.Create(&membership).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create membership: %w", err)
		}
		created = true
	}

	// Assign branch locations
	for _, locationName := range membershipData.LocationNames {
		location := locationMap[locationKey(membershipData.TenantName, locationName)]
		if location == nil {
			return nil, false, fmt.Errorf("location %s not found for membership %s", locationName, membershipData.UserEmail)
		}

		var assignment models.MembershipLocation
		err := db.Where("membership_id = ? AND location_id = ?", membership.ID, location.ID).First(&assignment).Error
		if err == gorm.ErrRecordNotFound {
			assignment = models.MembershipLocation{
				MembershipID: membership.ID,
				LocationID:   location.ID,
			}
			if err := db.Create(&assignment).Error; err != nil {
				return nil, false, fmt.Errorf("failed to assign location %s: %w", locationName, err)
			}
		} else if err != nil {
			return nil, false, fmt.Errorf("failed to query location assignment: %w", err)
		}
	}

	return &membership, created, nil
}

func createContact(db *gorm.DB, contactData ContactData, tenantMap map[string]*models.Tenant, userMap map[string]*models.User, locationMap map[string]*models.Location) (*models.Contact, bool, error) {
	tenant := tenantMap[contactData.TenantName]
	if tenant == nil {
		return nil, false, fmt.Errorf("tenant %s not found", contactData.TenantName)
	}
	creator := userMap[contactData.CreatedBy]
	if creator == nil {
		return nil, false, fmt.Errorf("creator %s not found", contactData.CreatedBy)
	}

	// Skip contacts already seeded (matched by tenant + email or last name)
	var existing models.Contact
	query := db.Where("tenant_id = ? AND last_name = ?", tenant.ID, contactData.LastName)
	if contactData.Email != "" {
		query = db.Where("tenant_id = ? AND email = ?", tenant.ID, contactData.Email)
	}
	if err := query.First(&existing).Error; err == nil {
		return &existing, false, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, false, fmt.Errorf("failed to query contact: %w", err)
	}

	var locationID *uuid.UUID
	if contactData.LocationName != "" {
		location := locationMap[locationKey(contactData.TenantName, contactData.LocationName)]
		if location == nil {
			return nil, false, fmt.Errorf("location %s not found", contactData.LocationName)
		}
		locationID = &location.ID
	}

	// The script runs single-threaded, so a plain max+1 is safe here
	var maxNumber int
	row := db.Model(&models.Contact{}).
		Where("tenant_id = ?", tenant.ID).
		Select("COALESCE(MAX(contact_number), 0)").
		Row()
	if err := row.Scan(&maxNumber); err != nil {
		return nil, false, fmt.Errorf("failed to scan contact number: %w", err)
	}
	number := maxNumber + 1

	contact := models.Contact{
		TenantID:       tenant.ID,
		FirstName:      contactData.FirstName,
		LastName:       contactData.LastName,
		Email:          contactData.Email,
		PhoneNumber:    contactData.PhoneNumber,
		AddressLine:    contactData.AddressLine,
		City:           contactData.City,
		State:          contactData.State,
		PostalCode:     contactData.PostalCode,
		LeadSource:     contactData.LeadSource,
		ContactNumber:  &number,
		CompositeLabel: fmt.Sprintf("%d-0-0", number),
		CreatedBy:      creator.ID,
		LocationID:     locationID,
	}

	if err := db.Create(&contact).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, true, nil
}

func locationKey(tenantName, locationName string) string {
	return tenantName + "/" + locationName
}
