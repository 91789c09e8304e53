package models

// Location represents a branch office of a tenant. Rows carrying a location
// are only visible to users assigned to that location (or to full-access
// roles).
type Location struct {
	BaseModel
	TenantScoped
	Name     string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Region   string `json:"region" gorm:"size:100" validate:"max=100"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
