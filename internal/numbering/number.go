package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the single strongly-typed value for contact, lead and job
// numbers. All parsing from loosely-typed callers happens at this boundary;
// the rest of the codebase only ever sees Number.
type Number int

// Int returns the number as a plain int
func (n Number) Int() int {
	return int(n)
}

// String renders the number in decimal
func (n Number) String() string {
	return strconv.Itoa(int(n))
}

// ParseNumber converts a loosely-typed value into a Number. Nil and blank
// strings normalize to zero; a non-numeric string is an error.
func ParseNumber(v interface{}) (Number, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case Number:
		return val, nil
	case int:
		return Number(val), nil
	case int32:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case float64:
		return Number(int(val)), nil
	case *int:
		if val == nil {
			return 0, nil
		}
		return Number(*val), nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, nil
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", val)
		}
		return Number(parsed), nil
	default:
		return 0, fmt.Errorf("unsupported number type %T", v)
	}
}

// coerce is the total variant used for label formatting: anything that does
// not parse renders as zero rather than failing the write it rides on.
func coerce(v interface{}) Number {
	n, err := ParseNumber(v)
	if err != nil {
		return 0
	}
	return n
}

// FormatComposite renders the human-readable C-L-J label. It is total:
// missing, blank or malformed components render as zero, so
// FormatComposite("", "", "") yields "0-0-0" and FormatComposite("3", "", 7)
// yields "3-0-7".
func FormatComposite(contact, lead, job interface{}) string {
	return fmt.Sprintf("%d-%d-%d", coerce(contact), coerce(lead), coerce(job))
}
