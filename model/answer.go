package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Answer is a tri-state amenity flag. Unknown is stored as NULL.
type Answer int

const (
	Unknown Answer = iota
	Yes
	No
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Unknown"
	}
}

// Token is the value used for the answer in forms and spreadsheets; Unknown
// has no token.
func (a Answer) Token() string {
	if a == Unknown {
		return ""
	}
	return a.String()
}

// ParseChoice accepts only the two form tokens "Yes" and "No".
func ParseChoice(s string) (Answer, error) {
	switch s {
	case "Yes":
		return Yes, nil
	case "No":
		return No, nil
	}
	return Unknown, fmt.Errorf("invalid choice %q", s)
}

// ParseAnswer is the lenient spreadsheet parser. Blank cells are Unknown.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unknown, nil
	case "yes", "y", "1", "true":
		return Yes, nil
	case "no", "n", "0", "false":
		return No, nil
	}
	return Unknown, fmt.Errorf("invalid answer %q", s)
}

func (Answer) GormDataType() string {
	return "boolean"
}

func (a Answer) Value() (driver.Value, error) {
	switch a {
	case Yes:
		return true, nil
	case No:
		return false, nil
	default:
		return nil, nil
	}
}

func (a *Answer) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Unknown
	case bool:
		*a = fromBool(v)
	case int64:
		*a = fromBool(v != 0)
	case []byte:
		return a.scanString(string(v))
	case string:
		return a.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Answer", src)
	}
	return nil
}

func (a *Answer) scanString(s string) error {
	switch strings.ToLower(s) {
	case "1", "t", "true":
		*a = Yes
	case "0", "f", "false":
		*a = No
	default:
		return fmt.Errorf("cannot scan %q into Answer", s)
	}
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func fromBool(b bool) Answer {
	if b {
		return Yes
	}
	return No
}
