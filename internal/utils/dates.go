package utils

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ParseDate converts a YYYY-MM-DD request field into a stored date. An empty
// string means "not supplied" and maps to nil.
func ParseDate(value string) (*datatypes.Date, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)

	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	d := datatypes.Date(t)
	return &d, nil
}

func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}

	s := time.Time(*d).Format(dateLayout)
	return &s
}
