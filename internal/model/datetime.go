package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Datetime is a timestamp that accepts both RFC 3339 strings and bare
// calendar dates ("2006-01-02") on input. It marshals as RFC 3339.
type Datetime struct {
	time.Time
}

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (d *Datetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

// TimePtr returns the wrapped time, or nil for a nil receiver. Used when
// mapping nullable input dates onto entity fields.
func (d *Datetime) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
