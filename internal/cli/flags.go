package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dateLayouts are the accepted --date formats. Date-only values are midnight UTC.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

type decimalFlag struct {
	value decimal.Decimal
	set   bool
}

func (f *decimalFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.value.String()
}

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a decimal number")
	}
	f.value, f.set = d, true
	return nil
}

type dateFlag struct {
	value time.Time
	set   bool
}

func (f *dateFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.value.Format(time.RFC3339)
}

func (f *dateFlag) Set(s string) error {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.value, f.set = t.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("expected YYYY-MM-DD or RFC 3339")
}

// ptr returns a pointer to the date, or nil when the flag was not given.
func (f *dateFlag) ptr() *time.Time {
	if !f.set {
		return nil
	}
	t := f.value
	return &t
}

type uuidFlag struct {
	value uuid.UUID
}

func (f *uuidFlag) String() string {
	if f == nil || f.value == uuid.Nil {
		return ""
	}
	return f.value.String()
}

func (f *uuidFlag) Set(s string) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("not a valid id")
	}
	f.value = id
	return nil
}

// optional returns &v when any of names was set on the command line.
func optional(set map[string]bool, v string, names ...string) *string {
	for _, n := range names {
		if set[n] {
			return &v
		}
	}
	return nil
}

// display renders an optional value for output.
func display(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
