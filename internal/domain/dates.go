package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted by admin list filters.
const DateLayout = "2006-01-02"

// ParseDateRange converts optional YYYY-MM-DD bounds into a half-open UTC
// range: from is the start of its day, to is the start of the following day.
// Blank values yield nil bounds.
func ParseDateRange(from, to string) (start, end *time.Time, err error) {
	var errs []FieldError

	if from = strings.TrimSpace(from); from != "" {
		t, perr := time.ParseInLocation(DateLayout, from, time.UTC)
		if perr != nil {
			errs = append(errs, FieldError{Field: "date_from", Message: "must be YYYY-MM-DD"})
		} else {
			start = &t
		}
	}
	if to = strings.TrimSpace(to); to != "" {
		t, perr := time.ParseInLocation(DateLayout, to, time.UTC)
		if perr != nil {
			errs = append(errs, FieldError{Field: "date_to", Message: "must be YYYY-MM-DD"})
		} else {
			t = t.AddDate(0, 0, 1)
			end = &t
		}
	}

	if len(errs) > 0 {
		return nil, nil, NewValidationErrors(errs)
	}
	return start, end, nil
}
