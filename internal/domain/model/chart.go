package model

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// FilterAll selects every model or operator.
const FilterAll = "all"

// ChartFilter is rebuilt from the filter controls on every chart update.
type ChartFilter struct {
	ModelID   string
	Operator  string
	StartDate string
	EndDate   string
}

// Normalize trims fields and defaults empty selections to "all".
func (f *ChartFilter) Normalize() {
	f.ModelID = strings.TrimSpace(f.ModelID)
	f.Operator = strings.TrimSpace(f.Operator)
	f.StartDate = strings.TrimSpace(f.StartDate)
	f.EndDate = strings.TrimSpace(f.EndDate)
	if f.ModelID == "" {
		f.ModelID = FilterAll
	}
	if f.Operator == "" {
		f.Operator = FilterAll
	}
}

// Validate checks date formats and ordering.
func (f ChartFilter) Validate() error {
	var start, end time.Time
	var err error
	if f.StartDate != "" {
		if start, err = time.Parse(ReleaseDateLayout, f.StartDate); err != nil {
			return errors.New("start date must be formatted YYYY-MM-DD")
		}
	}
	if f.EndDate != "" {
		if end, err = time.Parse(ReleaseDateLayout, f.EndDate); err != nil {
			return errors.New("end date must be formatted YYYY-MM-DD")
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return errors.New("start date must be on or before end date")
	}
	return nil
}

// Query serializes the filter. Dates are omitted when unset.
func (f ChartFilter) Query() url.Values {
	v := url.Values{}
	v.Set("model_id", f.ModelID)
	v.Set("operator", f.Operator)
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	return v
}

// ChartPoint is one day's creation count.
type ChartPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Time parses Date.
func (p ChartPoint) Time() (time.Time, error) {
	return time.Parse(ReleaseDateLayout, p.Date)
}
