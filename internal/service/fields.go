package service

import (
	"time"

	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
)

// fields accumulates a partial column update
type fields map[string]interface{}

func (f fields) setString(column string, v *string) {
	if v != nil {
		f[column] = *v
	}
}

func (f fields) setInt(column string, v *int) {
	if v != nil {
		f[column] = *v
	}
}

// setDate records a nullable date change and returns the column's resulting value
func (f fields) setDate(column string, n dto.Nullable[string], current *time.Time) (*time.Time, error) {
	if !n.Set {
		return current, nil
	}
	if n.Value == nil {
		f[column] = nil
		return nil, nil
	}
	parsed, err := domain.ParseDate(*n.Value)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		f[column] = nil
		return nil, nil
	}
	f[column] = *parsed
	return parsed, nil
}

// parseOptionalDate parses a create-request date
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return domain.ParseDate(*s)
}

func validateProgressPtr(p *int) error {
	if p == nil {
		return nil
	}
	return domain.ValidateProgress(*p)
}
