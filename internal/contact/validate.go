package contact

import (
	"regexp"
	"strings"

	"github.com/cecoladevelopment/site-backend/internal/errors"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims surrounding whitespace from every field.
func Normalize(sub models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    strings.TrimSpace(sub.Name),
		Company: strings.TrimSpace(sub.Company),
		Email:   strings.TrimSpace(sub.Email),
		Problem: strings.TrimSpace(sub.Problem),
	}
}

// Validate checks a normalized submission. Missing fields are reported
// together, in form order, before the email format is looked at.
func Validate(sub models.ContactSubmission) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", sub.Name},
		{"company", sub.Company},
		{"email", sub.Email},
		{"problem", sub.Problem},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingFieldsError(missing)
	}

	if !emailPattern.MatchString(strings.TrimSpace(sub.Email)) {
		return errors.NewInvalidInputError("Invalid email format", "email must look like name@example.com")
	}
	return nil
}
