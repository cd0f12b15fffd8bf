package commands

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[^\s/?#]+$`)

// ValidateSlug records a slug error under field when value is empty or
// carries path separators or whitespace.
func ValidateSlug(errs validation.Errors, field, code, value string) {
	if value == "" {
		errs[field] = validation.NewError(code+"_required", field+" is required")
		return
	}
	if !slugPattern.MatchString(value) {
		errs[field] = validation.NewError(code+"_invalid", field+" must be a single path segment")
	}
}

// ValidatePage records errors for negative pagination values.
func ValidatePage(errs validation.Errors, prefix string, limit, skip int) {
	if limit < 0 {
		errs["limit"] = validation.NewError(prefix+".limit_invalid", "limit must not be negative")
	}
	if skip < 0 {
		errs["skip"] = validation.NewError(prefix+".skip_invalid", "skip must not be negative")
	}
}

// Finish returns errs as an error, or nil when empty.
func Finish(errs validation.Errors) error {
	if len(errs) > 0 {
		return errs
	}
	return nil
}
