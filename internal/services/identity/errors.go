package identity

import (
	"errors"
	"sort"
	"strings"
)

// Identity-related errors
var (
	// ErrNotLoggedIn indicates that no session is established
	ErrNotLoggedIn = errors.New("no user is logged in")

	// ErrUserNotFound indicates that the referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
)

// Field names used in ValidationErrors
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword2 = "password2"

	// FieldGeneral carries errors not tied to a single field, such as
	// the deliberately vague invalid-credentials message.
	FieldGeneral = "general"
)

// ValidationErrors maps input fields to user-correctable messages. It
// is returned for bad input instead of a fatal error; callers render
// the messages next to the offending fields.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + v[field]
	}
	return strings.Join(parts, "; ")
}

// Has reports whether an error was recorded for field.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// AsValidation unwraps err into ValidationErrors when possible.
func AsValidation(err error) (ValidationErrors, bool) {
	var verr ValidationErrors
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
