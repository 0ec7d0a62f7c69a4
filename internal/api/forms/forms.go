// Package forms binds submitted HTML forms and reports per-field errors the
// templates render next to each input.
package forms

import (
	"sort"
	"strings"
)

// NonFieldErrors is the Errors key for messages not tied to one input.
const NonFieldErrors = "__all__"

// Errors maps form field names to their validation messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Get returns the messages of field; templates call it as .Errors.Get "name".
func (e Errors) Get(field string) []string {
	return e[field]
}

func (e Errors) Any() bool {
	for _, msgs := range e {
		if len(msgs) > 0 {
			return true
		}
	}
	return false
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return strings.Join(parts, "; ")
}
