package models

import (
	"sort"
	"strings"
)

// ValidationErrors maps a JSON field name to what is wrong with it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v[field] = "is required"
	}
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
