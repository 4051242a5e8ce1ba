package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/language"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "table.channels")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// MaxChannels is the number of MIDI channels.
const MaxChannels = 16

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateInput()...)
	errors = append(errors, c.validateTable()...)
	errors = append(errors, c.validateUI()...)
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	if slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "logging.level",
		Value:   c.Logging.Level,
		Message: "must be one of " + strings.Join(ValidLogLevels(), ", "),
	}}
}

func (c *Config) validateInput() []ValidationError {
	var errors []ValidationError
	if _, err := htmlindex.Get(c.Input.Charset); err != nil {
		errors = append(errors, ValidationError{
			Field:   "input.charset",
			Value:   c.Input.Charset,
			Message: "unknown charset",
		})
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		errors = append(errors, ValidationError{
			Field:   "input.delimiter",
			Value:   c.Input.Delimiter,
			Message: "must be a single character",
		})
	}
	return errors
}

func (c *Config) validateTable() []ValidationError {
	var errors []ValidationError
	if c.Table.Channels < 1 || c.Table.Channels > MaxChannels {
		errors = append(errors, ValidationError{
			Field:   "table.channels",
			Value:   c.Table.Channels,
			Message: fmt.Sprintf("must be between 1 and %d", MaxChannels),
		})
	}
	if _, err := language.Parse(c.Table.Collation); err != nil {
		errors = append(errors, ValidationError{
			Field:   "table.collation",
			Value:   c.Table.Collation,
			Message: "must be a BCP 47 language tag",
		})
	}
	return errors
}

func (c *Config) validateUI() []ValidationError {
	if c.UI.NoticeMs >= 0 {
		return nil
	}
	return []ValidationError{{
		Field:   "ui.notice_ms",
		Value:   c.UI.NoticeMs,
		Message: "must not be negative",
	}}
}

// CollationTag returns the parsed collation language, or English if invalid.
func (c *Config) CollationTag() language.Tag {
	tag, err := language.Parse(c.Table.Collation)
	if err != nil {
		return language.English
	}
	return tag
}

// IsSortable reports whether the named column is listed in table.sortable.
func (c *Config) IsSortable(column string) bool {
	for _, name := range c.Table.Sortable {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return true
		}
	}
	return false
}
