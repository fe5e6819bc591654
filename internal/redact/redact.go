// Package redact strips personal data and storage details out of strings
// before they are written to logs. Error messages coming back from the
// database can echo user emails, SQL text, or the location of the database
// file, none of which belong in shared log streams.
package redact

import (
	"regexp"
	"sync"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder         = "[REDACTED]"
	RedactedPathPlaceholder      = "[REDACTED_PATH]"
	RedactedEmailPlaceholder     = "[REDACTED_EMAIL]"
	RedactedSQLPlaceholder       = "[REDACTED_SQL]"
	RedactedFileErrorPlaceholder = "[REDACTED_FILE_ERROR]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules see the unmodified text.
var (
	rules = []rule{
		{
			regexp.MustCompile(`(?i)(?:no such file|file not found|can't open|cannot open|unable to open)`),
			RedactedFileErrorPlaceholder,
		},
		// SQLite DSNs such as file:users.db?cache=shared
		{regexp.MustCompile(`file:[^\s?]+(?:\?\S*)?`), RedactedPathPlaceholder},
		{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
		{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
		{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
		{
			regexp.MustCompile(
				`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE|INDEX)(?:[\s\w,*()='"?]+)?`,
			),
			RedactedSQLPlaceholder,
		},
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// AddPattern registers an extra pattern, replaced by RedactionPlaceholder.
// It is meant to be called during program initialization.
func AddPattern(expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	rules = append(rules, rule{pattern: re, placeholder: RedactionPlaceholder})
	return nil
}
