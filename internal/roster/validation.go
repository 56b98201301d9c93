package roster

import "strings"

// ValidationError describes an input that was rejected before any write.
// Field names the offending input ("name", "marks", "roll", "query") and
// Message explains what was expected.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidateName trims a name input and rejects it when nothing remains.
// The trimmed form is what gets stored.
func ValidateName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ValidationError{Field: "name", Message: "cannot be empty"}
	}
	return name, nil
}
