package utils

import "strings"

// SanitizeProgramID normalizes a user-supplied program id to lowercase
// snake_case, keeping only letters, digits and underscores.
func SanitizeProgramID(id string) string {
	id = strings.ToLower(id)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, "-", "_")

	var b strings.Builder
	for _, r := range id {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeFilename strips path separators and other unsafe characters from a
// user-supplied file name, keeping letters, digits, dots, dashes and
// underscores.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), ".")
}
