package employees

import "strings"

// NormalizeGender collapses common gender spellings to the stored codes
// M, F, and O. Unrecognized input returns the empty string, which the
// request validator then rejects.
func NormalizeGender(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "m", "male":
		return "M"
	case "f", "female":
		return "F"
	case "o", "other", "non-binary", "nonbinary":
		return "O"
	default:
		return ""
	}
}
