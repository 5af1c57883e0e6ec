// Sequence validation for raw nucleotide input.

package seq

import "strings"

// Validate reports whether the input, after stripping whitespace and
// upper-casing, is a non-empty string over the {A,T,G,C} alphabet.
// Malformed input yields false, never an error.
func Validate(sequence string) bool {

	cleaned := strings.ToUpper(strings.TrimSpace(sequence))

	if cleaned == "" {
		return false
	}

	for i := 0; i < len(cleaned); i++ {
		switch cleaned[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return false
		}
	}

	return true
}

// Normalize strips whitespace (including internal line breaks) and
// upper-cases a raw sequence so it can be handed to the pipeline.
func Normalize(sequence string) string {

	var b strings.Builder
	b.Grow(len(sequence))

	for _, r := range strings.ToUpper(sequence) {
		switch r {
		case ' ', '\t', '\r', '\n':
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
