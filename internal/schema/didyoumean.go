package schema

import "github.com/agext/levenshtein"

// NameSuggestion returns the candidate closest to the given name, to help
// the user re-type a misspelled argument. It returns "" when nothing is
// close enough to be a useful suggestion.
func NameSuggestion(given string, candidates []string) string {
	for _, candidate := range candidates {
		dist := levenshtein.Distance(given, candidate, nil)
		if dist < 3 {
			return candidate
		}
	}
	return ""
}
