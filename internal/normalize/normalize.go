package normalize

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
)

// Tag returns the case folded, trimmed form of a tag used for comparisons.
func Tag(tag string) string {
	return cases.Fold().String(strings.TrimSpace(tag))
}

// Name normalizes usernames and emails for lookups.
func Name(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Tags trims tags, drops empty ones and removes case-insensitive duplicates,
// keeping the first spelling.
func Tags(tags []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !seen.Add(Tag(tag)) {
			continue
		}
		result = append(result, tag)
	}
	return result
}
