package keywords

import (
	"sort"
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLimit is the number of keywords stored on an opportunity.
const DefaultLimit = 20

const minTokenLength = 3

var stopWords = mapset.NewSet[string](
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for",
	"from", "has", "have", "i", "in", "is", "it", "its", "of", "on",
	"or", "our", "so", "that", "the", "their", "they", "this", "to", "was",
	"we", "were", "with", "you", "your",
)

// IsStopWord reports whether token is excluded from extraction.
func IsStopWord(token string) bool {
	return stopWords.Contains(token)
}

// Extract returns up to DefaultLimit keywords of text.
func Extract(text string) []string {
	return ExtractN(text, DefaultLimit)
}

// ExtractN returns at most max significant tokens of text ordered by
// descending frequency. Tokens with equal frequency keep the order of their
// first occurrence.
func ExtractN(text string, max int) []string {
	if max <= 0 || text == "" {
		return []string{}
	}

	type entry struct {
		token string
		count int
	}
	var entries []entry
	index := make(map[string]int)
	for _, token := range tokenize(text) {
		if len(token) < minTokenLength || stopWords.Contains(token) {
			continue
		}
		if i, ok := index[token]; ok {
			entries[i].count++
			continue
		}
		index[token] = len(entries)
		entries = append(entries, entry{token: token, count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > max {
		entries = entries[:max]
	}
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.token)
	}
	return result
}

func tokenize(text string) []string {
	lower := cases.Lower(language.Und).String(text)
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case unicode.IsSpace(r):
			return r
		}
		return ' '
	}, lower)
	return strings.Fields(cleaned)
}

// MatchText joins the opportunity fields keywords are extracted from.
func MatchText(title, description, category string, skills []string) string {
	return strings.Join([]string{
		description,
		strings.Join(skills, " "),
		category,
		title,
	}, " ")
}
