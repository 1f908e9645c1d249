// internal/ai/match.go
package ai

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinMatchScore is the Jaro-Winkler score a candidate needs to be accepted.
const MinMatchScore = 0.85

// romanNumeralRegex matches Roman numerals II-IX after a space. Standalone
// "I" and "X" are left alone ("I Robot", "American History X").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// CleanTitle normalizes a title for fuzzy comparison: lowercase, accents
// removed, Roman numerals as digits, leading articles and punctuation dropped.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		if arabic, ok := romanToArabic[strings.ToUpper(strings.TrimSpace(match))]; ok {
			return " " + arabic
		}
		return match
	})
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// Subtitles ("Léon: The Professional") may carry their own article.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// Candidate is a catalog entry a suggestion may resolve to.
type Candidate struct {
	ID    int64
	Title string
	Year  int
}

// BestMatch returns the candidate most similar to title. Candidates whose
// year is more than one year off a known suggested year are skipped.
// ok is false when no candidate reaches MinMatchScore.
func BestMatch(title string, year int, candidates []Candidate) (best Candidate, score float64, ok bool) {
	want := CleanTitle(title)
	for _, c := range candidates {
		if year > 0 && c.Year > 0 && abs(c.Year-year) > 1 {
			continue
		}
		s := float64(edlib.JaroWinklerSimilarity(want, CleanTitle(c.Title)))
		if s > score {
			best, score = c, s
		}
	}
	if score < MinMatchScore {
		return Candidate{}, score, false
	}
	return best, score, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
