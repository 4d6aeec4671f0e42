package matcher

import (
	"regexp"
	"sort"
	"strings"

	"table-checkout-backend/internal/database/models"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Default scoring thresholds (0-100)
const (
	DefaultSimilarityThreshold = 80
	DefaultExactMatchThreshold = 95
)

// MatchType classifies how a candidate matched the input name
type MatchType string

const (
	MatchTypeExactVariation MatchType = "exact_variation"
	MatchTypeExact          MatchType = "exact"
	MatchTypeSimilar        MatchType = "similar"
)

// Match is a single ranked candidate produced by the matcher
type Match struct {
	Organization models.Organization `json:"organization"`
	Score        int                 `json:"score"`
	MatchType    MatchType           `json:"match_type"`
	MatchedText  string              `json:"matched_text"`
}

// Matcher fuzzy-matches free-text organization names against known
// organizations and their aliases. It is pure: the candidate pool is
// passed in, never fetched.
type Matcher struct {
	similarityThreshold int
	exactThreshold      int
}

// New creates a Matcher with the default thresholds
func New() *Matcher {
	return NewWithThresholds(DefaultSimilarityThreshold, DefaultExactMatchThreshold)
}

// NewWithThresholds creates a Matcher with custom thresholds
func NewWithThresholds(similarity, exact int) *Matcher {
	return &Matcher{
		similarityThreshold: similarity,
		exactThreshold:      exact,
	}
}

var (
	punctRe      = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	suffixRe     = regexp.MustCompile(`\b(club|society|organization|association|team|group|at ut|at texas|university)\b`)
	texasRe      = regexp.MustCompile(`\btexas\b`)
	txRe         = regexp.MustCompile(`\btx\b`)
	utRe         = regexp.MustCompile(`\but\b`)
	uofTexasRe   = regexp.MustCompile(`\buniversity of texas\b`)
	stopwordRe   = regexp.MustCompile(`^(?i:the|of|and|for|at|in|on|by|to|from)$`)
)

// Normalize lowercases, strips punctuation to whitespace, collapses
// whitespace and trims.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// GenerateVariations builds the comparison set for a name: the
// normalized form, the raw lowercased form, a form with common
// organizational suffixes removed, Texas/UT abbreviation swaps, and an
// acronym. Variations of length <= 1 are dropped. Order is
// deterministic (insertion order, duplicates removed).
func GenerateVariations(name string) []string {
	var variations []string
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.TrimSpace(whitespaceRe.ReplaceAllString(v, " "))
		if len(v) > 1 && !seen[v] {
			seen[v] = true
			variations = append(variations, v)
		}
	}

	normalized := Normalize(name)
	add(normalized)
	add(strings.TrimSpace(strings.ToLower(name)))

	add(suffixRe.ReplaceAllString(normalized, ""))

	add(texasRe.ReplaceAllString(normalized, "tx"))
	add(txRe.ReplaceAllString(normalized, "texas"))
	add(utRe.ReplaceAllString(normalized, "university of texas"))
	add(uofTexasRe.ReplaceAllString(normalized, "ut"))

	var initials []string
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if len(runes) > 2 && !stopwordRe.MatchString(word) {
			initials = append(initials, strings.ToLower(string(runes[0])))
		}
	}
	if acronym := strings.Join(initials, ""); len(acronym) >= 2 {
		add(acronym)
	}

	return variations
}

// Match ranks the candidate organizations against the input name.
// Candidates scoring below the similarity threshold are dropped. The
// result is sorted by score descending; ties keep candidate order, so
// output is deterministic for a given pool.
func (m *Matcher) Match(inputName string, candidates []models.Organization) []Match {
	variations := GenerateVariations(inputName)
	variationSet := make(map[string]bool, len(variations))
	for _, v := range variations {
		variationSet[v] = true
	}
	normalizedInput := Normalize(inputName)

	var matches []Match
	for _, org := range candidates {
		best := m.scoreCandidate(normalizedInput, variationSet, org)
		if best.Score >= m.similarityThreshold {
			best.Organization = org
			matches = append(matches, best)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// BestExactMatch returns the highest-ranked match at or above the exact
// threshold, or nil if none qualifies.
func (m *Matcher) BestExactMatch(matches []Match) *Match {
	for i := range matches {
		if matches[i].Score >= m.exactThreshold {
			return &matches[i]
		}
	}
	return nil
}

// SimilarityThreshold returns the configured minimum score for a candidate
// to appear in results.
func (m *Matcher) SimilarityThreshold() int { return m.similarityThreshold }

// ExactThreshold returns the configured score at which a match counts as exact.
func (m *Matcher) ExactThreshold() int { return m.exactThreshold }

func (m *Matcher) scoreCandidate(normalizedInput string, variationSet map[string]bool, org models.Organization) Match {
	best := Match{}

	namesToCheck := make([]string, 0, 1+len(org.Aliases))
	namesToCheck = append(namesToCheck, org.OfficialName)
	namesToCheck = append(namesToCheck, org.Aliases...)
	namesToCheck = append(namesToCheck, GenerateVariations(org.OfficialName)...)

	for _, name := range namesToCheck {
		if name == "" {
			continue
		}
		normalizedCheck := Normalize(name)

		// A normalized input variation equal to a normalized candidate name
		// is a definitive hit; no fuzzy scoring needed for this candidate.
		if variationSet[normalizedCheck] {
			return Match{Score: 100, MatchType: MatchTypeExactVariation, MatchedText: name}
		}

		score := fuzzy.Ratio(normalizedInput, normalizedCheck)
		if partial := fuzzy.PartialRatio(normalizedInput, normalizedCheck); partial > score {
			score = partial
		}
		if tokenSet := fuzzy.TokenSetRatio(normalizedInput, normalizedCheck); tokenSet > score {
			score = tokenSet
		}

		if score > best.Score {
			best.Score = score
			best.MatchedText = name
			switch {
			case score >= m.exactThreshold:
				best.MatchType = MatchTypeExact
			case score >= m.similarityThreshold:
				best.MatchType = MatchTypeSimilar
			}
		}
	}

	return best
}
