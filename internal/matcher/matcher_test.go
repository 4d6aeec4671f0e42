package matcher_test

import (
	"testing"
	"unicode/utf8"

	"table-checkout-backend/internal/database/models"
	"table-checkout-backend/internal/matcher"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func org(name string, aliases ...string) models.Organization {
	return models.Organization{
		OfficialName: name,
		Aliases:      pq.StringArray(aliases),
		Status:       models.OrganizationStatusActive,
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Texas Longhorns!", "texas longhorns"},
		{"  ACM @ UT  ", "acm ut"},
		{"Robotics-and-Automation   Society", "robotics and automation society"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, matcher.Normalize(tt.input), "input %q", tt.input)
	}
}

func TestGenerateVariations(t *testing.T) {
	variations := matcher.GenerateVariations("Texas Longhorns Programming Club")

	assert.Contains(t, variations, "texas longhorns programming club")
	// Suffix-stripped form
	assert.Contains(t, variations, "texas longhorns programming")
	// Abbreviation swap
	assert.Contains(t, variations, "tx longhorns programming club")
	// Acronym from words longer than two characters
	assert.Contains(t, variations, "tlpc")

	// No variation may be a single character or shorter
	for _, v := range variations {
		assert.Greater(t, len(v), 1, "variation %q too short", v)
	}
}

func TestGenerateVariationsAcronymSkipsStopwords(t *testing.T) {
	variations := matcher.GenerateVariations("Society for the Advancement of Robotics")
	assert.Contains(t, variations, "sar")
}

func TestGenerateVariationsAcronymMultibyteInitials(t *testing.T) {
	variations := matcher.GenerateVariations("Österreich Übungs Verein")

	assert.Contains(t, variations, "öüv")
	for _, v := range variations {
		assert.True(t, utf8.ValidString(v), "variation %q is not valid UTF-8", v)
	}
}

func TestGenerateVariationsDeterministic(t *testing.T) {
	first := matcher.GenerateVariations("University of Texas Chess Club")
	second := matcher.GenerateVariations("University of Texas Chess Club")
	assert.Equal(t, first, second)
}

func TestMatchAliasYieldsExactMatch(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{
		org("Texas Longhorns Programming Club", "Programming Club"),
	}

	matches := m.Match("UT Programming Club", candidates)

	require.NotEmpty(t, matches)
	assert.GreaterOrEqual(t, matches[0].Score, matcher.DefaultExactMatchThreshold)
	assert.Contains(t,
		[]matcher.MatchType{matcher.MatchTypeExact, matcher.MatchTypeExactVariation},
		matches[0].MatchType)
	assert.Equal(t, "Texas Longhorns Programming Club", matches[0].Organization.OfficialName)
}

func TestMatchExactVariationWhenVariationEqualsAlias(t *testing.T) {
	m := matcher.New()
	// Suffix stripping turns "Robotics Club" into "robotics", which equals
	// the candidate's stored alias after normalization.
	candidates := []models.Organization{
		org("Longhorn Robotics Collective", "Robotics"),
	}

	matches := m.Match("Robotics Club", candidates)

	require.NotEmpty(t, matches)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, matcher.MatchTypeExactVariation, matches[0].MatchType)
	assert.Equal(t, "Robotics", matches[0].MatchedText)
}

func TestMatchTokenSubsetScoresExact(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{
		org("Texas Longhorns Programming Club"),
	}

	// The input tokens are a subset of the candidate's, so TokenSetRatio
	// saturates at 100 and the hit classifies as exact, not similar.
	matches := m.Match("Longhorns Programming", candidates)

	require.NotEmpty(t, matches)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, matcher.MatchTypeExact, matches[0].MatchType)
}

func TestMatchSimilarWithoutAlias(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{
		org("Longhorn Judo Club"),
	}

	// Shared tokens but no substring or token-subset relation, so the
	// score lands between the similarity and exact thresholds.
	matches := m.Match("Longhorn Kendo Club", candidates)

	require.NotEmpty(t, matches)
	assert.GreaterOrEqual(t, matches[0].Score, matcher.DefaultSimilarityThreshold)
	assert.Less(t, matches[0].Score, matcher.DefaultExactMatchThreshold)
	assert.Equal(t, matcher.MatchTypeSimilar, matches[0].MatchType)
}

func TestMatchIdenticalName(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{org("Robotics Society")}

	matches := m.Match("Robotics Society", candidates)

	require.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, matcher.MatchTypeExactVariation, matches[0].MatchType)
}

func TestMatchDropsLowScores(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{
		org("Quantum Computing Collective"),
	}

	matches := m.Match("Intramural Soccer League", candidates)
	assert.Empty(t, matches)
}

func TestMatchRankingIsStable(t *testing.T) {
	m := matcher.New()
	candidates := []models.Organization{
		org("Chess Club"),
		org("Chess Society", "Chess Club"),
	}

	first := m.Match("chess club", candidates)
	second := m.Match("chess club", candidates)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].Organization.OfficialName, second[i].Organization.OfficialName)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
	// Both are exact variation hits; ties keep candidate pool order.
	assert.Equal(t, "Chess Club", first[0].Organization.OfficialName)
}

func TestBestExactMatch(t *testing.T) {
	m := matcher.New()
	matches := []matcher.Match{
		{Score: 100, MatchType: matcher.MatchTypeExactVariation},
		{Score: 85, MatchType: matcher.MatchTypeSimilar},
	}

	best := m.BestExactMatch(matches)
	require.NotNil(t, best)
	assert.Equal(t, 100, best.Score)

	assert.Nil(t, m.BestExactMatch([]matcher.Match{{Score: 85}}))
	assert.Nil(t, m.BestExactMatch(nil))
}

func TestCustomThresholds(t *testing.T) {
	strict := matcher.NewWithThresholds(99, 100)
	candidates := []models.Organization{org("Longhorn Judo Club")}

	// Accepted by the default matcher (see TestMatchSimilarWithoutAlias)
	// but below a strict cutoff of 99.
	matches := strict.Match("Longhorn Kendo Club", candidates)
	assert.Empty(t, matches)
	assert.Equal(t, 99, strict.SimilarityThreshold())
	assert.Equal(t, 100, strict.ExactThreshold())
}
