package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase and whitespace", "Central  Cafe", "centralcafe"},
		{"punctuation stripped", "N-Seoul Tower!", "nseoultower"},
		{"hangul kept", "경복궁 입구", "경복궁입구"},
		{"branch suffix stripped", "스타벅스 강남점", "스타벅스강남"},
		{"jijeom suffix stripped", "투썸플레이스 서초지점", "투썸플레이스서초"},
		{"english branch stripped", "Starbucks Gangnam Branch", "starbucksgangnam"},
		{"suffix only name survives", "점", "점"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeName(tc.in))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical after normalization", "스타벅스 강남점", "스타벅스강남점", 1.0},
		{"case and whitespace ignored", "Central Cafe", "central cafe ", 1.0},
		{"containment scores 0.9", "경복궁", "경복궁 입구", 0.9},
		{"both empty", "", "", 1.0},
		{"one empty", "남산타워", "", 0.9}, // empty is contained in everything
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, Similarity(tc.a, tc.b), 1e-9)
		})
	}
}

func TestSimilarity_EditDistanceBand(t *testing.T) {
	t.Parallel()

	// "토속촌삼계탕" vs "토속촌삼게탕": one substitution over six runes,
	// no containment either direction.
	got := Similarity("토속촌삼계탕", "토속촌삼게탕")
	assert.InDelta(t, 1.0-1.0/6.0, got, 1e-9)

	// Branch designators 본점/분점 are stripped whole, so these are the
	// same place, not an edit-distance case.
	assert.InDelta(t, 1.0, Similarity("명동교자본점", "명동교자분점"), 1e-9)

	// Unrelated names score low.
	assert.Less(t, Similarity("남산타워", "해운대해수욕장"), 0.5)
}

func TestSimilarity_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"스타벅스 강남점", "스타벅스 서초점"},
		{"Central Cafe", "Center Cafe"},
		{"경복궁", "창덕궁"},
		{"", "명동"},
		{"N서울타워", "남산타워"},
	}

	for _, pair := range pairs {
		assert.Equal(t, Similarity(pair[0], pair[1]), Similarity(pair[1], pair[0]),
			"similarity(%q,%q) must be symmetric", pair[0], pair[1])
	}
}

func TestAreSimilar_Thresholds(t *testing.T) {
	t.Parallel()

	assert.True(t, AreSimilar("스타벅스 강남점", "스타벅스강남점", NameSimilarityThreshold))
	assert.True(t, AreSimilar("경복궁", "경복궁 입구", NameSimilarityThreshold))
	assert.False(t, AreSimilar("스타벅스 강남점", "스타벅스 서초점", NameSimilarityThreshold))
	assert.False(t, AreSimilar("남산타워", "N서울타워", NameSimilarityThreshold))
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"같다", "같다", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, levenshtein([]rune(tc.a), []rune(tc.b)),
			"levenshtein(%q,%q)", tc.a, tc.b)
	}
}

//Personal.AI order the ending
