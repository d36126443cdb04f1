package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"Paris", "paris", 0},
		{"eiffel", "eifel", 1},
		{"café", "cafe", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("eifel", "Visiting the Eiffel tower"))
	assert.True(t, Match("tow", "Visiting the Eiffel tower"))
	assert.True(t, Match("paris trip", "My Paris  Trip notes"))
	assert.False(t, Match("london", "Visiting the Eiffel tower"))
	assert.False(t, Match("   ", "anything"))
}

func TestScoreRanksExactAboveFuzzy(t *testing.T) {
	exact := Score("eiffel", Field{Text: "Eiffel Tower", Weight: 1})
	fuzzy := Score("eiffel", Field{Text: "Eifel Tower", Weight: 1})
	none := Score("eiffel", Field{Text: "London Bridge", Weight: 1})

	assert.Greater(t, exact, fuzzy)
	assert.Greater(t, fuzzy, 0.0)
	assert.Zero(t, none)
}

func TestScoreWeights(t *testing.T) {
	title := Score("trip", Field{Text: "Trip", Weight: 2}, Field{Text: "", Weight: 1})
	body := Score("trip", Field{Text: "", Weight: 2}, Field{Text: "Trip", Weight: 1})
	assert.Equal(t, 2*body, title)
}
