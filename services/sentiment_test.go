package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSentimentNegative(t *testing.T) {
	score := ScoreSentiment("This is the worst service ever, totally unacceptable")
	assert.Equal(t, -5, score)
}

func TestScoreSentimentPositive(t *testing.T) {
	assert.Equal(t, 3, ScoreSentiment("good"))
	assert.Equal(t, 7, ScoreSentiment("great product, amazing delivery"))
}

func TestScoreSentimentNeutral(t *testing.T) {
	assert.Equal(t, 0, ScoreSentiment("the package arrived on tuesday"))
	assert.Equal(t, 0, ScoreSentiment(""))
}

func TestScoreSentimentIgnoresCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, ScoreSentiment("worst"), ScoreSentiment("WORST!!!"))
	assert.Equal(t, -3, ScoreSentiment("WORST!!!"))
}

func TestScoreSentimentDeterministic(t *testing.T) {
	text := "horrible experience, very disappointed"
	assert.Equal(t, ScoreSentiment(text), ScoreSentiment(text))
	assert.Equal(t, -5, ScoreSentiment(text))
}
