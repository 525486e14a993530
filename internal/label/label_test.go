package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentiment(t *testing.T) {
	tests := map[string]string{
		"positive":   Positive,
		" Positive ": Positive,
		"NEGATIVE":   Negative,
		"neutral":    Neutral,
		"mixed":      Neutral,
		"":           Neutral,
	}
	for in, want := range tests {
		assert.Equal(t, want, Sentiment(in), in)
	}
}

func TestSentiment_Idempotent(t *testing.T) {
	for _, in := range []string{"positive", "Negative", "mixed", "", "NEUTRAL"} {
		once := Sentiment(in)
		assert.Equal(t, once, Sentiment(once))
	}
}

func TestSentimentScore(t *testing.T) {
	assert.Equal(t, 1.0, SentimentScore(" Positive"))
	assert.Equal(t, 0.5, SentimentScore("neutral"))
	assert.Equal(t, 0.0, SentimentScore("negative"))
	assert.Equal(t, 0.5, SentimentScore("mixed"))
	assert.Equal(t, 0.5, SentimentScore(""))
}

func TestSentimentScore_AgreesWithLabel(t *testing.T) {
	for _, raw := range []string{"positive", " NEGATIVE ", "Neutral", "mixed", "", "pos"} {
		assert.Equal(t, SentimentScore(Sentiment(raw)), SentimentScore(raw), raw)
	}
	for _, l := range SentimentOrder {
		_, ok := sentimentScores[l]
		assert.True(t, ok, l)
	}
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "English", Language("en"))
	assert.Equal(t, "Spanish", Language(" ES "))
	assert.Equal(t, UnknownLanguage, Language("und"))
	assert.Equal(t, UnknownLanguage, Language(""))
}
