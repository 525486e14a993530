// Package label holds the display tables shared by the dashboard and the indexer.
package label

import "strings"

const (
	Positive = "Positive"
	Neutral  = "Neutral"
	Negative = "Negative"

	// UnknownLanguage is returned for codes missing from the language table.
	UnknownLanguage = "Unknown"
)

// SentimentOrder is the display order of consolidated sentiment labels.
var SentimentOrder = []string{Positive, Neutral, Negative}

var sentiments = map[string]string{
	"positive": Positive,
	"neutral":  Neutral,
	"negative": Negative,
}

// Sentiment consolidates a raw sentiment value into Positive, Neutral or Negative.
// Anything unrecognised becomes Neutral. Sentiment(Sentiment(x)) == Sentiment(x).
func Sentiment(raw string) string {
	if s, ok := sentiments[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return Neutral
}

var sentimentScores = map[string]float64{
	Positive: 1.0,
	Neutral:  0.5,
	Negative: 0.0,
}

// SentimentScore maps a raw sentiment value onto [0, 1] through its consolidated label.
func SentimentScore(raw string) float64 {
	return sentimentScores[Sentiment(raw)]
}

var languages = map[string]string{
	"ar": "Arabic",
	"bn": "Bengali",
	"ca": "Catalan",
	"cs": "Czech",
	"cy": "Welsh",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"et": "Estonian",
	"eu": "Basque",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"gu": "Gujarati",
	"he": "Hebrew",
	"hi": "Hindi",
	"ht": "Haitian Creole",
	"hu": "Hungarian",
	"hy": "Armenian",
	"id": "Indonesian",
	"is": "Icelandic",
	"it": "Italian",
	"ja": "Japanese",
	"ka": "Georgian",
	"km": "Khmer",
	"kn": "Kannada",
	"ko": "Korean",
	"lo": "Lao",
	"lt": "Lithuanian",
	"lv": "Latvian",
	"ml": "Malayalam",
	"mr": "Marathi",
	"my": "Burmese",
	"ne": "Nepali",
	"nl": "Dutch",
	"no": "Norwegian",
	"or": "Odia",
	"pa": "Punjabi",
	"pl": "Polish",
	"ps": "Pashto",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sd": "Sindhi",
	"si": "Sinhala",
	"sl": "Slovenian",
	"sr": "Serbian",
	"sv": "Swedish",
	"ta": "Tamil",
	"te": "Telugu",
	"th": "Thai",
	"tl": "Tagalog",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"ur": "Urdu",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// Language maps an ISO-639-1 code to its English name.
func Language(code string) string {
	if name, ok := languages[strings.ToLower(strings.TrimSpace(code))]; ok {
		return name
	}
	return UnknownLanguage
}
