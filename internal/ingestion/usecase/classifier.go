package usecase

import (
	"regexp"
	"strings"
)

// relevancePattern matches mentions of the agency. Unrelated uses of the acronym
// (e.g. "Apache CDC connector") also match.
var relevancePattern = regexp.MustCompile(`(?i)\bCDC\b|Centers for Disease Control( and Prevention)?|@CDCgov|#CDC\b`)

// IsRelevant reports whether a tweet text mentions the agency.
func IsRelevant(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return relevancePattern.MatchString(text)
}
