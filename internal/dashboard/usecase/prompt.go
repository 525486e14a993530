package usecase

// relevanceQuery is embedded once per dashboard build. Tweets are scored by cosine similarity
// against it to tell actual CDC discussion apart from incidental matches.
const relevanceQuery = "Tweets discussing the U.S. Centers for Disease Control and Prevention (CDC): " +
	"its public health guidance, recommendations, data releases, disease outbreaks, vaccines, " +
	"officials and policy decisions."
