package model

const (
	likeWeight    = 0.5
	retweetWeight = 1.0
	quoteWeight   = 0.3
	replyWeight   = 0.2
)

// PopularityScore weighs engagement counters: like*0.5 + retweet*1.0 + quote*0.3 + reply*0.2.
func PopularityScore(likes, retweets, quotes, replies int64) float64 {
	return float64(likes)*likeWeight +
		float64(retweets)*retweetWeight +
		float64(quotes)*quoteWeight +
		float64(replies)*replyWeight
}
