package usecase

import "tweet-insights-srv/internal/model"

func hitScore(h model.SearchHit) float32 {
	if h.Score == nil {
		return 0
	}
	return *h.Score
}

// Partition splits hits into those scoring at least threshold and the rest.
// Order is preserved in both slices. A missing score counts as 0.
func Partition(hits []model.SearchHit, threshold float32) (relevant, discarded []model.SearchHit) {
	for _, h := range hits {
		if hitScore(h) >= threshold {
			relevant = append(relevant, h)
		} else {
			discarded = append(discarded, h)
		}
	}
	return relevant, discarded
}

// CollectRelevant returns the first max hits scoring at least threshold and stops scanning
// once it has them. A non-positive max collects every relevant hit.
func CollectRelevant(hits []model.SearchHit, threshold float32, max int) []model.SearchHit {
	var out []model.SearchHit
	for _, h := range hits {
		if max > 0 && len(out) == max {
			break
		}
		if hitScore(h) >= threshold {
			out = append(out, h)
		}
	}
	return out
}
