package usecase

import (
	"testing"

	"tweet-insights-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func scored(id string, s float32) model.SearchHit {
	return model.SearchHit{ID: id, Score: &s}
}

func ids(hits []model.SearchHit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.ID
	}
	return out
}

func TestPartition(t *testing.T) {
	hits := []model.SearchHit{
		scored("a", 0.9),
		scored("b", 0.2),
		{ID: "c"},
		scored("d", 0.58),
		scored("e", 0.57),
	}

	relevant, discarded := Partition(hits, 0.58)
	assert.Equal(t, []string{"a", "d"}, ids(relevant))
	assert.Equal(t, []string{"b", "c", "e"}, ids(discarded))
}

func TestPartition_ZeroThresholdKeepsMissingScores(t *testing.T) {
	relevant, discarded := Partition([]model.SearchHit{{ID: "a"}}, 0)
	assert.Equal(t, []string{"a"}, ids(relevant))
	assert.Empty(t, discarded)
}

func TestCollectRelevant(t *testing.T) {
	var hits []model.SearchHit
	for i := 0; i < 25; i++ {
		s := float32(0.3)
		if i%2 == 0 {
			s = 0.8
		}
		hits = append(hits, scored(string(rune('a'+i)), s))
	}

	got := CollectRelevant(hits, 0.58, 5)
	assert.Equal(t, []string{"a", "c", "e", "g", "i"}, ids(got))

	assert.Len(t, CollectRelevant(hits, 0.58, 0), 13)
	assert.Empty(t, CollectRelevant(hits, 0.9, 5))
}
