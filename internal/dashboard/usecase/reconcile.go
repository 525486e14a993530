package usecase

import (
	"sort"

	"tweet-insights-srv/internal/dashboard"
	"tweet-insights-srv/internal/label"
	"tweet-insights-srv/internal/model"
	"tweet-insights-srv/pkg/util"
)

// EntityURLMap maps each linked entity of the relevant hits to the first non-empty URL seen for it.
func EntityURLMap(relevant []model.SearchHit) map[string]string {
	out := make(map[string]string)
	for _, h := range relevant {
		for i, entity := range h.LinkedEntities {
			if i >= len(h.LinkedEntityURLs) {
				break
			}
			if _, ok := out[entity]; !ok && h.LinkedEntityURLs[i] != "" {
				out[entity] = h.LinkedEntityURLs[i]
			}
		}
	}
	return out
}

// facetValues returns the values h contributes to a facet of the given kind.
// Multi-valued fields yield each distinct value once.
func facetValues(kind dashboard.FacetKind, h model.SearchHit) []string {
	switch kind {
	case dashboard.FacetDate:
		if h.CreatedAt.IsZero() {
			return nil
		}
		return []string{util.DayUTC(h.CreatedAt)}
	case dashboard.FacetSentiment:
		if h.Sentiment == "" {
			return nil
		}
		return []string{h.Sentiment}
	case dashboard.FacetLanguage:
		if h.Language == "" {
			return nil
		}
		return []string{h.Language}
	case dashboard.FacetEntity:
		seen := make(map[string]struct{}, len(h.LinkedEntities))
		out := make([]string, 0, len(h.LinkedEntities))
		for _, e := range h.LinkedEntities {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
		return out
	default:
		return nil
	}
}

// normalizeFacetValue brings a bucket value into the form facetValues produces.
func normalizeFacetValue(kind dashboard.FacetKind, value string) string {
	if kind != dashboard.FacetDate {
		return value
	}
	if t := util.ParseTimestamp(value); !t.IsZero() {
		return util.DayUTC(t)
	}
	return value
}

// Reconcile subtracts the contribution of discarded hits from the unfiltered facet counts.
func Reconcile(facets dashboard.FacetSet, relevant, discarded []model.SearchHit) dashboard.Reconciled {
	subtraction := make(map[dashboard.FacetKind]map[string]int64, len(facets))
	for kind := range facets {
		subtraction[kind] = make(map[string]int64)
	}
	for _, h := range discarded {
		for kind := range facets {
			for _, v := range facetValues(kind, h) {
				subtraction[kind][v]++
			}
		}
	}

	urls := EntityURLMap(relevant)
	sentimentCounts := make(map[string]int64, len(label.SentimentOrder))
	languageCounts := make(map[string]int64)
	var languageOrder []string

	var out dashboard.Reconciled
	for kind, buckets := range facets {
		for _, b := range buckets {
			value := normalizeFacetValue(kind, b.Value)
			count := b.Count - subtraction[kind][value]
			if count <= 0 {
				continue
			}

			switch kind {
			case dashboard.FacetDate:
				out.DateCounts = append(out.DateCounts, dashboard.DateCount{Date: value, Count: count})
			case dashboard.FacetSentiment:
				sentimentCounts[label.Sentiment(value)] += count
			case dashboard.FacetLanguage:
				name := label.Language(value)
				if _, ok := languageCounts[name]; !ok {
					languageOrder = append(languageOrder, name)
				}
				languageCounts[name] += count
			case dashboard.FacetEntity:
				ec := dashboard.EntityCount{Name: value, Count: count}
				if url, ok := urls[value]; ok {
					u := url
					ec.URL = &u
				}
				out.EntityCounts = append(out.EntityCounts, ec)
			case dashboard.FacetUnknown:
				// not part of the dashboard
			}
		}
	}

	for _, l := range label.SentimentOrder {
		if c := sentimentCounts[l]; c > 0 {
			out.SentimentLabelCounts = append(out.SentimentLabelCounts, dashboard.LabelCount{Label: l, Count: c})
		}
	}

	for _, name := range languageOrder {
		out.LanguageCounts = append(out.LanguageCounts, dashboard.LanguageCount{Language: name, Count: languageCounts[name]})
	}
	sort.SliceStable(out.LanguageCounts, func(i, j int) bool {
		return out.LanguageCounts[i].Count > out.LanguageCounts[j].Count
	})
	sort.SliceStable(out.EntityCounts, func(i, j int) bool {
		return out.EntityCounts[i].Count > out.EntityCounts[j].Count
	})

	return out
}
