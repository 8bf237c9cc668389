package usecase

import (
	"context"
	"sort"
	"strings"

	"insights-srv/internal/analysis"
	"insights-srv/internal/model"
)

const hashtagTrailingPunctuation = ".,!?;:"

// ExtractTopics surfaces hashtag terms across the given texts. Terms are
// lowercased, stripped of the leading marker and trailing punctuation, and
// ranked by count; ties keep first-seen order so the ranking is stable
// across runs.
func (uc *usecase) ExtractTopics(ctx context.Context, texts []string, topN int) ([]model.TopicCount, error) {
	if topN <= 0 {
		topN = analysis.DefaultTopN
	}

	counts := make(map[string]int)
	order := []string{}
	for _, text := range texts {
		for _, word := range strings.Fields(text) {
			if !strings.HasPrefix(word, "#") {
				continue
			}
			term := strings.TrimRight(strings.TrimLeft(strings.ToLower(word), "#"), hashtagTrailingPunctuation)
			if term == "" {
				continue
			}
			if _, seen := counts[term]; !seen {
				order = append(order, term)
			}
			counts[term]++
		}
	}

	if len(order) == 0 {
		return []model.TopicCount{}, nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	out := make([]model.TopicCount, 0, len(order))
	for _, term := range order {
		out = append(out, model.TopicCount{Term: term, Count: counts[term]})
	}
	return out, nil
}
