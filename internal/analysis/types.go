package analysis

import "insights-srv/internal/model"

// DefaultTopN is the topic count used when callers pass topN <= 0.
const DefaultTopN = 10

type AnalyzeOutput struct {
	Items  []model.ContentItem
	Topics []model.TopicCount
}
