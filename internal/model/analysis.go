package model

// SentimentLabel classifies the tone of a piece of content.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// IsValid checks if the sentiment label is valid.
func (l SentimentLabel) IsValid() bool {
	switch l {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the label.
func (l SentimentLabel) String() string {
	return string(l)
}

// Sentiment is the classification result for one piece of text.
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// TopicCount is one ranked topic term with its observed mention count, as
// produced by the text-feature extraction collaborator.
type TopicCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}
