package usecase

import (
	"insights-srv/internal/analysis"
	pkgLog "insights-srv/pkg/log"
)

// usecase is a lexicon-based text analysis collaborator. It stands in for a
// real NLP service behind the same contract: a sentiment label per text and
// ranked topic terms per batch.
type usecase struct {
	l pkgLog.Logger

	positive map[string]struct{}
	negative map[string]struct{}
}

func New(l pkgLog.Logger) analysis.UseCase {
	return &usecase{
		l:        l,
		positive: wordSet("good", "great", "awesome", "love", "happy", "best", "excellent", "nice", "superb", "yay", "wow"),
		negative: wordSet("bad", "terrible", "awful", "hate", "sad", "worst", "poor", "crap", "sucks", "boo"),
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
