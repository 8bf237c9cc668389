package memory

import (
	"sync"

	"insights-srv/internal/campaign/repository"
	"insights-srv/internal/model"
	pkgLog "insights-srv/pkg/log"
)

// repo is an in-memory campaign store. Campaign state is process-scoped by
// design; there is no persistence layer behind it. Insertion order is kept
// per user so listings are deterministic.
type repo struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	byUser map[string]map[string]model.Campaign
	order  map[string][]string
}

func New(l pkgLog.Logger) repository.Repository {
	return &repo{
		l:      l,
		byUser: make(map[string]map[string]model.Campaign),
		order:  make(map[string][]string),
	}
}
