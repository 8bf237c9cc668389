package memory

import (
	"sync"

	"insights-srv/internal/alerting/repository"
	"insights-srv/internal/model"
	pkgLog "insights-srv/pkg/log"
)

// repo is an in-memory alert store. Alerts are appended in emission order
// per user and listed newest first.
type repo struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	byUser map[string][]model.Alert
	index  map[string]map[string]int
}

func New(l pkgLog.Logger) repository.Repository {
	return &repo{
		l:      l,
		byUser: make(map[string][]model.Alert),
		index:  make(map[string]map[string]int),
	}
}
