package memory

import (
	"context"

	"insights-srv/internal/alerting/repository"
	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

func (r *repo) Save(ctx context.Context, sc model.Scope, opts repository.SaveOptions) error {
	if len(opts.Alerts) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index[sc.UserID] == nil {
		r.index[sc.UserID] = make(map[string]int)
	}
	for _, a := range opts.Alerts {
		r.index[sc.UserID][a.ID] = len(r.byUser[sc.UserID])
		r.byUser[sc.UserID] = append(r.byUser[sc.UserID], a)
	}
	return nil
}

func (r *repo) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[sc.UserID][id]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	return r.byUser[sc.UserID][pos], nil
}

func (r *repo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Alert, paginator.Paginator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[sc.UserID]
	newest := make([]model.Alert, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		newest = append(newest, stored[i])
	}

	page, pag := paginator.PaginateSlice(newest, opts.PaginateQuery)
	return page, pag, nil
}

func (r *repo) MarkRead(ctx context.Context, sc model.Scope, opts repository.MarkReadOptions) (model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[sc.UserID][opts.ID]
	if !ok {
		return model.Alert{}, repository.ErrNotFound
	}
	a := r.byUser[sc.UserID][pos]
	a.MarkRead(opts.Now)
	r.byUser[sc.UserID][pos] = a
	return a, nil
}
