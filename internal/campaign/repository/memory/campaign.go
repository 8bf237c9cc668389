package memory

import (
	"context"

	"insights-srv/internal/campaign/repository"
	"insights-srv/internal/model"
	"insights-srv/pkg/paginator"
)

func (r *repo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[sc.UserID] == nil {
		r.byUser[sc.UserID] = make(map[string]model.Campaign)
	}
	c := opts.Campaign
	r.byUser[sc.UserID][c.ID] = c
	r.order[sc.UserID] = append(r.order[sc.UserID], c.ID)
	return c, nil
}

func (r *repo) Detail(ctx context.Context, sc model.Scope, id string) (model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byUser[sc.UserID][id]
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *repo) List(ctx context.Context, sc model.Scope) ([]model.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.listLocked(sc), nil
}

func (r *repo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Campaign, paginator.Paginator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, pag := paginator.PaginateSlice(r.listLocked(sc), opts.PaginateQuery)
	return page, pag, nil
}

func (r *repo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := opts.Campaign
	if _, ok := r.byUser[sc.UserID][c.ID]; !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	r.byUser[sc.UserID][c.ID] = c
	return c, nil
}

func (r *repo) listLocked(sc model.Scope) []model.Campaign {
	ids := r.order[sc.UserID]
	out := make([]model.Campaign, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.byUser[sc.UserID][id]; ok {
			out = append(out, c)
		}
	}
	return out
}
