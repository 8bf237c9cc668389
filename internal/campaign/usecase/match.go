package usecase

import (
	"context"
	"strings"
	"time"

	"insights-srv/internal/campaign"
	"insights-srv/internal/model"
)

// Match returns the items that count toward the campaign: the item's
// normalized timestamp must fall inside the campaign's date window and at
// least one tracking criterion must hold. A campaign tracking no accounts,
// keywords or hashtags matches nothing, whatever the items look like.
func (uc *usecase) Match(ctx context.Context, c *model.Campaign, items []model.ContentItem) ([]model.ContentItem, error) {
	if c == nil {
		return nil, campaign.ErrNilCampaign
	}

	matched := []model.ContentItem{}
	if !c.HasCriteria() {
		uc.l.Debugf(ctx, "internal.campaign.usecase.Match: campaign %s tracks no criteria, nothing can match", c.ID)
		return matched, nil
	}

	for _, item := range items {
		ts, ok := item.PublishedAt.Normalize()
		if !ok {
			uc.l.Debugf(ctx, "internal.campaign.usecase.Match: skipping item %s, unparseable timestamp %q", item.ID, item.PublishedAt.Raw())
			continue
		}
		if !uc.inWindow(c, ts) {
			continue
		}
		if uc.matchesCriteria(c, item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// inWindow checks the normalized timestamp against [StartDate, EndDate].
// Bounds are inclusive; a nil bound is unbounded on that side.
func (uc *usecase) inWindow(c *model.Campaign, ts time.Time) bool {
	if c.StartDate != nil && ts.Before(c.StartDate.UTC()) {
		return false
	}
	if c.EndDate != nil && ts.After(c.EndDate.UTC()) {
		return false
	}
	return true
}

// matchesCriteria applies the three criterion classes. Account ids match
// exactly; keywords and hashtags match case-insensitively as substrings of
// the item text. An item without text can only match by account.
func (uc *usecase) matchesCriteria(c *model.Campaign, item model.ContentItem) bool {
	for _, accountID := range c.TrackedAccountIDs {
		if item.SourceAccountID == accountID {
			return true
		}
	}

	if !item.HasText() {
		return false
	}
	content := strings.ToLower(item.Text)

	for _, kw := range c.TrackedKeywords {
		if kw == "" {
			continue
		}
		if strings.Contains(content, strings.ToLower(kw)) {
			return true
		}
	}

	for _, tag := range c.TrackedHashtags {
		if tag == "" {
			continue
		}
		if strings.Contains(content, "#"+strings.ToLower(tag)) {
			return true
		}
	}

	return false
}
