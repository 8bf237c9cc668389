package usecase

import (
	"context"
	"testing"

	"insights-srv/internal/model"
)

func TestEvaluatePerformanceFirstSightingOnlyRecords(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 2.5)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("first sighting = %v, want no alerts without a baseline", kinds(alerts))
	}
}

func TestEvaluatePerformanceDrop(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	if _, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 2.5)}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}

	// 2.5 -> 1.5 is a 40% drop.
	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 1.5)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("drop = %d alerts, want 1", len(alerts))
	}

	a := alerts[0]
	if a.Kind != model.AlertKindCampaignPerformance || a.Severity != model.AlertSeverityCritical {
		t.Errorf("alert = %s/%s, want campaign_performance_change/critical", a.Kind, a.Severity)
	}
	if a.RelatedEntityID != "campA" || a.RelatedEntityType != model.EntityTypeCampaign {
		t.Errorf("related = %s/%s, want campA/campaign", a.RelatedEntityID, a.RelatedEntityType)
	}
	if want := "⚠️ Campaign 'Summer Sale' engagement dropped by 40.0%! Current rate: 1.50%."; a.Message != want {
		t.Errorf("message = %q, want %q", a.Message, want)
	}
}

func TestEvaluatePerformanceSpike(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	if _, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 2.0)}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}

	// 2.0 -> 3.0 is a 50% spike.
	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 3.0)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("spike = %d alerts, want 1", len(alerts))
	}

	a := alerts[0]
	if a.Severity != model.AlertSeverityWarning {
		t.Errorf("severity = %s, want warning", a.Severity)
	}
	if want := "🎉 Campaign 'Summer Sale' engagement spiked by 50.0%! Current rate: 3.00%."; a.Message != want {
		t.Errorf("message = %q, want %q", a.Message, want)
	}
}

func TestEvaluatePerformanceZeroBaselineForcesSpike(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	if _, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campB", "Launch", 0)}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}

	// Any movement off a zero baseline counts as a spike.
	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campB", "Launch", 3.0)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 1 || alerts[0].Severity != model.AlertSeverityWarning {
		t.Fatalf("zero baseline = %v, want one warning spike", kinds(alerts))
	}

	// Zero to zero stays quiet.
	uc2 := newTestUsecase(t, nil)
	if _, err := uc2.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campC", "Idle", 0)}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	alerts, err = uc2.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campC", "Idle", 0)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("zero to zero = %v, want no alerts", kinds(alerts))
	}
}

func TestEvaluatePerformanceSmallChangeStaysQuiet(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	if _, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 2.5)}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}

	// 2.5 -> 2.6 is a 4% change, inside the quiet band.
	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", 2.6)})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("small change = %v, want no alerts", kinds(alerts))
	}
}

func TestEvaluatePerformanceIgnoresInactiveCampaigns(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	planning := activeCampaign("campD", "Teaser", 2.5)
	planning.Status = model.CampaignStatusPlanning

	if _, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{planning}); err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}

	// The campaign goes active with a crashed rate. No baseline was ever
	// recorded while it was planning, so this only records one now.
	live := activeCampaign("campD", "Teaser", 0.5)
	alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{live})
	if err != nil {
		t.Fatalf("EvaluatePerformance() error = %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("first active sighting = %v, want no alerts", kinds(alerts))
	}
}

func TestEvaluatePerformanceBaselineAdvances(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	uc := newTestUsecase(t, nil)

	rates := []float64{2.5, 1.5, 1.5}
	var alertCounts []int
	for _, r := range rates {
		alerts, err := uc.EvaluatePerformance(ctx, sc, []model.Campaign{activeCampaign("campA", "Summer Sale", r)})
		if err != nil {
			t.Fatalf("EvaluatePerformance() error = %v", err)
		}
		alertCounts = append(alertCounts, len(alerts))
	}

	// The drop alerts once; holding at the lower rate does not re-alert
	// because the stored observation advanced.
	if alertCounts[0] != 0 || alertCounts[1] != 1 || alertCounts[2] != 0 {
		t.Errorf("alert counts per pass = %v, want [0 1 0]", alertCounts)
	}
}
