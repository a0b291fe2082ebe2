package threat

import (
	"context"
	"errors"
	"testing"
)

func TestPerformResearch_BuildsStacks(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.svc.PerformResearch(ctx, "p1")
	if err != nil {
		t.Fatalf("PerformResearch: %v", err)
	}
	if res.NewStacks != 1 {
		t.Errorf("NewStacks = %d; want 1", res.NewStacks)
	}
	if res.ResearchMultiplier != 2 {
		t.Errorf("ResearchMultiplier = %d; want 2", res.ResearchMultiplier)
	}

	boss, _, _ := env.boss.Get(ctx)
	if boss.TotalResearchActions != 1 {
		t.Errorf("TotalResearchActions = %d; want 1", boss.TotalResearchActions)
	}

	status, _ := env.players.Get(ctx, "p1")
	if status == nil || status.LastActionAt == nil {
		t.Fatal("player status not persisted with timestamp")
	}
}

func TestPerformResearch_StacksCapAtTwo(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	want := []struct {
		stacks     int
		multiplier int
	}{
		{1, 2}, {2, 4}, {2, 4}, {2, 4},
	}
	for i, w := range want {
		res, err := env.svc.PerformResearch(ctx, "p1")
		if err != nil {
			t.Fatalf("research %d: %v", i, err)
		}
		if res.NewStacks != w.stacks {
			t.Errorf("research %d: NewStacks = %d; want %d", i, res.NewStacks, w.stacks)
		}
		if res.ResearchMultiplier != w.multiplier {
			t.Errorf("research %d: ResearchMultiplier = %d; want %d", i, res.ResearchMultiplier, w.multiplier)
		}
		env.advanceDay()
	}
}

func TestPerformResearch_CooldownSameDay(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.PerformResearch(ctx, "p1"); err != nil {
		t.Fatalf("first research: %v", err)
	}

	_, err := env.svc.PerformResearch(ctx, "p1")
	var cooldown *CooldownError
	if !errors.As(err, &cooldown) {
		t.Fatalf("second research err = %v; want CooldownError", err)
	}
	if cooldown.SecondsUntilReset() <= 0 {
		t.Errorf("SecondsUntilReset = %d; want > 0", cooldown.SecondsUntilReset())
	}

	// The rejected action must not advance the boss counter.
	boss, _, _ := env.boss.Get(ctx)
	if boss.TotalResearchActions != 1 {
		t.Errorf("TotalResearchActions = %d; want 1", boss.TotalResearchActions)
	}
}

func TestPerformResearch_NoBoss(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.boss.boss = nil
	ctx := context.Background()

	if _, err := env.svc.PerformResearch(ctx, "p1"); !errors.Is(err, ErrNoActiveBoss) {
		t.Fatalf("err = %v; want ErrNoActiveBoss", err)
	}

	// The player must not be charged their daily action.
	status, _ := env.players.Get(ctx, "p1")
	if status != nil {
		t.Errorf("player status persisted on rejected action: %+v", status)
	}
}

func TestPerformResearch_AdaptationRatchet(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	// 12 research actions from distinct players on distinct days.
	for i := range 12 {
		playerID := string(rune('a' + i))
		if _, err := env.svc.PerformResearch(ctx, playerID); err != nil {
			t.Fatalf("research %d: %v", i, err)
		}

		boss, _, _ := env.boss.Get(ctx)
		wantLevel := 0
		wantCap := 3
		if boss.TotalResearchActions >= researchAdaptationThreshold2 {
			wantLevel = 2
			wantCap = 5
		} else if boss.TotalResearchActions >= researchAdaptationThreshold1 {
			wantLevel = 1
			wantCap = 4
		}
		if boss.AdaptationLevel != wantLevel {
			t.Errorf("after %d actions: AdaptationLevel = %d; want %d",
				boss.TotalResearchActions, boss.AdaptationLevel, wantLevel)
		}
		if boss.BuffCap != wantCap {
			t.Errorf("after %d actions: BuffCap = %d; want %d",
				boss.TotalResearchActions, boss.BuffCap, wantCap)
		}
	}
}

func TestPerformResearch_RetriesOnConflict(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.boss.forceConflicts = 2
	ctx := context.Background()

	if _, err := env.svc.PerformResearch(ctx, "p1"); err != nil {
		t.Fatalf("PerformResearch with transient conflicts: %v", err)
	}

	boss, _, _ := env.boss.Get(ctx)
	if boss.TotalResearchActions != 1 {
		t.Errorf("TotalResearchActions = %d; want 1 (no double count across retries)", boss.TotalResearchActions)
	}
}

func TestPerformResearch_ConflictBudgetExhausted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.boss.forceConflicts = maxBossUpdateRetries + 1
	ctx := context.Background()

	if _, err := env.svc.PerformResearch(ctx, "p1"); !errors.Is(err, ErrBossConflict) {
		t.Fatalf("err = %v; want ErrBossConflict", err)
	}

	status, _ := env.players.Get(ctx, "p1")
	if status != nil {
		t.Errorf("player status persisted after failed action: %+v", status)
	}
}
