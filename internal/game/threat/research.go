package threat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wanderergame/worldthreat/internal/model"
)

// ResearchResult is the outcome of a successful Research action.
type ResearchResult struct {
	NewStacks          int    `json:"new_stacks"`
	ResearchMultiplier int    `json:"research_multiplier"`
	Message            string `json:"message"`
}

// PerformResearch handles the Research action: passes the daily gate, builds
// one research stack (capped), bumps the boss's research counter and evolves
// the boss.
func (s *Service) PerformResearch(ctx context.Context, playerID string) (*ResearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if ok, remaining := CanAct(status, now); !ok {
		return nil, &CooldownError{Remaining: remaining}
	}

	// Boss read-modify-write with optimistic retry.
	for attempt := 0; ; attempt++ {
		boss, version, err := s.boss.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading boss: %w", err)
		}
		if boss == nil {
			return nil, ErrNoActiveBoss
		}

		boss.TotalResearchActions++
		s.evolve(boss, true)

		err = s.boss.Update(ctx, boss, version)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrBossConflict) {
			return nil, fmt.Errorf("updating boss: %w", err)
		}
		if attempt+1 >= maxBossUpdateRetries {
			return nil, ErrBossConflict
		}
	}

	status.ResearchStacks = min(status.ResearchStacks+1, model.MaxResearchStacks)
	status.LastActionAt = &now

	if err := s.players.Upsert(ctx, status); err != nil {
		return nil, fmt.Errorf("saving player %s: %w", playerID, err)
	}

	multiplier := status.ResearchMultiplier()
	slog.Info("research complete",
		"player", playerID,
		"stacks", status.ResearchStacks,
		"multiplier", multiplier)

	return &ResearchResult{
		NewStacks:          status.ResearchStacks,
		ResearchMultiplier: multiplier,
		Message:            fmt.Sprintf("Research complete! Next fight will have x%d multiplier.", multiplier),
	}, nil
}
