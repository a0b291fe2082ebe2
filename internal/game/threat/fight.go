package threat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/wanderergame/worldthreat/internal/model"
)

// FightResult is the outcome of a successful Fight action.
type FightResult struct {
	PointsScored       int64             `json:"points_scored"`
	TotalPoints        int64             `json:"total_points"`
	Breakdown          PointsBreakdown   `json:"calculation_breakdown"`
	ImmediateRewards   ImmediateRewards  `json:"immediate_rewards"`
	CheckpointRewards  CheckpointRewards `json:"checkpoint_rewards"`
	AwakenedCount      int               `json:"awakened_count"`
	AwakenedMultiplier float64           `json:"awakened_multiplier"`
	Message            string            `json:"message"`
}

// PerformFight handles the Fight action. Validation is all-or-nothing: a
// wrong team size, an unknown character id or a character cursed under the
// boss state loaded for this fight rejects the action before anything is
// persisted. On success the score is committed to player and boss, rewards
// are distributed best-effort and the boss evolves.
func (s *Service) PerformFight(ctx context.Context, playerID string, team []model.TeamMember) (*FightResult, error) {
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

	if len(team) != model.TeamSize {
		return nil, &TeamSizeError{Size: len(team)}
	}

	members := make([]RatedMember, 0, model.TeamSize)
	for _, entry := range team {
		c := s.catalog.Character(entry.CharacterID)
		if c == nil {
			return nil, &UnknownCharacterError{CharacterID: entry.CharacterID}
		}
		members = append(members, RatedMember{Character: c, StarLevel: entry.StarLevel})
	}

	owned, err := s.collection.GetCollection(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading collection for %s: %w", playerID, err)
	}
	awakened := make(map[int64]bool, len(owned))
	for _, row := range owned {
		if row.Awakened {
			awakened[row.CharacterID] = true
		}
	}
	awakenedCount := 0
	for _, m := range members {
		if awakened[m.Character.ID] {
			awakenedCount++
		}
	}

	stacksBefore := status.ResearchStacks

	// Boss read-modify-write with optimistic retry. Curses are re-checked
	// against every freshly loaded boss state: the boss may have evolved
	// since the client assembled its team, and again between attempts.
	var breakdown PointsBreakdown
	var boss *model.Boss
	for attempt := 0; ; attempt++ {
		var version int64
		boss, version, err = s.boss.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading boss: %w", err)
		}
		if boss == nil {
			return nil, ErrNoActiveBoss
		}

		var cursed []string
		for _, m := range members {
			if IsCursed(m.Character, boss) {
				cursed = append(cursed, m.Character.Name)
			}
		}
		if len(cursed) > 0 {
			return nil, &CursedTeamError{Names: cursed}
		}

		breakdown = CalculatePoints(members, boss, stacksBefore)
		boss.ServerTotalPoints += breakdown.FinalPoints
		s.evolve(boss, false)

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

	status.CumulativePoints += breakdown.FinalPoints
	status.ResearchStacks = 0
	status.LastActionAt = &now

	immediate := s.grantImmediateRewards(ctx, playerID, breakdown.FinalPoints, awakenedCount)
	checkpoints := s.grantCheckpointRewards(ctx, status, boss)

	if err := s.players.Upsert(ctx, status); err != nil {
		return nil, fmt.Errorf("saving player %s: %w", playerID, err)
	}

	slog.Info("fight complete",
		"player", playerID,
		"points", breakdown.FinalPoints,
		"total", status.CumulativePoints,
		"research_multiplier", breakdown.ResearchMultiplier,
		"awakened", awakenedCount)

	awakenedMultiplier := 1.0
	if awakenedCount > 0 {
		awakenedMultiplier = math.Pow(awakenedRewardMultiplier, float64(awakenedCount))
	}

	return &FightResult{
		PointsScored:       breakdown.FinalPoints,
		TotalPoints:        status.CumulativePoints,
		Breakdown:          breakdown,
		ImmediateRewards:   immediate,
		CheckpointRewards:  checkpoints,
		AwakenedCount:      awakenedCount,
		AwakenedMultiplier: awakenedMultiplier,
		Message:            fmt.Sprintf("Fight complete! Scored %d points.", breakdown.FinalPoints),
	}, nil
}
