package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/wanderergame/worldthreat/internal/config"
	"github.com/wanderergame/worldthreat/internal/data"
	"github.com/wanderergame/worldthreat/internal/db"
	"github.com/wanderergame/worldthreat/internal/game/threat"
	"github.com/wanderergame/worldthreat/internal/model"
)

// catalogAdapter exposes the static catalog as a threat.Catalog.
type catalogAdapter struct{}

func (catalogAdapter) Character(id int64) *model.Character {
	return data.GetCharacter(id)
}

// runSimulate fires one action per simulated player, all concurrently,
// against the live database. Odd players research, even players fight.
// Useful for eyeballing boss write serialization under load.
func runSimulate(ctx context.Context, cfg config.Config, players int) error {
	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	pool := database.Pool()
	svc, err := threat.New(threat.Config{
		Boss:       db.NewBossRepository(pool),
		Players:    db.NewPlayerRepository(pool),
		Ledger:     db.NewLedgerRepository(pool),
		Collection: db.NewCollectionRepository(pool),
		Catalog:    catalogAdapter{},
		Pools:      data.AffinityPools(),
	})
	if err != nil {
		return fmt.Errorf("building service: %w", err)
	}

	collection := db.NewCollectionRepository(pool)

	g, gctx := errgroup.WithContext(ctx)
	for i := range players {
		playerID := fmt.Sprintf("sim_player_%d", i)
		fight := i%2 == 0

		g.Go(func() error {
			// Every sim player owns the full catalog.
			for _, c := range data.AllCharacters() {
				owned := model.OwnedCharacter{CharacterID: c.ID, StarLevel: 1}
				if err := collection.AddToCollection(gctx, playerID, owned); err != nil {
					return err
				}
			}

			if !fight {
				res, err := svc.PerformResearch(gctx, playerID)
				if err != nil {
					return logSimRejection(playerID, "research", err)
				}
				slog.Info("sim research", "player", playerID, "stacks", res.NewStacks)
				return nil
			}

			available, err := svc.AvailableCharacters(gctx, playerID)
			if err != nil {
				return logSimRejection(playerID, "fight", err)
			}
			if len(available) < model.TeamSize {
				slog.Warn("sim fight skipped, too few usable characters",
					"player", playerID, "available", len(available))
				return nil
			}

			team := make([]model.TeamMember, 0, model.TeamSize)
			for _, c := range available[:model.TeamSize] {
				team = append(team, model.TeamMember{CharacterID: c.CharacterID, StarLevel: c.StarLevel})
			}

			res, err := svc.PerformFight(gctx, playerID, team)
			if err != nil {
				return logSimRejection(playerID, "fight", err)
			}
			slog.Info("sim fight", "player", playerID, "points", res.PointsScored)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	boss, _, err := db.NewBossRepository(pool).Get(ctx)
	if err != nil {
		return err
	}
	if boss != nil {
		slog.Info("simulation complete",
			"server_points", boss.ServerTotalPoints,
			"research_actions", boss.TotalResearchActions,
			"adaptation", boss.AdaptationLevel)
	}
	return nil
}

// logSimRejection downgrades expected game rejections to log lines so one
// cooldown or cursed team doesn't abort the whole simulation run.
func logSimRejection(playerID, action string, err error) error {
	var cooldown *threat.CooldownError
	var cursed *threat.CursedTeamError
	switch {
	case errors.As(err, &cooldown):
		slog.Warn("sim action on cooldown", "player", playerID, "action", action,
			"seconds_until_reset", cooldown.SecondsUntilReset())
		return nil
	case errors.As(err, &cursed):
		slog.Warn("sim team cursed", "player", playerID, "names", cursed.Names)
		return nil
	default:
		return fmt.Errorf("%s for %s: %w", action, playerID, err)
	}
}
