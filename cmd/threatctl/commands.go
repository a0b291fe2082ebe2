package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/wanderergame/worldthreat/internal/config"
	"github.com/wanderergame/worldthreat/internal/data"
	"github.com/wanderergame/worldthreat/internal/db"
	"github.com/wanderergame/worldthreat/internal/model"
	"github.com/wanderergame/worldthreat/internal/random"
)

// connect opens the pool and returns it with the repositories the commands
// need.
func connect(ctx context.Context, cfg config.Config) (*db.DB, error) {
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return database, nil
}

// runInitBoss creates the single boss row: two random dominant stats, a
// disjoint cursed stat, empty buff/curse sets and the configured baseline
// caps.
func runInitBoss(ctx context.Context, cfg config.Config) error {
	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	seed, err := random.NewSeed()
	if err != nil {
		return fmt.Errorf("seeding rng: %w", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perm := rng.Perm(len(model.AllStats))

	boss := &model.Boss{
		Name:          cfg.Boss.Name,
		DominantStats: []model.StatTag{model.AllStats[perm[0]], model.AllStats[perm[1]]},
		CursedStat:    model.AllStats[perm[2]],
		Buffs:         model.AffinityMap{},
		Curses:        model.AffinityMap{},
		BuffCap:       cfg.Boss.BuffCap,
		CurseCap:      cfg.Boss.CurseCap,
	}
	if err := boss.Validate(); err != nil {
		return fmt.Errorf("validating new boss: %w", err)
	}

	repo := db.NewBossRepository(database.Pool())
	if err := repo.Insert(ctx, boss); err != nil {
		return fmt.Errorf("creating boss: %w", err)
	}

	slog.Info("boss created",
		"name", boss.Name,
		"dominant", boss.DominantStats,
		"cursed", boss.CursedStat,
		"buff_cap", boss.BuffCap,
		"curse_cap", boss.CurseCap)
	return nil
}

// runStatus prints the current boss row.
func runStatus(ctx context.Context, cfg config.Config) error {
	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	boss, version, err := db.NewBossRepository(database.Pool()).Get(ctx)
	if err != nil {
		return err
	}
	if boss == nil {
		fmt.Println("no active boss")
		return nil
	}

	fmt.Printf("boss: %s (version %d)\n", boss.Name, version)
	fmt.Printf("  dominant stats:   %v\n", boss.DominantStats)
	fmt.Printf("  cursed stat:      %s\n", boss.CursedStat)
	fmt.Printf("  buffs (%d/%d):     %v\n", boss.Buffs.Total(), boss.BuffCap, boss.Buffs)
	fmt.Printf("  curses (%d/%d):    %v\n", boss.Curses.Total(), boss.CurseCap, boss.Curses)
	fmt.Printf("  server points:    %d\n", boss.ServerTotalPoints)
	fmt.Printf("  research actions: %d\n", boss.TotalResearchActions)
	fmt.Printf("  adaptation level: %d\n", boss.AdaptationLevel)
	return nil
}

// runSeed gives a player the full demo catalog as a collection plus starter
// balances, so fights can be exercised right away.
func runSeed(ctx context.Context, cfg config.Config, playerID string) error {
	database, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	collection := db.NewCollectionRepository(database.Pool())
	for i, c := range data.AllCharacters() {
		owned := model.OwnedCharacter{
			CharacterID: c.ID,
			StarLevel:   1 + i%3,
			Awakened:    i%4 == 0,
		}
		if err := collection.AddToCollection(ctx, playerID, owned); err != nil {
			return err
		}
	}

	ledger := db.NewLedgerRepository(database.Pool())
	if err := ledger.AddCrystals(ctx, playerID, 1000); err != nil {
		return err
	}

	slog.Info("seeded demo collection", "player", playerID, "characters", len(data.AllCharacters()))
	return nil
}
