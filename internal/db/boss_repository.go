package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderergame/worldthreat/internal/game/threat"
	"github.com/wanderergame/worldthreat/internal/model"
)

// BossRepository persists the single world threat boss row. It implements
// threat.BossStore: reads return a storage version and writes are accepted
// only against that version, so concurrent read-modify-write sequences from
// other processes surface as threat.ErrBossConflict instead of lost updates.
type BossRepository struct {
	pool *pgxpool.Pool
}

// NewBossRepository creates a new BossRepository.
func NewBossRepository(pool *pgxpool.Pool) *BossRepository {
	return &BossRepository{pool: pool}
}

// Get loads the boss row. Returns (nil, 0, nil) when no boss is configured.
func (r *BossRepository) Get(ctx context.Context) (*model.Boss, int64, error) {
	var (
		boss         model.Boss
		version      int64
		dominantJSON string
		cursedStat   string
		buffsJSON    string
		cursesJSON   string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT boss_name, dominant_stats, cursed_stat, buffs, curses,
		        buff_cap, curse_cap, server_total_points,
		        total_research_actions, adaptation_level, version
		 FROM world_threat_boss WHERE id = 1`,
	).Scan(&boss.Name, &dominantJSON, &cursedStat, &buffsJSON, &cursesJSON,
		&boss.BuffCap, &boss.CurseCap, &boss.ServerTotalPoints,
		&boss.TotalResearchActions, &boss.AdaptationLevel, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("querying boss: %w", err)
	}

	boss.CursedStat = model.StatTag(cursedStat)
	if err := json.Unmarshal([]byte(dominantJSON), &boss.DominantStats); err != nil {
		return nil, 0, fmt.Errorf("parsing dominant_stats: %w", err)
	}
	if err := json.Unmarshal([]byte(buffsJSON), &boss.Buffs); err != nil {
		return nil, 0, fmt.Errorf("parsing buffs: %w", err)
	}
	if err := json.Unmarshal([]byte(cursesJSON), &boss.Curses); err != nil {
		return nil, 0, fmt.Errorf("parsing curses: %w", err)
	}
	return &boss, version, nil
}

// Update writes the boss row if its stored version still matches version.
// The row's version advances by one on success.
func (r *BossRepository) Update(ctx context.Context, boss *model.Boss, version int64) error {
	dominantJSON, buffsJSON, cursesJSON, err := marshalBossBlobs(boss)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx,
		`UPDATE world_threat_boss SET
		   boss_name = $1, dominant_stats = $2, cursed_stat = $3,
		   buffs = $4, curses = $5, buff_cap = $6, curse_cap = $7,
		   server_total_points = $8, total_research_actions = $9,
		   adaptation_level = $10, version = version + 1
		 WHERE id = 1 AND version = $11`,
		boss.Name, dominantJSON, string(boss.CursedStat),
		buffsJSON, cursesJSON, boss.BuffCap, boss.CurseCap,
		boss.ServerTotalPoints, boss.TotalResearchActions,
		boss.AdaptationLevel, version)
	if err != nil {
		return fmt.Errorf("updating boss: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return threat.ErrBossConflict
	}
	return nil
}

// Insert creates the boss row at version 0. Fails if a boss already exists.
func (r *BossRepository) Insert(ctx context.Context, boss *model.Boss) error {
	dominantJSON, buffsJSON, cursesJSON, err := marshalBossBlobs(boss)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO world_threat_boss
		   (id, boss_name, dominant_stats, cursed_stat, buffs, curses,
		    buff_cap, curse_cap, server_total_points,
		    total_research_actions, adaptation_level, version)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0)`,
		boss.Name, dominantJSON, string(boss.CursedStat),
		buffsJSON, cursesJSON, boss.BuffCap, boss.CurseCap,
		boss.ServerTotalPoints, boss.TotalResearchActions,
		boss.AdaptationLevel)
	if err != nil {
		return fmt.Errorf("inserting boss %q: %w", boss.Name, err)
	}
	return nil
}

// marshalBossBlobs serializes the collection-valued boss fields to the JSON
// text blobs stored at rest.
func marshalBossBlobs(boss *model.Boss) (dominant, buffs, curses string, err error) {
	d, err := json.Marshal(boss.DominantStats)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding dominant_stats: %w", err)
	}
	b, err := json.Marshal(boss.Buffs)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding buffs: %w", err)
	}
	c, err := json.Marshal(boss.Curses)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding curses: %w", err)
	}
	return string(d), string(b), string(c), nil
}
