package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderergame/worldthreat/internal/model"
)

// PlayerRepository persists world threat player status rows. Implements
// threat.PlayerStore.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

// Get loads a player status row. Returns (nil, nil) when none exists.
func (r *PlayerRepository) Get(ctx context.Context, playerID string) (*model.PlayerStatus, error) {
	var (
		status       model.PlayerStatus
		personalJSON string
		serverJSON   string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT player_id, cumulative_points, last_action_at, research_stacks,
		        claimed_personal_checkpoints, claimed_server_checkpoints
		 FROM world_threat_player_status WHERE player_id = $1`, playerID,
	).Scan(&status.PlayerID, &status.CumulativePoints, &status.LastActionAt,
		&status.ResearchStacks, &personalJSON, &serverJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying player status %s: %w", playerID, err)
	}

	if err := json.Unmarshal([]byte(personalJSON), &status.ClaimedPersonalCheckpoints); err != nil {
		return nil, fmt.Errorf("parsing personal checkpoints for %s: %w", playerID, err)
	}
	if err := json.Unmarshal([]byte(serverJSON), &status.ClaimedServerCheckpoints); err != nil {
		return nil, fmt.Errorf("parsing server checkpoints for %s: %w", playerID, err)
	}
	return &status, nil
}

// Upsert inserts or updates a player status row.
func (r *PlayerRepository) Upsert(ctx context.Context, status *model.PlayerStatus) error {
	personalJSON, err := marshalCheckpoints(status.ClaimedPersonalCheckpoints)
	if err != nil {
		return fmt.Errorf("encoding personal checkpoints for %s: %w", status.PlayerID, err)
	}
	serverJSON, err := marshalCheckpoints(status.ClaimedServerCheckpoints)
	if err != nil {
		return fmt.Errorf("encoding server checkpoints for %s: %w", status.PlayerID, err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO world_threat_player_status
		   (player_id, cumulative_points, last_action_at, research_stacks,
		    claimed_personal_checkpoints, claimed_server_checkpoints)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (player_id) DO UPDATE SET
		   cumulative_points            = EXCLUDED.cumulative_points,
		   last_action_at               = EXCLUDED.last_action_at,
		   research_stacks              = EXCLUDED.research_stacks,
		   claimed_personal_checkpoints = EXCLUDED.claimed_personal_checkpoints,
		   claimed_server_checkpoints   = EXCLUDED.claimed_server_checkpoints`,
		status.PlayerID, status.CumulativePoints, status.LastActionAt,
		status.ResearchStacks, personalJSON, serverJSON)
	if err != nil {
		return fmt.Errorf("upserting player status %s: %w", status.PlayerID, err)
	}
	return nil
}

// marshalCheckpoints serializes a claimed-checkpoint set, storing an empty
// set as "[]" rather than JSON null.
func marshalCheckpoints(checkpoints []int64) (string, error) {
	if checkpoints == nil {
		checkpoints = []int64{}
	}
	data, err := json.Marshal(checkpoints)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
