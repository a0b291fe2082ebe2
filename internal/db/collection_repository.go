package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderergame/worldthreat/internal/model"
)

// CollectionRepository reads player character collections. Implements
// threat.CollectionStore.
type CollectionRepository struct {
	pool *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository.
func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

// GetCollection loads all characters the player owns.
func (r *CollectionRepository) GetCollection(ctx context.Context, playerID string) ([]model.OwnedCharacter, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT character_id, star_level, awakened
		 FROM player_collection WHERE player_id = $1`, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying collection for %s: %w", playerID, err)
	}
	defer rows.Close()

	var result []model.OwnedCharacter
	for rows.Next() {
		var row model.OwnedCharacter
		if err := rows.Scan(&row.CharacterID, &row.StarLevel, &row.Awakened); err != nil {
			return nil, fmt.Errorf("scanning collection row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// AddToCollection inserts or updates one owned character row.
func (r *CollectionRepository) AddToCollection(ctx context.Context, playerID string, owned model.OwnedCharacter) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO player_collection (player_id, character_id, star_level, awakened)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (player_id, character_id) DO UPDATE SET
		   star_level = EXCLUDED.star_level,
		   awakened   = EXCLUDED.awakened`,
		playerID, owned.CharacterID, owned.StarLevel, owned.Awakened)
	if err != nil {
		return fmt.Errorf("adding character %d to collection of %s: %w", owned.CharacterID, playerID, err)
	}
	return nil
}
