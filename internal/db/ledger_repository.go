package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderergame/worldthreat/internal/model"
)

// LedgerRepository applies currency and item grants as atomic increments.
// Implements threat.Ledger.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) addCurrency(ctx context.Context, column, playerID string, amount int64) error {
	// column is one of the fixed currency names below, never caller input.
	query := fmt.Sprintf(
		`INSERT INTO player_balances (player_id, %[1]s) VALUES ($1, $2)
		 ON CONFLICT (player_id) DO UPDATE SET %[1]s = player_balances.%[1]s + EXCLUDED.%[1]s`,
		column)
	if _, err := r.pool.Exec(ctx, query, playerID, amount); err != nil {
		return fmt.Errorf("adding %d %s to %s: %w", amount, column, playerID, err)
	}
	return nil
}

// AddCrystals atomically increments the player's crystal balance.
func (r *LedgerRepository) AddCrystals(ctx context.Context, playerID string, amount int64) error {
	return r.addCurrency(ctx, "crystals", playerID, amount)
}

// AddQuartzs atomically increments the player's quartz balance.
func (r *LedgerRepository) AddQuartzs(ctx context.Context, playerID string, amount int64) error {
	return r.addCurrency(ctx, "quartzs", playerID, amount)
}

// AddDaphine atomically increments the player's daphine balance.
func (r *LedgerRepository) AddDaphine(ctx context.Context, playerID string, amount int64) error {
	return r.addCurrency(ctx, "daphine", playerID, amount)
}

// GrantItems upserts item grant quantities for the player.
func (r *LedgerRepository) GrantItems(ctx context.Context, playerID string, items []model.ItemGrant) error {
	for _, item := range items {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO player_items (player_id, item_type, item_id, quantity)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (player_id, item_type, item_id) DO UPDATE SET
			   quantity = player_items.quantity + EXCLUDED.quantity`,
			playerID, item.ItemType, item.ItemID, item.Quantity)
		if err != nil {
			return fmt.Errorf("granting %s x%d to %s: %w", item.ItemID, item.Quantity, playerID, err)
		}
	}
	return nil
}

// Balances returns the player's currency balances (zero row when absent).
func (r *LedgerRepository) Balances(ctx context.Context, playerID string) (crystals, quartzs, daphine int64, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(crystals), 0), COALESCE(MAX(quartzs), 0), COALESCE(MAX(daphine), 0)
		 FROM player_balances WHERE player_id = $1`, playerID,
	).Scan(&crystals, &quartzs, &daphine)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("querying balances for %s: %w", playerID, err)
	}
	return crystals, quartzs, daphine, nil
}
