package threat

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/wanderergame/worldthreat/internal/model"
	"github.com/wanderergame/worldthreat/internal/random"
)

// BossStore provides versioned persistence for the single shared boss record.
type BossStore interface {
	// Get loads the boss and its storage version. Returns (nil, 0, nil)
	// when no boss is configured.
	Get(ctx context.Context) (*model.Boss, int64, error)
	// Update writes the boss only if the stored version still equals
	// version. Returns ErrBossConflict otherwise.
	Update(ctx context.Context, boss *model.Boss, version int64) error
}

// PlayerStore provides persistence for per-player status records.
type PlayerStore interface {
	// Get loads a player status. Returns (nil, nil) when none exists.
	Get(ctx context.Context, playerID string) (*model.PlayerStatus, error)
	Upsert(ctx context.Context, status *model.PlayerStatus) error
}

// Ledger is the external currency and item ledger. Each call is an
// independent atomic grant; the service treats failures as best-effort.
type Ledger interface {
	AddCrystals(ctx context.Context, playerID string, amount int64) error
	AddQuartzs(ctx context.Context, playerID string, amount int64) error
	AddDaphine(ctx context.Context, playerID string, amount int64) error
	GrantItems(ctx context.Context, playerID string, items []model.ItemGrant) error
}

// CollectionStore is the external collection service: which characters a
// player owns, their star levels and awakened flags.
type CollectionStore interface {
	GetCollection(ctx context.Context, playerID string) ([]model.OwnedCharacter, error)
}

// Catalog resolves opaque character ids to immutable combat attributes.
type Catalog interface {
	// Character returns the catalog entry, or nil if the id is unknown.
	Character(id int64) *model.Character
}

// Config carries the collaborators and tunables for a Service.
type Config struct {
	Boss       BossStore
	Players    PlayerStore
	Ledger     Ledger
	Collection CollectionStore
	Catalog    Catalog

	// Pools holds the legal affinity values per category, loaded once.
	Pools map[model.AffinityCategory][]string

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time

	// Seed overrides the RNG seed. Zero means a crypto/rand seed.
	Seed uint64
}

// Service implements the World Threat game mode: the Research and Fight
// actions, the daily cooldown gate, point calculation, reward distribution
// and boss evolution.
//
// The boss record is the only contended resource. A service-local mutex
// serializes every boss read-modify-write in this process, and the
// BossStore's versioned Update rejects writes from other processes; on
// conflict the whole action is retried from a fresh load.
type Service struct {
	boss       BossStore
	players    PlayerStore
	ledger     Ledger
	collection CollectionStore
	catalog    Catalog
	pools      map[model.AffinityCategory][]string

	now func() time.Time

	mu  sync.Mutex // serializes boss read-modify-write and guards rng
	rng *rand.Rand
}

// New creates the World Threat service.
func New(cfg Config) (*Service, error) {
	switch {
	case cfg.Boss == nil:
		return nil, fmt.Errorf("threat.New: BossStore is required")
	case cfg.Players == nil:
		return nil, fmt.Errorf("threat.New: PlayerStore is required")
	case cfg.Ledger == nil:
		return nil, fmt.Errorf("threat.New: Ledger is required")
	case cfg.Collection == nil:
		return nil, fmt.Errorf("threat.New: CollectionStore is required")
	case cfg.Catalog == nil:
		return nil, fmt.Errorf("threat.New: Catalog is required")
	case len(cfg.Pools) == 0:
		return nil, fmt.Errorf("threat.New: affinity pools are required")
	}

	seed := cfg.Seed
	if seed == 0 {
		s, err := random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("seeding rng: %w", err)
		}
		seed = s
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		boss:       cfg.Boss,
		players:    cfg.Players,
		ledger:     cfg.Ledger,
		collection: cfg.Collection,
		catalog:    cfg.Catalog,
		pools:      cfg.Pools,
		now:        now,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// loadPlayer fetches the player status, creating a default record lazily.
func (s *Service) loadPlayer(ctx context.Context, playerID string) (*model.PlayerStatus, error) {
	status, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("loading player %s: %w", playerID, err)
	}
	if status == nil {
		status = &model.PlayerStatus{PlayerID: playerID}
	}
	return status, nil
}

// maxBossUpdateRetries bounds the optimistic-write retry loop. The in-process
// mutex already serializes local actions, so retries only trigger when
// another process wrote the boss row.
const maxBossUpdateRetries = 5
