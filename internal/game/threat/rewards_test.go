package threat

import (
	"context"
	"testing"

	"github.com/wanderergame/worldthreat/internal/model"
)

func TestImmediateRewardBundle_CumulativeTiers(t *testing.T) {
	t.Parallel()

	// 12500 points qualify for the 20 lowest tiers. Crystals are points/10.
	bundle, multiplier := immediateRewardBundle(12500, 0)

	if bundle.Crystals != 1250 {
		t.Errorf("Crystals = %d; want 1250", bundle.Crystals)
	}
	if bundle.Quartzs != 315 {
		t.Errorf("Quartzs = %d; want 315", bundle.Quartzs)
	}
	if bundle.Daphine != 4 {
		t.Errorf("Daphine = %d; want 4", bundle.Daphine)
	}
	if len(bundle.Items) != 20 {
		t.Errorf("item grants = %d; want 20 (one per qualifying tier)", len(bundle.Items))
	}
	if multiplier != 1.0 {
		t.Errorf("awakened multiplier = %v; want 1.0", multiplier)
	}
}

func TestImmediateRewardBundle_BelowLowestTier(t *testing.T) {
	t.Parallel()

	bundle, _ := immediateRewardBundle(99, 0)

	if bundle.Crystals != 9 {
		t.Errorf("Crystals = %d; want 9", bundle.Crystals)
	}
	if bundle.Quartzs != 0 || bundle.Daphine != 0 || len(bundle.Items) != 0 {
		t.Errorf("tier rewards below lowest threshold: %+v", bundle)
	}
}

func TestImmediateRewardBundle_AwakenedScalesCrystalsOnly(t *testing.T) {
	t.Parallel()

	plain, _ := immediateRewardBundle(1000, 0)
	awakened, multiplier := immediateRewardBundle(1000, 1)

	if multiplier != 1.2 {
		t.Errorf("multiplier = %v; want 1.2", multiplier)
	}
	if awakened.Crystals != 120 {
		t.Errorf("Crystals = %d; want 120 (100 × 1.2)", awakened.Crystals)
	}
	if awakened.Quartzs != plain.Quartzs || awakened.Daphine != plain.Daphine {
		t.Errorf("awakening changed tier rewards: plain %+v, awakened %+v", plain, awakened)
	}
}

func TestGrantImmediateRewards_LedgerDelivery(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	res := env.svc.grantImmediateRewards(ctx, "p1", 1000, 0)

	if !res.Granted {
		t.Error("Granted = false; want true")
	}
	if env.ledger.crystals["p1"] != 100 {
		t.Errorf("ledger crystals = %d; want 100", env.ledger.crystals["p1"])
	}
	if env.ledger.quartzs["p1"] != 25 {
		t.Errorf("ledger quartzs = %d; want 25", env.ledger.quartzs["p1"])
	}
	if env.ledger.daphine["p1"] != 1 {
		t.Errorf("ledger daphine = %d; want 1", env.ledger.daphine["p1"])
	}
}

func TestGrantImmediateRewards_PartialLedgerFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.ledger.failCrystals = true
	ctx := context.Background()

	res := env.svc.grantImmediateRewards(ctx, "p1", 1000, 0)

	if res.Granted {
		t.Error("Granted = true despite crystal failure")
	}
	// The remaining components are still delivered.
	if env.ledger.quartzs["p1"] != 25 {
		t.Errorf("ledger quartzs = %d; want 25", env.ledger.quartzs["p1"])
	}
	if env.ledger.daphine["p1"] != 1 {
		t.Errorf("ledger daphine = %d; want 1", env.ledger.daphine["p1"])
	}
}

func TestGrantCheckpointRewards_PersonalOnce(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	status := &model.PlayerStatus{PlayerID: "p1", CumulativePoints: 30000}
	boss := testBoss()

	first := env.svc.grantCheckpointRewards(ctx, status, boss)
	if len(first.Personal) != 2 {
		t.Fatalf("personal grants = %d; want 2 (10000 and 25000)", len(first.Personal))
	}
	if first.Personal[0].Checkpoint != 10000 || first.Personal[1].Checkpoint != 25000 {
		t.Errorf("checkpoints = %d, %d; want 10000, 25000",
			first.Personal[0].Checkpoint, first.Personal[1].Checkpoint)
	}
	if env.ledger.crystals["p1"] != 1500 {
		t.Errorf("crystals = %d; want 1500 (500 + 1000)", env.ledger.crystals["p1"])
	}

	second := env.svc.grantCheckpointRewards(ctx, status, boss)
	if len(second.Personal) != 0 || len(second.Server) != 0 {
		t.Errorf("second pass regranted: %+v", second)
	}
	if env.ledger.crystals["p1"] != 1500 {
		t.Errorf("crystals = %d after second pass; want unchanged 1500", env.ledger.crystals["p1"])
	}
}

func TestGrantCheckpointRewards_ServerThresholds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	status := &model.PlayerStatus{PlayerID: "p1"}
	boss := testBoss()
	boss.ServerTotalPoints = 250000

	granted := env.svc.grantCheckpointRewards(ctx, status, boss)
	if len(granted.Server) != 2 {
		t.Fatalf("server grants = %d; want 2 (100000 and 200000)", len(granted.Server))
	}
	if !status.HasClaimedServer(100000) || !status.HasClaimedServer(200000) {
		t.Error("server checkpoints not marked claimed")
	}

	// Another player crossing the same server total claims independently.
	other := &model.PlayerStatus{PlayerID: "p2"}
	if got := env.svc.grantCheckpointRewards(ctx, other, boss); len(got.Server) != 2 {
		t.Errorf("second player server grants = %d; want 2", len(got.Server))
	}
}

func TestGrantCheckpointRewards_ClaimSurvivesLedgerFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.ledger.failCrystals = true
	ctx := context.Background()

	status := &model.PlayerStatus{PlayerID: "p1", CumulativePoints: 10000}
	boss := testBoss()

	granted := env.svc.grantCheckpointRewards(ctx, status, boss)
	if len(granted.Personal) != 1 {
		t.Fatalf("personal grants = %d; want 1", len(granted.Personal))
	}
	// The claim is recorded even though the crystal component failed, so a
	// retry cannot double pay the non-failing components.
	if !status.HasClaimedPersonal(10000) {
		t.Error("checkpoint not marked claimed after partial ledger failure")
	}
	if env.ledger.quartzs["p1"] != 20 {
		t.Errorf("quartzs = %d; want 20 (delivered despite crystal failure)", env.ledger.quartzs["p1"])
	}
}

func TestPerformFight_ChecksCheckpointsAfterScoring(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	// Start the player just below the first personal checkpoint; one 900
	// point fight crosses it.
	seed := &model.PlayerStatus{PlayerID: "p1", CumulativePoints: 9500}
	if err := env.players.Upsert(ctx, seed); err != nil {
		t.Fatalf("seeding status: %v", err)
	}

	res, err := env.svc.PerformFight(ctx, "p1", sameSeriesTeam())
	if err != nil {
		t.Fatalf("PerformFight: %v", err)
	}

	if len(res.CheckpointRewards.Personal) != 1 {
		t.Fatalf("personal checkpoint grants = %d; want 1", len(res.CheckpointRewards.Personal))
	}
	if res.CheckpointRewards.Personal[0].Checkpoint != 10000 {
		t.Errorf("checkpoint = %d; want 10000", res.CheckpointRewards.Personal[0].Checkpoint)
	}

	status, _ := env.players.Get(ctx, "p1")
	if !status.HasClaimedPersonal(10000) {
		t.Error("claim not persisted with the player status")
	}
}
