package threat

import (
	"context"
	"log/slog"
	"math"

	"github.com/wanderergame/worldthreat/internal/model"
)

// awakenedRewardMultiplier stacks multiplicatively per awakened team member
// and applies to the crystal payout only.
const awakenedRewardMultiplier = 1.2

// rewardTier is one threshold of a cumulative reward table.
type rewardTier struct {
	MinPoints int64
	Reward    model.RewardBundle
}

// immediateRewardTiers are granted per fight by points scored. The tiers are
// cumulative: a fight qualifies for every tier at or below its score and
// receives the sum of all of them, not only the highest.
var immediateRewardTiers = []rewardTier{
	{30000, model.RewardBundle{Quartzs: 1000, Daphine: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 10}}}},
	{20000, model.RewardBundle{Quartzs: 500, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 1}}}},
	{17500, model.RewardBundle{Quartzs: 300, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 1}}}},
	{15000, model.RewardBundle{Quartzs: 200, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 1}}}},
	{12500, model.RewardBundle{Quartzs: 100, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 1}}}},
	{10000, model.RewardBundle{Quartzs: 50, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 2}}}},
	{9000, model.RewardBundle{Quartzs: 20, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 2}}}},
	{8000, model.RewardBundle{Quartzs: 20, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 1}}}},
	{7000, model.RewardBundle{Quartzs: 20, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 1}}}},
	{6000, model.RewardBundle{Quartzs: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 1}}}},
	{5000, model.RewardBundle{Quartzs: 10, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_3", Quantity: 2}}}},
	{4500, model.RewardBundle{Quartzs: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_3", Quantity: 1}}}},
	{4000, model.RewardBundle{Quartzs: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_1", Quantity: 2}}}},
	{3500, model.RewardBundle{Quartzs: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_1", Quantity: 1}}}},
	{3000, model.RewardBundle{Quartzs: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_5", Quantity: 5}}}},
	{2500, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_5", Quantity: 3}}}},
	{2000, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_5", Quantity: 1}}}},
	{1750, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 5}}}},
	{1500, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 3}}}},
	{1000, model.RewardBundle{Quartzs: 5, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 2}}}},
	{750, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 1}}}},
	{500, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_4", Quantity: 5}}}},
	{250, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_4", Quantity: 3}}}},
	{100, model.RewardBundle{Quartzs: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_4", Quantity: 1}}}},
}

// personalCheckpointRewards are one-time grants by cumulative personal
// points, ascending.
var personalCheckpointRewards = []rewardTier{
	{10000, model.RewardBundle{Crystals: 500, Quartzs: 20, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_4", Quantity: 10}}}},
	{25000, model.RewardBundle{Crystals: 1000, Quartzs: 50, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 5}}}},
	{50000, model.RewardBundle{Crystals: 2000, Quartzs: 100, Daphine: 2, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_5", Quantity: 3}}}},
	{75000, model.RewardBundle{Crystals: 3000, Quartzs: 250, Daphine: 3, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_3", Quantity: 5}}}},
	{100000, model.RewardBundle{Crystals: 5000, Quartzs: 500, Daphine: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 3}}}},
	{200000, model.RewardBundle{Crystals: 10000, Quartzs: 1000, Daphine: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 1}}}},
}

// serverCheckpointRewards are one-time grants by server total points,
// ascending. Every player claims each threshold once.
var serverCheckpointRewards = []rewardTier{
	{100000, model.RewardBundle{Crystals: 500, Quartzs: 20, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_4", Quantity: 20}}}},
	{200000, model.RewardBundle{Crystals: 1000, Quartzs: 50, Daphine: 1, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_2", Quantity: 10}}}},
	{400000, model.RewardBundle{Crystals: 2000, Quartzs: 100, Daphine: 2, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_5", Quantity: 10}}}},
	{600000, model.RewardBundle{Crystals: 3000, Quartzs: 250, Daphine: 3, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_3", Quantity: 10}}}},
	{800000, model.RewardBundle{Crystals: 5000, Quartzs: 500, Daphine: 5, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_6", Quantity: 10}}}},
	{1000000, model.RewardBundle{Crystals: 10000, Quartzs: 1000, Daphine: 10, Items: []model.ItemGrant{{ItemType: "ITEM", ItemID: "item_7", Quantity: 3}}}},
}

// ImmediateRewards reports the per-fight reward grant.
type ImmediateRewards struct {
	Granted            bool               `json:"granted"`
	Bundle             model.RewardBundle `json:"bundle"`
	AwakenedCount      int                `json:"awakened_count"`
	AwakenedMultiplier float64            `json:"awakened_multiplier"`
}

// CheckpointGrant is one newly crossed checkpoint and its reward.
type CheckpointGrant struct {
	Checkpoint int64              `json:"checkpoint"`
	Reward     model.RewardBundle `json:"reward"`
}

// CheckpointRewards reports checkpoints newly claimed by a fight.
type CheckpointRewards struct {
	Personal []CheckpointGrant `json:"personal"`
	Server   []CheckpointGrant `json:"server"`
}

// immediateRewardBundle computes the total per-fight payout for a score:
// crystals = points/10 scaled by 1.2^awakened, plus the summed quartz /
// daphine / item rewards of every qualifying tier.
func immediateRewardBundle(points int64, awakenedCount int) (model.RewardBundle, float64) {
	awakenedMultiplier := 1.0
	if awakenedCount > 0 {
		awakenedMultiplier = math.Pow(awakenedRewardMultiplier, float64(awakenedCount))
	}

	bundle := model.RewardBundle{
		Crystals: int64(float64(points) / 10 * awakenedMultiplier),
	}
	for _, tier := range immediateRewardTiers {
		if points >= tier.MinPoints {
			bundle.Add(tier.Reward)
		}
	}
	return bundle, awakenedMultiplier
}

// grantBundle applies each component of a bundle through the ledger
// independently. Failures are logged and do not stop the remaining
// components: reward delivery is deliberately best-effort, the scoring state
// has already committed.
func (s *Service) grantBundle(ctx context.Context, playerID string, bundle model.RewardBundle) bool {
	allApplied := true

	if bundle.Crystals > 0 {
		if err := s.ledger.AddCrystals(ctx, playerID, bundle.Crystals); err != nil {
			slog.Error("crystal grant failed", "player", playerID, "amount", bundle.Crystals, "err", err)
			allApplied = false
		}
	}
	if bundle.Quartzs > 0 {
		if err := s.ledger.AddQuartzs(ctx, playerID, bundle.Quartzs); err != nil {
			slog.Error("quartz grant failed", "player", playerID, "amount", bundle.Quartzs, "err", err)
			allApplied = false
		}
	}
	if bundle.Daphine > 0 {
		if err := s.ledger.AddDaphine(ctx, playerID, bundle.Daphine); err != nil {
			slog.Error("daphine grant failed", "player", playerID, "amount", bundle.Daphine, "err", err)
			allApplied = false
		}
	}
	if len(bundle.Items) > 0 {
		if err := s.ledger.GrantItems(ctx, playerID, bundle.Items); err != nil {
			slog.Error("item grant failed", "player", playerID, "items", len(bundle.Items), "err", err)
			allApplied = false
		}
	}

	return allApplied
}

// grantImmediateRewards pays out the per-fight reward for a score.
func (s *Service) grantImmediateRewards(ctx context.Context, playerID string, points int64, awakenedCount int) ImmediateRewards {
	bundle, awakenedMultiplier := immediateRewardBundle(points, awakenedCount)
	granted := s.grantBundle(ctx, playerID, bundle)

	slog.Info("immediate rewards",
		"player", playerID,
		"points", points,
		"crystals", bundle.Crystals,
		"quartzs", bundle.Quartzs,
		"daphine", bundle.Daphine,
		"awakened", awakenedCount)

	return ImmediateRewards{
		Granted:            granted,
		Bundle:             bundle,
		AwakenedCount:      awakenedCount,
		AwakenedMultiplier: awakenedMultiplier,
	}
}

// grantCheckpointRewards grants every personal and server checkpoint the
// player newly qualifies for, marking each claimed so it is granted at most
// once per player. Claims are recorded even when a ledger component fails:
// delivery is best-effort, idempotence is not.
func (s *Service) grantCheckpointRewards(ctx context.Context, status *model.PlayerStatus, boss *model.Boss) CheckpointRewards {
	var granted CheckpointRewards

	for _, tier := range personalCheckpointRewards {
		if status.CumulativePoints < tier.MinPoints || status.HasClaimedPersonal(tier.MinPoints) {
			continue
		}
		s.grantBundle(ctx, status.PlayerID, tier.Reward)
		status.ClaimedPersonalCheckpoints = append(status.ClaimedPersonalCheckpoints, tier.MinPoints)
		granted.Personal = append(granted.Personal, CheckpointGrant{Checkpoint: tier.MinPoints, Reward: tier.Reward})
		slog.Info("personal checkpoint granted", "player", status.PlayerID, "checkpoint", tier.MinPoints)
	}

	for _, tier := range serverCheckpointRewards {
		if boss.ServerTotalPoints < tier.MinPoints || status.HasClaimedServer(tier.MinPoints) {
			continue
		}
		s.grantBundle(ctx, status.PlayerID, tier.Reward)
		status.ClaimedServerCheckpoints = append(status.ClaimedServerCheckpoints, tier.MinPoints)
		granted.Server = append(granted.Server, CheckpointGrant{Checkpoint: tier.MinPoints, Reward: tier.Reward})
		slog.Info("server checkpoint granted", "player", status.PlayerID, "checkpoint", tier.MinPoints)
	}

	return granted
}
