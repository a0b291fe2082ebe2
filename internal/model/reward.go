package model

// ItemGrant is a single item reward applied through the external ledger.
type ItemGrant struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// RewardBundle groups the three currencies plus item grants of one reward.
type RewardBundle struct {
	Crystals int64       `json:"crystals"`
	Quartzs  int64       `json:"quartzs"`
	Daphine  int64       `json:"daphine"`
	Items    []ItemGrant `json:"items,omitempty"`
}

// IsZero reports whether the bundle grants nothing.
func (r RewardBundle) IsZero() bool {
	return r.Crystals == 0 && r.Quartzs == 0 && r.Daphine == 0 && len(r.Items) == 0
}

// Add accumulates another bundle into this one.
func (r *RewardBundle) Add(other RewardBundle) {
	r.Crystals += other.Crystals
	r.Quartzs += other.Quartzs
	r.Daphine += other.Daphine
	r.Items = append(r.Items, other.Items...)
}
