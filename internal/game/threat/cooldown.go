package threat

import (
	"time"

	"github.com/wanderergame/worldthreat/internal/model"
)

// resetZone is the fixed offset the daily action reset is anchored to.
// The gate compares calendar dates in this zone, not a rolling 24h window.
var resetZone = time.FixedZone("UTC+7", 7*60*60)

// CanAct reports whether the player may act now. A player gets one action
// (Research or Fight) per UTC+7 calendar day; when blocked, the returned
// duration is the exact time until the next UTC+7 midnight.
func CanAct(status *model.PlayerStatus, now time.Time) (bool, time.Duration) {
	if status.LastActionAt == nil {
		return true, 0
	}

	nowLocal := now.In(resetZone)
	lastLocal := status.LastActionAt.In(resetZone)

	ny, nm, nd := nowLocal.Date()
	ly, lm, ld := lastLocal.Date()

	lastDay := time.Date(ly, lm, ld, 0, 0, 0, 0, resetZone)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, resetZone)
	if lastDay.Before(today) {
		return true, 0
	}

	nextMidnight := time.Date(ny, nm, nd+1, 0, 0, 0, 0, resetZone)
	return false, nextMidnight.Sub(now)
}
