package threat

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoActiveBoss is returned when no boss row is configured.
var ErrNoActiveBoss = errors.New("no active world threat boss")

// ErrBossConflict is returned by BossStore.Update when the boss row changed
// since it was loaded (optimistic version mismatch). The service retries the
// whole action from a fresh load; callers only see this after the retry
// budget is exhausted.
var ErrBossConflict = errors.New("boss state changed concurrently")

// CooldownError reports that the player already acted today. Not a fault:
// it carries the exact time until the next UTC+7 midnight.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("action on cooldown, resets in %ds", int64(e.Remaining/time.Second))
}

// SecondsUntilReset returns the whole seconds until the daily reset.
func (e *CooldownError) SecondsUntilReset() int64 {
	return int64(e.Remaining / time.Second)
}

// TeamSizeError reports a fight submitted with the wrong number of members.
type TeamSizeError struct {
	Size int
}

func (e *TeamSizeError) Error() string {
	return fmt.Sprintf("team has %d characters, want exactly 6", e.Size)
}

// UnknownCharacterError reports a team member id missing from the catalog.
type UnknownCharacterError struct {
	CharacterID int64
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("character %d not found", e.CharacterID)
}

// CursedTeamError reports team members forbidden by the current boss curses.
// The boss may have evolved since the client assembled its team, so the
// names refer to the curse set loaded at fight time.
type CursedTeamError struct {
	Names []string
}

func (e *CursedTeamError) Error() string {
	return fmt.Sprintf("boss evolved, these characters are now cursed: %s", strings.Join(e.Names, ", "))
}
