package whiteelephant

import (
	"sort"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
)

// DeriveView rebuilds a participant's view from raw rows. Ghost numbers are
// treated as no number everywhere.
func DeriveView(raw *Raw, viewerID string, now time.Time) *View {
	view := &View{
		Status:      StatusGuestLobby,
		CurrentTurn: 1,
		MyEntries:   []*models.GiftExchangeEntry{},
		MyNumbers:   []int{},
	}
	if raw == nil {
		return view
	}

	if raw.State != nil {
		view.CurrentTurn = raw.State.CurrentTurn
		view.SecondsLeft = scoring.SecondsLeft(raw.State.TimerEndsAt, now)
	}

	view.EntryCount = len(raw.Entries)
	for _, entry := range raw.Entries {
		if entry.IsHost {
			view.HasHost = true
		}
		if entry.HasNumber() {
			view.Started = true
		}
		if entry.UserID != viewerID || viewerID == "" {
			continue
		}

		view.MyEntries = append(view.MyEntries, entry)
		if entry.IsHost {
			view.IsHost = true
		}
		if entry.HasNumber() {
			view.MyNumbers = append(view.MyNumbers, *entry.Number)
		}
	}
	sort.Ints(view.MyNumbers)

	switch {
	case len(view.MyNumbers) > 0:
		view.Status = StatusGuestAssigned
	case len(view.MyEntries) > 0:
		view.Status = StatusGuestWaiting
	case view.Started:
		view.Status = StatusSpectator
	default:
		view.Status = StatusGuestLobby
	}

	view.InRange = view.CurrentTurn >= 1 && view.CurrentTurn <= view.EntryCount
	for _, number := range view.MyNumbers {
		if number == view.CurrentTurn {
			view.IsMyTurn = true
		}
	}

	return view
}
