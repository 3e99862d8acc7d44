package contest

import (
	"time"

	"github.com/KirkDiggler/holidayhub/internal/livesync"
	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
)

// DeriveView ranks the entries of one contest and attaches the viewer's own
// vote. Scores are only exposed to admins.
func DeriveView(raw *Raw, viewerID string, opts ViewOptions, now time.Time) *View {
	view := &View{
		ContestType: opts.ContestType,
		Admin:       opts.Admin,
		Entries:     []*EntryView{},
	}
	if raw == nil {
		return view
	}

	entries := raw.Entries
	if opts.ContestType != "" {
		entries = make([]*models.ContestEntry, 0, len(raw.Entries))
		for _, entry := range raw.Entries {
			if entry.ContestType == opts.ContestType {
				entries = append(entries, entry)
			}
		}
	}

	sortKey := opts.SortKey
	if !sortKey.IsValid() {
		sortKey = scoring.SortByEntryID
		if opts.Admin {
			sortKey = scoring.SortByTotalStars
		}
	}

	ranking := scoring.RankContest(entries, raw.Votes, &scoring.RankOptions{
		Confidence: opts.Confidence,
		SortKey:    sortKey,
	})
	if opts.Admin {
		view.GlobalAvg = ranking.GlobalAvg
	}

	names := make(map[string]string, len(raw.Participants))
	for _, participant := range raw.Participants {
		names[participant.ID] = participant.DisplayName
	}

	mine := make(map[int64]*models.Vote)
	for _, vote := range raw.Votes {
		if viewerID != "" && vote.VoterID == viewerID {
			mine[vote.EntryID] = vote
		}
	}

	for _, score := range ranking.Entries {
		entryView := &EntryView{
			Entry:           score.Entry,
			RepresentedName: names[score.Entry.RepresentedParticipantID],
		}
		if opts.Admin {
			entryView.Score = score
		}

		var confirmed *models.Vote
		if vote, ok := mine[score.Entry.ID]; ok {
			confirmed = vote
		}
		if vote, ok := livesync.Reconcile(raw.Pending[score.Entry.ID], confirmed, now, voteCoversPending); ok {
			entryView.MyStatus = vote.Status
			if vote.Rating != nil {
				rating := *vote.Rating
				entryView.MyRating = &rating
			}
		}

		view.Entries = append(view.Entries, entryView)
	}

	return view
}

// voteCoversPending is true when the stored vote is at least as new as the
// local write
func voteCoversPending(confirmed, pending models.Vote) bool {
	return !confirmed.UpdatedAt.Before(pending.UpdatedAt)
}
