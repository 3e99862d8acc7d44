// Package scoring holds the pure computations every client runs over raw
// rows: contest rankings, trivia points and leaderboards. Nothing here
// touches the store, so deriving twice from the same rows gives the same
// result.
package scoring

import (
	"sort"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

// DefaultConfidence is the prior weight M in the Bayesian average
const DefaultConfidence = 2.0

// SortKey picks the order of a ranking
type SortKey string

const (
	// SortByTotalStars orders by descending sum of ratings
	SortByTotalStars SortKey = "total_stars"

	// SortByWeightedScore orders by descending Bayesian score
	SortByWeightedScore SortKey = "weighted_score"

	// SortByEntryID orders by ascending entry ID, hiding relative standing
	SortByEntryID SortKey = "entry_id"
)

// IsValid reports whether the sort key is known
func (k SortKey) IsValid() bool {
	return k == SortByTotalStars || k == SortByWeightedScore || k == SortByEntryID
}

// RankOptions tunes RankContest; a nil value means M=2 sorted by entry ID
type RankOptions struct {
	// Confidence is M; zero means DefaultConfidence
	Confidence float64

	SortKey SortKey
}

// EntryScore is the derived tally of one entry
type EntryScore struct {
	Entry *models.ContestEntry

	VoteCount     int
	TotalStars    int
	AvgRating     float64
	WeightedScore float64
	RanOutCount   int

	// FiveStarPct is the fraction of rated votes that gave five stars
	FiveStarPct float64
}

// Ranking is the derived standing of one contest
type Ranking struct {
	GlobalAvg float64
	Entries   []*EntryScore
}

// RankContest tallies votes per entry. Entries should all belong to one
// contest type; votes for entries not in the list are ignored, including for
// the global average. Ran-out votes are counted separately and never affect
// averages.
func RankContest(entries []*models.ContestEntry, votes []*models.Vote, opts *RankOptions) *Ranking {
	confidence := DefaultConfidence
	sortKey := SortByEntryID
	if opts != nil {
		if opts.Confidence > 0 {
			confidence = opts.Confidence
		}
		if opts.SortKey.IsValid() {
			sortKey = opts.SortKey
		}
	}

	scores := make([]*EntryScore, 0, len(entries))
	byID := make(map[int64]*EntryScore, len(entries))
	for _, entry := range entries {
		score := &EntryScore{Entry: entry}
		scores = append(scores, score)
		byID[entry.ID] = score
	}

	globalSum, globalCount := 0, 0
	fiveStars := make(map[int64]int, len(entries))
	for _, vote := range votes {
		score, ok := byID[vote.EntryID]
		if !ok {
			continue
		}

		if !vote.IsRated() {
			score.RanOutCount++
			continue
		}

		rating := vote.RatingValue()
		score.VoteCount++
		score.TotalStars += rating
		globalSum += rating
		globalCount++
		if rating == 5 {
			fiveStars[vote.EntryID]++
		}
	}

	globalAvg := 0.0
	if globalCount > 0 {
		globalAvg = float64(globalSum) / float64(globalCount)
	}

	for _, score := range scores {
		if score.VoteCount == 0 {
			continue
		}
		n := float64(score.VoteCount)
		score.AvgRating = float64(score.TotalStars) / n
		score.WeightedScore = WeightedScore(score.VoteCount, score.AvgRating, globalAvg, confidence)
		score.FiveStarPct = float64(fiveStars[score.Entry.ID]) / n
	}

	sortScores(scores, sortKey)

	return &Ranking{
		GlobalAvg: globalAvg,
		Entries:   scores,
	}
}

// WeightedScore is the Bayesian average of an entry's ratings pulled toward
// globalAvg with weight m. It is zero when there are no votes.
func WeightedScore(voteCount int, avgRating, globalAvg, m float64) float64 {
	if voteCount <= 0 {
		return 0
	}
	n := float64(voteCount)
	return (n/(n+m))*avgRating + (m/(n+m))*globalAvg
}

func sortScores(scores []*EntryScore, key SortKey) {
	// Stable so equal totals keep ascending ID order
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Entry.ID < scores[j].Entry.ID
	})

	switch key {
	case SortByTotalStars:
		sort.SliceStable(scores, func(i, j int) bool {
			return scores[i].TotalStars > scores[j].TotalStars
		})
	case SortByWeightedScore:
		sort.SliceStable(scores, func(i, j int) bool {
			return scores[i].WeightedScore > scores[j].WeightedScore
		})
	}
}
