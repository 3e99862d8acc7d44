package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
)

const (
	// CorrectAnswerPoints is the base award for a correct answer
	CorrectAnswerPoints = 1000

	// PointsPerSecondLeft is the speed bonus per whole second left on the timer
	PointsPerSecondLeft = 10

	// InRoundLeaderboardSize is how many players show between questions
	InRoundLeaderboardSize = 5
)

// SecondsLeft is the whole seconds from now until end, rounded up and never
// negative. A nil end means there is no timer.
func SecondsLeft(end *time.Time, now time.Time) int {
	if end == nil {
		return 0
	}

	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}

	seconds := int(remaining / time.Second)
	if remaining%time.Second != 0 {
		seconds++
	}
	return seconds
}

// TriviaPoints awards 1000 plus 10 per second left for a correct answer
func TriviaPoints(isCorrect bool, timerEndsAt *time.Time, submittedAt time.Time) int {
	if !isCorrect {
		return 0
	}
	return CorrectAnswerPoints + SecondsLeft(timerEndsAt, submittedAt)*PointsPerSecondLeft
}

// IsCorrectAnswer compares answers ignoring case and surrounding whitespace
func IsCorrectAnswer(answer, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correct))
}

// LeaderboardEntry is one participant's running total
type LeaderboardEntry struct {
	UserID      string
	DisplayName string
	Points      int
}

// Leaderboard sums points per user, highest first. Ties keep the order in
// which users first appear in submissions. A limit of zero returns everyone.
func Leaderboard(submissions []*models.TriviaSubmission, names map[string]string, limit int) []*LeaderboardEntry {
	board := make([]*LeaderboardEntry, 0)
	byUser := make(map[string]*LeaderboardEntry)

	for _, submission := range submissions {
		entry, ok := byUser[submission.UserID]
		if !ok {
			entry = &LeaderboardEntry{
				UserID:      submission.UserID,
				DisplayName: names[submission.UserID],
			}
			if entry.DisplayName == "" {
				entry.DisplayName = submission.UserID
			}
			byUser[submission.UserID] = entry
			board = append(board, entry)
		}
		entry.Points += submission.Points
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})

	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}

	return board
}

// AnswerCount is how many players gave one answer
type AnswerCount struct {
	Answer    string
	Count     int
	IsCorrect bool
}

// AnswerStats counts answers to one question. Options come first in their
// listed order, then any free-text answers in first-seen order. Answers are
// grouped ignoring case and surrounding whitespace.
func AnswerStats(question *models.TriviaQuestion, submissions []*models.TriviaSubmission) []*AnswerCount {
	stats := make([]*AnswerCount, 0)
	byAnswer := make(map[string]*AnswerCount)

	add := func(answer string) *AnswerCount {
		key := strings.ToLower(strings.TrimSpace(answer))
		if count, ok := byAnswer[key]; ok {
			return count
		}
		count := &AnswerCount{
			Answer:    strings.TrimSpace(answer),
			IsCorrect: IsCorrectAnswer(answer, question.CorrectAnswer),
		}
		byAnswer[key] = count
		stats = append(stats, count)
		return count
	}

	for _, option := range question.Options {
		add(option)
	}

	for _, submission := range submissions {
		if submission.QuestionID != question.ID {
			continue
		}
		add(submission.Answer).Count++
	}

	return stats
}
