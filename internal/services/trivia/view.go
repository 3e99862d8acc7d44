package trivia

import (
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
)

// DeriveView rebuilds a participant's view from raw rows. It is called the
// same way on first load and after every change, and never merges deltas.
func DeriveView(raw *Raw, viewerID string, now time.Time) *View {
	view := &View{}
	if raw == nil {
		view.State.Status = models.TriviaStatusLobby
		return view
	}

	if raw.State != nil {
		view.State = *raw.State
	}
	if view.State.Status == "" {
		view.State.Status = models.TriviaStatusLobby
	}
	view.IsHost = viewerID != "" && view.State.HostID == viewerID

	ordered := sortQuestions(raw.Questions)
	view.QuestionCount = len(ordered)
	for i, question := range ordered {
		if question.ID == view.State.CurrentQuestionID && view.State.CurrentQuestionID != 0 {
			view.CurrentQuestion = question
			view.QuestionNumber = i + 1
			break
		}
	}

	if view.State.Status.IsActive() {
		view.SecondsLeft = scoring.SecondsLeft(view.State.TimerEndsAt, now)
	}

	for _, submission := range raw.Submissions {
		if submission.UserID != viewerID {
			continue
		}
		view.MyTotalScore += submission.Points
		if view.CurrentQuestion != nil && submission.QuestionID == view.CurrentQuestion.ID {
			view.MySubmission = submission
		}
	}

	status := view.State.Status
	if view.CurrentQuestion != nil && (status.IsRevealed() || status.IsBonusIntro()) {
		view.AnswerStats = scoring.AnswerStats(view.CurrentQuestion, raw.Submissions)
	}

	names := make(map[string]string, len(raw.Participants))
	for _, participant := range raw.Participants {
		names[participant.ID] = participant.DisplayName
	}

	switch {
	case status.IsRevealed() || status.IsBonusIntro():
		view.Leaderboard = scoring.Leaderboard(raw.Submissions, names, scoring.InRoundLeaderboardSize)
	case status.IsEnded():
		view.Leaderboard = scoring.Leaderboard(raw.Submissions, names, 0)
	}

	return view
}
