package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/services/contest"
	"github.com/KirkDiggler/holidayhub/internal/services/trivia"
	"github.com/KirkDiggler/holidayhub/internal/services/whiteelephant"
)

// stars5 draws a 0..5 rating
func stars5(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func renderTrivia(w io.Writer, view *trivia.View) {
	host := ""
	if view.IsHost {
		host = " (you are the host)"
	}
	fmt.Fprintf(w, "TRIVIA  %s%s  score %d\n\n", view.State.Status, host, view.MyTotalScore)

	switch {
	case view.State.Status.IsLobby():
		if view.State.HasHost() {
			fmt.Fprintln(w, "Waiting for the host to start...")
		} else {
			fmt.Fprintln(w, "Nobody is hosting yet. Run `holidayhub trivia claim-host` to host.")
		}

	case view.State.Status.IsBonusIntro():
		fmt.Fprintln(w, "BONUS ROUND coming up!")

	case view.State.Status.IsEnded():
		fmt.Fprintln(w, "Game over! Final standings:")

	case view.CurrentQuestion != nil:
		fmt.Fprintf(w, "Question %d of %d", view.QuestionNumber, view.QuestionCount)
		if view.CurrentQuestion.IsBonus {
			fmt.Fprint(w, " (bonus)")
		}
		if view.State.Status.IsActive() {
			fmt.Fprintf(w, "  %ds left", view.SecondsLeft)
		}
		fmt.Fprintf(w, "\n%s\n", view.CurrentQuestion.Text)
		for i, option := range view.CurrentQuestion.Options {
			fmt.Fprintf(w, "  %c) %s\n", 'a'+i, option)
		}

		if view.MySubmission != nil {
			fmt.Fprintf(w, "\nYour answer: %s\n", view.MySubmission.Answer)
		}

		if view.State.Status.IsRevealed() {
			fmt.Fprintf(w, "\nAnswer: %s\n", view.CurrentQuestion.CorrectAnswer)
			for _, stat := range view.AnswerStats {
				mark := " "
				if stat.IsCorrect {
					mark = "*"
				}
				fmt.Fprintf(w, " %s %-20s %d\n", mark, stat.Answer, stat.Count)
			}
		}
	}

	if len(view.Leaderboard) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, entry := range view.Leaderboard {
			fmt.Fprintf(tw, "%d.\t%s\t%d\n", i+1, entry.DisplayName, entry.Points)
		}
		tw.Flush()
	}
}

func renderWhiteElephant(w io.Writer, view *whiteelephant.View) {
	role := ""
	if view.IsHost {
		role = " (host)"
	}
	fmt.Fprintf(w, "WHITE ELEPHANT%s  %d gifts\n\n", role, view.EntryCount)

	if view.Started {
		turn := fmt.Sprintf("Turn %d", view.CurrentTurn)
		if view.InRange {
			turn += fmt.Sprintf(" of %d", view.EntryCount)
		}
		fmt.Fprintln(w, turn)
	}

	if view.SecondsLeft > 0 {
		fmt.Fprintf(w, "Pick in %ds\n", view.SecondsLeft)
	}

	if len(view.MyNumbers) > 0 {
		numbers := make([]string, len(view.MyNumbers))
		for i, number := range view.MyNumbers {
			numbers[i] = fmt.Sprintf("#%d", number)
		}
		fmt.Fprintf(w, "Your numbers: %s\n", strings.Join(numbers, ", "))
	}

	if !view.HasHost {
		fmt.Fprintln(w, "No host yet.")
	}
}

func renderContest(w io.Writer, view *contest.View) {
	fmt.Fprintf(w, "%s CONTEST", strings.ToUpper(string(view.ContestType)))
	if view.Admin {
		fmt.Fprintf(w, "  global avg %.2f", view.GlobalAvg)
	}
	fmt.Fprint(w, "\n\n")

	if len(view.Entries) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range view.Entries {
		mine := "not rated"
		switch {
		case row.MyStatus == models.VoteStatusRanOut:
			mine = "ran out"
		case row.MyRating != nil:
			mine = stars5(*row.MyRating)
		}

		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s", row.Entry.ID, row.Entry.Title, row.RepresentedName, mine)
		if row.Score != nil {
			fmt.Fprintf(tw, "\t%d stars\t%.2f\t%d votes\t%d ran out",
				row.Score.TotalStars, row.Score.WeightedScore, row.Score.VoteCount, row.Score.RanOutCount)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
