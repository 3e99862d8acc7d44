package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/KirkDiggler/holidayhub/internal/services/messaging"
	"github.com/KirkDiggler/holidayhub/internal/services/trivia"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// questionFile is the YAML layout accepted by load-questions
type questionFile struct {
	Questions []struct {
		ID            int64    `yaml:"id"`
		Text          string   `yaml:"text"`
		Options       []string `yaml:"options"`
		CorrectAnswer string   `yaml:"correct_answer"`
		Bonus         bool     `yaml:"bonus"`
	} `yaml:"questions"`
}

func parseQuestions(data []byte) ([]*models.TriviaQuestion, error) {
	var file questionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse questions: %w", err)
	}

	questions := make([]*models.TriviaQuestion, 0, len(file.Questions))
	for i, q := range file.Questions {
		id := q.ID
		if id == 0 {
			id = int64(i + 1)
		}
		questions = append(questions, &models.TriviaQuestion{
			ID:            id,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			IsBonus:       q.Bonus,
		})
	}

	return questions, nil
}

func newTriviaCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trivia",
		Short: "Play or host trivia",
	}

	// hostAction wraps the commands that only change the game state
	hostAction := func(use, short string, withDuration bool, act func(ctx context.Context, a *app, id string, d time.Duration) (*trivia.StateOutput, error)) *cobra.Command {
		var duration time.Duration

		sub := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cfg, func(ctx context.Context, a *app) error {
					identity, err := a.identity(ctx)
					if err != nil {
						return err
					}

					output, err := act(ctx, a, identity.ID, duration)
					if err != nil {
						return err
					}

					fmt.Fprintf(cmd.OutOrStdout(), "trivia is now %s\n", output.State.Status)
					return nil
				})(cmd.Context())
			},
		}
		if withDuration {
			sub.Flags().DurationVarP(&duration, "duration", "d", 0, "question duration, defaults to --round-duration")
		}
		return sub
	}

	cmd.AddCommand(
		newTriviaWatchCmd(cfg),
		hostAction("claim-host", "Become the trivia host", false, func(ctx context.Context, a *app, id string, _ time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.ClaimHost(ctx, &trivia.ClaimHostInput{ParticipantID: id})
		}),
		hostAction("start", "Open the first question", true, func(ctx context.Context, a *app, id string, d time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.StartGame(ctx, &trivia.StartGameInput{ParticipantID: id, Duration: d})
		}),
		hostAction("reveal", "Close the question and show the answer", false, func(ctx context.Context, a *app, id string, _ time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.Reveal(ctx, &trivia.RevealInput{ParticipantID: id})
		}),
		hostAction("next", "Move on to the next question", true, func(ctx context.Context, a *app, id string, d time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.NextQuestion(ctx, &trivia.NextQuestionInput{ParticipantID: id, Duration: d})
		}),
		hostAction("bonus", "Start the bonus round", true, func(ctx context.Context, a *app, id string, d time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.StartBonus(ctx, &trivia.StartBonusInput{ParticipantID: id, Duration: d})
		}),
		hostAction("reset", "Go back to the lobby keeping scores", false, func(ctx context.Context, a *app, id string, _ time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.ResetGame(ctx, &trivia.ResetGameInput{ParticipantID: id})
		}),
		hostAction("force-reset", "Go back to the lobby and release the host", false, func(ctx context.Context, a *app, id string, _ time.Duration) (*trivia.StateOutput, error) {
			return a.trivia.ForceReset(ctx, &trivia.ForceResetInput{ParticipantID: id})
		}),
		newTriviaAnswerCmd(cfg),
		newTriviaLoadQuestionsCmd(cfg),
	)

	return cmd
}

func newTriviaWatchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the trivia game live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if !a.store.HasSeenTutorial(localstate.TutorialTrivia) {
					fmt.Fprintln(cmd.OutOrStdout(), triviaTutorial)
					_ = a.store.MarkTutorialSeen(localstate.TutorialTrivia)
				}

				return watch(ctx, a, cmd.OutOrStdout(), identity, &watchSpec[*trivia.Raw, *trivia.View]{
					game: notify.GameTrivia,
					load: a.trivia.Load,
					derive: func(raw *trivia.Raw, now time.Time) *trivia.View {
						return trivia.DeriveView(raw, identity.ID, now)
					},
					render: func(w io.Writer, view *trivia.View) {
						renderTrivia(w, view)
						if view.State.Status.IsRevealed() {
							fmt.Fprintln(w, answerResult(ctx, a.messages, view))
						}
					},
				})
			})(cmd.Context())
		},
	}
}

func newTriviaAnswerCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "answer <answer>",
		Short: "Answer the open question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				raw, err := a.trivia.Load(ctx)
				if err != nil {
					return err
				}

				output, err := a.trivia.SubmitAnswer(ctx, &trivia.SubmitAnswerInput{
					ParticipantID: identity.ID,
					Answer:        strings.Join(args, " "),
					View:          trivia.DeriveView(raw, identity.ID, time.Now()),
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "answer locked in: %s\n", output.Submission.Answer)
				return nil
			})(cmd.Context())
		},
	}
}

func newTriviaLoadQuestionsCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "load-questions <file.yaml>",
		Short: "Replace the question set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read questions: %w", err)
			}

			questions, err := parseQuestions(data)
			if err != nil {
				return err
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				if err := a.trivia.ImportQuestions(ctx, &trivia.ImportQuestionsInput{Questions: questions}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "loaded %d questions\n", len(questions))
				return nil
			})(cmd.Context())
		},
	}
}

// answerResult is the reveal line for the viewer's own answer
func answerResult(ctx context.Context, messages messaging.Service, view *trivia.View) string {
	input := &messaging.GetAnswerResultMessageInput{}
	if view.MySubmission != nil {
		input.Answered = true
		input.IsCorrect = view.MySubmission.IsCorrect
		input.Points = view.MySubmission.Points
	}

	output, err := messages.GetAnswerResultMessage(ctx, input)
	if err != nil {
		return ""
	}
	return output.Message
}

const triviaTutorial = `Welcome to trivia!
Answer fast: a correct answer is worth 1000 points plus 10 for every second left.
The host reveals each answer and moves the game along.`
