package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/KirkDiggler/holidayhub/internal/services/messaging"
	"github.com/KirkDiggler/holidayhub/internal/services/whiteelephant"
	"github.com/spf13/cobra"
)

// turnChange is a parsed turn argument: an absolute turn or a relative step
type turnChange struct {
	relative bool
	value    int
}

// parseTurn accepts "5", "+1" or "-1"
func parseTurn(arg string) (*turnChange, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, errors.New("turn cannot be empty")
	}

	relative := strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-")
	value, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid turn %q: %w", arg, err)
	}

	return &turnChange{relative: relative, value: value}, nil
}

func newElephantCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "elephant",
		Aliases: []string{"white-elephant"},
		Short:   "Take part in the white elephant exchange",
	}

	// simple wraps commands that act as the local participant and print one line
	simple := func(use, short string, act func(ctx context.Context, a *app, id string) (string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cfg, func(ctx context.Context, a *app) error {
					identity, err := a.identity(ctx)
					if err != nil {
						return err
					}

					line, err := act(ctx, a, identity.ID)
					if err != nil {
						return err
					}

					fmt.Fprintln(cmd.OutOrStdout(), line)
					return nil
				})(cmd.Context())
			},
		}
	}

	cmd.AddCommand(
		newElephantWatchCmd(cfg),
		simple("add-gift", "Put a gift in the pool", func(ctx context.Context, a *app, id string) (string, error) {
			if _, err := a.whiteElephant.AddGift(ctx, &whiteelephant.AddGiftInput{ParticipantID: id}); err != nil {
				return "", err
			}
			return "gift added, wait for the host to hand out numbers", nil
		}),
		simple("claim-host", "Become a white elephant host", func(ctx context.Context, a *app, id string) (string, error) {
			if err := a.whiteElephant.ClaimHost(ctx, &whiteelephant.ClaimHostInput{ParticipantID: id}); err != nil {
				return "", err
			}
			return "you are now a host", nil
		}),
		simple("assign", "Hand out random numbers to every gift", func(ctx context.Context, a *app, id string) (string, error) {
			output, err := a.whiteElephant.AssignNumbers(ctx, &whiteelephant.AssignNumbersInput{ParticipantID: id})
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("assigned %d numbers", len(output.Numbers)), nil
		}),
		simple("timer", "Start the pick countdown", func(ctx context.Context, a *app, id string) (string, error) {
			if _, err := a.whiteElephant.StartTimer(ctx, &whiteelephant.StartTimerInput{ParticipantID: id}); err != nil {
				return "", err
			}
			return fmt.Sprintf("timer started for %s", whiteelephant.TimerDuration), nil
		}),
		simple("reset", "Clear every number, keeping the gifts", func(ctx context.Context, a *app, id string) (string, error) {
			if err := a.whiteElephant.ResetNumbers(ctx, &whiteelephant.ResetNumbersInput{ParticipantID: id}); err != nil {
				return "", err
			}
			return "numbers cleared", nil
		}),
		newElephantTurnCmd(cfg),
		newElephantNukeCmd(cfg),
	)

	return cmd
}

func newElephantWatchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the exchange live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if !a.store.HasSeenTutorial(localstate.TutorialWhiteElephant) {
					fmt.Fprintln(cmd.OutOrStdout(), elephantTutorial)
					_ = a.store.MarkTutorialSeen(localstate.TutorialWhiteElephant)
				}

				return watch(ctx, a, cmd.OutOrStdout(), identity, &watchSpec[*whiteelephant.Raw, *whiteelephant.View]{
					game: notify.GameWhiteElephant,
					load: func(ctx context.Context) (*whiteelephant.Raw, error) {
						return a.whiteElephant.Refresh(ctx, &whiteelephant.RefreshInput{ParticipantID: identity.ID})
					},
					derive: func(raw *whiteelephant.Raw, now time.Time) *whiteelephant.View {
						return whiteelephant.DeriveView(raw, identity.ID, now)
					},
					render: func(w io.Writer, view *whiteelephant.View) {
						renderWhiteElephant(w, view)
						fmt.Fprintln(w, turnMessage(ctx, a.messages, view))
					},
				})
			})(cmd.Context())
		},
	}
}

func newElephantTurnCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "turn <n|+k|-k>",
		Short: "Set or step the current turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			change, err := parseTurn(args[0])
			if err != nil {
				return err
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				var output *whiteelephant.TurnOutput
				if change.relative {
					output, err = a.whiteElephant.AdvanceTurn(ctx, &whiteelephant.AdvanceTurnInput{
						ParticipantID: identity.ID,
						Delta:         change.value,
					})
				} else {
					output, err = a.whiteElephant.SetTurn(ctx, &whiteelephant.SetTurnInput{
						ParticipantID: identity.ID,
						Turn:          change.value,
					})
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "current turn: %d\n", output.State.CurrentTurn)
				return nil
			})(cmd.Context())
		},
	}
}

func newElephantNukeCmd(cfg *Config) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "nuke",
		Short: "Delete every gift entry and send everyone back to the lobby",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("nuke deletes every entry, pass --yes to confirm")
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if err := a.whiteElephant.Nuke(ctx, &whiteelephant.NukeInput{ParticipantID: identity.ID}); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "every entry deleted")
				return nil
			})(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deleting every entry")

	return cmd
}

// turnMessage is the status line under the exchange screen
func turnMessage(ctx context.Context, messages messaging.Service, view *whiteelephant.View) string {
	output, err := messages.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
		Status:      view.Status,
		IsMyTurn:    view.IsMyTurn,
		CurrentTurn: view.CurrentTurn,
		MyNumbers:   view.MyNumbers,
	})
	if err != nil {
		return ""
	}

	if output.Title == "" {
		return output.Message
	}
	return output.Title + " " + output.Message
}

const elephantTutorial = `Welcome to the white elephant exchange!
Add a gift to get in. Once the host hands out numbers, wait for your number to come up.
When it is your turn, open a new gift or steal one that is already open.`
