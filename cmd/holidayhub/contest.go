package main

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/holidayhub/internal/models"
	"github.com/KirkDiggler/holidayhub/internal/notify"
	"github.com/KirkDiggler/holidayhub/internal/services/contest"
	"github.com/KirkDiggler/holidayhub/internal/services/localstate"
	"github.com/KirkDiggler/holidayhub/internal/services/scoring"
	"github.com/spf13/cobra"
)

func parseContestType(value string) (models.ContestType, error) {
	contestType := models.ContestType(strings.ToLower(strings.TrimSpace(value)))
	if !contestType.IsValid() {
		return "", fmt.Errorf("unknown contest %q, use %s or %s", value, models.ContestTypeCheese, models.ContestTypeSweater)
	}
	return contestType, nil
}

func parseEntryID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(value, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry %q", value)
	}
	return id, nil
}

func newContestCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contest",
		Short: "Enter and judge the cheese and sweater contests",
	}

	cmd.AddCommand(
		newContestWatchCmd(cfg),
		newContestSubmitCmd(cfg),
		newContestRateCmd(cfg),
		newContestRanOutCmd(cfg),
	)

	return cmd
}

func newContestWatchCmd(cfg *Config) *cobra.Command {
	var (
		typeFlag string
		admin    bool
		sortFlag string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow a contest live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contestType, err := parseContestType(typeFlag)
			if err != nil {
				return err
			}

			sortKey := scoring.SortKey(sortFlag)
			if sortFlag != "" && !sortKey.IsValid() {
				return fmt.Errorf("unknown sort %q", sortFlag)
			}

			opts := contest.ViewOptions{
				Admin:       admin,
				ContestType: contestType,
				SortKey:     sortKey,
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if !a.store.HasSeenTutorial(localstate.TutorialContest) {
					fmt.Fprintln(cmd.OutOrStdout(), contestTutorial)
					_ = a.store.MarkTutorialSeen(localstate.TutorialContest)
				}

				return watch(ctx, a, cmd.OutOrStdout(), identity, &watchSpec[*contest.Raw, *contest.View]{
					game: notify.GameContest,
					load: func(ctx context.Context) (*contest.Raw, error) {
						return a.contest.Load(ctx, &contest.LoadInput{ContestType: contestType})
					},
					derive: func(raw *contest.Raw, now time.Time) *contest.View {
						return contest.DeriveView(raw, identity.ID, opts, now)
					},
					render: func(w io.Writer, view *contest.View) {
						renderContest(w, view)
					},
				})
			})(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(models.ContestTypeCheese), "contest to show: cheese or sweater")
	cmd.Flags().BoolVar(&admin, "admin", false, "show scores and standings")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "total_stars, weighted_score or entry_id")

	return cmd
}

func newContestSubmitCmd(cfg *Config) *cobra.Command {
	var (
		typeFlag    string
		title       string
		photoPath   string
		forName     string
		description string
		allergens   []string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Enter a contest with a photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contestType, err := parseContestType(typeFlag)
			if err != nil {
				return err
			}

			var image []byte
			ext := ""
			if photoPath != "" {
				image, err = os.ReadFile(photoPath)
				if err != nil {
					return fmt.Errorf("failed to read photo: %w", err)
				}
				ext = strings.TrimPrefix(strings.ToLower(filepath.Ext(photoPath)), ".")
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				represented, err := a.findParticipant(ctx, forName)
				if err != nil {
					return err
				}

				output, err := a.contest.SubmitEntry(ctx, &contest.SubmitEntryInput{
					ParticipantID:            identity.ID,
					ContestType:              contestType,
					Title:                    title,
					RepresentedParticipantID: represented,
					Description:              description,
					AllergenFlags:            allergens,
					Image:                    image,
					ImageExtension:           ext,
					ImageContentType:         mime.TypeByExtension("." + ext),
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "entry #%d submitted: %s\n", output.Entry.ID, output.Entry.ImageURL)
				return nil
			})(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(models.ContestTypeCheese), "contest to enter: cheese or sweater")
	cmd.Flags().StringVar(&title, "title", "", "entry title")
	cmd.Flags().StringVar(&photoPath, "photo", "", "path to the entry photo")
	cmd.Flags().StringVar(&forName, "for", "", "display name of the participant the entry is for")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringSliceVar(&allergens, "allergen", nil, "allergen flag, repeatable")

	return cmd
}

func newContestRateCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <entry> <stars>",
		Short: "Rate an entry from 0 to 5 stars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			stars, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q", args[1])
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if _, err := a.contest.Rate(ctx, &contest.RateInput{
					ParticipantID: identity.ID,
					EntryID:       entryID,
					Rating:        stars,
				}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "rated #%d %s\n", entryID, stars5(stars))
				return nil
			})(cmd.Context())
		},
	}
}

func newContestRanOutCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ran-out <entry>",
		Short: "Mark an entry as gone before you tried it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			return withApp(cfg, func(ctx context.Context, a *app) error {
				identity, err := a.identity(ctx)
				if err != nil {
					return err
				}

				if _, err := a.contest.Rate(ctx, &contest.RateInput{
					ParticipantID: identity.ID,
					EntryID:       entryID,
					RanOut:        true,
				}); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "marked #%d as ran out\n", entryID)
				return nil
			})(cmd.Context())
		},
	}
}

const contestTutorial = `Welcome to the contests!
Rate every entry from 0 to 5 stars. If it was gone before you got there, mark it ran out instead.
Standings stay hidden until the judges reveal them.`
