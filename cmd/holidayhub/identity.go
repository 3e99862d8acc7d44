package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/holidayhub/internal/services/messaging"
	"github.com/KirkDiggler/holidayhub/internal/services/registry"
	"github.com/spf13/cobra"
)

func newJoinCmd(cfg *Config) *cobra.Command {
	var realName string

	cmd := &cobra.Command{
		Use:   "join <display name>",
		Short: "Join the party on this device",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				output, err := a.registry.Join(ctx, &registry.JoinInput{
					DisplayName: strings.Join(args, " "),
					RealName:    realName,
				})
				if err != nil {
					return err
				}

				welcome, err := a.messages.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
					DisplayName: output.Participant.DisplayName,
				})
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), welcome.Message)
				fmt.Fprintf(cmd.OutOrStdout(), "participant id: %s\n", output.Participant.ID)
				return nil
			})(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&realName, "real-name", "", "real name, defaults to the display name")

	return cmd
}

func newWhoamiCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who this device joined as",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				output, err := a.registry.Verify(ctx, &registry.VerifyInput{})
				if err != nil {
					return err
				}

				switch {
				case output.Identity != nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", output.Identity.DisplayName, output.Identity.ID)
				case output.Dropped:
					fmt.Fprintln(cmd.OutOrStdout(), "your previous identity no longer exists; join again")
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "not joined")
				}
				return nil
			})(cmd.Context())
		},
	}
}

func newSignOutCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the identity stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfg, func(ctx context.Context, a *app) error {
				if err := a.registry.SignOut(ctx, &registry.SignOutInput{}); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "signed out")
				return nil
			})(cmd.Context())
		},
	}
}
