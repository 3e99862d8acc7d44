package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is every setting shared by the subcommands
type Config struct {
	redisAddr     string
	redisPassword string
	redisDB       int
	stateFile     string
	photoBaseURL  string
	roundDuration time.Duration
	verbose       bool
}

func (c *Config) validate() error {
	if c.redisAddr == "" {
		return errors.New("--redis-addr cannot be empty")
	}
	if c.redisDB < 0 {
		return fmt.Errorf("invalid redis db: %d", c.redisDB)
	}
	if c.roundDuration <= 0 {
		return fmt.Errorf("invalid round duration: %s", c.roundDuration)
	}
	return nil
}

func newRootCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HOLIDAYHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "holidayhub",
		Short:   "Trivia, white elephant and contest voting for the holiday party.",
		Version: releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return cfg.validate()
		},
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: HOLIDAYHUB_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: HOLIDAYHUB_REDIS_PASSWORD)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: HOLIDAYHUB_REDIS_DB)")
	fs.StringVar(&cfg.stateFile, "state-file", "", "path to the local state file (env: HOLIDAYHUB_STATE_FILE)")
	fs.StringVar(&cfg.photoBaseURL, "photo-base-url", "http://localhost:8080/photos", "public base URL of contest photos (env: HOLIDAYHUB_PHOTO_BASE_URL)")
	fs.DurationVar(&cfg.roundDuration, "round-duration", 20*time.Second, "default trivia question duration (env: HOLIDAYHUB_ROUND_DURATION)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display debug logging (env: HOLIDAYHUB_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(
		newServeCmd(cfg),
		newJoinCmd(cfg),
		newWhoamiCmd(cfg),
		newSignOutCmd(cfg),
		newTriviaCmd(cfg),
		newElephantCmd(cfg),
		newContestCmd(cfg),
	)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("holidayhub v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
