// Package commands implements the CLI commands for skillkit.
package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/flags"
	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/review"
	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands/skill"
	"github.com/skillkit-dev/skillkit/internal/config"
	"github.com/skillkit-dev/skillkit/internal/errors"
	"github.com/skillkit-dev/skillkit/internal/logging"
)

// version is set at build time via ldflags. Default to a development
// version for local builds.
var version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// skillsDirFlag holds the value of the --skills-dir flag.
var skillsDirFlag string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&skillsDirFlag, "skills-dir", "",
		"skill corpus directory (default: skills_dir from config, else ./skills)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("skillkit version {{.Version}}\n")

	// Silence errors and usage so Execute controls error output.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(skill.Cmd)
	rootCmd.AddCommand(review.Cmd)
}

func initConfig() {
	config.Init()
	_, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "skillkit",
	Short: "Toolkit for maintaining an agent-skill corpus",
	Long: `skillkit maintains a corpus of agent skills: directories of SKILL.md
instruction bundles with YAML frontmatter that AI coding assistants load on
demand.

Beyond corpus management (list, validate, scaffold, install), skillkit ships
the two utilities the corpus depends on: fetching the unresolved bot review
comments of a pull request as JSON, and generating ES256 JWK key pairs.

All diagnostics go to stderr; stdout carries only machine-readable payloads.`,
	Example: `  # List skills in the corpus
  skillkit skill list

  # Validate a skill bundle
  skillkit skill validate ./skills/pr-triage

  # Fetch unresolved CodeRabbit comments for the current branch's PR
  skillkit review fetch

  # Check environment health
  skillkit doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		flags.SetSkillsDir(skillsDirFlag)
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("SKILLKIT_DEBUG"); ok && (val == "1" || val == "true") {
				v = 2
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command and maps the result to a process exit
// code. Errors and suggestions are printed to stderr; stdout is reserved
// for command payloads.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if stderrors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", exitErr.Suggestion)
	}

	return errors.CodeFor(err)
}
