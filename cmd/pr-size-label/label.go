// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iahmedsabry/pr-size-label/internal/config"
	labelerrors "github.com/iahmedsabry/pr-size-label/internal/errors"
	"github.com/iahmedsabry/pr-size-label/internal/event"
	"github.com/iahmedsabry/pr-size-label/internal/github"
	"github.com/iahmedsabry/pr-size-label/internal/ignore"
	"github.com/iahmedsabry/pr-size-label/internal/logging"
	"github.com/iahmedsabry/pr-size-label/internal/output"
	"github.com/iahmedsabry/pr-size-label/internal/size"
	"github.com/iahmedsabry/pr-size-label/internal/tally"
	"github.com/iahmedsabry/pr-size-label/internal/version"
)

// labelOptions carries the flag values of a single invocation.
type labelOptions struct {
	token      string
	eventPath  string
	apiURL     string
	configPath string
	dryRun     bool
	debug      bool
}

// newRootCommand builds the root command. The tool runs bare inside a
// workflow step, so everything hangs off the root instead of subcommands.
func newRootCommand() *cobra.Command {
	var opts labelOptions

	cmd := &cobra.Command{
		Use:   "pr-size-label",
		Short: "Label pull requests by the size of their diff",
		Long: `pr-size-label reads the pull_request event payload provided by the GitHub
Actions runtime, sums the changed lines across the pull request's files,
and applies the matching size/<name> label.

Files can be excluded from the count with glob patterns, and the size
thresholds can be replaced wholesale. Both are read from the IGNORED and
INPUT_SIZES environment variables, or from a configuration file.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabel(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub token (overrides the GITHUB_TOKEN environment variable)")
	cmd.Flags().StringVar(&opts.eventPath, "event", "", "Path to the webhook event payload (overrides GITHUB_EVENT_PATH)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (overrides GITHUB_API_URL)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a configuration file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Resolve the label but do not apply it")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging (same as setting DEBUG_ACTION)")

	return cmd
}

// runLabel executes the root command: it validates the environment, reads
// the event payload, and runs the labeling pipeline unless the event action
// asks for nothing.
func runLabel(ctx context.Context, opts labelOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.apiURL != "" {
		cfg.GitHub.APIEndpoint = opts.apiURL
	}
	if opts.debug {
		cfg.Debug = true
	}

	logger := logging.New(os.Stderr, cfg.Debug)

	token := getToken(opts.token, cfg.GitHub.TokenEnv)
	if token == "" {
		return fmt.Errorf("%w: %s is not set. Please provide a valid token via --token flag or %s environment variable",
			labelerrors.ErrMissingEnv, cfg.GitHub.TokenEnv, cfg.GitHub.TokenEnv)
	}

	eventPath := getEventPath(opts.eventPath)
	if eventPath == "" {
		return fmt.Errorf("%w: GITHUB_EVENT_PATH is not set. Please provide the event payload via --event flag or GITHUB_EVENT_PATH environment variable",
			labelerrors.ErrMissingEnv)
	}

	evt, err := event.ReadFile(eventPath)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("action", displayAction(evt.Action)).
		Str("event_path", eventPath).
		Msg("event payload loaded")

	if !evt.ShouldLabel() {
		fmt.Printf("Action will be ignored: %s\n", displayAction(evt.Action))
		return nil
	}

	client := github.NewRESTClient(token, cfg.GitHub.APIEndpoint)

	return labelPullRequest(ctx, client, cfg, evt, opts.dryRun, logger)
}

// labelPullRequest runs the labeling pipeline for the pull request named by
// the event: count the changed lines, resolve the matching size label, and
// apply it.
func labelPullRequest(ctx context.Context, client github.Client, cfg *config.Config, evt *event.Event, dryRun bool, logger zerolog.Logger) error {
	owner, repo, number, err := evt.Ref()
	if err != nil {
		return err
	}

	matcher := ignore.NewMatcher(cfg.Ignore)
	table, err := sizeTable(cfg)
	if err != nil {
		return err
	}

	tracker := tally.New()

	changed, err := countChangedLines(ctx, client, matcher, tracker, logger, owner, repo, number)
	if err != nil {
		return err
	}
	fmt.Printf("Changed lines: %d\n", changed)

	label, skipped, ok := table.Resolve(changed)
	for _, key := range skipped {
		logger.Debug().Str("threshold", key).Msg("ignoring non-integer size threshold")
	}
	if !ok {
		return fmt.Errorf("%w: no threshold at or below %d changed lines", labelerrors.ErrNoSizeLabel, changed)
	}
	fmt.Printf("Matching label: %s\n", label)

	if dryRun {
		logger.Debug().Str("label", label).Msg("dry run, leaving the pull request untouched")
	} else {
		if err := client.AddLabels(ctx, owner, repo, number, []string{label}); err != nil {
			return err
		}
		fmt.Printf("Added label: %s\n", label)
	}

	publishOutputs(label, changed, logger)

	if cfg.Debug {
		summary := tracker.Summarize(version.Version, tally.Target{Owner: owner, Repository: repo, Number: number}, label, dryRun)
		if err := tally.WriteSummary(summary, os.Stderr); err != nil {
			logger.Warn().Err(err).Msg("failed to write run summary")
		}
	}

	return nil
}

// countChangedLines walks every page of the pull request's file list and
// sums the change counts of files that survive the ignore patterns. A
// renamed file is excluded only when both its old and new paths are ignored.
func countChangedLines(ctx context.Context, client github.Client, matcher *ignore.Matcher, tracker *tally.Tracker, logger zerolog.Logger, owner, repo string, number int) (int, error) {
	page := 1
	for {
		files, err := client.ListPullRequestFiles(ctx, owner, repo, number, github.ListOptions{
			Page:    page,
			PerPage: github.DefaultPerPage,
		})
		if err != nil {
			return 0, err
		}
		tracker.IncrementAPICall()
		tracker.RecordPage(len(files))

		if len(files) == 0 {
			break
		}

		for _, f := range files {
			if matcher.Ignores(f.PreviousFilename) && matcher.Ignores(f.Filename) {
				tracker.RecordIgnored()
				logger.Debug().Str("file", f.Filename).Msg("file ignored")
				continue
			}
			if !f.Changes.Valid {
				tracker.RecordSkipped()
				logger.Debug().Str("file", f.Filename).Msg("unreadable change count, skipping file")
				continue
			}
			tracker.AddChangedLines(f.Changes.Value)
		}

		// A short page is the last one.
		if len(files) < github.DefaultPerPage {
			break
		}
		page++
	}

	return tracker.ChangedLines(), nil
}

// sizeTable builds the threshold table for this run: the built-in defaults,
// replaced by the configuration file's table when it has one, replaced in
// turn by INPUT_SIZES.
func sizeTable(cfg *config.Config) (size.Table, error) {
	table := size.Default()
	if len(cfg.Sizes) > 0 {
		table = size.Table(cfg.Sizes)
	}
	if cfg.SizesEnv != "" {
		parsed, err := size.Parse(cfg.SizesEnv)
		if err != nil {
			return nil, err
		}
		table = parsed
	}
	return table, nil
}

// publishOutputs records the step outputs for later workflow steps.
// Failures are logged and swallowed: by this point the label is already on
// the pull request, and failing the run over an output file would undo
// nothing.
func publishOutputs(label string, changed int, logger zerolog.Logger) {
	writer, err := output.FromEnvironment()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open step output file")
		return
	}
	defer writer.Close()

	if err := writer.Set(output.KeyLabel, label); err != nil {
		logger.Warn().Err(err).Msg("failed to publish step output")
	}
	if err := writer.Set(output.KeyChangedLines, strconv.Itoa(changed)); err != nil {
		logger.Warn().Err(err).Msg("failed to publish step output")
	}
}

// getToken returns the GitHub token from the flag or the configured
// environment variable.
func getToken(flagToken, envVar string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv(envVar)
}

// getEventPath returns the event payload path from the flag or the
// GITHUB_EVENT_PATH environment variable.
func getEventPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv("GITHUB_EVENT_PATH")
}

// displayAction renders an action name for stdout and log messages. The
// payload may omit the action entirely; null mirrors what it carried.
func displayAction(action string) string {
	if action == "" {
		return "null"
	}
	return action
}

// mapErrorToExitCode maps internal errors to the process exit code.
// Sizing a pull request either works or it does not, so every failure
// collapses to exit code 1.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
