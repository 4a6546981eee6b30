package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/adapters/probe"
	"github.com/bnema/ada-wallet-cli/internal/config"
	"github.com/bnema/ada-wallet-cli/internal/poll"
	"github.com/bnema/ada-wallet-cli/internal/ports"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type waitFlags struct {
	timeout  time.Duration
	interval time.Duration
	quiet    bool
	asJSON   bool
}

type waitResult struct {
	Probe    string `json:"probe"`
	Ready    bool   `json:"ready"`
	Attempts int    `json:"attempts"`
	Elapsed  string `json:"elapsed"`
	Error    string `json:"error,omitempty"`
}

func newWaitCmd(app *app) *cobra.Command {
	flags := &waitFlags{}

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait until an external condition holds",
		Long:  "wait checks a condition immediately and then once per interval until it holds or the timeout budget is spent.",
	}

	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Total wait budget (default from config, 5s)")
	cmd.PersistentFlags().DurationVar(&flags.interval, "interval", 0, "Delay between checks (default from config, 1s)")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Print nothing, only set the exit status")
	cmd.PersistentFlags().BoolVar(&flags.asJSON, "json", false, "Print the outcome as JSON")

	cmd.AddCommand(
		newWaitHTTPCmd(app, flags),
		newWaitTCPCmd(app, flags),
		newWaitFileCmd(app, flags),
		newWaitExecCmd(app, flags),
		newWaitNodeCmd(app, flags),
	)

	return cmd
}

func newWaitHTTPCmd(app *app, flags *waitFlags) *cobra.Command {
	var status int

	cmd := &cobra.Command{
		Use:   "http <url>",
		Short: "Wait until a GET on url returns the expected status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := probe.NewHTTPProbe(args[0], status)
			if err != nil {
				return err
			}
			return runWait(cmd, app, flags, p)
		},
	}

	cmd.Flags().IntVar(&status, "status", 200, "Expected HTTP status code")

	return cmd
}

func newWaitTCPCmd(app *app, flags *waitFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tcp <host:port>",
		Short: "Wait until a TCP connection can be opened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := probe.NewTCPProbe(args[0])
			if err != nil {
				return err
			}
			return runWait(cmd, app, flags, p)
		},
	}
}

func newWaitFileCmd(app *app, flags *waitFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Wait until a file exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := probe.NewFileProbe(args[0])
			if err != nil {
				return err
			}
			return runWait(cmd, app, flags, p)
		},
	}
}

func newWaitExecCmd(app *app, flags *waitFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- <command> [args...]",
		Short: "Wait until a command exits successfully",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := probe.NewExecProbe(args)
			if err != nil {
				return err
			}
			return runWait(cmd, app, flags, p)
		},
	}
}

func newWaitNodeCmd(app *app, flags *waitFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "node",
		Short: "Wait until the wallet backend answers on its node-info endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := probe.NewHTTPProbe(app.env.NodeInfoURL(), 0)
			if err != nil {
				return err
			}
			return runWait(cmd, app, flags, p)
		},
	}
}

func runWait(cmd *cobra.Command, app *app, flags *waitFlags, p ports.Probe) error {
	cfg := poll.Config{
		Timeout:       config.DurationOrDefault(flags.timeout, app.settings.Wait.Timeout),
		RetryInterval: config.DurationOrDefault(flags.interval, app.settings.Wait.RetryInterval),
	}
	logger := app.logger.With(zap.Stringer("probe", p))

	attempts := 0
	wait := func(ctx context.Context, onAttempt func(int)) error {
		predicate := func(ctx context.Context) (bool, error) {
			attempts++
			if onAttempt != nil {
				onAttempt(attempts)
			}
			return p.Check(ctx)
		}
		return poll.Await(ctx, predicate, cfg, poll.WithLogger(logger))
	}

	started := app.now()
	var err error
	if flags.quiet || flags.asJSON {
		err = wait(cmd.Context(), nil)
	} else {
		err = runWaitSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Waiting for %s...", p), wait)
	}
	elapsed := app.now().Sub(started).Round(time.Millisecond)

	if flags.asJSON {
		result := waitResult{
			Probe:    p.String(),
			Ready:    err == nil,
			Attempts: attempts,
			Elapsed:  elapsed.String(),
		}
		if err != nil {
			result.Error = err.Error()
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(result); encErr != nil {
			return errors.Join(err, encErr)
		}
		return err
	}

	if err != nil {
		return fmt.Errorf("wait for %s: %w", p, err)
	}

	if !flags.quiet {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "ready: %s (%d attempts, %s)\n", p, attempts, elapsed)
	}
	return err
}
