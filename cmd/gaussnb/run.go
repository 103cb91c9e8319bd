package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gaussnb/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Train, evaluate and then classify vectors read from standard input",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Train and evaluate without the interactive loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		_, _, err = p.execute()
		return err
	},
}

func init() {
	runCmd.Flags().Bool("no-interactive", false, "stop after the report")
	runCmd.Flags().String("exit-token", session.DefaultExitToken, "input that ends the interactive loop")
}

func runRun(cmd *cobra.Command, _ []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	m, _, err := p.execute()
	if err != nil {
		return err
	}

	noInteractive, err := cmd.Flags().GetBool("no-interactive")
	if err != nil {
		return err
	}
	if noInteractive {
		return nil
	}
	exitToken, err := cmd.Flags().GetString("exit-token")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(m, cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithColor(isTerminal(os.Stdout)),
		session.WithExitToken(exitToken),
		session.WithLogger(p.logger),
	)
	return s.Run(ctx)
}
