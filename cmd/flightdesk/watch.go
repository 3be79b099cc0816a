package main

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/flightdesk/internal/application/handlers"
)

type watchFlags struct {
	board     boardFlags
	direction string
	schedule  string
}

func newWatchCmd() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep a board on screen and refresh it",
		Long: "Shows a board and refreshes it on a cron schedule until interrupted. " +
			"The schedule defaults to board.refresh from the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, flags)
		},
	}

	addBoardFlags(cmd, &flags.board)
	cmd.Flags().StringVar(&flags.direction, "direction", string(handlers.Arrivals), "Board to watch (arrivals, departures)")
	cmd.Flags().StringVar(&flags.schedule, "schedule", "", "Cron schedule, seconds field first or a descriptor such as @every 30s")

	return cmd
}

func runWatch(cmd *cobra.Command, flags watchFlags) error {
	dir, err := parseDirection(flags.direction)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		q, err := d.boardQuery(ctx, flags.board)
		if err != nil {
			return err
		}

		schedule := flags.schedule
		if schedule == "" {
			schedule = d.Config.Board.Refresh
		}

		refresh := func() {
			result, err := d.Board.Handle(ctx, dir, q)
			if err != nil {
				printError(cmd.ErrOrStderr(), err, verbose)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout())
			displayBoard(cmd.OutOrStdout(), result)
		}

		return watchBoard(ctx, schedule, refresh, d.Logger)
	})
}

// watchBoard runs refresh once, then on schedule until ctx is done. A refresh
// still running when the next one is due is skipped.
func watchBoard(ctx context.Context, schedule string, refresh func(), log *zap.Logger) error {
	cl := cronLogger{log: log.Sugar()}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cl),
		cron.WithChain(cron.SkipIfStillRunning(cl)),
	)

	if _, err := c.AddFunc(schedule, refresh); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	refresh()
	if ctx.Err() != nil {
		return nil
	}

	c.Start()
	log.Debug("watching board", zap.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func parseDirection(s string) (handlers.Direction, error) {
	switch handlers.Direction(s) {
	case handlers.Arrivals, handlers.Departures:
		return handlers.Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q (valid: arrivals, departures)", s)
	}
}

// cronLogger routes scheduler logs to zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
