package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/replkit/pkg/log"
	"github.com/sandevgo/replkit/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an interactive session",
	Long:  `Reads commands from standard input until end of input, 'exit', or an interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Debug().Msg("starting repl")

		services := NewServices(ctx, cmd)
		if err := srv.Run(ctx, services); err != nil {
			return err
		}

		logger.Debug().Msg("repl has been shut down")
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&prompt, "prompt", "p", "> ", "prompt shown before each line")
	startCmd.Flags().BoolVar(&plain, "plain", false, "disable line editing")
	rootCmd.AddCommand(startCmd)
}
