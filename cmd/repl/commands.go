package main

import (
	"fmt"

	"github.com/sandevgo/replkit/internal/service/builtin"
	"github.com/sandevgo/replkit/internal/service/repl"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands available in a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		interp := repl.New()
		if err := builtin.Register(interp); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), interp.CommandTable())
		return err
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
