package shell

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *Shell) newQuitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit",
		Short: "Quit command to exit the program",
		RunE: func(cmd *cobra.Command, args []string) error {
			s.stopped = true
			return nil
		},
	}
}

// newEOFCmd handles a literal "EOF" line the same way as end of input.
func (s *Shell) newEOFCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "EOF",
		Short:  "Exit the program on end of input",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout())
			s.stopped = true
			return nil
		},
	}
}
