package shell

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (s *Shell) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <Type> <id>",
		Short: "Print the instance identified by <Type> and <id>",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := s.registry.Get(arg(args, 0), arg(args, 1))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Render())
			return nil
		},
	}
}
