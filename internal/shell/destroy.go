package shell

import (
	"github.com/spf13/cobra"
)

func (s *Shell) newDestroyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destroy <Type> <id>",
		Short: "Delete the instance identified by <Type> and <id> and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.registry.Delete(arg(args, 0), arg(args, 1)); err != nil {
				return err
			}
			return s.registry.Save()
		},
	}
}
