package shell

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

func (s *Shell) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <Type>",
		Short: "Create an instance of <Type>, save it, and print its id",
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName := arg(args, 0)
			if typeName == "" {
				return types.ErrMissingTypeName
			}
			e, err := s.registry.Create(typeName)
			if err != nil {
				return err
			}
			if err := s.registry.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.ID())
			return nil
		},
	}
}
