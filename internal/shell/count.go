package shell

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

func (s *Shell) newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <Type>",
		Short: "Print the number of instances of <Type>",
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName := arg(args, 0)
			if typeName == "" {
				return types.ErrMissingTypeName
			}
			n, err := s.registry.Count(typeName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
