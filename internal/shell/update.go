package shell

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

func (s *Shell) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <Type> <id> <attribute> <value>",
		Short: "Set one attribute, converted to its current type, then save",
		Long: "Set one attribute of an instance. The value is converted to the type\n" +
			"the attribute already holds; a new attribute is stored as text.\n" +
			"Quote values containing spaces. Arguments after <value> are ignored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := s.registry.Get(arg(args, 0), arg(args, 1))
			if err != nil {
				return err
			}
			if len(args) < 3 || args[2] == "" {
				return types.ErrMissingField
			}
			name := args[2]
			if types.IsReserved(name) {
				return types.ErrReservedField
			}
			if len(args) < 4 {
				return types.ErrMissingValue
			}
			value, err := e.Coerce(name, args[3])
			if err != nil {
				return err
			}
			if err := e.Set(name, value); err != nil {
				return err
			}
			e.Touch()
			return s.registry.Save()
		},
	}
}
