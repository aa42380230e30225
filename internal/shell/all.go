package shell

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (s *Shell) newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [Type]",
		Short: "Print every instance, or every instance of [Type]",
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, err := s.registry.Fetch(arg(args, 0))
			if err != nil {
				return err
			}
			rendered := make([]string, len(entities))
			for i, e := range entities {
				rendered[i] = `"` + e.Render() + `"`
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", strings.Join(rendered, ", "))
			return nil
		},
	}
}
