package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (s *Shell) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [verb|Type]",
		Short: "List available commands, describe one, or list a type's attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			topic := arg(args, 0)
			if topic == "" {
				var names []string
				for _, c := range s.root.Commands() {
					if !c.Hidden {
						names = append(names, c.Name())
					}
				}
				header := "Documented commands (type help <topic>):"
				fmt.Fprintln(w)
				fmt.Fprintln(w, header)
				fmt.Fprintln(w, strings.Repeat("=", len(header)))
				fmt.Fprintln(w, strings.Join(names, "  "))
				fmt.Fprintln(w)
				return nil
			}
			for _, c := range s.root.Commands() {
				if c.Name() == topic && !c.Hidden {
					fmt.Fprintf(w, "usage: %s\n%s\n", c.Use, helpText(c))
					return nil
				}
			}
			if e, err := s.registry.Catalog().New(topic); err == nil {
				writeAttributes(w, topic, e.Schema().Names())
				return nil
			}
			fmt.Fprintf(w, "*** No help on %s\n", topic)
			return nil
		},
	}
}

func helpText(c *cobra.Command) string {
	if c.Long != "" {
		return c.Long
	}
	return c.Short
}

// writeAttributes lists the attributes typeName declares for update.
func writeAttributes(w io.Writer, typeName string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(w, "%s declares no attributes\n", typeName)
		return
	}
	fmt.Fprintf(w, "%s attributes: %s\n", typeName, strings.Join(names, ", "))
}
