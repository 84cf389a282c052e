package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/goliatone/go-mdx/internal/identity"
	"github.com/spf13/cobra"
)

func newComponentsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the components declared in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer, err := flags.renderer(false)
			if err != nil {
				return err
			}

			elements := map[string]string{}
			for _, def := range renderer.Config().Components {
				elements[def.Name] = def.Element
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tELEMENT\tID")
			for _, name := range renderer.Components().Names() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, elements[name], identity.ComponentUUID(name))
			}
			return w.Flush()
		},
	}
}
