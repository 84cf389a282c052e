package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mdx/pkg/view"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		showFrontmatter bool
		strict          bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a document and print the HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := flags.renderer(strict)
			if err != nil {
				return err
			}

			doc, err := renderer.RenderFile(cmd.Context(), args[0], strict)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showFrontmatter && len(doc.Frontmatter) > 0 {
				encoded, err := yaml.Marshal(map[string]any(doc.Frontmatter))
				if err != nil {
					return fmt.Errorf("encoding frontmatter: %w", err)
				}
				fmt.Fprintf(out, "---\n%s---\n", encoded)
			}
			if err := view.Render(out, doc.Fragment); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFrontmatter, "frontmatter", false, "Print the frontmatter block before the HTML")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on elements that are neither registered nor structural")
	return cmd
}
