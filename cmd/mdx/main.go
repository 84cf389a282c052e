// Command mdx renders MDX documents to HTML.
package main

import (
	"fmt"
	"os"

	"github.com/goliatone/go-mdx/cmd/mdx/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
