// Command tableaux is the CLI entry point: it forwards os.Args, os.Stdout,
// and os.Stderr into pkg/cli.Run and exits with the resulting status code.
package main

import (
	"os"

	"github.com/bradleypallen/tableaux-go/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
