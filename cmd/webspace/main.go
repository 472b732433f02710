// webspace CLI - Command-line interface for the webspaced daemon
package main

import "github.com/netsoc/webspace-cli/pkg/cli"

func main() {
	cli.Execute()
}
