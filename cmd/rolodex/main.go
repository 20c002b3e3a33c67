// Command rolodex is the contact list CLI.
package main

import "github.com/mesh-intelligence/rolodex/internal/cli"

func main() {
	cli.Execute()
}
