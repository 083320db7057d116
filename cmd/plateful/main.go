package main

import "github.com/plateful-labs/plateful-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
