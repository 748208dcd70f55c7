package main

import "github.com/strrl/ccexport/cmd/ccexport/commands"

func main() {
	commands.Execute()
}
