package main

import "github.com/timvw/tmuxify/cmd"

func main() {
	cmd.Execute()
}
