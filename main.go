package main

import "github.com/semlayer/go-cubejs/cmd"

func main() {
	cmd.Execute()
}
