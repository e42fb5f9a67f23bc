// Command empyreus generates Empyreus boards and plays headless games on
// them, for inspecting the board generator from a terminal.
//
//	empyreus gen -n 4 --seed 7
//	empyreus simulate --config game.yaml --turns 60
//	empyreus config > game.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
