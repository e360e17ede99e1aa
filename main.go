package main

import (
	"os"

	"github.com/mujeeb/quizdev/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
