package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/IRONalways17/Quiz-Master-APP/apps/quizctl/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "quizctl crashed: %v\n", r)
			if os.Getenv("QUIZMASTER_DEBUG") != "" {
				debug.PrintStack()
			}
			os.Exit(2)
		}
	}()

	cmd.Execute()
}
