// Command msgqueue-demo runs reader and writer goroutines against one bounded
// queue for a fixed time, then closes the queue and waits for every worker.
//
// Usage:
//
//	go run ./cmd/msgqueue-demo --readers 3 --writers 5 --capacity 2 --duration 5s
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "msgqueue-demo",
		Usage:  "Exercise a bounded message queue with concurrent readers and writers",
		Flags:  flags(),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "msgqueue-demo: %v\n", err)
		os.Exit(1)
	}
}
