package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose logging",
			EnvVars: []string{"MSGQUEUE_VERBOSE"},
		},
		&cli.IntFlag{
			Name:    "capacity",
			Aliases: []string{"c"},
			Usage:   "Maximum number of buffered messages",
			EnvVars: []string{"MSGQUEUE_CAPACITY"},
			Value:   2,
		},
		&cli.IntFlag{
			Name:    "readers",
			Aliases: []string{"r"},
			Usage:   "Number of reader goroutines",
			EnvVars: []string{"MSGQUEUE_READERS"},
			Value:   3,
		},
		&cli.IntFlag{
			Name:    "writers",
			Aliases: []string{"w"},
			Usage:   "Number of writer goroutines",
			EnvVars: []string{"MSGQUEUE_WRITERS"},
			Value:   5,
		},
		&cli.DurationFlag{
			Name:    "duration",
			Aliases: []string{"d"},
			Usage:   "How long to run before closing the queue",
			EnvVars: []string{"MSGQUEUE_DURATION"},
			Value:   5 * time.Second,
		},
		&cli.DurationFlag{
			Name:    "min-delay",
			Usage:   "Lower bound of the random pause before each operation",
			EnvVars: []string{"MSGQUEUE_MIN_DELAY"},
			Value:   time.Millisecond,
		},
		&cli.DurationFlag{
			Name:    "max-delay",
			Usage:   "Upper bound of the random pause before each operation",
			EnvVars: []string{"MSGQUEUE_MAX_DELAY"},
			Value:   time.Second,
		},
		&cli.StringFlag{
			Name:    "match",
			Usage:   "Message that matching readers extract out of order",
			EnvVars: []string{"MSGQUEUE_MATCH"},
			Value:   "3",
		},
	}
}
