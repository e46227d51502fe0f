package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/markplot/markplot/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	err := app().Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func app() *cli.Command {
	return &cli.Command{
		Name:        "markplot",
		Usage:       "compute line chart geometry with a movable mark",
		Description: description,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				Sources: cli.EnvVars("MARKPLOT_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level, values are (trace,debug,info,warn,error,fatal,panic); overrides the config file",
				Sources: cli.EnvVars("MARKPLOT_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			frameCommand(),
			batchCommand(),
		},
	}
}

const description = `markplot loads a point series from CSV or YAML, lays it out the way an
interactive chart would and reports the result: projected points, SVG paths,
the mark's position and value, fill tint and axis labels.
`

// setup loads the configuration named by the root flags and builds the
// logger. Logs go to the root command's error writer.
func setup(cmd *cli.Command) (*config.File, *logrus.Logger, error) {
	f, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	level := f.LogLevel
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}
	l, err := config.Logger(errWriter(cmd), level)
	if err != nil {
		return nil, nil, err
	}
	return f, l, nil
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
