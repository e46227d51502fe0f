package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/markplot/markplot"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "summarise several data files",
		ArgsUsage: "DATA...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "files processed at once",
				Value:   4,
				Sources: cli.EnvVars("MARKPLOT_WORKERS"),
			},
		},
		Action: runBatch,
	}
}

type summary struct {
	file   string
	points int
	min    string
	max    string
	mark   markplot.Point
	length float64
}

func runBatch(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errors.New("batch: no data files")
	}
	f, l, err := setup(cmd)
	if err != nil {
		return err
	}

	rows := make([]summary, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cmd.Int("workers"), 1))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := l.WithField("file", path)
			c, err := openChart(f, path, log)
			if err != nil {
				return err
			}
			fr := c.Frame()
			rows[i] = summary{
				file:   path,
				points: len(c.Points()),
				min:    fr.Labels.Min,
				max:    fr.Labels.Max,
				mark:   fr.MarkValue,
				length: markplot.PathLength(fr.Points),
			}
			log.WithField("points", rows[i].points).Info("plotted")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(writer(cmd), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPOINTS\tMIN\tMAX\tMARK\tLENGTH")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%g,%g\t%.2f\n",
			r.file, r.points, r.min, r.max, r.mark.X, r.mark.Y, r.length)
	}
	return tw.Flush()
}
