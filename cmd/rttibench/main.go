// ABOUTME: Command rttibench times checked casts against native Go type checks
// ABOUTME: Runs the fixture cast scenarios and prints per-loop timings

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/prateek/rtti/rttitest"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("rttibench")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rttibench", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	iterations := fs.Int("iterations", 0, "objects per constructor (overrides config)")
	loops := fs.Int("loops", 0, "passes over each object vector (overrides config)")
	parallel := fs.Int("parallel", 0, "object vectors prepared concurrently (overrides config)")
	verbose := fs.Int("v", 0, "log verbosity")
	list := fs.Bool("list", false, "list scenarios and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}
	commonlog.Configure(*verbose, nil)

	if *list {
		for _, s := range Scenarios() {
			fmt.Fprintln(out, s.Name)
		}
		return nil
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *loops > 0 {
		cfg.Loops = *loops
	}
	if *parallel > 0 {
		cfg.Parallel = *parallel
	}
	if fs.NArg() > 0 {
		cfg.Scenarios = fs.Args()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := rttitest.Register(); err != nil {
		return fmt.Errorf("register fixtures: %w", err)
	}

	results, err := runScenarios(cfg)
	if err != nil {
		return err
	}
	report(out, results)
	return nil
}

// runScenarios prepares the object vectors, up to cfg.Parallel at a time, and
// then times each scenario alone
func runScenarios(cfg Config) ([]Result, error) {
	selected := cfg.Selected()
	vectors := make([]*Vector, len(selected))

	start := time.Now()
	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	for i, s := range selected {
		g.Go(func() error {
			vectors[i] = s.Prepare(cfg.Iterations)
			log.Debugf("prepared %s: %d objects", s.Name, vectors[i].size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Infof("prepared %d scenarios in %v", len(selected), time.Since(start))

	results := make([]Result, len(selected))
	for i, s := range selected {
		results[i] = vectors[i].Run(s.Name, cfg.Loops)
		vectors[i] = nil
	}
	return results, nil
}

func report(out io.Writer, results []Result) {
	fmt.Fprintf(out, "%-18s %12s %14s %14s %8s %12s %12s\n",
		"scenario", "objects", "rtti ms/loop", "native ms/loop", "ratio", "rtti hits", "native hits")
	for _, r := range results {
		ratio := 0.0
		if r.Native > 0 {
			ratio = float64(r.Cast) / float64(r.Native)
		}
		fmt.Fprintf(out, "%-18s %12s %14.3f %14.3f %8.2f %12s %12s\n",
			r.Name,
			humanize.Comma(int64(r.Objects)),
			ms(r.Cast), ms(r.Native), ratio,
			humanize.Comma(int64(r.CastHits)),
			humanize.Comma(int64(r.NativeHits)))
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
