package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"gridlife/src/config"
	"gridlife/src/universe"
	"gridlife/src/view"
)

var errInterrupted = errors.New("interrupted")

func main() {
	log.SetFlags(0)

	cfg := initConfig()
	uo, err := universeOptions(cfg)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	g, err := initialGrid(cfg)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("File \"%s\" does not exist", cfg.Pattern)
		}
		log.Fatalf("%v", err)
	}

	if cfg.Interactive {
		u := universe.NewGridUniverse(g, uo, nil)
		v := view.NewViewTerminal(cfg.Seed)
		u.RegisterViewer(v)
		v.Start()
		u.Close()
		return
	}

	u, err := runConsole(g, uo)
	if errors.Is(err, errInterrupted) {
		fmt.Printf("\nInterrupted on generation %v.\n", u.Status().Generation)
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

//runConsole runs the generations until the fixed point, drawing them to stdout
//Ctrl+C or the failed stdout stops the run
func runConsole(g *universe.Grid, uo *universe.Options) (universe.Universe, error) {
	stateCh := make(chan universe.Status, 10) //the buffered channel to getting the universe status
	u := universe.NewGridUniverse(g, uo, stateCh)
	defer u.Close()

	v := view.NewConsoleOut(os.Stdout, view.ColorGlyphs())
	u.RegisterViewer(v)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		//releases the watcher below when the run is finished
		defer stop()
		for {
			select {
			case st := <-stateCh:
				if st.RunningMode == universe.RunningStateFinished {
					return nil
				}
			case <-v.Failed():
				return v.Err()
			case <-ctx.Done():
				return errInterrupted
			}
		}
	})
	eg.Go(func() error {
		<-ctx.Done()
		u.Stop()
		return nil
	})

	v.Start()
	u.Run()
	return u, eg.Wait()
}

//initialGrid loads the pattern file or settles the random grid
func initialGrid(cfg config.Config) (*universe.Grid, error) {
	if cfg.Pattern == "" && cfg.Random {
		return universe.NewRandomGrid(cfg.Width, cfg.Height, cfg.Seed), nil
	}
	return universe.LoadPattern(cfg.Pattern)
}

func universeOptions(cfg config.Config) (*universe.Options, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := universe.ParseExpandPolicy(cfg.Expand)
	if err != nil {
		return nil, err
	}
	uo := universe.DefaultUniverseOptions
	uo.Interval = time.Duration(cfg.Interval)
	uo.MaxSteps = cfg.MaxSteps
	uo.Policy = policy
	return &uo, nil
}

//initConfig merges the defaults, the config file and the command line
//flags given explicitly win over the file, the numeric flags start as config.Unset
//so the help shows -1 for the values taken from the file
func initConfig() config.Config {
	var (
		cli        = config.Unspecified()
		configFile string
		interval   = time.Duration(config.Unset)
	)

	flaggy.SetName("gridlife")
	flaggy.SetDescription("Conway's Game of Life on the grid that grows with the population")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.AddPositionalValue(&cli.Pattern, "pattern", 1, false, "File containing a starting pattern: 'x' is alive, '-' is dead")
	flaggy.String(&configFile, "c", "config", "JSON config file")
	flaggy.Duration(&interval, "i", "interval", "Rendering update interval, for example 150ms, 500ms unless configured")
	flaggy.Int(&cli.MaxSteps, "s", "maxSteps", "Stop after this count of generations, 0 is no limit")
	flaggy.String(&cli.Expand, "e", "expand", "Border expansion policy [edge|cell] (default edge)")
	flaggy.Bool(&cli.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&cli.Random, "r", "random", "Settle with random data when no pattern file is given")
	flaggy.Int(&cli.Width, "x", "width", "Width of the random pattern, 40 unless configured")
	flaggy.Int(&cli.Height, "y", "height", "Height of the random pattern, 15 unless configured")
	flaggy.Int64(&cli.Seed, "", "seed", "Seed of the random pattern (default current time)")

	flaggy.Parse()
	cli.Interval = config.Duration(interval)

	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			log.Fatalf("%v", err)
		}
	}
	cfg = cfg.Merge(cli)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
