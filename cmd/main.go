package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/oddsmith/scoresim/internal/config"
	"github.com/oddsmith/scoresim/internal/logger"
	"github.com/oddsmith/scoresim/pkg/render"
	"github.com/oddsmith/scoresim/pkg/server"
	"github.com/oddsmith/scoresim/pkg/sim"
	"github.com/oddsmith/scoresim/pkg/store"
)

const usage = `scoresim - Monte Carlo soccer match simulator

Usage:
  scoresim [flags] <rateA> <rateB> [count]   simulate matches
  scoresim [flags]                           prompt for inputs
  scoresim serve                             run the HTTP API
  scoresim history                           show persisted runs
  scoresim help                              show this text

Flags:
  -n count        number of simulations (default from config)
  -seed value     fixed random seed for reproducible sequential runs
  -o prefix       also write results to <resultsDir>/<prefix>-<timestamp>.txt
  -config path    YAML config file
  -q              only log warnings and errors

rateA and rateB are expected goals per team, 0 to 20 inclusive.
count is the number of simulated matches, 1 to 1000000 inclusive.`

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			fmt.Println(usage)
			return
		case "serve":
			if err := runServe(args[1:]); err != nil {
				logger.Error("Server error:", err)
				os.Exit(1)
			}
			return
		case "history":
			if err := runHistory(args[1:]); err != nil {
				logger.Error("History error:", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := runSimulate(args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// commonFlags parses the shared flag set and loads configuration.
func commonFlags(name string, args []string) (*flag.FlagSet, *string, *bool) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	quiet := fs.Bool("q", false, "only log warnings and errors")
	return fs, configPath, quiet
}

func setupLogging(cfg *config.Config, quiet bool) {
	if quiet {
		logger.SetLevel(logger.WARN)
	}
	if cfg.LogOutput == "file" {
		logger.SetLogFilePath(cfg.LogFilePath)
		logger.SetLogOutput('f')
	}
}

func runSimulate(args []string) error {
	fs, configPath, quiet := commonFlags("scoresim", args)
	count := fs.Int("n", 0, "number of simulations")
	seed := fs.Int64("seed", 0, "fixed random seed")
	outPrefix := fs.String("o", "", "results file prefix")
	fs.Parse(args)

	seeded := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg, *quiet)

	rateA, rateB, n, err := readInputs(fs.Args(), *count, cfg)
	if err != nil {
		return err
	}

	var simulator *sim.Simulator
	if seeded {
		simulator = sim.NewSeededSimulator(*seed)
	} else {
		simulator = sim.NewSimulator()
	}

	logger.Debug("Simulating", n, "matches at rates", rateA, rateB)

	outcomes, err := simulator.Run(rateA, rateB, n)
	if err != nil {
		return err
	}

	summary, err := sim.Summarize(outcomes)
	if err != nil {
		return err
	}

	report := render.Report(outcomes, summary)
	fmt.Println(report)

	persistRun(cfg, rateA, rateB, n, *seed, seeded, summary)

	if *outPrefix != "" {
		path, err := writeResults(cfg, *outPrefix, report)
		if err != nil {
			return err
		}
		fmt.Println("Results written to", path)
	}

	return nil
}

// persistRun records the batch in the history database. History is a
// convenience; failure to record is not a simulation failure.
func persistRun(cfg *config.Config, rateA, rateB float64, n int, seed int64, seeded bool, summary *sim.Summary) {
	if err := cfg.EnsureDirs(); err != nil {
		logger.Warn("Could not prepare asset directory:", err)
		return
	}
	st, err := store.Open(cfg.DbPath)
	if err != nil {
		logger.Warn("Could not open run history:", err)
		return
	}
	defer st.Close()

	if err := st.SaveRun(store.NewRun(rateA, rateB, n, seed, seeded, summary)); err != nil {
		logger.Warn("Could not persist run:", err)
	}
}

// readInputs resolves rates and count from positional arguments, or
// interactively when none are given.
func readInputs(positional []string, flagCount int, cfg *config.Config) (rateA, rateB float64, n int, err error) {
	n = cfg.DefaultSimulations
	if flagCount > 0 {
		n = flagCount
	}

	if len(positional) == 0 {
		return promptInputs(n)
	}
	if len(positional) < 2 {
		return 0, 0, 0, fmt.Errorf("need rateA and rateB, got %d argument(s); see 'scoresim help'", len(positional))
	}

	rateA, err = strconv.ParseFloat(positional[0], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("rateA %q is not a number", positional[0])
	}
	rateB, err = strconv.ParseFloat(positional[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("rateB %q is not a number", positional[1])
	}

	if len(positional) > 2 {
		n, err = strconv.Atoi(positional[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("count %q is not an integer", positional[2])
		}
	}

	return rateA, rateB, n, nil
}

// promptInputs asks for rates and count on stdin.
func promptInputs(defaultCount int) (rateA, rateB float64, n int, err error) {
	scanner := bufio.NewScanner(os.Stdin)

	rateA, err = promptFloat(scanner, "Expected goals for team A [0-20]: ")
	if err != nil {
		return
	}
	rateB, err = promptFloat(scanner, "Expected goals for team B [0-20]: ")
	if err != nil {
		return
	}

	fmt.Printf("Number of simulations [%d]: ", defaultCount)
	if !scanner.Scan() {
		err = fmt.Errorf("input closed")
		return
	}
	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		n = defaultCount
		return
	}
	n, err = strconv.Atoi(text)
	if err != nil {
		err = fmt.Errorf("count %q is not an integer", text)
	}
	return
}

func promptFloat(scanner *bufio.Scanner, prompt string) (float64, error) {
	fmt.Print(prompt)
	if !scanner.Scan() {
		return 0, fmt.Errorf("input closed")
	}
	text := strings.TrimSpace(scanner.Text())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	return v, nil
}

// writeResults persists the rendered report under the results directory.
func writeResults(cfg *config.Config, prefix, report string) (string, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s.txt", prefix, time.Now().Format("20060102-150405"))
	path := filepath.Join(cfg.ResultsDir, name)

	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	return path, nil
}

func runServe(args []string) error {
	fs, configPath, quiet := commonFlags("scoresim serve", args)
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg, *quiet)

	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	st, err := store.Open(cfg.DbPath)
	if err != nil {
		logger.Warn("Run history disabled:", err)
		st = nil
	} else {
		defer st.Close()
	}

	return server.New(cfg, st).Start()
}

func runHistory(args []string) error {
	fs, configPath, quiet := commonFlags("scoresim history", args)
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg, *quiet)

	st, err := store.Open(cfg.DbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.RecentRuns(cfg.HistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-4s %-20s %6s %6s %7s %6s %6s %6s\n",
		"ID", "When", "RateA", "RateB", "Count", "WinsA", "Draws", "WinsB")
	for _, r := range runs {
		when := r.CreatedAt
		if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
			when = t.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%-4d %-20s %6.2f %6.2f %7d %6d %6d %6d\n",
			r.ID, when, r.RateA, r.RateB, r.Count, r.WinsA, r.Draws, r.WinsB)
	}

	return nil
}
