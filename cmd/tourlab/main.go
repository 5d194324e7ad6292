// Command tourlab runs TSP algorithm comparisons from the terminal.
//
// Modes:
//
//	tourlab -n 10 -seed 7                 compare all solvers on a random map
//	tourlab -cities cities.json -player x compare and record the best tour
//	tourlab -serve                        expose the JSON API
//	tourlab -bench -bench-sizes 4,6,8,10  sweep sizes, emit CSV aggregates
//
// Ctrl-C cancels in-flight exact searches cooperatively; aborted solvers
// report a cancelled result instead of a partial tour.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tourlab/tourlab/cities"
	"github.com/tourlab/tourlab/compare"
	"github.com/tourlab/tourlab/config"
	"github.com/tourlab/tourlab/scores"
	"github.com/tourlab/tourlab/server"
	"github.com/tourlab/tourlab/solve"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tourlab:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to YAML config (optional)")
		cityFile   = flag.String("cities", "", "JSON file with [[x,y],...] coordinates")
		randomN    = flag.Int("n", 8, "random instance size when -cities is not given")
		seed       = flag.Int64("seed", 0, "random instance seed (0 = stable default)")
		algoList   = flag.String("algos", "", "comma-separated algorithm tags (empty = all)")
		player     = flag.String("player", "", "record the best tour under this player name")
		serve      = flag.Bool("serve", false, "serve the JSON API instead of a one-shot run")
		bench      = flag.Bool("bench", false, "benchmark sweep mode")
		benchSizes = flag.String("bench-sizes", "4,6,8,10,12", "sizes for -bench")
		benchRuns  = flag.Int("bench-runs", 3, "repetitions per size for -bench")
		benchOut   = flag.String("bench-out", "benchmark.csv", "CSV output for -bench")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := compare.NewEngine(cfg.Solver.Options(), log)

	algos, err := parseAlgos(*algoList)
	if err != nil {
		return err
	}

	switch {
	case *serve:
		store, serr := scores.Open(cfg.Database.Path)
		if serr != nil {
			return serr
		}
		srv := server.New(engine, store, log)
		log.Info("serving", zap.String("addr", cfg.Server.Addr))

		return http.ListenAndServe(cfg.Server.Addr, srv.Router())

	case *bench:
		return runBench(ctx, engine, *benchSizes, *benchRuns, *seed, *benchOut, algos)

	default:
		set, serr := loadSet(*cityFile, *randomN, *seed)
		if serr != nil {
			return serr
		}

		return runOnce(ctx, engine, cfg, set, *player, algos)
	}
}

// buildLogger assembles the zap logger, teeing to a rotating file when one
// is configured (the classic append-forever game log, minus the forever).
func buildLogger(lc config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if lc.File != "" {
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   lc.File,
			MaxSize:    lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
		}))
	}

	core := zapcore.NewCore(enc, zapcore.NewMultiWriteSyncer(sinks...), level)

	return zap.New(core), nil
}

func parseAlgos(list string) ([]solve.Algorithm, error) {
	if list == "" {
		return nil, nil // empty selection = all
	}

	var out []solve.Algorithm
	for _, tag := range strings.Split(list, ",") {
		a, err := solve.ParseAlgorithm(strings.TrimSpace(tag))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// loadSet reads coordinates from a JSON file, or generates a seeded random
// instance when no file is given.
func loadSet(path string, n int, seed int64) (*cities.Set, error) {
	if path == "" {
		return cities.Random(n, seed, cities.DefaultWidth, cities.DefaultHeight)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var coords [][2]float64
	if err = json.Unmarshal(raw, &coords); err != nil {
		return nil, err
	}

	return cities.FromCoordinates(coords)
}

func runOnce(ctx context.Context, engine *compare.Engine, cfg config.Config, set *cities.Set, player string, algos []solve.Algorithm) error {
	batch, err := engine.Run(ctx, set, algos...)
	if err != nil {
		return err
	}

	fmt.Printf("%-17s %12s %12s %14s %8s %9s\n",
		"ALGORITHM", "LENGTH", "ELAPSED", "OPERATIONS", "GAP", "SPEEDUP")
	for _, e := range batch.Ranked() {
		if !e.OK() {
			fmt.Printf("%-17s %s\n", e.Algorithm, e.Err)

			continue
		}
		gap := "-"
		if e.HasGap {
			gap = fmt.Sprintf("%.2f%%", e.Gap*100)
		}
		fmt.Printf("%-17s %12.3f %12s %14d %8s %8.1fx\n",
			e.Algorithm, e.Length, e.Elapsed, e.Operations, gap, e.Speedup)
	}

	if player == "" {
		return nil
	}
	best, ok := batch.Best()
	if !ok {
		return fmt.Errorf("no successful result to record for %q", player)
	}
	if len(best.Tour) == 0 {
		return nil // an empty instance has no tour to record
	}
	store, err := scores.Open(cfg.Database.Path)
	if err != nil {
		return err
	}

	return store.Save(player, best.Tour[0], best.Result)
}

// runBench sweeps instance sizes and writes per-algorithm aggregates as CSV.
func runBench(ctx context.Context, engine *compare.Engine, sizes string, runs int, seed int64, out string, algos []solve.Algorithm) error {
	if runs < 1 {
		runs = 1
	}
	if len(algos) == 0 {
		algos = solve.Algorithms()
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err = w.Write([]string{"size", "algorithm", "avg_ms", "avg_operations", "avg_length", "failures"}); err != nil {
		return err
	}

	for _, rawSize := range strings.Split(sizes, ",") {
		n, perr := strconv.Atoi(strings.TrimSpace(rawSize))
		if perr != nil {
			return perr
		}

		type agg struct {
			ms, ops, length float64
			failures        int
		}
		totals := make(map[solve.Algorithm]*agg, len(algos))
		for _, a := range algos {
			totals[a] = &agg{}
		}

		var run int
		for run = 0; run < runs; run++ {
			// Fresh deterministic instance per repetition.
			set, serr := cities.Random(n, seed+int64(run)+1, cities.DefaultWidth, cities.DefaultHeight)
			if serr != nil {
				return serr
			}
			batch, berr := engine.Run(ctx, set, algos...)
			if berr != nil {
				return berr
			}
			for _, e := range batch.Entries {
				t := totals[e.Algorithm]
				if !e.OK() {
					t.failures++

					continue
				}
				t.ms += float64(e.Elapsed.Microseconds()) / 1e3
				t.ops += float64(e.Operations)
				t.length += e.Length
			}
		}

		for _, a := range algos {
			t := totals[a]
			succeeded := float64(runs - t.failures)
			if succeeded == 0 {
				succeeded = 1 // all failed; averages stay 0
			}
			record := []string{
				strconv.Itoa(n),
				a.String(),
				fmt.Sprintf("%.3f", t.ms/succeeded),
				fmt.Sprintf("%.0f", t.ops/succeeded),
				fmt.Sprintf("%.3f", t.length/succeeded),
				strconv.Itoa(t.failures),
			}
			if err = w.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}
