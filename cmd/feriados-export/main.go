/*
main.go - Export computed holidays to a SQLite database

PURPOSE:
  Materializes the engine output for a range of years and a set of states
  into a SQLite file, for consumers that want a plain holidays table.
  Re-running an export is idempotent.

COMMAND-LINE FLAGS:
  -config   YAML configuration file (default: config.yaml, optional)
  -envfile  .env file (default: .env, optional)
  -db       SQLite database path (default: export.sqlite_path, feriados.db)
  -from     First year (default: 1900)
  -to       Last year (default: 2199)
  -states   Comma-separated state codes, or "all" (default: all)

EXAMPLES:
  ./feriados-export -db=./data/feriados.db -from=2020 -to=2030 -states=rj,sp
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/feriados"
	"github.com/warp/holiday-engine/generic"
	"github.com/warp/holiday-engine/store/sqlite"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML configuration file")
	envPath := flag.String("envfile", ".env", "Load ENVs from this file")
	dbPath := flag.String("db", "", "SQLite database path (overrides export.sqlite_path)")
	from := flag.Int("from", generic.MinYear, "First year to export")
	to := flag.Int("to", generic.MaxYear, "Last year to export")
	statesFlag := flag.String("states", "all", `Comma-separated state codes, or "all"`)
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Export.SQLitePath = *dbPath
	}

	logger := config.NewLogger(cfg.Logging)
	config.SetDefault(logger)

	engine := feriados.Default()
	states := parseStates(engine, *statesFlag)

	if err := run(context.Background(), logger, engine, cfg.Export.SQLitePath, *from, *to, states); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

// parseStates expands "all" and drops codes the engine does not know.
func parseStates(engine *feriados.Engine, raw string) []string {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return engine.States()
	}

	var states []string
	for _, s := range strings.Split(raw, ",") {
		s = feriados.NormalizeState(s)
		if s == "" {
			continue
		}
		if !engine.KnownState(s) {
			slog.Warn("skipping unknown state", "state", s)
			continue
		}
		states = append(states, s)
	}
	return states
}

func run(ctx context.Context, logger *slog.Logger, engine *feriados.Engine, dbPath string, from, to int, states []string) error {
	if _, err := feriados.ValidateYear(fmt.Sprint(from)); err != nil {
		return fmt.Errorf("invalid -from: %w", err)
	}
	if _, err := feriados.ValidateYear(fmt.Sprint(to)); err != nil {
		return fmt.Errorf("invalid -to: %w", err)
	}
	if from > to {
		return fmt.Errorf("-from %d is after -to %d", from, to)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("export starting", "db", dbPath, "from", from, "to", to, "states", len(states))

	for year := from; year <= to; year++ {
		if err := store.SaveHolidays(ctx, "", engine.Holidays(year, "", feriados.AllTypes)); err != nil {
			return fmt.Errorf("year %d: %w", year, err)
		}
		for _, state := range states {
			holidays := engine.Holidays(year, state, feriados.Only(generic.TypeState))
			if err := store.SaveHolidays(ctx, state, holidays); err != nil {
				return fmt.Errorf("year %d state %s: %w", year, state, err)
			}
		}
	}

	count, err := store.CountHolidays(ctx)
	if err != nil {
		return err
	}
	logger.Info("export finished", "db", dbPath, "rows", count)
	return nil
}
