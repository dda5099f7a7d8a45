// Command scouty projects training outcomes and scores players for
// squad-management decisions. Every invocation reads a roster or match
// file and writes a JSON report; no state survives between runs.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/okian/scouty/internal/adapters/ingest"
	"github.com/okian/scouty/internal/app"
	"github.com/okian/scouty/internal/config"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/pkg/logger"
)

const outputFilePermission = 0o600

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(append(app.FromConfig(cfg), app.WithLogger(log))...)

	if len(os.Args) < 2 {
		showHelp()
		os.Exit(1)
	}

	var runErr error
	switch os.Args[1] {
	case "analyze":
		runErr = runAnalyze(ctx, svc, os.Args[2:])
	case "snapshot":
		runErr = runSnapshot(ctx, svc, os.Args[2:])
	case "training":
		runErr = runTraining(ctx, svc, cfg, os.Args[2:])
	case "juniors":
		runErr = runJuniors(ctx, svc, cfg, os.Args[2:])
	case "matches":
		runErr = runMatches(ctx, svc, os.Args[2:])
	case "help", "-h", "--help":
		showHelp()
		return
	default:
		os.Stderr.WriteString("unknown command: " + os.Args[1] + "\n\n")
		showHelp()
		os.Exit(1)
	}
	if runErr != nil {
		log.Error(ctx, "command failed", logger.Error(runErr))
		os.Exit(1)
	}
}

func runAnalyze(ctx context.Context, svc *app.Service, args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	output := fs.String("o", "", "output file (JSON), stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	players, err := loadRoster(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return writeJSON(svc.AnalyzeRoster(ctx, players), *output)
}

func runSnapshot(ctx context.Context, svc *app.Service, args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	output := fs.String("o", "", "output file (JSON), stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	players, err := loadRoster(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return writeJSON(svc.Snapshot(ctx, players), *output)
}

func runTraining(ctx context.Context, svc *app.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("training", flag.ExitOnError)
	training := fs.String("t", cfg.DefaultTraining, "training type")
	weeks := fs.Int("w", cfg.DefaultWeeks, "number of weeks to project")
	compare := fs.Bool("c", false, "compare training types")
	nearSkillup := fs.Bool("n", false, "list players near a skill-up")
	output := fs.String("o", "", "output file (JSON), stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	players, err := loadRoster(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	switch {
	case *nearSkillup:
		return writeJSON(svc.NearSkillups(ctx, players), *output)
	case *compare:
		comparison, err := svc.CompareTraining(ctx, players, nil, *weeks)
		if err != nil {
			return err
		}
		return writeJSON(comparison, *output)
	default:
		trainingCfg, err := model.NewTrainingConfig(model.TrainingType(*training), *weeks, model.DefaultIntensity)
		if err != nil {
			return err
		}
		trajectory, err := svc.ProjectTraining(ctx, players, trainingCfg)
		if err != nil {
			return err
		}
		return writeJSON(trajectory, *output)
	}
}

func runJuniors(ctx context.Context, svc *app.Service, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("juniors", flag.ExitOnError)
	promotions := fs.Bool("p", false, "recommend promotions only")
	max := fs.Int("m", 0, "max promotions to recommend")
	simulate := fs.Bool("s", false, "simulate training impact")
	formations := fs.Bool("f", false, "compare formation options")
	training := fs.String("t", cfg.DefaultTraining, "training type for -s")
	weeks := fs.Int("w", cfg.DefaultWeeks, "weeks to simulate for -s")
	output := fs.String("o", "", "output file (JSON), stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	players, err := loadRoster(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	switch {
	case *simulate:
		trainingCfg, err := model.NewTrainingConfig(model.TrainingType(*training), *weeks, model.DefaultIntensity)
		if err != nil {
			return err
		}
		impact, err := svc.SimulateJuniorTraining(ctx, players, trainingCfg)
		if err != nil {
			return err
		}
		return writeJSON(impact, *output)
	case *formations:
		return writeJSON(svc.CompareJuniorFormations(ctx, players), *output)
	default:
		return writeJSON(svc.AnalyzeJuniors(ctx, players, *promotions, *max), *output)
	}
}

func runMatches(ctx context.Context, svc *app.Service, args []string) error {
	fs := flag.NewFlagSet("matches", flag.ExitOnError)
	recent := fs.Bool("r", false, "analyze recent form")
	lastN := fs.Int("l", 0, "number of recent matches to analyze")
	suggestions := fs.Bool("s", false, "print tactical suggestions only")
	output := fs.String("o", "", "output file (JSON), stdout if empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path := fs.Arg(0)
	if path == "" {
		return fmt.Errorf("matches: missing match history file")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	matches, err := ingest.MatchesJSON(f)
	if err != nil {
		return err
	}

	if *recent {
		return writeJSON(svc.RecentForm(ctx, matches, *lastN), *output)
	}
	patterns := svc.ExtractMatchPatterns(ctx, matches)
	if *suggestions {
		return writeJSON(patterns.Suggestions, *output)
	}
	return writeJSON(patterns, *output)
}

// loadRoster reads a player file, choosing the parser by extension.
// Row-level failures are logged and the survivors proceed.
func loadRoster(ctx context.Context, path string) ([]*model.Player, error) {
	if path == "" {
		return nil, fmt.Errorf("missing roster file argument")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var roster *ingest.Roster
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		roster, err = ingest.PlayersJSON(f)
	} else {
		roster, err = ingest.PlayersCSV(f)
	}
	if err != nil {
		return nil, err
	}

	log := logger.Get()
	for _, failure := range roster.Failures {
		log.Warn(ctx, "skipping unparseable roster row",
			logger.String("file", path),
			logger.Int("row", failure.Row),
			logger.Error(failure.Err),
		)
	}
	return roster.Players, nil
}

// writeJSON renders a report to a file or stdout.
func writeJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, outputFilePermission)
}

func showHelp() {
	os.Stdout.WriteString(`Scouty - squad analytics and training projection

Usage:
  scouty <command> [options] <file>

Commands:
  analyze   <roster>   Score players (role fit, potential, cost-benefit)
  snapshot  <roster>   Squad overview with aggregates and scores
  training  <roster>   Project training outcomes
      -t type   Training type (default from config)
      -w weeks  Projection horizon in weeks
      -c        Compare all training types
      -n        List players near a skill-up
  juniors   <roster>   Rank youth squad by promotion potential
      -p        Promotion shortlist only
      -m max    Shortlist size
      -s        Simulate training impact on the youth squad
      -f        Compare formation options
      -t type   Training type for -s (default from config)
      -w weeks  Simulation horizon for -s
  matches   <history>  Extract patterns from match history (JSON)
      -r        Recent form summary
      -l n      Recent window size
      -s        Tactical suggestions only

Options:
  -o file   Write the JSON report to a file instead of stdout

Roster files are CSV (id,name,age,position,skills,salary,tsi,form,
stamina,experience,leadership; skills is an embedded JSON object) or a
JSON array of player objects.

Configuration is layered from defaults, an optional YAML file named by
SCOUTY_CONFIG, and SCOUTY_* environment variables.
`)
}
