package report

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/racedata/testday-report-go/log"
	"github.com/racedata/testday-report-go/pkg/analysis/distributions"
	"github.com/racedata/testday-report-go/pkg/analysis/longruns"
	"github.com/racedata/testday-report-go/pkg/analysis/reliability"
	"github.com/racedata/testday-report-go/pkg/config"
	"github.com/racedata/testday-report-go/pkg/model"
	"github.com/racedata/testday-report-go/pkg/render"
)

func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "generates the test-day figures from a lap table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startReport()
		},
	}
	cmd.Flags().StringVarP(&config.LapsFile,
		"input",
		"i",
		"laps.json",
		"lap table to analyze (json or csv)")
	cmd.Flags().StringVarP(&config.OutputDir,
		"output-dir",
		"o",
		"report",
		"directory for the generated figures")
	cmd.Flags().StringVar(&config.Watermark,
		"watermark",
		"",
		"watermark text placed on every figure")
	cmd.Flags().BoolVar(&config.Watch,
		"watch",
		false,
		"regenerate the report whenever the lap table changes")
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format")
	cmd.Flags().StringVar(&config.LogConfig,
		"log-config",
		"",
		"yaml file with per-logger levels")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() *log.Logger {
	rules := ""
	if config.LogConfig != "" {
		cfg, err := log.LoadConfig(config.LogConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read log config: %v\n", err)
		} else {
			rules = cfg.Rules()
		}
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		if rules != "" {
			logger = log.NewWithFilter(os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel), rules)
		} else {
			logger = log.New(os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel))
		}
	default:
		if rules != "" {
			logger = log.DevLoggerWithFilter(os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel), rules)
		} else {
			logger = log.DevLogger(os.Stderr,
				parseLogLevel(config.LogLevel, log.InfoLevel))
		}
	}
	log.ResetDefault(logger)
	return logger
}

func startReport() error {
	logger := setupLogger().Named("report")
	if config.TeamColorsFile != "" {
		if err := config.LoadTeamColors(config.TeamColorsFile); err != nil {
			return err
		}
	}
	if err := generateReport(logger); err != nil {
		return err
	}
	if config.Watch {
		return watchAndRegenerate(logger)
	}
	return nil
}

//nolint:funlen // mostly sequential figure plumbing
func generateReport(l *log.Logger) error {
	start := time.Now()
	laps, err := model.LoadFile(config.LapsFile)
	if err != nil {
		return err
	}
	l.Info("lap table loaded",
		log.String("input", config.LapsFile),
		log.Int("laps", len(laps)))

	// pick up watermark changes between watch iterations
	render.ResetTheme()

	figures := map[string]*render.Figure{}
	distFigures, err := distributions.GenerateAll(laps)
	if err != nil {
		return err
	}
	longrunFigures, err := longruns.GenerateAll(laps)
	if err != nil {
		return err
	}
	reliabilityFigures, err := reliability.GenerateAll(laps)
	if err != nil {
		return err
	}
	for _, m := range []map[string]*render.Figure{
		distFigures, longrunFigures, reliabilityFigures,
	} {
		for key, fig := range m {
			figures[key] = fig
		}
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return err
	}
	saved := []string{}
	skipped := []string{}
	keys := make([]string, 0, len(figures))
	for key := range figures {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fig := figures[key]
		if fig == nil {
			l.Debug("no data for figure", log.String("figure", key))
			skipped = append(skipped, key)
			continue
		}
		filename := key + ".png"
		if err := render.SaveFigure(fig, filepath.Join(config.OutputDir, filename)); err != nil {
			return err
		}
		saved = append(saved, filename)
	}

	if err := writeManifest(saved, skipped, len(laps)); err != nil {
		return err
	}
	l.Info("report generated",
		log.String("outputDir", config.OutputDir),
		log.Int("figures", len(saved)),
		log.Int("skipped", len(skipped)),
		log.Duration("took", time.Since(start)))
	return nil
}

func writeManifest(saved, skipped []string, lapCount int) error {
	manifest := map[string]any{
		"runId":       uuid.New().String(),
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
		"input":       config.LapsFile,
		"laps":        lapCount,
		"minLaps":     config.LongRunMinLaps,
		"figures":     saved,
		"skipped":     skipped,
	}
	path := filepath.Join(config.OutputDir, "manifest.json")
	return os.WriteFile(path, []byte(oj.JSON(manifest, 2)), 0o644)
}

func watchAndRegenerate(l *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(config.LapsFile); err != nil {
		return err
	}
	l.Info("watching lap table", log.String("input", config.LapsFile))
	for {
		select {
		case <-ctx.Done():
			l.Info("shutting down watch mode")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			l.Debug("change detected",
				log.String("file", event.Name), log.Any("event", event))
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {

				if err := generateReport(l); err != nil {
					l.Error("regeneration failed", log.ErrorField(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.Error("watcher error", log.ErrorField(err))
		}
	}
}
