package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/config"
	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
)

// maxWorkers bounds the per-user fan-out in batch runs.
const maxWorkers = 4

type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Source   report.EventSource
	Resolver report.ProjectResolver
}

func New(cfg *config.Config, source report.EventSource, resolver report.ProjectResolver) *App {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Source:   source,
		Resolver: resolver,
	}
}

// Summarize runs the single-user pipeline: resolve identity, fetch events,
// filter to the report date, aggregate. Every failure along the way degrades
// to an empty or partial summary instead of propagating.
func (a *App) Summarize(ctx context.Context, username string, day time.Time, offset time.Duration) report.ActivitySummary {
	identity, err := a.Source.ResolveUser(ctx, username)
	if err != nil {
		a.Logger.Warn("user lookup failed", "user", username, "error", err)
	}

	events, err := a.Source.Events(ctx, identity)
	if err != nil {
		a.Logger.Warn("event fetch failed, continuing with no events", "user", username, "error", err)
		events = nil
	}

	pushes := report.FilterPushes(identity, events, day, offset)
	return report.Aggregate(ctx, identity, pushes, a.Resolver)
}

// SummarizeAll fans the per-user pipelines out over a bounded worker pool.
// Each user's pipeline is independent; the shared resolver cache is
// access-synchronized. Result order matches the input order. The optional
// progress callback fires once per completed user.
func (a *App) SummarizeAll(ctx context.Context, usernames []string, day time.Time, offset time.Duration, progress func()) []report.ActivitySummary {
	summaries := make([]report.ActivitySummary, len(usernames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for i, username := range usernames {
		i, username := i, username
		g.Go(func() error {
			summaries[i] = a.Summarize(gctx, username, day, offset)
			if progress != nil {
				progress()
			}
			return nil
		})
	}
	// Per-user failures are recovered inside Summarize; nothing to surface.
	_ = g.Wait()

	return summaries
}

// Export writes the report in every configured output format.
func (a *App) Export(rep report.AggregateReport, day time.Time) error {
	outDir := a.Config.Output.Directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	exporter := report.NewExporter(outDir)
	rows := report.Rows(rep.Summaries)
	datestamp := day.Format("2006-01-02")

	for _, format := range a.Config.Output.Formats {
		switch format {
		case "json":
			filename := fmt.Sprintf("daily_report_%s.json", datestamp)
			if err := exporter.ExportJSON(rep, filename); err != nil {
				a.Logger.Error("failed to export JSON", "error", err)
			} else {
				a.Logger.Info("report exported", "format", "json", "file", filename)
			}

		case "html":
			filename := fmt.Sprintf("daily_report_%s.html", datestamp)
			if err := exporter.ExportHTML(rep, filename, a.Config.Author, day); err != nil {
				a.Logger.Error("failed to export HTML", "error", err)
			} else {
				a.Logger.Info("report exported", "format", "html", "file", filename)
			}

		case "csv":
			if err := report.NewCSVExporter(outDir).Export(rows, day); err != nil {
				a.Logger.Error("failed to export CSV", "error", err)
			} else {
				a.Logger.Info("report exported", "format", "csv")
			}

		case "xlsx":
			if err := report.NewExcelExporter(outDir).Export(rep, day); err != nil {
				a.Logger.Error("failed to export Excel", "error", err)
			} else {
				a.Logger.Info("report exported", "format", "xlsx")
			}
		}
	}

	a.Logger.Info("report generation complete",
		"users", len(rep.Summaries),
		"pushes", rep.TotalPushes,
		"unique_projects", rep.UniqueProjectCount,
	)

	return nil
}
