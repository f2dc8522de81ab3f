package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/schollz/progressbar/v3"

	"github.com/Akshayy90/Daily-Progress.Tracker/internal/config"
	"github.com/Akshayy90/Daily-Progress.Tracker/internal/gitlab"
	"github.com/Akshayy90/Daily-Progress.Tracker/internal/report"
	"github.com/Akshayy90/Daily-Progress.Tracker/internal/tracker"
)

var (
	username    string
	rosterPath  string
	dateStr     string
	utcOffset   string
	outputDir   string
	formats     string
	gitlabURL   string
	gitlabToken string
	author      string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "progress-tracker",
	Short: "Track daily GitLab push activity for a user or a roster",
	Long: `progress-tracker aggregates a user's (or a CSV roster of users') push
events from GitLab for one calendar day and renders table, chart and
spreadsheet reports.`,
	Run: runReport,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&username, "user", "u", "", "GitLab username to report on")
	rootCmd.Flags().StringVar(&rosterPath, "roster", "", "CSV file with a 'username' column for batch reports")
	rootCmd.Flags().StringVarP(&dateStr, "date", "d", "", "Report date (YYYY-MM-DD, default today in the report timezone)")
	rootCmd.Flags().StringVar(&utcOffset, "utc-offset", "", "Report timezone as a UTC offset (default +05:30)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory")
	rootCmd.Flags().StringVar(&formats, "formats", "", "Comma-separated output formats: csv,json,html,xlsx")

	rootCmd.Flags().StringVar(&gitlabURL, "gitlab-url", "", "GitLab API base URL")
	rootCmd.Flags().StringVar(&gitlabToken, "gitlab-token", "", "GitLab private token")

	rootCmd.Flags().StringVar(&author, "author", "", "Report author")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional YAML config file")
}

func runReport(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags override env and file settings.
	if gitlabURL != "" {
		cfg.GitLab.BaseURL = gitlabURL
	}
	if gitlabToken != "" {
		cfg.GitLab.Token = gitlabToken
	}
	if utcOffset != "" {
		cfg.Report.UTCOffset = utcOffset
	}
	if dateStr != "" {
		cfg.Report.Date = dateStr
	}
	if outputDir != "" {
		cfg.Output.Directory = outputDir
	}
	if formats != "" {
		cfg.Output.Formats = parseCommaList(formats)
	}
	if author != "" {
		cfg.Author = author
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	offset, err := report.ParseOffset(cfg.Report.UTCOffset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	day := report.Today(offset)
	if cfg.Report.Date != "" {
		day, err = time.Parse("2006-01-02", cfg.Report.Date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid report date: %v\n", err)
			os.Exit(1)
		}
	}

	usernames, err := loadUsernames()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(usernames) == 0 {
		fmt.Fprintln(os.Stderr, "Provide --user or --roster")
		os.Exit(1)
	}

	fmt.Printf("Generating daily progress report for %s (%d user(s), UTC%s)\n",
		day.Format("2006-01-02"), len(usernames), cfg.Report.UTCOffset)

	client := gitlab.NewClient(cfg.GitLab.BaseURL, cfg.GitLab.Token, nil)
	app := tracker.New(cfg, gitlab.NewSource(client), gitlab.NewNameResolver(client))

	bar := progressbar.NewOptions(len(usernames),
		progressbar.OptionSetDescription("Fetching activity"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)
	_ = bar.RenderBlank()

	ctx := context.Background()
	summaries := app.SummarizeAll(ctx, usernames, day, offset, func() {
		_ = bar.Add(1)
	})
	finishBar(bar)

	rep := report.BuildReport(summaries)
	printReport(rep)

	if err := app.Export(rep, day); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to export report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nReports saved to %s/\n", cfg.Output.Directory)
}

func loadUsernames() ([]string, error) {
	if rosterPath != "" {
		f, err := os.Open(rosterPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open roster: %w", err)
		}
		defer f.Close()
		return report.ReadRoster(f)
	}
	if username != "" {
		return []string{username}, nil
	}
	return nil, nil
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
