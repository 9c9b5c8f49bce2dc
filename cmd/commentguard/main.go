package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/NeuralTrust/CommentGuard/pkg/charts"
	"github.com/NeuralTrust/CommentGuard/pkg/classifier"
	"github.com/NeuralTrust/CommentGuard/pkg/config"
	"github.com/NeuralTrust/CommentGuard/pkg/export"
	"github.com/NeuralTrust/CommentGuard/pkg/filter"
	"github.com/NeuralTrust/CommentGuard/pkg/infra/httpx"
	infraLogger "github.com/NeuralTrust/CommentGuard/pkg/infra/logger"
	"github.com/NeuralTrust/CommentGuard/pkg/loader"
	"github.com/NeuralTrust/CommentGuard/pkg/policy"
	"github.com/NeuralTrust/CommentGuard/pkg/report"
	"github.com/NeuralTrust/CommentGuard/pkg/runner"
)

type options struct {
	inputFile    string
	outputFormat string
	chartType    string
	minSeverity  int
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()
	opts := parseArguments(logger)

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.API.Key == "" {
		// Not fatal here: the credential gap surfaces as per-comment
		// authentication failures absorbed into the records.
		logger.Warn("GROQ_API_KEY is not set; every remote classification will fail")
	}

	comments, err := loader.Load(opts.inputFile)
	if err != nil {
		logger.Fatalf("invalid input: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"file":     opts.inputFile,
		"comments": len(comments),
	}).Info("loaded input batch")

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(cfg.API.Timeout()),
		httpx.WithUserAgent("commentguard"),
	)
	remote := classifier.New(cfg, logger, httpClient)
	lexical := filter.New(nil)
	moderationPolicy := policy.New(lexical, remote, logger, policy.WithPacing(cfg.Moderation.Pacing()))
	batchRunner := runner.New(moderationPolicy, logger)

	records := batchRunner.Run(context.Background(), comments, opts.minSeverity)

	base := export.Basename(opts.inputFile)
	if opts.outputFormat == "csv" || opts.outputFormat == "both" {
		path := base + "_analyzed.csv"
		if err := export.WriteCSV(path, records); err != nil {
			logger.Fatalf("failed to write CSV results: %v", err)
		}
		logger.WithField("file", path).Info("saved CSV results")
	}
	if opts.outputFormat == "json" || opts.outputFormat == "both" {
		path := base + "_analyzed.json"
		if err := export.WriteJSON(path, records); err != nil {
			logger.Fatalf("failed to write JSON results: %v", err)
		}
		logger.WithField("file", path).Info("saved JSON results")
	}

	summary := report.Summarize(records)
	report.Render(os.Stdout, summary)

	if opts.chartType != "none" {
		writeCharts(logger, opts.chartType, summary)
	}
}

func writeCharts(logger *logrus.Logger, chartType string, summary report.Report) {
	if summary.OffensiveCount == 0 {
		logger.Info("no offensive comments to visualize")
		return
	}
	if chartType == "pie" || chartType == "both" {
		if err := charts.WritePie("offense_types_pie.png", summary); err != nil {
			logger.Fatalf("failed to render pie chart: %v", err)
		}
		logger.WithField("file", "offense_types_pie.png").Info("saved pie chart")
	}
	if chartType == "bar" || chartType == "both" {
		if err := charts.WriteBar("offense_types_bar.png", summary); err != nil {
			logger.Fatalf("failed to render bar chart: %v", err)
		}
		logger.WithField("file", "offense_types_bar.png").Info("saved bar chart")
	}
}

func parseArguments(logger *logrus.Logger) options {
	var opts options
	flag.StringVar(&opts.outputFormat, "output-format", "both", "output file format: csv, json or both")
	flag.StringVar(&opts.chartType, "chart-type", "pie", "chart to generate: bar, pie, both or none")
	flag.IntVar(&opts.minSeverity, "min-severity", 1, "minimum severity score to consider offensive (1-10)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] input_file\n\nAI comment moderation system.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.inputFile = flag.Arg(0)

	switch opts.outputFormat {
	case "csv", "json", "both":
	default:
		logger.Fatalf("invalid output format %q: must be csv, json or both", opts.outputFormat)
	}
	switch opts.chartType {
	case "bar", "pie", "both", "none":
	default:
		logger.Fatalf("invalid chart type %q: must be bar, pie, both or none", opts.chartType)
	}
	if opts.minSeverity < 1 || opts.minSeverity > 10 {
		logger.Fatalf("invalid min severity %d: must be between 1 and 10", opts.minSeverity)
	}

	return opts
}
