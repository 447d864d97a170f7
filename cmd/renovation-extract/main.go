// renovation-extract processes a single transcript from the command line:
// it extracts the project details, prints them, and writes the workbook
// next to the input file (or to -o).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/renotools/renovation-extractor/constants"
	"github.com/renotools/renovation-extractor/internal/common"
	"github.com/renotools/renovation-extractor/internal/export"
	"github.com/renotools/renovation-extractor/internal/extract"
	"github.com/renotools/renovation-extractor/internal/llm"
	"github.com/renotools/renovation-extractor/internal/llm/openai"
	"github.com/renotools/renovation-extractor/internal/pipeline"
)

func main() {
	output := flag.String("o", "", "output .xlsx path (default: alongside the input)")
	configPath := flag.String("config", "", "optional YAML config file")
	verbose := flag.Bool("v", false, "log pipeline stages to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-o out.xlsx] [-config cfg.yaml] <transcript.docx|transcript.pdf>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.ApplyFile(*configPath); err != nil {
		fail("load config file: %v", err)
	}
	for _, warning := range cfg.Warnings() {
		color.Yellow("warning: %s", warning)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fail("read transcript: %v", err)
	}

	openaiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		extract.NewDocumentExtractor(logger),
		llm.NewExtractor(openaiClient, logger),
		export.NewRenderer(logger),
		logger,
	)

	result, artifact, err := processor.ProcessTranscript(context.Background(), data, filepath.Ext(inputPath))
	if err != nil {
		fail("%v", err)
	}

	printDetails(result)

	outPath := *output
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(inputPath), constants.ArtifactFilename)
	}
	if err := os.WriteFile(outPath, artifact, 0o644); err != nil {
		fail("write workbook: %v", err)
	}
	color.Green("Workbook written to %s", outPath)
}

func printDetails(result llm.Result) {
	if result.Fallback {
		color.Yellow("Model output was not valid JSON; fallback record substituted.")
		if result.RawOutput != "" {
			fmt.Fprintln(os.Stderr, "Raw model output:")
			fmt.Fprintln(os.Stderr, result.RawOutput)
		}
	}

	label := color.New(color.FgCyan, color.Bold)
	for _, name := range constants.FieldNames {
		value, ok := result.Details[name]
		text := constants.NotProvided
		if ok && value != nil {
			switch t := value.(type) {
			case []any:
				parts := make([]string, 0, len(t))
				for _, item := range t {
					parts = append(parts, fmt.Sprintf("%v", item))
				}
				text = strings.Join(parts, ", ")
			default:
				text = fmt.Sprintf("%v", t)
			}
		}
		fmt.Printf("%s %s\n", label.Sprintf("%-20s", name+":"), text)
	}
}

func fail(format string, args ...any) {
	color.Red("error: "+format, args...)
	os.Exit(1)
}
