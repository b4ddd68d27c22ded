// Package main provides the comparison blog writer command: single-pair,
// random-pair, and batch generation plus pair listing.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"blogwriter/internal/config"
	"blogwriter/internal/formatter"
	"blogwriter/internal/generator"
	"blogwriter/internal/logger"
	"blogwriter/internal/models"
	"blogwriter/internal/research"
	"blogwriter/internal/text"
	"blogwriter/internal/writer"
)

func main() {
	termA := flag.String("term-a", "", "First subject to compare")
	termB := flag.String("term-b", "", "Second subject to compare (used with -term-a)")
	random := flag.Bool("random", false, "Select a random subject pair from the pair table")
	batch := flag.Bool("batch", false, "Generate posts for a range of pairs from the pair table")
	startLine := flag.Int("start-line", 2, "Starting line number in the pair table (1-based, line 2 is the first data row)")
	endLine := flag.Int("end-line", 5, "Ending line number in the pair table (1-based, inclusive)")
	listPairs := flag.Bool("list-pairs", false, "List available subject pairs")
	limit := flag.Int("limit", 10, "Maximum number of pairs to display with -list-pairs")
	configPath := flag.String("config", "", "Path to YAML config file (built-in defaults when empty)")

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Writer.Logging.Level)

	switch {
	case *listPairs:
		if err := runListPairs(cfg, *limit); err != nil {
			log.Error("failed to list pairs", "error", err)
			os.Exit(1)
		}
	case *batch:
		runBatch(cfg, log, *startLine, *endLine)
	case *random:
		table, tableErr := research.LoadPairTable(cfg.PairsPath())
		if tableErr != nil {
			log.Error("failed to load pair table", "error", tableErr)
			os.Exit(1)
		}

		pair, pairErr := table.Random()
		if pairErr != nil {
			log.Error("failed to select pair", "error", pairErr)
			os.Exit(1)
		}

		log.Info("selected random pair", "term_a", pair.TermA, "term_b", pair.TermB)
		runSingle(cfg, log, pair.TermA, pair.TermB)
	case *termA != "" && *termB != "":
		runSingle(cfg, log, *termA, *termB)
	default:
		fmt.Fprintln(os.Stderr, "Error: specify two subjects (-term-a and -term-b), or use -random, -batch, or -list-pairs.")
		flag.PrintDefaults()
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

func newWriter(cfg *config.Config, log *logger.Logger) *writer.Writer {
	gen, err := generator.NewClient(context.Background(), cfg.Writer.Generation)
	if err != nil {
		log.Error("failed to initialize generation client", "error", err)
		os.Exit(1)
	}

	return writer.New(cfg, gen, log)
}

func runSingle(cfg *config.Config, log *logger.Logger, termA, termB string) {
	w := newWriter(cfg, log)

	fmt.Printf("Generating comparison blog post: %s vs %s\n", termA, termB)

	doc, err := w.Generate(context.Background(), termA, termB)
	if err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}

	printSummary(doc)
}

func runBatch(cfg *config.Config, log *logger.Logger, startLine, endLine int) {
	table, err := research.LoadPairTable(cfg.PairsPath())
	if err != nil {
		log.Error("failed to load pair table", "error", err)
		os.Exit(1)
	}

	pairs := table.Range(startLine, endLine)
	if len(pairs) == 0 {
		log.Error("no pairs in the requested range", "start_line", startLine, "end_line", endLine)
		os.Exit(1)
	}

	if startLine < 2 {
		log.Warn("start line adjusted to line 2 (minimum)")
	}

	if endLine-2 >= table.Len() {
		log.Warn(fmt.Sprintf("end line adjusted to line %d (maximum)", table.Len()+1))
	}

	w := newWriter(cfg, log)

	fmt.Printf("Generating posts for pairs from lines %d to %d\n", startLine, endLine)

	result := w.GenerateBatch(context.Background(), pairs)

	fmt.Printf("\nBatch processing complete. Generated %d posts, %d failed.\n", result.Succeeded, result.Failed)
}

func runListPairs(cfg *config.Config, limit int) error {
	table, err := research.LoadPairTable(cfg.PairsPath())
	if err != nil {
		return err
	}

	total := table.Len()
	fmt.Printf("Found %d subject pairs in %s.\n\n", total, cfg.PairsPath())

	shown := limit
	if shown > total {
		shown = total
	}

	rows := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		pair := table.Pairs[i]
		rows = append(rows, []string{strconv.Itoa(i + 2), pair.TermA, pair.TermB})
	}

	fmt.Print(formatter.RenderTable([]string{"Line", "Term A", "Term B"}, rows))

	if shown < total {
		fmt.Printf("\n... and %d more pairs.\n", total-shown)
	}

	fmt.Println("\nTo generate posts for a range of pairs, use: blogwriter -batch -start-line 2 -end-line 5")

	return nil
}

func printSummary(doc *models.ComparisonDocument) {
	fmt.Println("\nBlog post generated successfully!")
	fmt.Printf("Title: %s\n", doc.Title)
	fmt.Printf("Slug: %s\n", doc.Slug)
	fmt.Printf("Word count: %d\n", text.WordCount(doc))
	fmt.Printf("Read time: %s\n", doc.ReadTime)
}
