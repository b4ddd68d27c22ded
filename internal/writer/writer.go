// Package writer orchestrates the comparison blog pipeline: research
// lookup, prompt construction, generation, normalization, metrics,
// validation, and persistence.
package writer

import (
	"context"
	"fmt"

	"blogwriter/internal/config"
	"blogwriter/internal/generator"
	"blogwriter/internal/logger"
	"blogwriter/internal/models"
	"blogwriter/internal/normalizer"
	"blogwriter/internal/research"
	"blogwriter/internal/storage"
	"blogwriter/internal/text"
	"blogwriter/pkg/utils"
)

// Generator produces a raw comparison draft for a prompt. The production
// implementation calls the hosted model; tests substitute a fake.
type Generator interface {
	GenerateComparison(ctx context.Context, prompt string) (string, error)
}

// Writer runs the full generation pipeline for subject pairs. Requests
// are fully sequential; the only state shared across batch iterations is
// the client handle.
type Writer struct {
	profile   models.SchemaProfile
	gen       Generator
	research  *research.Store
	store     *storage.Store
	norm      *normalizer.Normalizer
	validator *normalizer.Validator
	log       *logger.Logger
}

// New creates a writer from configuration and a generation client.
func New(cfg *config.Config, gen Generator, log *logger.Logger) *Writer {
	profile := cfg.Profile()

	return &Writer{
		profile:   profile,
		gen:       gen,
		research:  research.NewStore(cfg.Writer.Paths.Research, log),
		store:     storage.NewStore(cfg.Writer.Paths.Output, cfg.Writer.Paths.Logs),
		norm:      normalizer.New(profile),
		validator: normalizer.NewValidator(profile),
		log:       log,
	}
}

// Generate produces, normalizes, and persists one comparison post and
// returns the canonical document. Missing research degrades to an empty
// context; an unparseable model response (after one repair retry) fails
// the request.
func (w *Writer) Generate(ctx context.Context, termA, termB string) (*models.ComparisonDocument, error) {
	slug := utils.Slugify(termA + "-vs-" + termB)
	w.log.Info("generating comparison post", "term_a", termA, "term_b", termB, "slug", slug)

	researchA := w.research.LoadResearch(termA)
	researchB := w.research.LoadResearch(termB)
	researchContext := research.CombineResearch(termA, termB, researchA, researchB)

	prompt := generator.BuildPrompt(termA, termB, researchContext)

	rawText, err := w.gen.GenerateComparison(ctx, prompt)
	if err != nil {
		w.logActivity(termA, termB, false, err.Error())

		return nil, fmt.Errorf("generation failed for %s vs %s: %w", termA, termB, err)
	}

	w.logActivity(termA, termB, true, rawText)

	raw, err := generator.ParseResponse(rawText)
	if err != nil {
		return nil, fmt.Errorf("unparseable model response for %s vs %s: %w", termA, termB, err)
	}

	doc := w.norm.Normalize(raw, termA, termB)

	// Read time is always recomputed, never trusted from input.
	wordCount := text.WordCount(doc)
	doc.ReadTime = text.FormatReadTime(text.ReadTimeMinutes(wordCount, w.profile.WordsPerMinute))
	w.log.Info("computed metrics", "words", wordCount, "read_time", doc.ReadTime)

	for _, warning := range w.validator.Validate(doc) {
		w.log.Warn("schema check", "warning", warning)
	}

	path, err := w.store.SaveDocument(doc, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to persist document for %s vs %s: %w", termA, termB, err)
	}

	w.log.Info("saved comparison post", "path", path)

	return doc, nil
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// GenerateBatch processes pairs strictly one after another. A failure on
// one pair is logged and counted but never aborts the remaining pairs.
func (w *Writer) GenerateBatch(ctx context.Context, pairs []research.Pair) BatchResult {
	var result BatchResult

	for i, pair := range pairs {
		w.log.Info(fmt.Sprintf("[%d/%d] processing pair", i+1, len(pairs)), "term_a", pair.TermA, "term_b", pair.TermB)

		if _, err := w.Generate(ctx, pair.TermA, pair.TermB); err != nil {
			w.log.Error("pair failed", "term_a", pair.TermA, "term_b", pair.TermB, "error", err)
			result.Failed++

			continue
		}

		result.Succeeded++
	}

	return result
}

func (w *Writer) logActivity(termA, termB string, success bool, content string) {
	if _, err := w.store.LogActivity(termA, termB, success, content); err != nil {
		w.log.Warn("failed to write activity log", "error", err)
	}
}
