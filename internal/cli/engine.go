package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pdavydov/leaselint/internal/assess"
	"github.com/pdavydov/leaselint/internal/cache"
	"github.com/pdavydov/leaselint/internal/extract"
	"github.com/pdavydov/leaselint/internal/model"
	"github.com/pdavydov/leaselint/internal/oracle"
	"github.com/pdavydov/leaselint/internal/render"
	"github.com/pdavydov/leaselint/internal/rules"
)

// buildConsultant wires the oracle stack from configuration: provider,
// containment adapter, and the response cache. Returns nil when no
// provider is configured; the assessor then skips consultation entirely.
func buildConsultant(cfg *model.Config) (oracle.Consultant, error) {
	ocfg := oracle.ConfigFromModel(cfg.Oracle)

	switch strings.ToLower(ocfg.Provider) {
	case "openai":
		if ocfg.APIKey == "" {
			ocfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if ocfg.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		if ocfg.APIKey == "" {
			ocfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if ocfg.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if ocfg.BaseURL == "" {
			ocfg.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}

	provider, err := oracle.NewProvider(ocfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	var consultant oracle.Consultant = oracle.NewAdapter(provider, ocfg)

	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		consultant = oracle.NewCachedConsultant(consultant, layered)
	}

	return consultant, nil
}

// clauseDocument is the JSON input shape for pre-extracted clauses
type clauseDocument struct {
	Jurisdiction string         `json:"jurisdiction,omitempty"`
	Clauses      []model.Clause `json:"clauses"`
}

// loadClauses reads clause records from a file. JSON files carry
// pre-extracted clauses (bare array or {"clauses": [...]}); anything else
// is treated as raw contract text or HTML and split by the extractor.
func loadClauses(path string) ([]model.Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		var doc clauseDocument
		if err := json.Unmarshal(data, &doc); err == nil && len(doc.Clauses) > 0 {
			return doc.Clauses, nil
		}
		var clauses []model.Clause
		if err := json.Unmarshal(data, &clauses); err != nil {
			return nil, fmt.Errorf("parse clause JSON: %w", err)
		}
		return clauses, nil
	}

	return extract.NewDocumentExtractor().Extract(string(data)), nil
}

// fileEvaluator adapts the aggregator to the batch worker's Evaluator
// interface: one contract file in, one report out.
type fileEvaluator struct {
	aggregator   *assess.Aggregator
	jurisdiction string
}

func newFileEvaluator(cfg *model.Config, consultant oracle.Consultant, jurisdiction string) *fileEvaluator {
	assessor := assess.NewAssessor(consultant)
	return &fileEvaluator{
		aggregator:   assess.NewAggregator(assessor, rules.NewRegistry(), cfg.Concurrency.AssessWorkers),
		jurisdiction: jurisdiction,
	}
}

func (e *fileEvaluator) EvaluateFile(ctx context.Context, path string) (*model.ContractReport, error) {
	clauses, err := loadClauses(path)
	if err != nil {
		return nil, err
	}
	report := e.aggregator.Evaluate(ctx, clauses, e.jurisdiction)
	return &report, nil
}

// renderOutputs writes the report to the requested paths and prints the
// terminal summary.
func renderOutputs(report *model.ContractReport, jsonPath, mdPath string, includeFooter bool) error {
	renderer := render.NewRenderer(includeFooter)

	if jsonPath != "" {
		if err := renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", mdPath)
		}
	}

	renderer.RenderSummary(report, os.Stdout)
	return nil
}
