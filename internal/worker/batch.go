package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pdavydov/leaselint/internal/model"
)

// Evaluator evaluates one contract file
type Evaluator interface {
	EvaluateFile(ctx context.Context, path string) (*model.ContractReport, error)
}

// EvaluateJob assesses a single contract file
type EvaluateJob struct {
	Path      string
	Evaluator Evaluator
}

// Execute runs the evaluation
func (j *EvaluateJob) Execute(ctx context.Context) Result {
	report, err := j.Evaluator.EvaluateFile(ctx, j.Path)
	return &EvaluateResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// EvaluateResult is the outcome of one contract evaluation
type EvaluateResult struct {
	Path   string
	Report *model.ContractReport
	Error  error
}

// GetError returns the error from the evaluation
func (r *EvaluateResult) GetError() error {
	return r.Error
}

// BatchProcessor evaluates multiple contract files concurrently
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		evaluator:   evaluator,
		concurrency: concurrency,
	}
}

// ProcessFiles evaluates the given contract files concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*EvaluateResult {
	if len(paths) == 0 {
		return []*EvaluateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&EvaluateJob{
			Path:      path,
			Evaluator: b.evaluator,
		})
	}

	results := pool.Wait()

	out := make([]*EvaluateResult, len(results))
	for i, result := range results {
		out[i] = result.(*EvaluateResult)
	}

	return out
}

// ProcessManifest reads contract file paths from a manifest (one per line)
// and evaluates them concurrently.
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*EvaluateResult, error) {
	paths, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return b.ProcessFiles(ctx, paths), nil
}

// ReadManifest reads file paths from a manifest file, one per line.
// Empty lines and # comments are skipped; duplicates are dropped.
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
