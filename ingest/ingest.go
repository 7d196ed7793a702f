package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lavanya1309/techical-sales-web-application/geocode"
	"github.com/lavanya1309/techical-sales-web-application/models"
	"github.com/lavanya1309/techical-sales-web-application/store"
)

// normalizeWorkers bounds concurrent row normalizations. Geocoding is the
// slow part of a row, so rows fan out to a small pool; results are gathered
// back in encounter order.
const normalizeWorkers = 8

// Pipeline reads an uploaded workbook, normalizes every row and atomically
// replaces the store's snapshot with the accepted records.
type Pipeline struct {
	store      store.Store
	normalizer *Normalizer
}

func NewPipeline(st store.Store, resolver geocode.Resolver) *Pipeline {
	return &Pipeline{
		store:      st,
		normalizer: NewNormalizer(resolver),
	}
}

// Result reports the outcome of a successful ingestion run.
type Result struct {
	Records []models.SalesRecord
	Skipped int
}

// Ingest validates and parses the payload, drives the normalizer over every
// row, and replaces the store's contents with the accepted records.
//
// Failure modes: ErrUnsupportedUpload before parsing, a wrapped parse error
// for corrupt workbooks, ErrNoValidRows when nothing survives normalization.
// In every failure case the store keeps its prior snapshot.
func (p *Pipeline) Ingest(ctx context.Context, filename, contentType string, data []byte) (*Result, error) {
	if err := ValidateUpload(filename, contentType, int64(len(data))); err != nil {
		return nil, err
	}

	rows, err := readRows(data)
	if err != nil {
		return nil, fmt.Errorf("parsing workbook: %w", err)
	}

	accepted := p.normalizeRows(ctx, rows)
	if len(accepted) == 0 {
		return nil, ErrNoValidRows
	}

	stored, err := p.store.Replace(ctx, accepted)
	if err != nil {
		return nil, fmt.Errorf("replacing records: %w", err)
	}

	slog.Info("ingestion complete",
		"file", filename,
		"rows", len(rows),
		"accepted", len(stored),
		"skipped", len(rows)-len(stored),
	)

	return &Result{
		Records: stored,
		Skipped: len(rows) - len(stored),
	}, nil
}

// normalizeRows fans rows out to the worker pool. Each row's accept/reject
// decision depends only on its own cells and its own geocode lookup; the
// indexed result slice keeps accepted records in encounter order.
func (p *Pipeline) normalizeRows(ctx context.Context, rows []Row) []models.SalesRecord {
	if len(rows) == 0 {
		return nil
	}

	workers := normalizeWorkers
	if len(rows) < workers {
		workers = len(rows)
	}

	jobs := make(chan int)
	results := make([]*models.SalesRecord, len(rows))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec, err := p.normalizer.Normalize(ctx, rows[i])
				if err != nil {
					// +2: 1-based sheet rows, plus the header row
					slog.Warn("row skipped", "row", i+2, "reason", err)
					continue
				}
				results[i] = &rec
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	accepted := make([]models.SalesRecord, 0, len(rows))
	for _, rec := range results {
		if rec != nil {
			accepted = append(accepted, *rec)
		}
	}
	return accepted
}
