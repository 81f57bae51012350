// Package app wires adapters and domain logic together. The matchers stay
// pure — file reading, persistence, and watching all happen here, never in
// internal/domain.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/corey/seqsuite/internal/domain/batch"
	"github.com/corey/seqsuite/internal/domain/suite"
	"github.com/corey/seqsuite/internal/ports"
)

// Service is the analysis front door used by the CLI.
type Service struct {
	analyzer *suite.Analyzer
	storage  ports.Storage // optional; nil disables persistence
	watcher  ports.Watcher // optional; nil disables WatchFile
}

// NewService builds a Service. Any argument may be nil: a nil factory skips
// the multi-pattern report section, a nil storage skips persistence, a nil
// watcher disables watch mode.
func NewService(factory suite.ScannerFactory, storage ports.Storage, watcher ports.Watcher) *Service {
	return &Service{
		analyzer: suite.NewAnalyzer(factory),
		storage:  storage,
		watcher:  watcher,
	}
}

// AnalyzeText runs the full suite over corpus and returns the serializable
// record. When storage is configured and label is non-empty, the record is
// persisted under label.
func (s *Service) AnalyzeText(label, corpus string, patterns []string, motifBudget int) (*ports.ReportRecord, error) {
	rep := s.analyzer.Analyze(corpus, patterns, motifBudget)
	rec := toRecord(label, rep)
	if s.storage != nil && label != "" {
		if err := s.storage.SaveReport(label, rec); err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
	}
	return rec, nil
}

// AnalyzeFile reads path and analyzes its contents. The corpus is fully
// materialized in memory; the matchers never see the file.
func (s *Service) AnalyzeFile(label, path string, patterns []string, motifBudget int) (*ports.ReportRecord, error) {
	corpus, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return s.AnalyzeText(label, string(corpus), patterns, motifBudget)
}

// BatchFiles reads every path and fans the exact matcher out over the
// resulting corpora. Result order matches input order.
func (s *Service) BatchFiles(paths []string, pattern string, workers int) ([][]int, error) {
	corpora := make([]string, len(paths))
	for i, path := range paths {
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read corpus %s: %w", path, err)
		}
		corpora[i] = string(blob)
	}
	return batch.Find(corpora, pattern, workers)
}

// WatchFile re-analyzes path every time it changes, delivering each record
// (or error) to onReport. Blocks until Stop is called on the watcher or the
// initial Watch fails.
func (s *Service) WatchFile(path string, patterns []string, motifBudget int, onReport func(*ports.ReportRecord, error)) error {
	if s.watcher == nil {
		return fmt.Errorf("no watcher configured")
	}
	return s.watcher.Watch(path, func(changed string) {
		onReport(s.AnalyzeFile("", changed, patterns, motifBudget))
	})
}

// Close releases held resources (storage handle, watcher).
func (s *Service) Close() error {
	var first error
	if s.watcher != nil {
		if err := s.watcher.Stop(); err != nil {
			first = err
		}
	}
	if s.storage != nil {
		if err := s.storage.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// toRecord flattens a suite report into its persistable form.
func toRecord(label string, rep *suite.Report) *ports.ReportRecord {
	return &ports.ReportRecord{
		Label:        label,
		CorpusLength: rep.CorpusLength,
		Patterns:     rep.Patterns,
		MotifBudget:  rep.MotifBudget,
		Results:      rep.Results(),
		ExactOffsets: rep.Exact,
		Calls:        rep.Stats.Calls,
		ElapsedMs:    rep.Stats.Elapsed.Milliseconds(),
		CreatedAt:    time.Now().Unix(),
	}
}
