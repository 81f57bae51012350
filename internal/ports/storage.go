package ports

// Storage persists analysis reports to durable storage. The backing store
// (bbolt) keys each report by a caller-chosen label. Concurrent reads are
// safe; writes are serialized by the adapter.
//
// Crash safety: SaveReport must be transactional. A crash mid-write must not
// corrupt previously committed reports.
type Storage interface {
	// SaveReport persists a report under label, overwriting any prior
	// report with the same label.
	SaveReport(label string, rec *ReportRecord) error

	// LoadReport retrieves the report stored under label.
	// Returns nil, nil if no such report exists.
	LoadReport(label string) (*ReportRecord, error)

	// ListReports returns all stored labels in lexical order.
	ListReports() ([]string, error)

	// DeleteReport removes the report stored under label.
	// Idempotent: deleting a nonexistent label is not an error.
	DeleteReport(label string) error

	// Close releases the underlying database handle.
	Close() error
}

// ReportRecord is the serialized form of one analysis run: which patterns
// were matched against a corpus, what every algorithm found, and the
// query-scoped diagnostic counters.
type ReportRecord struct {
	Label        string                 `json:"label"`
	CorpusLength int                    `json:"corpus_length"`
	Patterns     []string               `json:"patterns"`
	MotifBudget  int                    `json:"motif_budget"`
	Results      map[Algo][]MatchResult `json:"results"`
	ExactOffsets map[string][]int       `json:"exact_offsets"` // pattern -> starts
	Calls        uint64                 `json:"calls"`
	ElapsedMs    int64                  `json:"elapsed_ms"`
	CreatedAt    int64                  `json:"created_at"` // unix timestamp
}
