package report

import (
	"encoding/json"
	"io"
	"time"

	"purifier/internal/dedupe"
)

// Meta describes the run that produced a result.
type Meta struct {
	RunID       string
	Source      string
	GeneratedAt time.Time
	Thresholds  dedupe.Thresholds
}

// Stats are the final counts of a run.
type Stats struct {
	Tracks    int `json:"tracks"`
	Confirmed int `json:"confirmed_pairs"`
	Suspected int `json:"suspected_pairs"`
}

// ConfirmedGroup lists every pair sharing one recording code.
type ConfirmedGroup struct {
	ISRC  string        `json:"isrc"`
	Pairs []dedupe.Pair `json:"pairs"`
}

// Document is the machine-readable form of a report.
type Document struct {
	RunID              string                  `json:"run_id,omitempty"`
	Source             string                  `json:"source,omitempty"`
	GeneratedAt        time.Time               `json:"generated_at"`
	SuspectedThreshold int                     `json:"suspected_threshold"`
	ConfirmedThreshold int                     `json:"confirmed_threshold"`
	Stats              Stats                   `json:"stats"`
	Confirmed          []ConfirmedGroup        `json:"confirmed"`
	Suspected          []dedupe.SuspectedEntry `json:"suspected"`
}

// NewDocument flattens a result into report order.
func NewDocument(result *dedupe.Result, meta Meta) Document {
	generated := meta.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	doc := Document{
		RunID:              meta.RunID,
		Source:             meta.Source,
		GeneratedAt:        generated.UTC(),
		SuspectedThreshold: meta.Thresholds.Suspected,
		ConfirmedThreshold: meta.Thresholds.Confirmed,
		Stats:              ComputeStats(result),
		Confirmed:          make([]ConfirmedGroup, 0, len(result.ConfirmedOrder)),
		Suspected:          result.Suspected,
	}
	for _, isrc := range result.ConfirmedOrder {
		doc.Confirmed = append(doc.Confirmed, ConfirmedGroup{ISRC: isrc, Pairs: result.Confirmed[isrc]})
	}
	if doc.Suspected == nil {
		doc.Suspected = []dedupe.SuspectedEntry{}
	}
	return doc
}

// ComputeStats returns the counts shown at the end of a run.
func ComputeStats(result *dedupe.Result) Stats {
	if result == nil {
		return Stats{}
	}
	return Stats{
		Tracks:    result.Tracks,
		Confirmed: result.ConfirmedCount(),
		Suspected: result.SuspectedCount(),
	}
}

// WriteJSON encodes the document with two-space indentation.
func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
