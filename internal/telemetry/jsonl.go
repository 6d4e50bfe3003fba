// internal/telemetry/jsonl.go
package telemetry

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"go-typing-defense/internal/event"
)

// Record is one line of the telemetry log.
type Record struct {
	Kind    string      `json:"kind"` // "wave" or "session"
	MatchID string      `json:"match_id"`
	Data    interface{} `json:"data"`
}

// JSONLSink writes wave and session summaries as JSON lines.
type JSONLSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewJSONLSink(w io.Writer) *JSONLSink {
	return &JSONLSink{enc: json.NewEncoder(w)}
}

func (s *JSONLSink) RecordWaveSummary(summary event.WaveSummary) {
	s.write(Record{Kind: "wave", MatchID: summary.MatchID, Data: summary})
}

func (s *JSONLSink) RecordSession(summary event.SessionSummary) {
	s.write(Record{Kind: "session", MatchID: summary.MatchID, Data: summary})
}

func (s *JSONLSink) write(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(r); err != nil {
		log.Printf("Error writing telemetry record: %v", err)
	}
}
