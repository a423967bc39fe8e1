package normalize

import (
	"encoding/json"
	"os"
)

// RunSummary is appended to the run log after every normalize run, pass or fail.
type RunSummary struct {
	RunID       string `json:"run_id"`
	Timestamp   string `json:"timestamp"`
	Client      string `json:"client,omitempty"`
	User        string `json:"user,omitempty"`
	SourceTable string `json:"source_table"`
	SourceCount int64  `json:"source_count"`
	Stage       string `json:"stage"`
	Status      string `json:"status"`
	Kind        string `json:"kind,omitempty"`
	Error       string `json:"error,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
}

func appendRunLog(path string, summary RunSummary) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	return enc.Encode(summary)
}
