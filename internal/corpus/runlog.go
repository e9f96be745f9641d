package corpus

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records one pipeline invocation for provenance.
type RunLog struct {
	RunID      string    `json:"run_id"`
	Stage      string    `json:"stage"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Args       []string  `json:"args,omitempty"`
	Languages  []string  `json:"languages,omitempty"`
	Outputs    []string  `json:"outputs,omitempty"`
}

// NewRunLog starts a run log for a pipeline stage.
func NewRunLog(stage string, args []string) *RunLog {
	return &RunLog{
		RunID:     uuid.NewString(),
		Stage:     stage,
		StartedAt: time.Now().UTC(),
		Args:      args,
	}
}

// AddOutput records a file the run produced.
func (rl *RunLog) AddOutput(path string) {
	rl.Outputs = append(rl.Outputs, path)
}

// Close stamps the finish time and writes the log under dir as
// <stage>.<run_id>.json. An empty dir disables run logging.
func (rl *RunLog) Close(dir string) error {
	if dir == "" {
		return nil
	}
	rl.FinishedAt = time.Now().UTC()
	return WriteJSON(filepath.Join(dir, rl.Stage+"."+rl.RunID+".json"), rl)
}
