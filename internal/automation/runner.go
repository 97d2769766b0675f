// Package automation launches the portal-specific scripts that drive a
// browser. The scripts themselves are external collaborators; all this
// package guarantees is the lifecycle event contract.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/chartpull/portal-extractor/gen/ent"
	"github.com/chartpull/portal-extractor/internal/jobs"
	"github.com/chartpull/portal-extractor/internal/registry"
)

// EventSink receives lifecycle events from a run. *jobs.Service satisfies it.
type EventSink interface {
	Advance(ctx context.Context, id uuid.UUID, ev jobs.Event) (*ent.ExtractionJob, error)
}

// ScriptRunner executes one adapter's automation for one job. The run is
// expected to report login_prompt_detected, user_confirmed (via the API),
// extraction_started and extraction_completed itself; the caller converts a
// returned error into extraction_failed.
type ScriptRunner interface {
	Run(ctx context.Context, job *ent.ExtractionJob, handle registry.AdapterHandle, sink EventSink) error
}

// ExecRunner runs the adapter script as a subprocess. Job parameters travel
// through the environment; the script reports progress back over the gRPC
// surface using the job id it is handed.
type ExecRunner struct {
	scriptsDir string
	logger     *slog.Logger
}

func NewExecRunner(scriptsDir string, logger *slog.Logger) *ExecRunner {
	return &ExecRunner{scriptsDir: scriptsDir, logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, job *ent.ExtractionJob, handle registry.AdapterHandle, sink EventSink) error {
	if _, err := sink.Advance(ctx, job.ID, jobs.BrowserLaunched()); err != nil {
		return fmt.Errorf("marking browser launch: %w", err)
	}

	script := filepath.Join(r.scriptsDir, handle.ScriptIdentifier)
	cmd := exec.CommandContext(ctx, script)
	cmd.Env = append(os.Environ(),
		"EXTRACTION_JOB_ID="+job.ID.String(),
		"EXTRACTION_TARGET_URL="+job.TargetURL,
		"EXTRACTION_MODE="+job.ExtractionMode,
		"EXTRACTION_PATIENT_ID="+job.PatientIdentifier,
	)

	r.logger.Info("launching automation script", "job_id", job.ID, "adapter", handle.Name, "script", handle.ScriptIdentifier)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("script %s: %w: %s", handle.ScriptIdentifier, err, lastLines(out, 5))
	}
	r.logger.Info("automation script exited", "job_id", job.ID, "adapter", handle.Name)
	return nil
}

// lastLines keeps error output short enough for an error_message column.
func lastLines(out []byte, n int) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
