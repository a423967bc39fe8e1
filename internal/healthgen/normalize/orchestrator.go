// Package normalize drives the external normalization script against a
// loaded healthcare_system database.
//
// A run walks four gates in order: locate the mysql client, obtain
// credentials, verify the denormalized source table has rows, and stream the
// normalization script to the client. Any gate failing ends the run with a
// *StageError; nothing is retried.
package normalize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

const defaultUser = "root"

// Settings are the fixed inputs of a run.
type Settings struct {
	SourceDatabase string
	SourceTable    string
	TargetDatabase string
	ScriptPath     string
	ProbeTimeout   time.Duration
	ExecTimeout    time.Duration
	// RunLog, when set, receives one JSON line per run.
	RunLog string
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the names that are spliced into SQL text.
func (s Settings) Validate() error {
	names := []struct {
		key, val string
	}{
		{"source_database", s.SourceDatabase},
		{"source_table", s.SourceTable},
		{"target_database", s.TargetDatabase},
	}
	for _, n := range names {
		if !identRe.MatchString(n.val) {
			return fmt.Errorf("invalid %s %q", n.key, n.val)
		}
	}
	return nil
}

type Orchestrator struct {
	Client Client
	// Verifier answers the row-count gate. Nil means Client.
	Verifier Verifier
	Prompter Prompter
	Out      io.Writer
	Settings Settings

	// openScript defaults to os.Open.
	openScript func(string) (io.ReadCloser, error)
}

func (o *Orchestrator) printf(format string, args ...any) {
	if o.Out != nil {
		fmt.Fprintf(o.Out, format, args...)
	}
}

func (o *Orchestrator) countQuery() string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s.%s;", o.Settings.SourceDatabase, o.Settings.SourceTable)
}

// Run executes the four gates. args are the optional positional
// (username, password) CLI arguments.
func (o *Orchestrator) Run(ctx context.Context, args []string) (*RunSummary, error) {
	log := logger.L()
	start := time.Now()
	summary := &RunSummary{
		RunID:       uuid.NewString(),
		Timestamp:   start.UTC().Format(time.RFC3339),
		SourceTable: o.Settings.SourceDatabase + "." + o.Settings.SourceTable,
	}

	err := o.run(ctx, args, summary)

	summary.DurationMS = time.Since(start).Milliseconds()
	if err != nil {
		summary.Status = "failed"
		summary.Error = err.Error()
		var se *StageError
		if errors.As(err, &se) {
			summary.Stage = se.Stage.String()
			summary.Kind = se.Kind.String()
		}
		log.Errorw("normalize failed", "run_id", summary.RunID, "stage", summary.Stage, "kind", summary.Kind, "err", err)
		o.printFailure(err)
	} else {
		summary.Status = "ok"
		log.Infow("normalize complete", "run_id", summary.RunID, "source_count", summary.SourceCount, "duration_ms", summary.DurationMS)
		o.printf("%s\n  SUCCESS! Normalized database created.\n  Database: %s\n%s\n",
			strings.Repeat("=", 60), o.Settings.TargetDatabase, strings.Repeat("=", 60))
	}

	if o.Settings.RunLog != "" {
		if lerr := appendRunLog(o.Settings.RunLog, *summary); lerr != nil {
			log.Warnw("append run log", "path", o.Settings.RunLog, "err", lerr)
		}
	}
	return summary, err
}

func (o *Orchestrator) run(ctx context.Context, args []string, summary *RunSummary) error {
	log := logger.L()

	if err := o.Settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	summary.Stage = StageLocate.String()
	o.printf("[1/4] Finding MySQL installation...\n")
	path, err := o.Client.Locate(ctx)
	if err != nil {
		return &StageError{Stage: StageLocate, Kind: KindEnvironment, Err: err,
			Hint: []string{"Install MySQL or add it to your PATH."}}
	}
	summary.Client = path
	o.printf("  Found: %s\n\n", path)

	summary.Stage = StageAuthenticate.String()
	o.printf("[2/4] MySQL credentials\n")
	creds, err := o.credentials(args)
	if err != nil {
		return &StageError{Stage: StageAuthenticate, Kind: KindEnvironment, Err: err}
	}
	summary.User = creds.User
	o.printf("\n")

	summary.Stage = StageVerify.String()
	o.printf("[3/4] Verifying source data...\n")
	count, err := o.verify(ctx, creds)
	if err != nil {
		return err
	}
	summary.SourceCount = count
	o.printf("  Source table has %d records\n\n", count)

	summary.Stage = StageExecute.String()
	o.printf("[4/4] Running normalization script...\n")
	o.printf("  - Dropping existing %s (if any)\n", o.Settings.TargetDatabase)
	o.printf("  - Creating normalized tables\n")
	o.printf("  - Extracting unique data from denormalized table\n")
	o.printf("  - Loading into normalized structure\n\n")
	log.Infow("executing normalization script", "script", o.Settings.ScriptPath, "timeout", o.Settings.ExecTimeout)
	return o.execute(ctx, creds)
}

// credentials takes username and password from args when given and prompts for the rest.
func (o *Orchestrator) credentials(args []string) (Credentials, error) {
	if len(args) >= 2 {
		o.printf("  Using provided credentials (user: %s)\n", args[0])
		return Credentials{User: args[0], Password: args[1]}, nil
	}
	if o.Prompter == nil {
		return Credentials{}, errors.New("no credentials given and no interactive prompt available")
	}

	var creds Credentials
	if len(args) == 1 {
		creds.User = args[0]
	} else {
		u, err := o.Prompter.Username(defaultUser)
		if err != nil {
			return Credentials{}, err
		}
		creds.User = u
	}
	pw, err := o.Prompter.Password()
	if err != nil {
		return Credentials{}, err
	}
	creds.Password = pw
	return creds, nil
}

func (o *Orchestrator) verifyHint() []string {
	return []string{
		fmt.Sprintf("Make sure %s database exists with data.", o.Settings.SourceDatabase),
		"Run: mysql -u root -p < healthcare_ddl.sql",
		fmt.Sprintf("Then: mysql -u root -p %s < healthcare_bulk_data.sql", o.Settings.SourceDatabase),
	}
}

// verify requires a readable, non-zero row count before anything is executed.
func (o *Orchestrator) verify(ctx context.Context, creds Credentials) (int64, error) {
	v := o.Verifier
	if v == nil {
		v = o.Client
	}
	n, err := v.QueryScalar(ctx, creds, o.countQuery(), o.Settings.ProbeTimeout)
	if err != nil {
		kind := KindConnection
		if errors.Is(err, ErrUnreadableCount) {
			kind = KindPrecondition
		}
		return 0, &StageError{Stage: StageVerify, Kind: kind, Err: fmt.Errorf("source data not available: %w", err), Hint: o.verifyHint()}
	}
	if n == 0 {
		return 0, &StageError{Stage: StageVerify, Kind: KindPrecondition, Err: ErrEmptySource, Hint: o.verifyHint()}
	}
	return n, nil
}

func (o *Orchestrator) execute(ctx context.Context, creds Credentials) error {
	open := o.openScript
	if open == nil {
		open = func(p string) (io.ReadCloser, error) { return os.Open(p) }
	}
	f, err := open(o.Settings.ScriptPath)
	if err != nil {
		return &StageError{Stage: StageExecute, Kind: KindEnvironment, Err: fmt.Errorf("SQL file not found: %w", err)}
	}
	defer f.Close()

	res, err := o.Client.Run(ctx, creds, f, o.Settings.ExecTimeout)
	if err != nil {
		return &StageError{Stage: StageExecute, Kind: KindExecution, Err: err}
	}
	if res.ExitCode != 0 {
		return &StageError{Stage: StageExecute, Kind: KindExecution,
			Err: &ClientError{ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)}}
	}
	if out := strings.TrimSpace(res.Stdout); out != "" {
		o.printf("%s\n", out)
	}
	return nil
}

func (o *Orchestrator) printFailure(err error) {
	o.printf("  ERROR: %v\n", err)
	var se *StageError
	if errors.As(err, &se) {
		for _, h := range se.Hint {
			o.printf("  %s\n", h)
		}
	}
	o.printf("\n%s\n  FAILED! Check errors above.\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60))
}
