package normalize

import (
	"context"
	"io"
	"time"
)

// Credentials are passed through to the database untouched; they are only
// validated by the server when first used.
type Credentials struct {
	User     string
	Password string
}

// Result is the captured outcome of one client process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Verifier answers single-value queries such as row counts.
type Verifier interface {
	QueryScalar(ctx context.Context, creds Credentials, query string, timeout time.Duration) (int64, error)
}

// Client is the database engine as seen by the orchestrator: something that can
// be located, fed a script, and asked for a scalar.
type Client interface {
	Verifier
	// Locate returns the executable path or ErrClientNotFound.
	Locate(ctx context.Context) (string, error)
	// Run streams script to the client's stdin. A non-zero exit is reported in
	// Result, not as an error; errors mean the process could not run or timed out.
	Run(ctx context.Context, creds Credentials, script io.Reader, timeout time.Duration) (Result, error)
}
