package normalize

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotFound means no mysql executable was found on PATH or in the known install locations.
	ErrClientNotFound = errors.New("MySQL not found")
	// ErrTimeout is returned when an external call outlives its timeout. It is handled like a non-zero exit.
	ErrTimeout = errors.New("timed out")
	// ErrEmptySource means the source table exists but holds no rows.
	ErrEmptySource = errors.New("source table is empty")
	// ErrUnreadableCount means the row-count probe did not return a non-negative integer.
	ErrUnreadableCount = errors.New("could not read row count")
)

// Stage is one gate of the normalization run.
type Stage int

const (
	StageLocate Stage = iota + 1
	StageAuthenticate
	StageVerify
	StageExecute
)

func (s Stage) String() string {
	switch s {
	case StageLocate:
		return "locate"
	case StageAuthenticate:
		return "authenticate"
	case StageVerify:
		return "verify"
	case StageExecute:
		return "execute"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Kind classifies a terminal failure.
type Kind int

const (
	KindEnvironment Kind = iota + 1
	KindConnection
	KindPrecondition
	KindExecution
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindConnection:
		return "connection"
	case KindPrecondition:
		return "precondition"
	case KindExecution:
		return "execution"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StageError is the terminal error of a run. Hint, when set, tells the user how to fix it.
type StageError struct {
	Stage Stage
	Kind  Kind
	Err   error
	Hint  []string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ClientError carries a non-zero exit from the database client with its stderr verbatim.
type ClientError struct {
	ExitCode int
	Stderr   string
}

func (e *ClientError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("client exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("client exited with status %d: %s", e.ExitCode, e.Stderr)
}
