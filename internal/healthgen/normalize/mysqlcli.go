package normalize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

// DefaultClientPaths are checked, in order, when mysql is not on PATH.
var DefaultClientPaths = []string{
	"/usr/bin/mysql",
	"/usr/local/bin/mysql",
	"/usr/local/mysql/bin/mysql",
	"/opt/homebrew/bin/mysql",
	"/opt/homebrew/opt/mysql-client/bin/mysql",
	"/usr/local/opt/mysql-client/bin/mysql",
	`C:\xampp\mysql\bin\mysql.exe`,
	`C:\Program Files\MySQL\MySQL Server 8.0\bin\mysql.exe`,
	`C:\Program Files\MySQL\MySQL Server 5.7\bin\mysql.exe`,
	`C:\Program Files (x86)\MySQL\MySQL Server 8.0\bin\mysql.exe`,
	`C:\ProgramData\MySQL\MySQL Server 8.0\bin\mysql.exe`,
}

// MySQLCLI drives the mysql command-line client as a subprocess.
type MySQLCLI struct {
	// Binary is the name looked up on PATH.
	Binary string
	// SearchPaths are the well-known install locations tried after PATH.
	SearchPaths []string
	// ProbeTimeout bounds the `--version` check used while locating.
	ProbeTimeout time.Duration

	path      string
	waitDelay time.Duration
	lookPath  func(string) (string, error)
	stat      func(string) (fs.FileInfo, error)
}

// defaultWaitDelay bounds how long a finished or killed client may leave its
// output pipes held open by a leftover child process.
const defaultWaitDelay = 2 * time.Second

func NewMySQLCLI(searchPaths []string, probeTimeout time.Duration) *MySQLCLI {
	if len(searchPaths) == 0 {
		searchPaths = DefaultClientPaths
	}
	return &MySQLCLI{
		Binary:       "mysql",
		SearchPaths:  searchPaths,
		ProbeTimeout: probeTimeout,
		waitDelay:    defaultWaitDelay,
		lookPath:     exec.LookPath,
		stat:         os.Stat,
	}
}

// Path is the executable found by Locate, or "" before a successful Locate.
func (c *MySQLCLI) Path() string { return c.path }

// Locate tries PATH first (the candidate must answer --version), then SearchPaths.
func (c *MySQLCLI) Locate(ctx context.Context) (string, error) {
	log := logger.L()

	if p, err := c.lookPath(c.Binary); err == nil {
		res, err := c.exec(ctx, p, nil, nil, c.ProbeTimeout, "--version")
		if err == nil && res.ExitCode == 0 {
			log.Debugw("client found on PATH", "path", p, "version", strings.TrimSpace(res.Stdout))
			c.path = p
			return p, nil
		}
		log.Debugw("client on PATH failed version probe", "path", p, "err", err, "exit_code", res.ExitCode)
	}

	for _, p := range c.SearchPaths {
		fi, err := c.stat(p)
		if err != nil || fi.IsDir() {
			continue
		}
		log.Debugw("client found at known location", "path", p)
		c.path = p
		return p, nil
	}
	return "", ErrClientNotFound
}

// Run feeds script to the client on stdin.
func (c *MySQLCLI) Run(ctx context.Context, creds Credentials, script io.Reader, timeout time.Duration) (Result, error) {
	if c.path == "" {
		return Result{}, ErrClientNotFound
	}
	return c.exec(ctx, c.path, &creds, script, timeout, "-u", creds.User)
}

// QueryScalar runs query in batch mode without column headers and parses the
// last non-empty output line as a non-negative integer.
func (c *MySQLCLI) QueryScalar(ctx context.Context, creds Credentials, query string, timeout time.Duration) (int64, error) {
	if c.path == "" {
		return 0, ErrClientNotFound
	}
	res, err := c.exec(ctx, c.path, &creds, nil, timeout, "-u", creds.User, "-N", "-B", "-e", query)
	if err != nil {
		return 0, err
	}
	if res.ExitCode != 0 {
		return 0, &ClientError{ExitCode: res.ExitCode, Stderr: strings.TrimSpace(res.Stderr)}
	}
	return parseCount(res.Stdout)
}

func parseCount(out string) (int64, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	n, err := strconv.ParseInt(last, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnreadableCount, last)
	}
	return n, nil
}

// exec runs one client process. The password travels in MYSQL_PWD so it never
// shows up in the process list.
func (c *MySQLCLI) exec(ctx context.Context, path string, creds *Credentials, stdin io.Reader, timeout time.Duration, args ...string) (Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = c.waitDelay
	cmd.Env = os.Environ()
	if creds != nil && creds.Password != "" {
		cmd.Env = append(cmd.Env, "MYSQL_PWD="+creds.Password)
	}
	if stdin != nil {
		cmd.Stdin = stdin
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.L().Debugw("client call finished", "path", path, "args", redactArgs(args), "elapsed", time.Since(start), "err", err)

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
	if errors.Is(err, exec.ErrWaitDelay) {
		// The client exited cleanly; only a descendant kept the pipes open.
		logger.L().Warnw("client left output pipes open", "path", path, "wait_delay", c.waitDelay)
		return res, nil
	}
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			res.ExitCode = ee.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", path, err)
	}
	return res, nil
}

// redactArgs hides the query text so logs at debug level stay short.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if out[i] == "-e" {
			out[i+1] = "<query>"
		}
	}
	return out
}
