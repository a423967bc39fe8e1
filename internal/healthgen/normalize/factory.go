package normalize

import (
	"fmt"
)

// NewVerifier returns the backend for the verify gate: the client binary
// ("client", the default) or a direct database/sql connection ("native").
func NewVerifier(mode string, cli *MySQLCLI, native *NativeProber) (Verifier, error) {
	switch mode {
	case "", "client", "cli":
		return cli, nil
	case "native":
		if native == nil {
			return nil, fmt.Errorf("native verify mode needs connection settings")
		}
		return native, nil
	default:
		return nil, fmt.Errorf("unsupported verify mode: %s", mode)
	}
}
