package normalize

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

// NativeProber answers the verify query over database/sql instead of the
// client binary. Execution of the normalization script still needs the client.
type NativeProber struct {
	Driver   string // "mysql" or "postgres"
	Host     string
	Port     int
	Database string
}

// buildDSN constructs a DSN for postgres/mysql
func buildDSN(driver, user, pass, host string, port int, db string) (string, error) {
	switch driver {
	case "postgres":
		if port == 0 {
			port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(user, pass),
			Host:     net.JoinHostPort(host, strconv.Itoa(port)),
			Path:     "/" + db,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	case "mysql", "":
		if port == 0 {
			port = 3306
		}
		mc := mysql.NewConfig()
		mc.User = user
		mc.Passwd = pass
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
		mc.DBName = db
		return mc.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported driver: %s", driver)
	}
}

func (p *NativeProber) driverName() string {
	if p.Driver == "" {
		return "mysql"
	}
	return p.Driver
}

func (p *NativeProber) QueryScalar(ctx context.Context, creds Credentials, query string, timeout time.Duration) (int64, error) {
	dsn, err := buildDSN(p.Driver, creds.User, creds.Password, p.Host, p.Port, p.Database)
	if err != nil {
		return 0, err
	}
	db, err := sql.Open(p.driverName(), dsn)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", p.driverName(), err)
	}
	defer db.Close()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.L().Debugw("native probe", "driver", p.driverName(), "host", p.Host, "port", p.Port)

	var n sql.NullInt64
	if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		return 0, fmt.Errorf("query: %w", err)
	}
	if !n.Valid || n.Int64 < 0 {
		return 0, fmt.Errorf("%w: %v", ErrUnreadableCount, n)
	}
	return n.Int64, nil
}
