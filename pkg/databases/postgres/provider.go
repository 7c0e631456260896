package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/haguru/raikiri/config"
	"github.com/haguru/raikiri/internal/interfaces"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

const (
	// DriverPostgres selects lib/pq.
	DriverPostgres = "postgres"
	// DriverPgx selects the jackc/pgx stdlib adapter.
	DriverPgx = "pgx"

	// DefaultConnectTimeout bounds connection establishment when none is configured.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultSSLMode is used when none is configured.
	DefaultSSLMode = "disable"
)

// ConnectionProvider opens one short-lived connection per call.
// There is no pooling, reuse or retry: each handle is limited to a single
// connection and must be closed by the caller.
type ConnectionProvider struct {
	Driver         string
	Host           string
	Port           int
	User           string
	Password       string
	DatabaseName   string
	SSLMode        string
	ConnectTimeout time.Duration

	open func(driverName, dsn string) (*sql.DB, error)
}

// NewConnectionProvider builds a provider from the database settings and secrets.
func NewConnectionProvider(dbConfig *config.Database, secrets *config.Secrets) (interfaces.Connector, error) {
	if dbConfig == nil || secrets == nil {
		return nil, fmt.Errorf("database config and secrets are required")
	}
	switch dbConfig.Driver {
	case DriverPostgres, DriverPgx:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", dbConfig.Driver)
	}

	p := &ConnectionProvider{
		Driver:         dbConfig.Driver,
		Host:           secrets.Host,
		Port:           secrets.Port,
		User:           secrets.User,
		Password:       secrets.Password,
		DatabaseName:   secrets.Name,
		SSLMode:        dbConfig.SSLMode,
		ConnectTimeout: dbConfig.ConnectTimeout,
		open:           sql.Open,
	}
	if p.SSLMode == "" {
		p.SSLMode = DefaultSSLMode
	}
	if p.ConnectTimeout <= 0 {
		p.ConnectTimeout = DefaultConnectTimeout
	}
	return p, nil
}

// DSN renders the keyword/value connection string understood by both
// lib/pq and pgx.
func (p *ConnectionProvider) DSN() string {
	timeoutSeconds := int(p.ConnectTimeout / time.Second)
	if timeoutSeconds < 1 {
		timeoutSeconds = 1
	}

	parts := []string{
		"host=" + dsnValue(p.Host),
		"port=" + strconv.Itoa(p.Port),
		"user=" + dsnValue(p.User),
		"password=" + dsnValue(p.Password),
		"dbname=" + dsnValue(p.DatabaseName),
		"sslmode=" + dsnValue(p.SSLMode),
		"connect_timeout=" + strconv.Itoa(timeoutSeconds),
	}
	return strings.Join(parts, " ")
}

// dsnValue quotes a keyword/value DSN value when it is empty or contains
// spaces, quotes or backslashes.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, " '\\\t") {
		return v
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
	return "'" + escaped + "'"
}

// Open establishes a connection and pings it within the connect timeout.
// Failures are wrapped with ErrConnectivity and leave nothing open.
func (p *ConnectionProvider) Open(ctx context.Context) (*sql.DB, error) {
	open := p.open
	if open == nil {
		open = sql.Open
	}

	db, err := open(p.Driver, p.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s database: %w", ErrConnectivity, p.Driver, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	pingCtx, cancel := context.WithTimeout(ctx, p.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
	}

	return db, nil
}
