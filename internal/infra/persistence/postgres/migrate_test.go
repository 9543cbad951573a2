package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// schemaState is the server side of the fake database: the migration version row and executed statements.
type schemaState struct {
	mu           sync.Mutex
	versionTable bool
	version      *int64
	dirty        bool
	statements   []string
	closed       int
}

func (s *schemaState) executed(fragment string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range s.statements {
		if strings.Contains(stmt, fragment) {
			return true
		}
	}

	return false
}

type fakeConnector struct{ state *schemaState }

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{state: c.state}, nil
}

func (c *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, driver.ErrSkip
}

type fakeConn struct{ state *schemaState }

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }

func (c *fakeConn) Close() error {
	c.state.mu.Lock()
	c.state.closed++
	c.state.mu.Unlock()

	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) { return fakeTx{}, nil }

func (c *fakeConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	switch {
	case strings.HasPrefix(query, "TRUNCATE"):
		c.state.version = nil
	case strings.HasPrefix(query, "INSERT INTO") && len(args) == 2:
		version, _ := args[0].Value.(int64)
		dirty, _ := args[1].Value.(bool)
		c.state.version = &version
		c.state.dirty = dirty
	case strings.Contains(query, "schema_migrations"):
		c.state.versionTable = true
	default:
		c.state.statements = append(c.state.statements, query)
	}

	return driver.RowsAffected(0), nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	switch {
	case strings.Contains(query, "CURRENT_DATABASE"):
		return &fakeRows{columns: []string{"current_database"}, values: [][]driver.Value{{"biofit"}}}, nil
	case strings.Contains(query, "CURRENT_SCHEMA"):
		return &fakeRows{columns: []string{"current_schema"}, values: [][]driver.Value{{"public"}}}, nil
	case strings.Contains(query, "information_schema.tables"):
		count := int64(0)
		if c.state.versionTable {
			count = 1
		}

		return &fakeRows{columns: []string{"count"}, values: [][]driver.Value{{count}}}, nil
	case strings.HasPrefix(query, "SELECT version, dirty"):
		rows := &fakeRows{columns: []string{"version", "dirty"}}
		if c.state.version != nil {
			rows.values = [][]driver.Value{{*c.state.version, c.state.dirty}}
		}

		return rows, nil
	default:
		return &fakeRows{columns: []string{"?column?"}}, nil
	}
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeRows struct {
	columns []string
	values  [][]driver.Value
	next    int
}

func (r *fakeRows) Columns() []string { return r.columns }

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.next >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.next])
	r.next++

	return nil
}

func newFakeSQLDB(t *testing.T) (*sql.DB, *schemaState) {
	t.Helper()

	state := &schemaState{}
	sqlDB := sql.OpenDB(&fakeConnector{state: state})
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlDB, state
}

func TestMigrate_KeepsPoolOpen(t *testing.T) {
	ctx := context.Background()
	sqlDB, state := newFakeSQLDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Migrate(ctx, sqlDB, logger))

	assert.True(t, state.executed("CREATE TABLE IF NOT EXISTS foods"))
	require.NotNil(t, state.version)
	assert.Equal(t, int64(1), *state.version)
	assert.False(t, state.dirty)

	assert.True(t, state.versionTable)

	require.NoError(t, sqlDB.PingContext(ctx))
	var database string
	require.NoError(t, sqlDB.QueryRowContext(ctx, "SELECT CURRENT_DATABASE()").Scan(&database))
	assert.Equal(t, "biofit", database)
	assert.Zero(t, state.closed)
}

func TestMigrate_UpToDateIsNoop(t *testing.T) {
	ctx := context.Background()
	sqlDB, state := newFakeSQLDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Migrate(ctx, sqlDB, logger))
	applied := len(state.statements)

	require.NoError(t, Migrate(ctx, sqlDB, logger))

	require.NoError(t, sqlDB.PingContext(ctx))
	assert.False(t, state.executed("DROP TABLE"))
	// Only lock bookkeeping runs the second time.
	for _, stmt := range state.statements[applied:] {
		assert.Contains(t, stmt, "pg_advisory")
	}
}
