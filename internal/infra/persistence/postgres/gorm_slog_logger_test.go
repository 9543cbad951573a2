package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"biofit/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return buf, newGormSlogLogger(base, cfg)
}

func TestGormSlogLogger_TruncatesLargeStatements(t *testing.T) {
	buf, gormLogger := newBufferedGormLogger(false)

	image := strings.Repeat("ff", 4096)
	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "INSERT INTO foods (food_image) VALUES ('\\x" + image + "')", 1
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "GORM slow query")
	assert.Contains(t, out, "omitted")
	assert.Less(t, len(out), len(image))
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, gormLogger := newBufferedGormLogger(false)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM foods WHERE id = 'x'", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quietBuf, quiet := newBufferedGormLogger(false)
	debugBuf, debug := newBufferedGormLogger(true)

	sqlFn := func() (string, int64) { return "SELECT count(*) FROM foods", 1 }
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	debug.Trace(context.Background(), time.Now(), sqlFn, nil)

	assert.Empty(t, quietBuf.String())
	assert.Contains(t, debugBuf.String(), "GORM query")
}
