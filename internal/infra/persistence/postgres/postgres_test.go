package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportPoolWait(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		want      string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			want: "",
		},
		{
			name: "short waits are debug",
			prev: sql.DBStats{WaitCount: 0},
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond},
			want: "level=DEBUG",
		},
		{
			name: "long waits are warnings",
			prev: sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:  sql.DBStats{WaitCount: 5, WaitDuration: 400 * time.Millisecond},
			want: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			reportPoolWait(context.Background(), logger, tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}
