package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"biofit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: " warning ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "biofit"
	cfg.Env.Log.Level = "info"

	buf := &bytes.Buffer{}
	logger, err := newLogger(buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Food created", slog.String("foodID", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Food created", line["msg"])
	assert.Equal(t, "biofit", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.Equal(t, "abc", line["foodID"])
}

func TestNewLogger_PrettyText(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	buf := &bytes.Buffer{}
	logger, err := newLogger(buf, cfg)
	require.NoError(t, err)

	logger.Info("ready")
	assert.Contains(t, buf.String(), "msg=ready")
}
