package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveLevel string
		wantErr   string
	}{
		{name: "empty level uses default"},
		{name: "debug", giveLevel: "debug"},
		{name: "warn", giveLevel: "warn"},
		{name: "unknown level", giveLevel: "loud", wantErr: `invalid log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lggr, err := NewWithLevel(tt.giveLevel)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, lggr)
		})
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	child := lggr.Named("provider").Named("ws")

	child.Infow("dialing", "url", "ws://localhost:8546")
	child.Debug("dropped")

	assert.Equal(t, "provider.ws", child.Name())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "dialing", entry.Message)
	assert.Equal(t, "provider.ws", entry.LoggerName)
	assert.Equal(t, "ws://localhost:8546", entry.ContextMap()["url"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorf("nothing %d", 1)
	assert.Empty(t, lggr.Name())
}
