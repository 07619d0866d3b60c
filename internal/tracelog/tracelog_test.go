package tracelog_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ejmount/ebnf-toolkit/internal/tracelog"
)

func TestShiftAndReduceEmitStructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := tracelog.New(zap.New(core))

	l.Shift("AN", "A")
	l.Reduce("rule", "N=A;", "R")

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "shift", entries[0].Message)
	require.Equal(t, "AN", entries[0].ContextMap()["shape"])
	require.Equal(t, "A", entries[0].ContextMap()["pushed"])

	require.Equal(t, "reduce", entries[1].Message)
	require.Equal(t, "rule", entries[1].ContextMap()["pattern"])
	require.Equal(t, "N=A;", entries[1].ContextMap()["matched"])
	require.Equal(t, "R", entries[1].ContextMap()["result_shape"])
}

func TestNilLoggerIsSafeToCall(t *testing.T) {
	var l *tracelog.Logger
	l.Shift("x", "y")
	l.Reduce("p", "m", "r")
	require.NoError(t, l.Sync())
}

func TestNewWithNilZapReturnsNil(t *testing.T) {
	require.Nil(t, tracelog.New(nil))
}
