package cmd

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/proctrace/sim/trace"
)

func TestLogCompletion_StatFailure_LoggedAtDebug(t *testing.T) {
	// GIVEN a debug-level logger with a capture hook and a missing file
	hook := test.NewGlobal()
	defer hook.Reset()
	prev := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	defer logrus.SetLevel(prev)
	missing := filepath.Join(t.TempDir(), "gone.dat")

	// WHEN completion is reported
	logCompletion(missing, &trace.GenerationSummary{TotalEvents: 30, Termination: trace.TerminationQueueEmpty})

	// THEN the stat error is logged at debug and the info line still appears
	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Contains(t, entries[0].Message, missing)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Contains(t, entries[1].Message, "Wrote 30 events")
}
