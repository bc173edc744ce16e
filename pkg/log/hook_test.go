package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func newTestRouter() (*router, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	mainBuf, criticalBuf, verboseBuf := &bytes.Buffer{}, &bytes.Buffer{}, &bytes.Buffer{}
	r := &router{
		mainWriter:     mainBuf,
		criticalWriter: criticalBuf,
		verboseWriter:  verboseBuf,
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}
	return r, mainBuf, criticalBuf, verboseBuf
}

func TestRouter_Fire_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level        Level
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{level: ErrorLevel, wantMain: true, wantCritical: true},
		{level: WarnLevel, wantMain: true},
		{level: InfoLevel, wantMain: true},
		{level: DebugLevel, wantVerbose: true},
		{level: TraceLevel, wantVerbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			r, mainBuf, criticalBuf, verboseBuf := newTestRouter()
			entry := &Entry{Logger: logrus.New(), Level: tt.level, Message: "routed", Data: Fields{}}

			require.NoError(t, r.Fire(entry))

			assert.Equal(t, tt.wantMain, mainBuf.Len() > 0)
			assert.Equal(t, tt.wantCritical, criticalBuf.Len() > 0)
			assert.Equal(t, tt.wantVerbose, verboseBuf.Len() > 0)
		})
	}
}

func TestRouter_Fire_ContinuesAfterWriteError(t *testing.T) {
	t.Parallel()

	mainBuf := &bytes.Buffer{}
	r := &router{
		mainWriter:     mainBuf,
		criticalWriter: failingWriter{},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	err := r.Fire(&Entry{Logger: logrus.New(), Level: ErrorLevel, Message: "boom", Data: Fields{}})

	assert.Error(t, err)
	assert.Contains(t, mainBuf.String(), "boom")
}

func TestRouter_Close_DropsEntries(t *testing.T) {
	t.Parallel()

	r, mainBuf, _, _ := newTestRouter()
	require.NoError(t, r.Close())

	require.NoError(t, r.Fire(&Entry{Logger: logrus.New(), Level: InfoLevel, Message: "dropped", Data: Fields{}}))
	assert.Zero(t, mainBuf.Len())
}
