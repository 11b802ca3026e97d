package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnRecorder struct {
	msgs []string
	kvs  [][]interface{}
}

func (w *warnRecorder) Warn(msg string, keysAndValues ...interface{}) {
	w.msgs = append(w.msgs, msg)
	w.kvs = append(w.kvs, keysAndValues)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriterSink{W: &buf}.Notify("Possible project found!"))
	assert.Contains(t, buf.String(), "\nPossible project found!\n")
}

func TestWriterSink_Error(t *testing.T) {
	assert.Error(t, WriterSink{W: failingWriter{}}.Notify("hello"))
}

func TestLogSink(t *testing.T) {
	rec := &warnRecorder{}
	require.NoError(t, LogSink{Logger: rec}.Notify("hello"))
	assert.Equal(t, []string{"operator notification"}, rec.msgs)
	assert.Equal(t, []interface{}{"message", "hello"}, rec.kvs[0])
}
