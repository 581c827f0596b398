package glyphpack

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageWorkerCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing is ever sent or closed, only cancellation can stop the worker
	in := make(chan string)

	fn, err := Options{Format: FormatBitmap}.Encoder()
	require.NoError(t, err)

	errc, err := New(log.New(io.Discard, "", 0)).imageWorker(ctx, in, newOutputSet(), ".bin", fn)
	require.NoError(t, err)

	select {
	case err, ok := <-errc:
		assert.False(t, ok)
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestOutputSetClaim(t *testing.T) {
	s := newOutputSet()

	require.NoError(t, s.claim("/a/font.png", "/a/font.bin"))
	require.NoError(t, s.claim("/a/other.png", "/a/other.bin"))

	err := s.claim("/a/font.gif", "/a/font.bin")
	assert.True(t, errors.Is(err, ErrDuplicateOutput))

	err = s.claim("/a/logo.png", "/a/logo.png")
	assert.True(t, errors.Is(err, ErrOverwriteSource))
}
