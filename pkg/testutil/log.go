package testutil

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CaptureLog sends the global logger to a buffer as JSON at trace level
// until the test ends.
func CaptureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	origLogger, origLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	return &buf
}
