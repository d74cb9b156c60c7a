package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers. A failing writer
// does not stop the others; all failures are returned together.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

// Write returns the sum of bytes written across the writers.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		total int
		err   error
	)
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		total += n
		err = multierr.Append(err, werr)
	}
	return total, err
}
