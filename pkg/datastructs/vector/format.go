package vector

import (
	"fmt"
	"io"
	"strings"
)

// String renders the elements as "[e0, e1, ..., en]" using fmt's default
// formatting. The text is for diagnostics only.
func (a *Array[T]) String() string {
	var sb strings.Builder
	_, _ = a.WriteTo(&sb)
	return sb.String()
}

// WriteTo implements io.WriterTo, writing the same text as String.
func (a *Array[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	_, _ = io.WriteString(cw, renderOpen)
	for i, v := range a.view() {
		if i > 0 {
			_, _ = io.WriteString(cw, renderSep)
		}
		_, _ = fmt.Fprint(cw, v)
	}
	_, _ = io.WriteString(cw, renderClose)
	return cw.n, cw.err
}

// countWriter counts bytes and keeps the first error, dropping writes after it.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
