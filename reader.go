package adc

import (
	"bufio"
	"fmt"
	"io"
)

// Reader decompresses an ADC stream incrementally. It implements
// io.Reader with standard short-read semantics: a Read may deliver fewer
// bytes than requested, and clean end of stream is (0, io.EOF).
//
// The decoded output doubles as the back-reference window: win holds the
// most recent history and win[deliver:] is output not yet handed to the
// caller. Decode errors are terminal; once one occurs every later Read
// reports the same error and pending output is discarded, since the
// window may be inconsistent.
type Reader struct {
	src      io.ByteReader
	win      []byte // recent decoded output, also the back-reference window
	deliver  int    // start of pending output within win
	produced int64  // total bytes decoded this session
	err      error  // sticky; io.EOF means clean end of stream
}

// NewReader returns a Reader decompressing the ADC stream from r.
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		return &Reader{err: ErrNilReader}
	}

	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &Reader{src: br}
}

// Read decodes chunks until it can fill p or the stream ends, then
// delivers pending output in order. It returns the number of bytes
// written to p; (0, io.EOF) once all output has been delivered.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.win)-r.deliver < len(p) && r.err == nil {
		r.decode()
	}

	if r.err != nil && r.err != io.EOF {
		return 0, r.err
	}

	if n := copy(p, r.win[r.deliver:]); n > 0 {
		r.deliver += n
		r.compact()

		return n, nil
	}

	return 0, r.err
}

// decode runs one chunk through the chunk decoder and appends its output
// to the window. On clean end of input it sets io.EOF; decode and source
// failures are stored as-is and are terminal.
func (r *Reader) decode() {
	c, ok, err := nextChunk(r.src)
	if err != nil {
		r.err = err
		return
	}
	if !ok {
		r.err = io.EOF
		return
	}

	switch c.kind {
	case chunkPlain:
		for i := 0; i < c.count; i++ {
			b, err := readLiteral(r.src)
			if err != nil {
				r.err = err
				return
			}
			r.win = append(r.win, b)
		}

	default:
		if int64(c.distance) > r.produced {
			r.err = fmt.Errorf("%w: distance=%d produced=%d", ErrInvalidDistance, c.distance, r.produced)
			return
		}

		// Overlapping copy (distance < count) must go byte-by-byte so
		// bytes written earlier in the same chunk can be read again.
		for i := 0; i < c.count; i++ {
			r.win = append(r.win, r.win[len(r.win)-c.distance])
		}
	}

	r.produced += int64(c.count)
}

// compact drops delivered history that no back-reference can reach any
// more. It only fires once at least windowRetain bytes can go, so the
// copy cost is amortized and the window stays bounded on long streams.
func (r *Reader) compact() {
	drop := len(r.win) - windowRetain
	if drop > r.deliver {
		drop = r.deliver
	}
	if drop < windowRetain {
		return
	}

	n := copy(r.win, r.win[drop:])
	r.win = r.win[:n]
	r.deliver -= drop
}
