package adc

import (
	"errors"
	"fmt"
	"io"
)

// chunkKind tags the three ADC chunk variants.
type chunkKind int

const (
	chunkPlain chunkKind = iota // Literal run: count bytes follow verbatim in the input.
	chunkShort                  // Short copy: count 3..18, distance 1..1024.
	chunkLong                   // Long copy: count 4..67, distance 1..65536.
)

// chunk is one decoded chunk header. For chunkPlain the literal bytes are
// still unread in the input; for copies distance points back into already
// produced output. A chunk has no identity beyond the current decode step.
type chunk struct {
	kind     chunkKind
	count    int
	distance int
}

// nextChunk reads one chunk header from r. ok is false on clean end of
// input, i.e. EOF exactly at a control-byte boundary. EOF after the
// control byte means the chunk is cut short and is reported as
// ErrTruncated; any other source error is returned unchanged.
func nextChunk(r io.ByteReader) (chunk, bool, error) {
	ctl, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return chunk{}, false, nil
		}

		return chunk{}, false, err
	}

	// Once the control byte is seen its trailing bytes are mandatory.
	readByte := func() (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("%w: control byte 0x%02x needs trailing bytes", ErrTruncated, ctl)
			}

			return 0, err
		}

		return b, nil
	}

	switch {
	case ctl&0x80 != 0:
		return chunk{kind: chunkPlain, count: int(ctl&0x7F) + 1}, true, nil

	case ctl&0x40 != 0:
		hi, err := readByte()
		if err != nil {
			return chunk{}, false, err
		}
		lo, err := readByte()
		if err != nil {
			return chunk{}, false, err
		}

		return chunk{
			kind:     chunkLong,
			count:    int(ctl&0x3F) + 4,
			distance: (int(hi)<<8 | int(lo)) + 1,
		}, true, nil

	default:
		lo, err := readByte()
		if err != nil {
			return chunk{}, false, err
		}

		return chunk{
			kind:     chunkShort,
			count:    (int(ctl)>>2)&0x0F + 3,
			distance: (int(ctl&0x03)<<8 | int(lo)) + 1,
		}, true, nil
	}
}

// readLiteral reads one literal byte of a plain run. EOF here means the
// run was cut short, not a clean end of stream.
func readLiteral(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: literal run cut short", ErrTruncated)
		}

		return 0, err
	}

	return b, nil
}
