package adc

import (
	"bufio"
	"fmt"
	"io"
)

// growHint sizes the output buffer for whole-stream decompression. ADC
// payloads in disk images usually expand a few times over; the buffer
// grows past the hint as needed.
const growHint = 4

// Decompress decompresses a complete ADC stream from src into a new
// buffer. ADC carries no header, so the decompressed size is discovered
// while decoding. Decoding stops at the end of src; an input ending
// inside a chunk returns ErrTruncated.
func Decompress(src []byte) ([]byte, error) {
	return decompressAll(&sliceByteReader{data: src}, len(src)*growHint)
}

// DecompressInto decompresses the ADC stream in src into dst and returns
// the number of bytes produced. Already-produced output in dst serves as
// the back-reference window. It fails with ErrShortBuffer when a decoded
// chunk does not fit in the remaining space of dst; on any error the
// returned count is the output produced before it.
func DecompressInto(dst, src []byte) (int, error) {
	r := &sliceByteReader{data: src}
	pos := 0

	for {
		c, ok, err := nextChunk(r)
		if err != nil {
			return pos, err
		}
		if !ok {
			return pos, nil
		}

		if pos+c.count > len(dst) {
			return pos, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, pos+c.count, len(dst))
		}

		switch c.kind {
		case chunkPlain:
			lit, err := r.next(c.count)
			if err != nil {
				return pos, fmt.Errorf("%w: literal run cut short", ErrTruncated)
			}
			pos += copy(dst[pos:], lit)

		default:
			if c.distance > pos {
				return pos, fmt.Errorf("%w: distance=%d produced=%d", ErrInvalidDistance, c.distance, pos)
			}
			for i := 0; i < c.count; i++ {
				dst[pos] = dst[pos-c.distance]
				pos++
			}
		}
	}
}

// DecompressFromReader decompresses an ADC stream from r until clean end
// of input and returns the output and the number of compressed bytes
// consumed. Source I/O errors other than io.EOF are returned unchanged.
func DecompressFromReader(r io.Reader) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressAll(countingReader, 0)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decompressAll drives the chunk decoder until clean end of input,
// growing the output as it goes. The whole output stays resident and is
// its own back-reference window.
func decompressAll(r io.ByteReader, sizeHint int) ([]byte, error) {
	out := make([]byte, 0, sizeHint)

	for {
		c, ok, err := nextChunk(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}

		switch c.kind {
		case chunkPlain:
			for i := 0; i < c.count; i++ {
				b, err := readLiteral(r)
				if err != nil {
					return nil, err
				}
				out = append(out, b)
			}

		default:
			if c.distance > len(out) {
				return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrInvalidDistance, c.distance, len(out))
			}
			// Byte-by-byte so overlapping copies replay their own output.
			for i := 0; i < c.count; i++ {
				out = append(out, out[len(out)-c.distance])
			}
		}
	}
}
