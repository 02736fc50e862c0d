/*
Package adc implements decompression of the Apple Data Compression (ADC)
scheme, the LZ-style format used inside Apple disk-image containers.

Format: each chunk starts with a control byte whose high bits pick one of
three kinds; the rest of the byte (plus trailing bytes) carries length
and backward distance:

	1xxxxxxx          plain run: (b & 0x7F) + 1 literal bytes follow (1..128)
	01xxxxxx hi lo    long copy: (b & 0x3F) + 4 bytes (4..67), distance ((hi << 8) | lo) + 1 (1..65536)
	00xxxxxx lo       short copy: ((b >> 2) & 0x0F) + 3 bytes (3..18), distance (((b & 0x03) << 8) | lo) + 1 (1..1024)

Copies replay already-produced output; distance may not reach before the
start of the stream. Overlapping copies (distance < count) are legal and
repeat the pattern byte-by-byte. There is no encoder: ADC is read-only
legacy data, and the surrounding container framing (headers, checksums)
is out of scope.

Use Decompress(src) to decode a whole in-memory stream to a new buffer.
Use DecompressInto(dst, src) to decode into a fixed destination and get the produced count.
Use DecompressFromReader(r) to decode a stream and get the consumed byte count.
Use NewReader(r) to pull decompressed bytes incrementally through io.Reader.

# Examples

Decompress a buffer:

	out, err := adc.Decompress(encoded)
	if err != nil {
		return err
	}

Decompress into a destination of known size:

	data := make([]byte, expectedLen)
	n, err := adc.DecompressInto(data, encoded)
	if err != nil {
		return err
	}
	data = data[:n]

Stream decompression with bounded memory:

	r := adc.NewReader(file)
	if _, err := io.Copy(dst, r); err != nil {
		return err
	}

Distinguish a truncated stream from a corrupt back-reference:

	_, err := adc.Decompress(encoded)
	switch {
	case errors.Is(err, adc.ErrTruncated):
		// input cut off inside a chunk
	case errors.Is(err, adc.ErrInvalidDistance):
		// copy reaches before the start of output
	}
*/
package adc
