package adc

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// periodicStream builds an ADC stream: a 128-byte plain run of the bytes
// 0..127 followed by `copies` long copies of 67 bytes at distance 128,
// so every output byte i equals byte(i % 128).
func periodicStream(copies int) (in []byte, outLen int) {
	in = append(in, 0xff)
	for i := 0; i < MaxLiteralRun; i++ {
		in = append(in, byte(i))
	}
	for i := 0; i < copies; i++ {
		in = append(in, 0x7f, 0x00, 0x7f)
	}

	return in, MaxLiteralRun + copies*MaxCopyLength
}

func TestReaderAllChunkKinds(t *testing.T) {
	r := NewReader(bytes.NewReader(allKindsInput))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, allKindsOutput) {
		t.Fatalf("got %x want %x", out, allKindsOutput)
	}
}

func TestReaderSingleByteReads(t *testing.T) {
	r := NewReader(bytes.NewReader(allKindsInput))
	var out []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			out = append(out, buf[0])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(out, allKindsOutput) {
		t.Fatalf("got %x want %x", out, allKindsOutput)
	}
}

func TestReaderShortReadThenCleanEOF(t *testing.T) {
	// Asking for more than the stream holds is a short read, not an error.
	r := NewReader(bytes.NewReader(allKindsInput))
	buf := make([]byte, 64)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("short read must not fail: %v", err)
	}
	if n != len(allKindsOutput) {
		t.Fatalf("got %d bytes, want %d", n, len(allKindsOutput))
	}
	if n, err = r.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("want (0, io.EOF) after drain, got (%d, %v)", n, err)
	}
}

func TestReaderTruncatedStreamSticky(t *testing.T) {
	r := NewReader(bytes.NewReader(allKindsInput[:6]))
	buf := make([]byte, 64)
	_, err1 := r.Read(buf)
	if !errors.Is(err1, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err1)
	}
	_, err2 := r.Read(buf)
	if err2 != err1 {
		t.Fatalf("failure must be idempotent: %v then %v", err1, err2)
	}
}

func TestReaderInvalidDistanceSticky(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x00}))
	buf := make([]byte, 8)
	_, err1 := r.Read(buf)
	if !errors.Is(err1, ErrInvalidDistance) {
		t.Fatalf("want ErrInvalidDistance, got %v", err1)
	}
	_, err2 := r.Read(buf)
	if err2 != err1 {
		t.Fatalf("failure must be idempotent: %v then %v", err1, err2)
	}
}

var errSource = errors.New("source failed")

// failAfterReader yields its data, then a non-EOF error.
type failAfterReader struct {
	data []byte
}

func (r *failAfterReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errSource
	}
	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}

func TestReaderSourceErrorPropagated(t *testing.T) {
	r := NewReader(&failAfterReader{})
	_, err := r.Read(make([]byte, 8))
	if !errors.Is(err, errSource) {
		t.Fatalf("want source error, got %v", err)
	}
}

func TestReaderSourceErrorMidChunkNotTruncated(t *testing.T) {
	// A source failure inside a chunk must surface as-is, never as
	// ErrTruncated.
	r := NewReader(&failAfterReader{data: []byte{0x40}})
	_, err := r.Read(make([]byte, 8))
	if !errors.Is(err, errSource) {
		t.Fatalf("want source error, got %v", err)
	}
	if errors.Is(err, ErrTruncated) {
		t.Fatalf("source error reinterpreted as truncation: %v", err)
	}
}

func TestReaderNilSource(t *testing.T) {
	r := NewReader(nil)
	if _, err := r.Read(make([]byte, 1)); !errors.Is(err, ErrNilReader) {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}

func TestReaderLongStreamBoundedWindow(t *testing.T) {
	// Enough output to force several window compactions; every byte must
	// still land on the 128-byte period.
	in, outLen := periodicStream(5000)
	r := NewReader(bytes.NewReader(in))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != outLen {
		t.Fatalf("got %d bytes, want %d", len(out), outLen)
	}
	for i, b := range out {
		if b != byte(i%MaxLiteralRun) {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, b, byte(i%MaxLiteralRun))
		}
	}
}

func TestReaderMaxDistanceAcrossCompaction(t *testing.T) {
	// Produce well past the compaction threshold, then copy from the
	// maximum distance: the window must still reach the referenced bytes.
	in, outLen := periodicStream(5000)
	in = append(in, 0x40, 0xff, 0xff) // count 4, distance 65536
	r := NewReader(bytes.NewReader(in))
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != outLen+4 {
		t.Fatalf("got %d bytes, want %d", len(out), outLen+4)
	}
	start := outLen - MaxDistance
	for i := 0; i < 4; i++ {
		if out[outLen+i] != out[start+i] {
			t.Fatalf("copied byte %d = 0x%02x, want 0x%02x", i, out[outLen+i], out[start+i])
		}
	}
}

func TestDecompressFromReaderConsumed(t *testing.T) {
	out, consumed, err := DecompressFromReader(bytes.NewReader(allKindsInput))
	if err != nil {
		t.Fatal(err)
	}
	if consumed != int64(len(allKindsInput)) {
		t.Fatalf("consumed %d bytes, want %d", consumed, len(allKindsInput))
	}
	if !bytes.Equal(out, allKindsOutput) {
		t.Fatalf("got %x want %x", out, allKindsOutput)
	}
}

func TestDecompressFromReaderNil(t *testing.T) {
	if _, _, err := DecompressFromReader(nil); !errors.Is(err, ErrNilReader) {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}
