package armor

import (
	"bufio"
	"encoding/base64"
	"io"

	"github.com/SOF3/sequoia-openpgp-mirror/internal/crc24"
	"github.com/pkg/errors"
)

// lineLength is the column at which the base64 body is hard-wrapped.
const lineLength = 64

// Encode returns a WriteCloser armoring everything written to it onto
// out: begin line, the given headers in order, a blank line, the base64
// body wrapped at 64 columns, the CRC-24 checksum line, and the end
// line. Close must be called to flush the trailer. The output is a
// valid input to Decode.
func Encode(out io.Writer, kind Kind, headers []Header) (io.WriteCloser, error) {
	if kind == KindUnknown {
		return nil, errors.New("armor: cannot encode without a kind")
	}
	w := &writeCloser{
		out:  bufio.NewWriter(out),
		kind: kind,
		crc:  crc24.Init(),
	}
	w.writeString(kind.beginLine() + "\n")
	for _, h := range headers {
		w.writeString(h.Key + ": " + h.Value + "\n")
	}
	w.writeString("\n")
	if w.err != nil {
		return nil, w.err
	}
	return w, nil
}

type writeCloser struct {
	out  *bufio.Writer
	kind Kind

	pending   [3]byte
	npending  int
	lineChars int

	crc    uint32
	err    error
	closed bool
}

func (w *writeCloser) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errors.New("armor: write after close")
	}
	w.crc = crc24.Update(w.crc, p)
	for _, b := range p {
		w.pending[w.npending] = b
		w.npending++
		if w.npending == 3 {
			w.writeGroup(w.pending[:3])
			w.npending = 0
			if w.err != nil {
				return 0, w.err
			}
		}
	}
	return len(p), nil
}

// Close flushes the final padded group, the checksum line and the end
// line. It does not close the underlying writer.
func (w *writeCloser) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	if w.npending > 0 {
		w.writeGroup(w.pending[:w.npending])
		w.npending = 0
	}
	if w.lineChars > 0 {
		w.writeString("\n")
	}

	var sum [3]byte
	sum[0] = byte(w.crc >> 16)
	sum[1] = byte(w.crc >> 8)
	sum[2] = byte(w.crc)
	var quad [4]byte
	base64.StdEncoding.Encode(quad[:], sum[:])
	w.writeString("=" + string(quad[:]) + "\n")

	w.writeString(w.kind.endLine() + "\n")
	if w.err != nil {
		return w.err
	}
	w.err = w.out.Flush()
	return w.err
}

// writeGroup encodes up to three payload bytes as one base64 group,
// wrapping the line first when it is full. 64 is a multiple of 4, so a
// group never splits across lines.
func (w *writeCloser) writeGroup(p []byte) {
	if w.err != nil {
		return
	}
	var quad [4]byte
	base64.StdEncoding.Encode(quad[:], p)
	if w.lineChars == lineLength {
		w.writeString("\n")
		w.lineChars = 0
	}
	w.writeString(string(quad[:]))
	w.lineChars += 4
}

func (w *writeCloser) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.out.WriteString(s)
}
