package armor

import (
	"bufio"
	"encoding/base64"
	"io"
	"strings"

	"github.com/SOF3/sequoia-openpgp-mirror/internal/crc24"
)

// Header is one armor header line. Headers keep their insertion order,
// and duplicate keys are preserved; they are opaque metadata.
type Header struct {
	Key   string
	Value string
}

// Block is the result of decoding an armor envelope. Body delivers the
// decoded binary payload lazily in a single forward pass; abandoning it
// requires no cleanup.
type Block struct {
	Kind    Kind
	Headers []Header
	Body    io.Reader
}

// ReaderConfig restricts what Decode accepts. The zero value is the
// fully tolerant mode.
type ReaderConfig struct {
	// Expect, when not KindUnknown, requires an armor envelope of
	// exactly this kind.
	Expect Kind
	// RequireBegin rejects input that carries no begin marker.
	RequireBegin bool
}

// Decode reads an armor envelope from in. It tolerates real-world
// variation: leading blank lines, missing headers, arbitrary body line
// structure (or none at all), a missing checksum line, and input with
// no envelope whatsoever, in which case the whole stream is decoded as
// a bare base64 body and the block kind is KindUnknown.
//
// Errors in the body, including a checksum mismatch, surface on the
// Body reader. A *ChecksumMismatchError is reported only after the
// full payload has been delivered.
func Decode(in io.Reader) (*Block, error) {
	return DecodeWithConfig(in, nil)
}

// DecodeWithConfig is Decode restricted by cfg; a nil cfg is the
// tolerant default.
func DecodeWithConfig(in io.Reader, cfg *ReaderConfig) (*Block, error) {
	strict := cfg != nil && (cfg.RequireBegin || cfg.Expect != KindUnknown)
	br := bufio.NewReader(in)
	body := &bodyReader{in: br, crc: crc24.Init()}
	block := &Block{Body: body}

	// Scan for the begin marker. The first non-blank line decides
	// between envelope and headerless mode.
	for {
		line, err := readLine(br)
		if err != nil && err != io.EOF {
			return nil, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err == io.EOF {
				if strict {
					return nil, ErrNoArmoredData
				}
				body.err = io.EOF
				return block, nil
			}
			continue
		}
		if kind, ok := parseBeginLine(trimmed); ok {
			if cfg != nil && cfg.Expect != KindUnknown && kind != cfg.Expect {
				return nil, &KindMismatchError{Want: cfg.Expect, Got: kind}
			}
			block.Kind = kind
			body.kind = kind
			body.envelope = true
			break
		}
		if strict {
			return nil, ErrNoArmoredData
		}
		body.pendingLine = line
		body.havePending = true
		return block, nil
	}

	// Header lines run until a blank line or the first line without a
	// colon, which is already body text.
	for {
		line, err := readLine(br)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		trimmed := strings.TrimRight(line, " \t\r")
		if idx := strings.Index(trimmed, ":"); idx >= 0 {
			block.Headers = append(block.Headers, Header{
				Key:   trimmed[:idx],
				Value: strings.TrimLeft(trimmed[idx+1:], " "),
			})
			continue
		}
		body.pendingLine = line
		body.havePending = true
		break
	}
	return block, nil
}

// readLine reads up to a newline, returning the line without it. The
// final line of a stream may arrive together with io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	return strings.TrimSuffix(line, "\n"), err
}

// bodyReader decodes the base64 body incrementally, one input line per
// step, validating the optional checksum and end marker on the way.
type bodyReader struct {
	in       *bufio.Reader
	kind     Kind
	envelope bool

	pendingLine string
	havePending bool
	line        int

	quad   [4]byte
	nquad  int
	sawPad bool

	out      []byte
	crc      uint32
	csum     uint32
	haveCsum bool
	err      error
}

func (r *bodyReader) Read(p []byte) (int, error) {
	for len(r.out) == 0 && r.err == nil {
		r.step()
	}
	if len(r.out) > 0 {
		n := copy(p, r.out)
		r.out = r.out[n:]
		return n, nil
	}
	return 0, r.err
}

func (r *bodyReader) step() {
	var line string
	var atEOF bool
	if r.havePending {
		line = r.pendingLine
		r.havePending = false
		r.pendingLine = ""
	} else {
		l, err := readLine(r.in)
		switch {
		case err == io.EOF:
			atEOF = true
		case err != nil:
			r.err = err
			return
		}
		line = l
	}
	r.line++
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		// whitespace-only lines in the body region carry nothing
	case r.envelope && strings.HasPrefix(trimmed, "-----END "):
		kind, ok := parseEndLine(trimmed)
		if !ok || kind != r.kind {
			r.err = &KindMismatchError{Want: r.kind, Got: kind}
			return
		}
		r.finish()
		return
	case trimmed[0] == '=' && r.isChecksumLine(trimmed):
		r.readChecksum(trimmed)
		if r.err != nil {
			return
		}
	default:
		r.bodyChars(line)
		if r.err != nil {
			return
		}
	}
	if atEOF {
		if r.envelope {
			r.err = ErrTruncatedArmor
			return
		}
		r.finish()
	}
}

// isChecksumLine decides whether a line starting with '=' is the
// checksum line. Inside an envelope it always is. Without an envelope
// the line must have the exact `=XXXX` shape and the body must sit on a
// group boundary; otherwise the '=' is padding split onto its own line.
func (r *bodyReader) isChecksumLine(line string) bool {
	if r.envelope {
		return true
	}
	if len(line) != 5 {
		return false
	}
	for i := 1; i < 5; i++ {
		if !isBase64Char(line[i]) {
			return false
		}
	}
	return r.nquad == 0
}

func (r *bodyReader) readChecksum(line string) {
	if r.haveCsum || len(line) != 5 {
		r.err = &MalformedChecksumError{Line: line}
		return
	}
	for i := 1; i < 5; i++ {
		if !isBase64Char(line[i]) {
			r.err = &MalformedChecksumError{Line: line}
			return
		}
	}
	var buf [3]byte
	if _, err := base64.StdEncoding.Decode(buf[:], []byte(line[1:])); err != nil {
		r.err = &MalformedChecksumError{Line: line}
		return
	}
	r.csum = uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	r.haveCsum = true
}

func (r *bodyReader) bodyChars(line string) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' || c == '\t' || c == '\r' {
			continue
		}
		if r.haveCsum || r.sawPad {
			r.err = &InvalidBase64Error{Line: r.line, Byte: c}
			return
		}
		if c != '=' && !isBase64Char(c) {
			r.err = &InvalidBase64Error{Line: r.line, Byte: c}
			return
		}
		r.quad[r.nquad] = c
		r.nquad++
		if r.nquad == 4 {
			r.flushQuad()
			if r.err != nil {
				return
			}
		}
	}
}

func (r *bodyReader) flushQuad() {
	var buf [3]byte
	n, err := base64.StdEncoding.Decode(buf[:], r.quad[:])
	if err != nil {
		r.err = &InvalidBase64Error{Line: r.line}
		return
	}
	r.deliver(buf[:n])
	if r.quad[2] == '=' || r.quad[3] == '=' {
		r.sawPad = true
	}
	r.nquad = 0
}

// finish flushes a trailing unpadded group, verifies the checksum if
// one was declared, and makes the reader terminal.
func (r *bodyReader) finish() {
	if r.nquad > 0 {
		if r.nquad == 1 {
			r.err = &InvalidBase64Error{Line: r.line}
			return
		}
		var buf [3]byte
		n, err := base64.RawStdEncoding.Decode(buf[:], r.quad[:r.nquad])
		if err != nil {
			r.err = &InvalidBase64Error{Line: r.line}
			return
		}
		r.deliver(buf[:n])
		r.nquad = 0
	}
	if r.haveCsum && r.csum != r.crc {
		r.err = &ChecksumMismatchError{Declared: r.csum, Computed: r.crc}
		return
	}
	r.err = io.EOF
}

func (r *bodyReader) deliver(p []byte) {
	r.crc = crc24.Update(r.crc, p)
	r.out = append(r.out, p...)
}

func isBase64Char(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' || c == '+' || c == '/'
}
