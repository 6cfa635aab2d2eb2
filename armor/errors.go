package armor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTruncatedArmor is returned when a begin marker was seen but the
// stream ended before the matching end marker.
var ErrTruncatedArmor = errors.New("armor: begin marker without matching end marker")

// ErrNoArmoredData is returned when the reader configuration requires
// an armor envelope but the input carries none.
var ErrNoArmoredData = errors.New("armor: no armored data found")

// KindMismatchError reports an end marker whose kind differs from the
// begin marker, or an envelope whose kind differs from the expected one.
type KindMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("armor: kind mismatch: want %q, got %q", e.Want, e.Got)
}

// MalformedChecksumError reports a checksum line that is not `=`
// followed by exactly four base64 characters, or a duplicate checksum
// line.
type MalformedChecksumError struct {
	Line string
}

func (e *MalformedChecksumError) Error() string {
	return fmt.Sprintf("armor: malformed checksum line %q", e.Line)
}

// InvalidBase64Error reports a byte in the armor body that is not valid
// base64 at its position. Line is 1-based within the body; Byte is zero
// when the offending byte is not known precisely.
type InvalidBase64Error struct {
	Line int
	Byte byte
}

func (e *InvalidBase64Error) Error() string {
	if e.Byte != 0 {
		return fmt.Sprintf("armor: invalid base64 byte %q on body line %d", e.Byte, e.Line)
	}
	return fmt.Sprintf("armor: invalid base64 data on body line %d", e.Line)
}

// ChecksumMismatchError reports a checksum line that does not match the
// CRC-24 of the decoded payload. It is returned by the terminal read of
// a body only after the full payload has been delivered, so the caller
// observes both the payload and the mismatch and decides whether to
// trust the data.
type ChecksumMismatchError struct {
	Declared uint32
	Computed uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("armor: checksum mismatch: declared %06X, computed %06X",
		e.Declared, e.Computed)
}
