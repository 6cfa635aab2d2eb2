// Package armor implements OpenPGP ASCII armor: the textual envelope
// that wraps binary OpenPGP data in a begin/end marker pair, optional
// headers, a line-wrapped base64 body and an optional CRC-24 checksum
// line. The reader tolerates real-world variation such as missing
// envelopes, missing checksums and arbitrary body line structure.
package armor

import (
	"bytes"
	"io"
	"strings"

	"github.com/SOF3/sequoia-openpgp-mirror/constants"
	"github.com/pkg/errors"
)

// armorPrefix is what every begin marker starts with, used for
// sniffing.
var armorPrefix = []byte("-----BEGIN PGP")

// Armor armors data with the given kind and headers.
func Armor(kind Kind, headers []Header, data []byte) (string, error) {
	var b bytes.Buffer
	w, err := Encode(&b, kind, headers)
	if err != nil {
		return "", errors.Wrap(err, "armor: unable to encode armoring")
	}
	if _, err = w.Write(data); err != nil {
		return "", errors.Wrap(err, "armor: unable to write armored to buffer")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "armor: unable to close armor buffer")
	}
	return b.String(), nil
}

// ArmorWithKind armors data with the given kind and the default
// Version and Comment headers.
func ArmorWithKind(data []byte, kind Kind) (string, error) {
	return Armor(kind, defaultHeaders(), data)
}

// ArmorKey armors data as a public key block.
func ArmorKey(data []byte) (string, error) {
	return ArmorWithKind(data, KindPublicKey)
}

// ArmorReader returns an io.Reader which, when read, reads unarmored
// data from in.
func ArmorReader(in io.Reader) (io.Reader, error) {
	block, err := Decode(in)
	if err != nil {
		return nil, err
	}
	return block.Body, nil
}

// Unarmor dearmors input into its kind, headers and payload. On a
// checksum mismatch the payload is returned together with the
// *ChecksumMismatchError, leaving the trust decision to the caller.
func Unarmor(input string) (Kind, []Header, []byte, error) {
	block, err := Decode(strings.NewReader(input))
	if err != nil {
		return KindUnknown, nil, nil, errors.Wrap(err, "armor: unable to unarmor")
	}
	data, err := io.ReadAll(block.Body)
	if err != nil {
		if _, ok := err.(*ChecksumMismatchError); ok {
			return block.Kind, block.Headers, data, err
		}
		return block.Kind, block.Headers, nil, errors.Wrap(err, "armor: unable to unarmor")
	}
	return block.Kind, block.Headers, data, nil
}

// IsPGPArmored reads a few bytes from in to detect an armor begin
// marker and returns a reader replaying the full stream, plus the
// detection result.
func IsPGPArmored(in io.Reader) (io.Reader, bool) {
	buf := make([]byte, len(armorPrefix))
	n, _ := io.ReadFull(in, buf)
	outReader := io.MultiReader(bytes.NewReader(buf[:n]), in)
	return outReader, bytes.HasPrefix(buf[:n], armorPrefix)
}

func defaultHeaders() []Header {
	if !constants.ArmorHeaderEnabled {
		return nil
	}
	return []Header{
		{Key: "Version", Value: constants.ArmorHeaderVersion},
		{Key: "Comment", Value: constants.ArmorHeaderComment},
	}
}
