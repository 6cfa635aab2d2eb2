package armor

import "github.com/SOF3/sequoia-openpgp-mirror/constants"

// Kind identifies the semantic category of an armored payload, as
// carried in the begin/end marker lines.
type Kind int8

const (
	// KindUnknown marks data decoded without an armor envelope.
	KindUnknown Kind = iota
	// KindMessage is an OpenPGP message.
	KindMessage
	// KindPublicKey is a transferable public key.
	KindPublicKey
	// KindSecretKey is a transferable secret key.
	KindSecretKey
	// KindSignature is a detached signature.
	KindSignature
	// KindFile is an arbitrary armored file.
	KindFile
)

var kindLabels = map[Kind]string{
	KindMessage:   constants.PGPMessageHeader,
	KindPublicKey: constants.PublicKeyHeader,
	KindSecretKey: constants.PrivateKeyHeader,
	KindSignature: constants.PGPSignatureHeader,
	KindFile:      constants.ArmoredFileHeader,
}

func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "UNKNOWN"
}

func (k Kind) beginLine() string {
	return "-----BEGIN " + k.String() + "-----"
}

func (k Kind) endLine() string {
	return "-----END " + k.String() + "-----"
}

// parseBeginLine matches line against the begin markers of the
// recognized kinds. Unrecognized labels are not begin markers.
func parseBeginLine(line string) (Kind, bool) {
	for k := range kindLabels {
		if line == k.beginLine() {
			return k, true
		}
	}
	return KindUnknown, false
}

func parseEndLine(line string) (Kind, bool) {
	for k := range kindLabels {
		if line == k.endLine() {
			return k, true
		}
	}
	return KindUnknown, false
}
