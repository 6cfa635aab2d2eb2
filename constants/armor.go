// Package constants provides a set of common OpenPGP constants.
package constants

// Constants for armored data.
const (
	ArmorHeaderEnabled = true
	ArmorHeaderVersion = "SequoiaMirror " + Version
	ArmorHeaderComment = "https://github.com/SOF3/sequoia-openpgp-mirror"
	PGPMessageHeader   = "PGP MESSAGE"
	PGPSignatureHeader = "PGP SIGNATURE"
	PublicKeyHeader    = "PGP PUBLIC KEY BLOCK"
	PrivateKeyHeader   = "PGP PRIVATE KEY BLOCK"
	ArmoredFileHeader  = "PGP ARMORED FILE"
)
