package armor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArmorEmptyPayload(t *testing.T) {
	// the checksum of an empty payload is the CRC-24 initial value,
	// which must armor to exactly this block
	out, err := Armor(KindMessage, nil, nil)
	assert.NoError(t, err)
	assert.Exactly(t,
		"-----BEGIN PGP MESSAGE-----\n\n=twTO\n-----END PGP MESSAGE-----\n",
		out)
}

func TestArmorLineWrapping(t *testing.T) {
	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	out, err := Armor(KindMessage, nil, payload)
	assert.NoError(t, err)

	// 100 bytes encode to 136 base64 characters: two full lines and
	// one 8-character line
	lines := strings.Split(out, "\n")
	assert.Equal(t, "-----BEGIN PGP MESSAGE-----", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Len(t, lines[2], 64)
	assert.Len(t, lines[3], 64)
	assert.Len(t, lines[4], 8)
	assert.True(t, strings.HasPrefix(lines[5], "="))
	assert.Len(t, lines[5], 5)
	assert.Equal(t, "-----END PGP MESSAGE-----", lines[6])
	assert.Equal(t, "", lines[7])
}

func TestArmorHeadersInOrder(t *testing.T) {
	headers := []Header{
		{Key: "Comment", Value: "one"},
		{Key: "Comment", Value: "two"},
		{Key: "Version", Value: "x"},
	}
	out, err := Armor(KindSignature, headers, []byte("ordered"))
	assert.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "-----BEGIN PGP SIGNATURE-----", lines[0])
	assert.Equal(t, "Comment: one", lines[1])
	assert.Equal(t, "Comment: two", lines[2])
	assert.Equal(t, "Version: x", lines[3])
	assert.Equal(t, "", lines[4])

	kind, gotHeaders, data, err := Unarmor(out)
	assert.NoError(t, err)
	assert.Exactly(t, KindSignature, kind)
	assert.Equal(t, headers, gotHeaders)
	assert.Equal(t, []byte("ordered"), data)
}

func TestArmorRoundTrip(t *testing.T) {
	kinds := []Kind{KindMessage, KindPublicKey, KindSecretKey, KindSignature, KindFile}
	sizes := []int{0, 1, 2, 3, 4, 5, 47, 48, 63, 64, 100, 1000}
	for _, kind := range kinds {
		for _, size := range sizes {
			payload := make([]byte, size)
			for i := range payload {
				payload[i] = byte(i*31 + int(kind))
			}
			armored, err := Armor(kind, nil, payload)
			assert.NoError(t, err)

			gotKind, gotHeaders, data, err := Unarmor(armored)
			assert.NoError(t, err, "kind %v size %d", kind, size)
			assert.Exactly(t, kind, gotKind)
			assert.Empty(t, gotHeaders)
			assert.Equal(t, payload, data, "kind %v size %d", kind, size)
		}
	}
}

func TestEncodeUnknownKind(t *testing.T) {
	var b bytes.Buffer
	_, err := Encode(&b, KindUnknown, nil)
	assert.Error(t, err)
}

func TestEncodeStreaming(t *testing.T) {
	payload := []byte("written in several small chunks to exercise group buffering")
	var b bytes.Buffer
	w, err := Encode(&b, KindFile, nil)
	assert.NoError(t, err)
	for i := 0; i < len(payload); i += 7 {
		end := i + 7
		if end > len(payload) {
			end = len(payload)
		}
		n, err := w.Write(payload[i:end])
		assert.NoError(t, err)
		assert.Equal(t, end-i, n)
	}
	assert.NoError(t, w.Close())

	whole, err := Armor(KindFile, nil, payload)
	assert.NoError(t, err)
	assert.Equal(t, whole, b.String())
}

func TestEncodeWriteAfterClose(t *testing.T) {
	var b bytes.Buffer
	w, err := Encode(&b, KindMessage, nil)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
	// closing again is harmless
	assert.NoError(t, w.Close())
}
