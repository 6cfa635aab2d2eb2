package crc24

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyInput(t *testing.T) {
	// The CRC of no data is the initial value itself. Armoring an
	// empty payload relies on this exact constant.
	assert.Exactly(t, uint32(0xB704CE), Sum(nil))
	assert.Exactly(t, uint32(0xB704CE), Sum([]byte{}))
}

func TestIncrementalMatchesOneShot(t *testing.T) {
	data := []byte("canonical s-expressions wrapped in ascii armor")

	crc := Init()
	for _, b := range data {
		crc = Update(crc, []byte{b})
	}
	assert.Exactly(t, Sum(data), crc)

	crc = Init()
	crc = Update(crc, data[:7])
	crc = Update(crc, data[7:])
	assert.Exactly(t, Sum(data), crc)
}

func TestMaskedTo24Bits(t *testing.T) {
	inputs := [][]byte{
		{0x00}, {0xFF}, {0x00, 0x00, 0x00, 0x00},
		[]byte("a"), []byte("hello"),
	}
	for _, in := range inputs {
		assert.Exactly(t, uint32(0), Sum(in)>>24)
	}
}

func TestDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, Sum([]byte("foo")), Sum([]byte("bar")))
	assert.NotEqual(t, Sum([]byte("foo")), Sum([]byte("foo\x00")))
	assert.NotEqual(t, Sum(nil), Sum([]byte{0}))
}
