package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHeaderReadsTwelveBytes(t *testing.T) {
	buf := []byte{
		0x12, 0x34, // ID
		0x01, 0x00, // flags: RD=1
		0x00, 0x01, // QDCOUNT
		0x00, 0x02, // ANCOUNT
		0x00, 0x03, // NSCOUNT
		0x00, 0x04, // ARCOUNT
	}
	c := newCursor(buf)

	h, counts, err := decodeHeader(c)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), h.ID)
	require.True(t, h.RD)
	require.False(t, h.QR)
	require.Equal(t, uint16(1), counts.qd)
	require.Equal(t, uint16(2), counts.an)
	require.Equal(t, uint16(3), counts.ns)
	require.Equal(t, uint16(4), counts.ar)
	require.Equal(t, headerSize, c.position(), "header decode must consume exactly 12 bytes")
}

func TestDecodeHeaderFlagCombinations(t *testing.T) {
	for qr := 0; qr < 2; qr++ {
		for aa := 0; aa < 2; aa++ {
			for tc := 0; tc < 2; tc++ {
				for rd := 0; rd < 2; rd++ {
					for ra := 0; ra < 2; ra++ {
						b2 := byte(qr<<7) | byte(aa<<2) | byte(tc<<1) | byte(rd)
						b3 := byte(ra << 7)
						buf := []byte{0, 0, b2, b3, 0, 0, 0, 0, 0, 0, 0, 0}
						c := newCursor(buf)

						h, _, err := decodeHeader(c)
						require.NoError(t, err)
						require.Equal(t, qr == 1, h.QR)
						require.Equal(t, aa == 1, h.AA)
						require.Equal(t, tc == 1, h.TC)
						require.Equal(t, rd == 1, h.RD)
						require.Equal(t, ra == 1, h.RA)
					}
				}
			}
		}
	}
}

func TestDecodeHeaderOpcodeAndRcode(t *testing.T) {
	// OPCODE = 0xF (max 4 bits), RCODE = 0xF (max 4 bits)
	buf := []byte{0, 0, 0x78, 0x0F, 0, 0, 0, 0, 0, 0, 0, 0}
	c := newCursor(buf)

	h, _, err := decodeHeader(c)
	require.NoError(t, err)
	require.Equal(t, uint8(0xF), h.Opcode)
	require.Equal(t, uint8(0xF), h.Rcode)
}

func TestDecodeHeaderTooShort(t *testing.T) {
	c := newCursor(make([]byte, 11))
	_, _, err := decodeHeader(c)
	require.Error(t, err)
}
