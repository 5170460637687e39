package dns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func rrPrefix(name []byte, typ, class uint16, ttl uint32, rdlength uint16) []byte {
	buf := append([]byte{}, name...)
	buf = append(buf, put16(typ)...)
	buf = append(buf, put16(class)...)
	buf = append(buf, put32(ttl)...)
	buf = append(buf, put16(rdlength)...)
	return buf
}

func TestDecodeResourceRecordA(t *testing.T) {
	name := encodeLiteralName("example", "com")
	buf := rrPrefix(name, 1, 1, 300, 4)
	buf = append(buf, 203, 0, 113, 7)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Equal(t, "example.com", rr.Name)
	require.Equal(t, uint16(1), rr.Type)
	require.Equal(t, uint32(300), rr.TTL)
	require.Len(t, rr.Values, 1)
	require.Equal(t, [4]byte{203, 0, 113, 7}, rr.Values[0].IPv4)
	require.Equal(t, 0, c.remaining())
}

func TestDecodeResourceRecordAAAA(t *testing.T) {
	name := encodeLiteralName("example", "com")
	addr := make([]byte, 16)
	for i := range addr {
		addr[i] = byte(i + 1)
	}
	buf := rrPrefix(name, 28, 1, 0, 16)
	buf = append(buf, addr...)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Len(t, rr.Values, 1)
	for i := range addr {
		require.Equal(t, addr[i], rr.Values[0].IPv6[i])
	}
}

func TestDecodeResourceRecordCNAME(t *testing.T) {
	name := encodeLiteralName("www", "example", "com")
	target := encodeLiteralName("example", "com")
	buf := rrPrefix(name, 5, 1, 0, uint16(len(target)))
	buf = append(buf, target...)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Equal(t, "www.example.com", rr.Name)
	require.Len(t, rr.Values, 1)
	require.Equal(t, "example.com", rr.Values[0].Name)
}

func TestDecodeResourceRecordTXT(t *testing.T) {
	name := encodeLiteralName("example", "com")
	text := []byte{5, 'h', 'e', 'l', 'l', 'o'}
	buf := rrPrefix(name, 16, 1, 0, uint16(len(text)))
	buf = append(buf, text...)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Equal(t, "hello", rr.Values[0].Str)
}

func TestDecodeResourceRecordSOAComposite(t *testing.T) {
	name := encodeLiteralName("example", "com")
	mname := encodeLiteralName("ns1", "example", "com")
	rname := encodeLiteralName("hostmaster", "example", "com")
	rdata := append([]byte{}, mname...)
	rdata = append(rdata, rname...)
	rdata = append(rdata, put32(2024010100)...) // serial
	rdata = append(rdata, put32(7200)...)       // refresh
	rdata = append(rdata, put32(3600)...)       // retry
	rdata = append(rdata, put32(1209600)...)    // expire
	rdata = append(rdata, put32(300)...)        // minimum

	buf := rrPrefix(name, 6, 1, 0, uint16(len(rdata)))
	buf = append(buf, rdata...)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Len(t, rr.Values, 7)
	require.Equal(t, "ns1.example.com", rr.Values[0].Name)
	require.Equal(t, "hostmaster.example.com", rr.Values[1].Name)
	require.Equal(t, uint32(2024010100), rr.Values[2].U32)
	require.Equal(t, uint32(300), rr.Values[6].U32)
	require.Equal(t, 0, c.remaining())
}

func TestDecodeResourceRecordUnknownTypeIsAnything(t *testing.T) {
	name := encodeLiteralName("example", "com")
	buf := rrPrefix(name, 65280, 1, 0, 3)
	buf = append(buf, 1, 2, 3)

	c := newCursor(buf)
	reg := newLabelRegistry()

	rr, err := decodeResourceRecord(c, reg)
	require.NoError(t, err)
	require.Len(t, rr.Values, 1)
	require.Equal(t, []byte{1, 2, 3}, rr.Values[0].Raw)
}

func TestDecodeResourceRecordRdataLengthMismatch(t *testing.T) {
	name := encodeLiteralName("example", "com")
	buf := rrPrefix(name, 1, 1, 0, 5) // declares 5, A is always 4
	buf = append(buf, 1, 2, 3, 4, 9)

	c := newCursor(buf)
	reg := newLabelRegistry()

	_, err := decodeResourceRecord(c, reg)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrRdataLengthMismatch))
}

func TestDecodeResourceRecordTruncatedTrailer(t *testing.T) {
	name := encodeLiteralName("example", "com")
	buf := append([]byte{}, name...)
	buf = append(buf, put16(1)...)
	buf = append(buf, put16(1)...)
	// missing TTL and rdlength

	c := newCursor(buf)
	reg := newLabelRegistry()

	_, err := decodeResourceRecord(c, reg)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIncomplete))
}
