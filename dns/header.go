package dns

import "dnswire/dns/message"

// headerSize is the fixed DNS header length in bytes.
const headerSize = 12

// sectionCounts holds the four record counts parsed from the header, used
// to drive the per-section decode loops in decode.go.
type sectionCounts struct {
	qd uint16
	an uint16
	ns uint16
	ar uint16
}

// decodeHeader reads the fixed 12-byte header and returns the populated
// Header plus the section counts that drive the rest of the decode. Bit
// layout:
//
//	byte 2: QR(1) OPCODE(4) AA(1) TC(1) RD(1)
//	byte 3: RA(1) Z(3, ignored) RCODE(4)
func decodeHeader(c *cursor) (message.Header, sectionCounts, error) {
	var h message.Header
	var counts sectionCounts

	idBytes, err := c.read(2)
	if err != nil {
		return h, counts, err
	}
	h.ID = uint16(idBytes[0])<<8 | uint16(idBytes[1])

	flagBytes, err := c.read(2)
	if err != nil {
		return h, counts, err
	}
	b2, b3 := flagBytes[0], flagBytes[1]

	h.QR = b2>>7 != 0
	h.Opcode = (b2 >> 3) & 0xF
	h.AA = (b2>>2)&0x1 != 0
	h.TC = (b2>>1)&0x1 != 0
	h.RD = b2&0x1 != 0

	h.RA = b3>>7 != 0
	h.Rcode = b3 & 0xF

	qd, err := c.read(2)
	if err != nil {
		return h, counts, err
	}
	an, err := c.read(2)
	if err != nil {
		return h, counts, err
	}
	ns, err := c.read(2)
	if err != nil {
		return h, counts, err
	}
	ar, err := c.read(2)
	if err != nil {
		return h, counts, err
	}

	counts.qd = uint16(qd[0])<<8 | uint16(qd[1])
	counts.an = uint16(an[0])<<8 | uint16(an[1])
	// NSCOUNT feeds the authority-section loop, per RFC 1035.
	counts.ns = uint16(ns[0])<<8 | uint16(ns[1])
	counts.ar = uint16(ar[0])<<8 | uint16(ar[1])

	return h, counts, nil
}
