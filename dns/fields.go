package dns

import (
	"encoding/binary"

	"dnswire/dns/message"
	"dnswire/dns/registry"
)

// readU8 decodes a 1-byte big-endian unsigned integer.
func readU8(c *cursor) (uint8, int, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, 0, err
	}
	return b[0], 1, nil
}

// readU16 decodes a 2-byte big-endian unsigned integer.
func readU16(c *cursor) (uint16, int, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, 0, err
	}
	return binary.BigEndian.Uint16(b), 2, nil
}

// readU32 decodes a 4-byte big-endian unsigned integer.
func readU32(c *cursor) (uint32, int, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, 0, err
	}
	return binary.BigEndian.Uint32(b), 4, nil
}

// readIPv4 decodes a 4-octet address, stored in network order.
func readIPv4(c *cursor) ([4]byte, int, error) {
	var addr [4]byte
	b, err := c.read(4)
	if err != nil {
		return addr, 0, err
	}
	copy(addr[:], b)
	return addr, 4, nil
}

// readIPv6 decodes eight big-endian 16-bit groups (16 bytes total).
func readIPv6(c *cursor) ([16]byte, int, error) {
	var addr [16]byte
	b, err := c.read(16)
	if err != nil {
		return addr, 0, err
	}
	copy(addr[:], b)
	return addr, 16, nil
}

// readCharacterString decodes a 1-byte length L followed by L bytes.
func readCharacterString(c *cursor) (string, int, error) {
	lb, err := c.read(1)
	if err != nil {
		return "", 0, err
	}
	l := int(lb[0])
	data, err := c.read(l)
	if err != nil {
		return "", 0, err
	}
	return string(data), 1 + l, nil
}

// readAnything decodes a raw, opaque byte run of caller-supplied length.
func readAnything(c *cursor, n int) ([]byte, int, error) {
	data, err := c.read(n)
	if err != nil {
		return nil, 0, err
	}
	raw := make([]byte, n)
	copy(raw, data)
	return raw, n, nil
}

// decodeField dispatches to the primitive decoder named by tag, writing
// the result into val. bound is only consulted for TagAnything: every
// other field type carries its own fixed or self-delimited width and must
// never be truncated by a caller-supplied length.
func decodeField(c *cursor, reg *labelRegistry, tag registry.FieldTag, bound int) (message.Value, int, error) {
	val := message.Value{Tag: tag}

	switch tag {
	case registry.TagU8:
		v, n, err := readU8(c)
		val.U8 = v
		return val, n, err

	case registry.TagU16:
		v, n, err := readU16(c)
		val.U16 = v
		return val, n, err

	case registry.TagU32:
		v, n, err := readU32(c)
		val.U32 = v
		return val, n, err

	case registry.TagIPv4:
		v, n, err := readIPv4(c)
		val.IPv4 = v
		return val, n, err

	case registry.TagIPv6:
		v, n, err := readIPv6(c)
		val.IPv6 = v
		return val, n, err

	case registry.TagCharacterString:
		v, n, err := readCharacterString(c)
		val.Str = v
		return val, n, err

	case registry.TagDomainName:
		name, n, err := decodeDomainName(c, reg)
		val.Name = name
		return val, n, err

	case registry.TagAnything:
		v, n, err := readAnything(c, bound)
		val.Raw = v
		return val, n, err
	}

	panic("dns: unhandled field tag")
}
