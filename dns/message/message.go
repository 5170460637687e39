// Package message is the DNS object model the decoder populates: the
// message header, the four record sections, and the question/resource
// record shapes. Plain structs and constructors, not a getter/setter bean
// model.
package message

import "dnswire/dns/registry"

// Header holds the fixed 12-byte DNS header fields. The four section
// counts are read into a decode-local context rather than stored here;
// they only exist to drive the record-section loops and have no further
// meaning once a message is fully decoded.
type Header struct {
	ID uint16

	// QR is true for a response packet, false for a query packet.
	QR bool

	// Opcode is the 4-bit operation code.
	Opcode uint8

	// AA, TC, RD, RA are the single-bit header flags, decoded as clean
	// booleans rather than raw shifted bits.
	AA bool
	TC bool
	RD bool
	RA bool

	// Rcode is the 4-bit response code.
	Rcode uint8
}

// Question is one entry of the question section: a domain name plus the
// type/class of record being asked about.
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// NewQuestion returns a Question with settable name and class for the
// given 16-bit type code. The type code itself is fixed at construction
// since nothing downstream needs to change it.
func NewQuestion(typ uint16) *Question {
	return &Question{Type: typ}
}

// Value is a tagged union over the closed primitive-field set in
// registry.FieldTag: one allocated field per payload shape instead of
// runtime class inspection. Only the field named by Tag is meaningful.
type Value struct {
	Tag registry.FieldTag

	U8  uint8
	U16 uint16
	U32 uint32

	// IPv4 and IPv6 hold four and sixteen bytes respectively.
	IPv4 [4]byte
	IPv6 [16]byte

	// Str holds a decoded CharacterString.
	Str string

	// Name holds a decoded DomainName (leaf-first, dot-joined for display).
	Name string

	// Raw holds a BitMap/Anything byte run.
	Raw []byte
}

// ResourceRecord is a decoded {name, type, class, ttl, rdata} tuple.
// Values holds the decoded payload fields in the order its Schema
// specified them: one entry for a single-primitive or opaque payload,
// several for a composite one (e.g. MX, SOA).
type ResourceRecord struct {
	Name     string
	Type     uint16
	Class    uint16
	TTL      uint32
	RDLength uint16
	Values   []Value
}

// NewResourceRecord returns a ResourceRecord with settable name/class/TTL
// for the given 16-bit type code, and a Values slice pre-shaped to the
// type's schema, ready for the decoder to fill in order.
func NewResourceRecord(typ uint16) *ResourceRecord {
	schema := registry.ResourceBuilder(typ)
	values := make([]Value, len(schema.Fields))
	for i, tag := range schema.Fields {
		values[i].Tag = tag
	}
	return &ResourceRecord{Type: typ, Values: values}
}

// Message is the top-level decoded representation: a header plus the four
// ordered, append-only record sequences.
type Message struct {
	Header     Header
	Question   []Question
	Answer     []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// New returns an empty Message ready for a decoder to populate.
func New() *Message {
	return &Message{}
}
