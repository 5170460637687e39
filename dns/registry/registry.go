// Package registry associates a DNS resource-record type code with the
// shape of its payload: a single primitive field, an ordered composite of
// primitive fields, or an opaque byte run. The decoder drives a Schema
// returned from here rather than inspecting allocated record objects at
// read time.
package registry

// FieldTag names one of the primitive wire types a payload field decodes
// into.
type FieldTag int

const (
	// TagU8 is a 1-byte big-endian unsigned integer.
	TagU8 FieldTag = iota
	// TagU16 is a 2-byte big-endian unsigned integer.
	TagU16
	// TagU32 is a 4-byte big-endian unsigned integer.
	TagU32
	// TagIPv4 is a 4-octet address.
	TagIPv4
	// TagIPv6 is eight big-endian 16-bit groups (16 bytes).
	TagIPv6
	// TagCharacterString is a 1-byte length prefix followed by that many bytes.
	TagCharacterString
	// TagDomainName is a (possibly compressed) domain name.
	TagDomainName
	// TagAnything is an opaque byte run whose length is caller-supplied
	// (the record's rdlength, or the remaining rdlength of a composite).
	TagAnything
)

// Schema describes the ordered sequence of primitive fields that make up a
// resource record's RDATA. A single-primitive payload (e.g. A, TXT) has
// exactly one Fields entry; a composite payload (e.g. MX, SOA) has several;
// an opaque payload uses a single TagAnything entry.
type Schema struct {
	Fields []FieldTag
}

// Composite reports whether the schema has more than one field, i.e.
// whether running remaining-length bookkeeping applies while decoding it.
func (s Schema) Composite() bool {
	return len(s.Fields) > 1
}

var table = map[uint16]Schema{
	1:  {Fields: []FieldTag{TagIPv4}},                                    // A
	2:  {Fields: []FieldTag{TagDomainName}},                              // NS
	5:  {Fields: []FieldTag{TagDomainName}},                              // CNAME
	12: {Fields: []FieldTag{TagDomainName}},                              // PTR
	15: {Fields: []FieldTag{TagU16, TagDomainName}},                      // MX: preference, exchange
	16: {Fields: []FieldTag{TagCharacterString}},                         // TXT
	28: {Fields: []FieldTag{TagIPv6}},                                    // AAAA
	6: {Fields: []FieldTag{ // SOA: mname, rname, serial, refresh, retry, expire, minimum
		TagDomainName, TagDomainName, TagU32, TagU32, TagU32, TagU32, TagU32,
	}},
}

// Anything is the fallback schema used for any type code this registry
// does not special-case: an opaque payload of the record's declared
// length, following RFC 3597's "unknown RR" convention.
var Anything = Schema{Fields: []FieldTag{TagAnything}}

// Lookup returns the payload schema for a resource-record type code. The
// second return value is false only in the sense that the type was not
// found in the closed table above; callers that want RFC 3597 "unknown RR"
// behavior should use Anything in that case rather than fail, which is
// exactly what ResourceBuilder below does.
func Lookup(typ uint16) (Schema, bool) {
	s, ok := table[typ]
	return s, ok
}

// ResourceBuilder returns the payload schema an RR of the given type code
// carries. Unknown type codes resolve to Anything rather than an error.
func ResourceBuilder(typ uint16) Schema {
	if s, ok := Lookup(typ); ok {
		return s
	}
	return Anything
}
