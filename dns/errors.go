package dns

import "errors"

// Decode failure kinds. Every decoder surfaces one of these, wrapped with
// fmt.Errorf("%w: ...") to add the byte offset and context. Callers
// distinguish failure kinds with errors.Is, never by string matching.
var (
	// ErrIncomplete means a cursor read ran past the end of the buffer.
	ErrIncomplete = errors.New("dns: incomplete message")

	// ErrOffsetOutOfRange means an absolute-offset cursor lookup (peekAt)
	// targeted a byte outside the buffer. Compression pointers are resolved
	// through the label registry, so a pointer past the end of the message
	// surfaces as ErrUnresolvedPointer rather than this error.
	ErrOffsetOutOfRange = errors.New("dns: offset out of range")

	// ErrTrailingGarbage means bytes remained after all declared sections
	// were consumed.
	ErrTrailingGarbage = errors.New("dns: trailing garbage after message")

	// ErrInvalidLabelType means a label length octet's top two bits were
	// the reserved 01 or 10 pattern.
	ErrInvalidLabelType = errors.New("dns: invalid label type")

	// ErrUnresolvedPointer means a compression pointer targeted an offset
	// with no registered label suffix (not yet decoded, or mid-label).
	ErrUnresolvedPointer = errors.New("dns: unresolved compression pointer")

	// ErrNameTooLong means a decoded domain name's accumulated wire length
	// exceeded 255 bytes.
	ErrNameTooLong = errors.New("dns: domain name exceeds 255 bytes")

	// ErrLabelTooLong means a literal label's length exceeded 63 bytes. The
	// top-two-bits check on the length octet already excludes this in
	// practice; it is retained for registries with a different mask.
	ErrLabelTooLong = errors.New("dns: label exceeds 63 bytes")

	// ErrRdataLengthMismatch means a resource record's payload decoders
	// consumed a byte count different from its declared rdlength.
	ErrRdataLengthMismatch = errors.New("dns: rdata length mismatch")

	// ErrUnknownRecordType is reserved for registries that choose to reject
	// unknown type codes outright. This module's default registry (see
	// dns/registry) instead resolves unknown types to an opaque payload, so
	// this error is never produced by the default configuration.
	ErrUnknownRecordType = errors.New("dns: unknown record type")
)
