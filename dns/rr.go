package dns

import (
	"fmt"

	"dnswire/dns/message"
	"dnswire/dns/registry"
)

// decodeResourceRecord decodes one resource record: a domain name, a
// 10-byte trailer {type, class, ttl, rdlength}, then a payload shaped by
// the type code's schema.
func decodeResourceRecord(c *cursor, reg *labelRegistry) (message.ResourceRecord, error) {
	name, _, err := decodeDomainName(c, reg)
	if err != nil {
		return message.ResourceRecord{}, err
	}

	typ, _, err := readU16(c)
	if err != nil {
		return message.ResourceRecord{}, err
	}
	class, _, err := readU16(c)
	if err != nil {
		return message.ResourceRecord{}, err
	}
	ttl, _, err := readU32(c)
	if err != nil {
		return message.ResourceRecord{}, err
	}
	rdlength, _, err := readU16(c)
	if err != nil {
		return message.ResourceRecord{}, err
	}

	rr := message.NewResourceRecord(typ)
	rr.Name = name
	rr.Class = class
	rr.TTL = ttl
	rr.RDLength = rdlength

	if err := decodeResourceRecordPayload(c, reg, rr); err != nil {
		return message.ResourceRecord{}, err
	}

	return *rr, nil
}

// decodeResourceRecordPayload dispatches the record's declared schema to
// field decoders.
//
// A single-primitive schema gets the field decoded directly; only
// TagAnything (BitMap/opaque) is handed rdlength as its length bound, and
// the decoder then checks the consumed count against rdlength itself.
//
// A composite schema iterates its fields in order against a running
// remaining-length counter, which must land on exactly zero. Only
// TagAnything fields ever consult that bound; every other field type
// knows its own width.
func decodeResourceRecordPayload(c *cursor, reg *labelRegistry, rr *message.ResourceRecord) error {
	if len(rr.Values) == 1 {
		tag := rr.Values[0].Tag
		bound := 0
		if tag == registry.TagAnything {
			bound = int(rr.RDLength)
		}

		val, consumed, err := decodeField(c, reg, tag, bound)
		if err != nil {
			return err
		}
		rr.Values[0] = val

		if tag != registry.TagAnything && consumed != int(rr.RDLength) {
			return fmt.Errorf("%w: type %d declared %d bytes, field consumed %d", ErrRdataLengthMismatch, rr.Type, rr.RDLength, consumed)
		}
		return nil
	}

	remaining := int(rr.RDLength)
	for i := range rr.Values {
		tag := rr.Values[i].Tag
		bound := 0
		if tag == registry.TagAnything {
			bound = remaining
		}

		val, consumed, err := decodeField(c, reg, tag, bound)
		if err != nil {
			return err
		}
		rr.Values[i] = val
		remaining -= consumed
	}

	if remaining != 0 {
		return fmt.Errorf("%w: type %d declared %d bytes, composite residue %d", ErrRdataLengthMismatch, rr.Type, rr.RDLength, remaining)
	}
	return nil
}
