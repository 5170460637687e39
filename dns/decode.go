// Package dns decodes DNS messages as transported over UDP/TCP: header,
// question section, and the answer/authority/additional resource-record
// sections, honoring name compression and the rdlength invariants RFC
// 1035 imposes. Encoding, resolution, EDNS(0), DNSSEC, zone files and
// caching are out of scope.
package dns

import (
	"fmt"

	"dnswire/dns/message"
)

// decodeContext is the per-message state bundle: the cursor, the label
// registry, and the section counts parsed from the header. It lives for
// exactly one Decode call.
type decodeContext struct {
	cur    *cursor
	labels *labelRegistry
	counts sectionCounts
}

// Decode parses a single DNS message from buf, the package's sole public
// entry point. The input buffer is not retained or mutated; every value
// Decode returns is copied or independently allocated.
func Decode(buf []byte) (*message.Message, error) {
	ctx := &decodeContext{
		cur:    newCursor(buf),
		labels: newLabelRegistry(),
	}

	header, counts, err := decodeHeader(ctx.cur)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	ctx.counts = counts

	msg := message.New()
	msg.Header = header

	for i := 0; i < int(ctx.counts.qd); i++ {
		q, err := decodeQuestion(ctx.cur, ctx.labels)
		if err != nil {
			return nil, fmt.Errorf("question %d at offset %d: %w", i, ctx.cur.position(), err)
		}
		msg.Question = append(msg.Question, q)
	}

	if err := decodeRRSection(ctx, &msg.Answer, "answer", int(ctx.counts.an)); err != nil {
		return nil, err
	}
	if err := decodeRRSection(ctx, &msg.Authority, "authority", int(ctx.counts.ns)); err != nil {
		return nil, err
	}
	if err := decodeRRSection(ctx, &msg.Additional, "additional", int(ctx.counts.ar)); err != nil {
		return nil, err
	}

	if ctx.cur.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes remaining at offset %d", ErrTrailingGarbage, ctx.cur.remaining(), ctx.cur.position())
	}

	return msg, nil
}

// decodeRRSection decodes count resource records into *out, appending in
// order. section names the record section for error context only.
func decodeRRSection(ctx *decodeContext, out *[]message.ResourceRecord, section string, count int) error {
	for i := 0; i < count; i++ {
		rr, err := decodeResourceRecord(ctx.cur, ctx.labels)
		if err != nil {
			return fmt.Errorf("%s record %d at offset %d: %w", section, i, ctx.cur.position(), err)
		}
		*out = append(*out, rr)
	}
	return nil
}
