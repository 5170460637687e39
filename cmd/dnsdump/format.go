package main

import (
	"fmt"
	"strings"

	"dnswire/dns/message"
	"dnswire/dns/registry"
)

// typeName renders a record type code the way dig(1) does, falling back to
// RFC 3597's "TYPEn" convention for anything this tool doesn't name.
func typeName(t uint16) string {
	switch t {
	case 1:
		return "A"
	case 2:
		return "NS"
	case 5:
		return "CNAME"
	case 6:
		return "SOA"
	case 12:
		return "PTR"
	case 15:
		return "MX"
	case 16:
		return "TXT"
	case 28:
		return "AAAA"
	default:
		return fmt.Sprintf("TYPE%d", t)
	}
}

// rcodeName renders the 4-bit response code.
func rcodeName(rcode uint8) string {
	switch rcode {
	case 0:
		return "NOERROR"
	case 2:
		return "SERVFAIL"
	case 3:
		return "NXDOMAIN"
	default:
		return fmt.Sprintf("RCODE%d", rcode)
	}
}

// flagSummary renders the set header flags as dig(1) does.
func flagSummary(h message.Header) string {
	var flags []string
	if h.QR {
		flags = append(flags, "qr")
	}
	if h.AA {
		flags = append(flags, "aa")
	}
	if h.TC {
		flags = append(flags, "tc")
	}
	if h.RD {
		flags = append(flags, "rd")
	}
	if h.RA {
		flags = append(flags, "ra")
	}
	return strings.Join(flags, " ")
}

// rdataString renders a decoded resource record's payload for display,
// operating on the already-decoded Values rather than re-parsing raw
// bytes, since compression pointers are resolved eagerly at decode time.
func rdataString(rr message.ResourceRecord) string {
	switch rr.Type {
	case 1: // A
		if len(rr.Values) == 1 {
			ip := rr.Values[0].IPv4
			return fmt.Sprintf("%d.%d.%d.%d", ip[0], ip[1], ip[2], ip[3])
		}
	case 28: // AAAA
		if len(rr.Values) == 1 {
			ip := rr.Values[0].IPv6
			var groups []string
			for i := 0; i < 16; i += 2 {
				groups = append(groups, fmt.Sprintf("%x", uint16(ip[i])<<8|uint16(ip[i+1])))
			}
			return strings.Join(groups, ":")
		}
	case 2, 5, 12: // NS, CNAME, PTR
		if len(rr.Values) == 1 {
			return rr.Values[0].Name
		}
	case 15: // MX
		if len(rr.Values) == 2 {
			return fmt.Sprintf("%d %s", rr.Values[0].U16, rr.Values[1].Name)
		}
	case 6: // SOA
		if len(rr.Values) == 7 {
			v := rr.Values
			return fmt.Sprintf("%s %s %d %d %d %d %d", v[0].Name, v[1].Name, v[2].U32, v[3].U32, v[4].U32, v[5].U32, v[6].U32)
		}
	case 16: // TXT
		if len(rr.Values) == 1 {
			return fmt.Sprintf("%q", rr.Values[0].Str)
		}
	}
	return rawValuesString(rr.Values)
}

// rawValuesString is the fallback for unknown or malformed record shapes:
// the raw opaque bytes, matching the registry's Anything schema.
func rawValuesString(values []message.Value) string {
	for _, v := range values {
		if v.Tag == registry.TagAnything {
			return fmt.Sprintf("\\# %d %x", len(v.Raw), v.Raw)
		}
	}
	return "(unrepresentable)"
}
