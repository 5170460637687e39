package dns

import "dnswire/dns/message"

// decodeQuestion decodes one question-section entry: a domain name
// followed by a 4-byte {type, class} trailer. It obtains a typed Question
// for the type code, then sets its name and class.
func decodeQuestion(c *cursor, reg *labelRegistry) (message.Question, error) {
	name, _, err := decodeDomainName(c, reg)
	if err != nil {
		return message.Question{}, err
	}

	typ, _, err := readU16(c)
	if err != nil {
		return message.Question{}, err
	}
	class, _, err := readU16(c)
	if err != nil {
		return message.Question{}, err
	}

	q := message.NewQuestion(typ)
	q.Name = name
	q.Class = class
	return *q, nil
}
