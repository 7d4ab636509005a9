package tagattr

import "bytes"

// Escape replaces the five characters with markup meaning by their
// predefined entities, as required inside attribute values. The input is
// returned as-is when nothing needs escaping.
func Escape(raw []byte) []byte {
	var buf bytes.Buffer
	last := 0
	for i, b := range raw {
		var ent string
		switch b {
		case '&':
			ent = "&amp;"
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '\'':
			ent = "&apos;"
		case '"':
			ent = "&quot;"
		default:
			continue
		}
		buf.Write(raw[last:i])
		buf.WriteString(ent)
		last = i + 1
	}
	if last == 0 {
		return raw
	}
	buf.Write(raw[last:])
	return buf.Bytes()
}
