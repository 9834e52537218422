package resolve

import (
	"strings"
)

// segment is one step of a dotted path: a name plus any index suffixes,
// so `roles[_]` is {name: "roles", indexes: ["_"]}.
type segment struct {
	name    string
	indexes []string
}

// splitPath breaks `input.identity.roles[_].name` into segments. A
// trailing dot yields a final empty-name segment, which callers read as
// "complete children here".
func splitPath(path string) []segment {
	parts := strings.Split(path, ".")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		seg := segment{name: part}
		if i := strings.IndexByte(part, '['); i >= 0 {
			seg.name = part[:i]
			rest := part[i:]
			for len(rest) > 0 && rest[0] == '[' {
				end := strings.IndexByte(rest, ']')
				if end < 0 {
					seg.indexes = append(seg.indexes, rest[1:])
					break
				}
				seg.indexes = append(seg.indexes, rest[1:end])
				rest = rest[end+1:]
			}
		}
		segs = append(segs, seg)
	}
	return segs
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
