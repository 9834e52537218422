package schema

// StripComments removes `//` line comments and `/* */` block comments from
// JSON-ish text. The scanner is string-literal aware: comment markers inside
// quoted strings are preserved verbatim. Stripped regions are replaced with
// spaces (newlines kept) so byte offsets of the remaining JSON stay stable.
func StripComments(src []byte) []byte {
	out := make([]byte, len(src))
	copy(out, src)

	const (
		stCode = iota
		stString
		stLine
		stBlock
	)
	state := stCode
	for i := 0; i < len(out); i++ {
		b := out[i]
		switch state {
		case stCode:
			switch {
			case b == '"':
				state = stString
			case b == '/' && i+1 < len(out) && out[i+1] == '/':
				state = stLine
				out[i] = ' '
			case b == '/' && i+1 < len(out) && out[i+1] == '*':
				state = stBlock
				out[i] = ' '
			}
		case stString:
			if b == '\\' {
				i++
			} else if b == '"' {
				state = stCode
			}
		case stLine:
			if b == '\n' {
				state = stCode
			} else {
				out[i] = ' '
			}
		case stBlock:
			if b == '*' && i+1 < len(out) && out[i+1] == '/' {
				out[i] = ' '
				out[i+1] = ' '
				i++
				state = stCode
			} else if b != '\n' {
				out[i] = ' '
			}
		}
	}
	return out
}
