// Package ofxparser converts raw OFX bank-export text into deduplicated
// candidate ledger entries with a stable import identity.
package ofxparser

import "strings"

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"\r", "",
	"\n", "",
	"\t", " ",
)

// NormalizeTags repairs the SGML-flavored OFX body into well-formed paired
// tags on a single line. Bank exports routinely leave data tags unclosed
// (<MEMO>TED RECEBIDA) or self-closed; a small state machine over the
// tag-pair grammar rewrites them so block extraction can rely on explicit
// closes. Malformed input degrades into fewer matches, never an error.
func NormalizeTags(raw string) string {
	s := entityReplacer.Replace(raw)

	var b strings.Builder
	b.Grow(len(s))

	// pending is the last opened tag still waiting for content or a close;
	// pendingHasText distinguishes data tags from aggregate containers.
	pending := ""
	pendingHasText := false

	closePending := func() {
		if pending != "" && pendingHasText {
			b.WriteString("</")
			b.WriteString(pending)
			b.WriteString(">")
		}
		pending = ""
		pendingHasText = false
	}

	i := 0
	for i < len(s) {
		if s[i] != '<' {
			j := strings.IndexByte(s[i:], '<')
			var text string
			if j < 0 {
				text = s[i:]
				i = len(s)
			} else {
				text = s[i : i+j]
				i += j
			}
			text = strings.TrimSpace(text)
			// Text outside any open tag (OFX header lines) is dropped.
			if pending != "" && text != "" {
				b.WriteString(text)
				pendingHasText = true
			}
			continue
		}

		j := strings.IndexByte(s[i:], '>')
		if j < 0 {
			// Dangling '<' at end of input.
			break
		}
		name := strings.TrimSpace(s[i+1 : i+j])
		i += j + 1

		switch {
		case name == "":
			// "<>" noise, skip.
		case name[0] == '/':
			name = strings.ToUpper(strings.TrimSpace(name[1:]))
			if pending != "" && pending != name {
				closePending()
			}
			pending = ""
			pendingHasText = false
			b.WriteString("</")
			b.WriteString(name)
			b.WriteString(">")
		case name[len(name)-1] == '/':
			closePending()
			name = strings.ToUpper(strings.TrimSpace(name[:len(name)-1]))
			if name != "" {
				b.WriteString("<")
				b.WriteString(name)
				b.WriteString("></")
				b.WriteString(name)
				b.WriteString(">")
			}
		default:
			closePending()
			name = strings.ToUpper(name)
			b.WriteString("<")
			b.WriteString(name)
			b.WriteString(">")
			pending = name
		}
	}
	closePending()

	return b.String()
}
