package citation

import (
	"fmt"
	"strings"
)

// fieldIndent is the per-field indentation used by FormatBibTeXEntry.
const fieldIndent = "  "

// SplitBibTeXFields splits the field list of a BibTeX entry body on
// top-level commas. The scanner walks the text once, toggling an in-quote
// flag on '"' and counting brace depth (floored at zero), and treats a comma
// as a separator only at depth zero outside quotes. Commas nested inside
// {...} groups or quoted values therefore stay inside their field.
func SplitBibTeXFields(fieldsPart string) []string {
	var parts []string
	var current strings.Builder
	braceDepth := 0
	inQuotes := false

	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for _, ch := range fieldsPart {
		switch ch {
		case '"':
			inQuotes = !inQuotes
		case '{':
			braceDepth++
		case '}':
			braceDepth = max(braceDepth-1, 0)
		}
		if ch == ',' && braceDepth == 0 && !inQuotes {
			flush()
			continue
		}
		current.WriteRune(ch)
	}
	flush()
	return parts
}

// FormatBibTeXEntry re-indents a single BibTeX entry to one field per line:
//
//	@type{key,
//	  name = value,
//	  name = value
//	}
//
// The entry is treated as an opaque blob to be re-tokenized, not parsed into
// a citation model. Anything that does not match the expected shape is
// returned unchanged: text not starting with '@', a missing or unbalanced
// brace, a body without a comma after the citation key, or an empty field
// list. Reformatting is idempotent.
func FormatBibTeXEntry(entry string) string {
	text := strings.TrimSpace(entry)
	if !strings.HasPrefix(text, "@") {
		return text
	}
	open := strings.Index(text, "{")
	if open < 0 {
		return text
	}
	entryType := strings.TrimSpace(text[1:open])

	// Find the brace matching the one after the entry type. Depth starts at
	// 1; if it never returns to 0 the entry is malformed.
	remainder := text[open+1:]
	depth := 1
	idx := 0
	for idx < len(remainder) && depth > 0 {
		switch remainder[idx] {
		case '{':
			depth++
		case '}':
			depth--
		}
		idx++
	}
	if depth != 0 {
		return text
	}

	body := strings.TrimSpace(remainder[:idx-1])
	key, fieldsPart, found := strings.Cut(body, ",")
	if !found {
		return text
	}
	fields := SplitBibTeXFields(strings.TrimSpace(fieldsPart))
	if len(fields) == 0 {
		return text
	}

	lines := []string{fmt.Sprintf("@%s{%s,", entryType, strings.TrimSpace(key))}
	for i, field := range fields {
		if name, value, ok := strings.Cut(field, "="); ok {
			field = strings.TrimSpace(name) + " = " + strings.TrimSpace(value)
		}
		suffix := ","
		if i == len(fields)-1 {
			suffix = ""
		}
		lines = append(lines, fieldIndent+field+suffix)
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
