package citation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RenderMarkdown produces the finished citation document: a metadata block
// with the record serialized as indented JSON under the package name, and a
// BibTeX block with one reformatted entry per discovered citation. Blank or
// unparseable entries pass through [FormatBibTeXEntry] untouched; an empty
// entry list renders an explicit "none discovered" line so the document
// shape stays constant.
func RenderMarkdown(pkg string, rec Record, bibtexEntries []string) string {
	lines := []string{"# Citation information", "```"}

	recJSON := marshalRecord(rec)
	recLines := strings.Split(recJSON, "\n")
	recLines[0] = fmt.Sprintf("%q: %s", pkg, recLines[0])
	lines = append(lines, strings.Join(recLines, "\n"), "```", "", "# BibTeX", "```")

	var entries []string
	for _, entry := range bibtexEntries {
		if entry = strings.TrimSpace(entry); entry != "" {
			entries = append(entries, FormatBibTeXEntry(entry))
		}
	}
	if len(entries) > 0 {
		lines = append(lines, strings.Join(entries, "\n\n"))
	} else {
		lines = append(lines, "No BibTeX entries discovered.")
	}
	lines = append(lines, "```")
	return strings.Join(lines, "\n") + "\n"
}

// marshalRecord serializes the record with 4-space indentation in struct
// field order. HTML escaping is disabled so URLs and prose come out
// byte-identical to their source.
func marshalRecord(rec Record) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	// A Record contains only strings and string slices; encoding cannot fail.
	_ = enc.Encode(rec)
	return strings.TrimRight(buf.String(), "\n")
}
