package citation

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/zonca/citegen/pkg/integrations/pypi"
)

// summaryWidth is the maximum length of a description derived from the long
// description text.
const summaryWidth = 240

var (
	keywordSepRE = regexp.MustCompile(`[,;|\n]`)
	depSplitRE   = regexp.MustCompile(`[<>=!~() ]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	markupRE     = regexp.MustCompile("[`*_#<>]")
)

// NormalizeKeywords splits a raw PyPI keywords string into trimmed terms.
// PyPI publishers separate keywords with commas, semicolons, pipes, or
// newlines, often inconsistently within one string. Source order and
// duplicates are preserved; empty terms are dropped.
func NormalizeKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	var terms []string
	for _, part := range keywordSepRE.Split(raw, -1) {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// SimplifyDependency reduces a PEP 508 requirement specifier to the bare
// package name: environment markers (after ";"), extras (after "["), and
// version constraints are stripped in that order.
func SimplifyDependency(requirement string) string {
	requirement, _, _ = strings.Cut(requirement, ";")
	requirement = strings.TrimSpace(requirement)
	requirement, _, _ = strings.Cut(requirement, "[")
	requirement = strings.TrimSpace(requirement)
	if loc := depSplitRE.FindStringIndex(requirement); loc != nil {
		requirement = requirement[:loc[0]]
	}
	return strings.TrimSpace(requirement)
}

// GatherDependencies simplifies each requires_dist entry to its package
// name, skipping conditional extras ("extra ==" markers), and returns the
// deduplicated names in lexicographic order.
func GatherDependencies(requiresDist []string) []string {
	seen := make(map[string]bool)
	var deps []string
	for _, req := range requiresDist {
		if req == "" || strings.Contains(req, "extra ==") {
			continue
		}
		dep := SimplifyDependency(req)
		if dep == "" || seen[dep] {
			continue
		}
		seen[dep] = true
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// CleanedSummary returns the short summary verbatim when present. Otherwise
// it falls back to the long description with whitespace runs collapsed,
// Markdown/HTML markup characters stripped, and the text truncated to a word
// boundary within 240 characters.
func CleanedSummary(info *pypi.PackageInfo) string {
	if summary := strings.TrimSpace(info.Summary); summary != "" {
		return summary
	}
	desc := whitespaceRE.ReplaceAllString(strings.TrimSpace(info.Description), " ")
	desc = markupRE.ReplaceAllString(desc, "")
	// Stripping markup can leave fresh double spaces ("a ` ` b"), so join
	// fields once more before truncating.
	desc = strings.Join(strings.Fields(desc), " ")
	return shorten(desc, summaryWidth, "...")
}

// shorten truncates s to at most width characters, dropping whole words from
// the end and appending placeholder when anything was cut. Width is counted
// in code points, not bytes, so multibyte text keeps its full budget.
func shorten(s string, width int, placeholder string) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	limit := width - utf8.RuneCountInString(placeholder)
	words := strings.Fields(s)
	var kept []string
	length := 0
	for _, w := range words {
		add := utf8.RuneCountInString(w)
		if len(kept) > 0 {
			add++ // joining space
		}
		if length+add > limit {
			break
		}
		kept = append(kept, w)
		length += add
	}
	if len(kept) == 0 {
		return placeholder
	}
	return strings.Join(kept, " ") + placeholder
}
