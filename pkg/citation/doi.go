package citation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/zonca/citegen/pkg/integrations/pypi"
)

// doiRE matches a DOI: the "10." directory prefix, a 4-9 digit registrant
// code, and a suffix drawn from the characters DOIs permit in practice.
var doiRE = regexp.MustCompile(`10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)

// zenodoPrefix identifies DOIs minted by the Zenodo archive.
const zenodoPrefix = "10.5281/zenodo"

// ExtractDOIs scans the package summary, long description, and project URL
// values for DOI patterns. Trailing sentence punctuation is stripped from
// each match; the result is deduplicated and sorted lexicographically so
// downstream fetches run in a reproducible order.
func ExtractDOIs(info *pypi.PackageInfo) []string {
	fragments := []string{info.Summary, info.Description}
	fragments = append(fragments, info.ProjectURLs.Values()...)
	blob := strings.Join(fragments, " ")

	seen := make(map[string]bool)
	var dois []string
	for _, match := range doiRE.FindAllString(blob, -1) {
		doi := strings.TrimRight(match, ".,)")
		if doi == "" || seen[doi] {
			continue
		}
		seen[doi] = true
		dois = append(dois, doi)
	}
	sort.Strings(dois)
	return dois
}

// ZenodoDOI returns the first DOI in dois minted by Zenodo, or "".
func ZenodoDOI(dois []string) string {
	for _, doi := range dois {
		if strings.Contains(strings.ToLower(doi), zenodoPrefix) {
			return doi
		}
	}
	return ""
}
