package citation

import (
	"context"

	"github.com/zonca/citegen/pkg/integrations/pypi"
)

// Placeholder is the sentinel substituted for every field that could not be
// derived from registry metadata, signalling "needs manual completion".
const Placeholder = "FIXME"

// Record is the citation metadata block for one package. Field order
// matters: it is the serialization order of the rendered document, fixed by
// the struct declaration. Every field is always populated; consumers never
// see a missing or null value, only real data or the placeholder.
type Record struct {
	Tags            []string `json:"tags"`
	Logo            string   `json:"logo"`
	Language        string   `json:"language"`
	Category        string   `json:"category"`
	Keywords        []string `json:"keywords"`
	Description     string   `json:"description"`
	Link            string   `json:"link"`
	AttributionLink string   `json:"attribution_link"`
	ZenodoDOI       string   `json:"zenodo_doi"`
	CustomCitation  string   `json:"custom_citation"`
	Dependencies    []string `json:"dependencies"`
}

// BuildRecord runs every extractor over info and assembles the final record.
// Tags, logo, and custom citation have no extraction heuristics and always
// carry placeholders for downstream curation. The finder drives the
// citation-file probing stage of the attribution link; pass nil to skip
// network probing entirely.
func BuildRecord(ctx context.Context, info *pypi.PackageInfo, finder CitationFileFinder) Record {
	return Record{
		Tags:            []string{Placeholder},
		Logo:            Placeholder,
		Language:        orPlaceholder(ExtractLanguage(info.Classifiers)),
		Category:        orPlaceholder(ExtractCategory(info.Classifiers)),
		Keywords:        orPlaceholderList(NormalizeKeywords(info.Keywords)),
		Description:     orPlaceholder(CleanedSummary(info)),
		Link:            orPlaceholder(PrimaryHomepage(info)),
		AttributionLink: orPlaceholder(FindAttributionLink(ctx, info, finder)),
		ZenodoDOI:       orPlaceholder(ZenodoDOI(ExtractDOIs(info))),
		CustomCitation:  Placeholder,
		Dependencies:    orPlaceholderList(GatherDependencies(info.RequiresDist)),
	}
}

func orPlaceholder(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}

func orPlaceholderList(values []string) []string {
	if len(values) == 0 {
		return []string{Placeholder}
	}
	return values
}
