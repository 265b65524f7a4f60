package citation

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/zonca/citegen/pkg/integrations/pypi"
)

func TestNormalizeKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed separators", "a, b;c|d\ne", []string{"a", "b", "c", "d", "e"}},
		{"comma separated", "astronomy, cosmology, simulation", []string{"astronomy", "cosmology", "simulation"}},
		{"duplicates kept in order", "web, api, web", []string{"web", "api", "web"}},
		{"empty terms dropped", "a,,  ,b", []string{"a", "b"}},
		{"empty input", "", nil},
		{"only separators", ";|,\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKeywords(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeKeywords(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplifyDependency(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"foo[extra]>=1.0; extra == 'bar'", "foo"},
		{"numpy>=1.20", "numpy"},
		{"requests", "requests"},
		{"scipy (>=1.5)", "scipy"},
		{"pandas[all]", "pandas"},
		{"torch ; python_version < '3.12'", "torch"},
		{"pkg!=2.0", "pkg"},
		{"pkg~=1.4", "pkg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SimplifyDependency(tt.input); got != tt.want {
			t.Errorf("SimplifyDependency(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGatherDependencies(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			"extras excluded and sorted",
			[]string{"foo==1.0", "bar; extra == 'x'"},
			[]string{"foo"},
		},
		{
			"lexicographic order",
			[]string{"zlib-ng", "astropy>=5", "numpy"},
			[]string{"astropy", "numpy", "zlib-ng"},
		},
		{
			"deduplicated",
			[]string{"numpy>=1.20", "numpy<2"},
			[]string{"numpy"},
		},
		{"empty input", nil, nil},
		{"only extras", []string{"pytest; extra == 'test'"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GatherDependencies(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GatherDependencies(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanedSummaryPrefersSummary(t *testing.T) {
	info := &pypi.PackageInfo{
		Summary:     "A short summary.",
		Description: "# Heading\n\nLong *markdown* body",
	}
	if got := CleanedSummary(info); got != "A short summary." {
		t.Errorf("CleanedSummary = %q, want the summary verbatim", got)
	}
}

func TestCleanedSummaryFallsBackToDescription(t *testing.T) {
	info := &pypi.PackageInfo{
		Description: "#  A   package\n\nwith `markdown`  *noise* and <tags>",
	}
	got := CleanedSummary(info)
	if strings.ContainsAny(got, "`*_#<>") {
		t.Errorf("markup characters survived: %q", got)
	}
	if strings.Contains(got, "  ") {
		t.Errorf("whitespace runs survived: %q", got)
	}
	if got != "A package with markdown noise and tags" {
		t.Errorf("CleanedSummary = %q", got)
	}
}

func TestCleanedSummaryTruncatesOnWordBoundary(t *testing.T) {
	info := &pypi.PackageInfo{
		Description: strings.Repeat("longword ", 60),
	}
	got := CleanedSummary(info)
	if len(got) > summaryWidth {
		t.Errorf("length %d exceeds %d", len(got), summaryWidth)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	trimmed := strings.TrimSuffix(got, "...")
	if strings.HasSuffix(trimmed, "longwor") || strings.HasSuffix(trimmed, "longw") {
		t.Errorf("truncation split a word: %q", got)
	}
}

func TestCleanedSummaryEmptyInfo(t *testing.T) {
	if got := CleanedSummary(&pypi.PackageInfo{}); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

func TestCleanedSummaryCountsRunesNotBytes(t *testing.T) {
	// 239 runes but 279 bytes; a byte budget would truncate this.
	desc := strings.TrimSpace(strings.Repeat("héllo ", 40))
	info := &pypi.PackageInfo{Description: desc}

	if got := CleanedSummary(info); got != desc {
		t.Errorf("multibyte description within the budget was truncated: %q", got)
	}
}

func TestCleanedSummaryTruncatesMultibyteByRunes(t *testing.T) {
	info := &pypi.PackageInfo{
		Description: strings.Repeat("wörd ", 60),
	}
	got := CleanedSummary(info)
	if n := utf8.RuneCountInString(got); n > summaryWidth {
		t.Errorf("rune count %d exceeds %d", n, summaryWidth)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
