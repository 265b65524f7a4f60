package citation

import "strings"

// ExtractLanguage derives an implementation language from trove classifiers.
// Any "Programming Language :: Python" classifier wins outright; otherwise
// the last segment of the first programming-language classifier is used.
func ExtractLanguage(classifiers []string) string {
	for _, c := range classifiers {
		if strings.HasPrefix(c, "Programming Language :: Python") {
			return "Python"
		}
	}
	for _, c := range classifiers {
		if strings.HasPrefix(c, "Programming Language ::") {
			return lastSegment(c)
		}
	}
	return ""
}

// ExtractCategory derives a subject category from trove classifiers,
// preferring "Topic ::" over "Intended Audience ::".
func ExtractCategory(classifiers []string) string {
	for _, c := range classifiers {
		if strings.HasPrefix(c, "Topic ::") {
			return lastSegment(c)
		}
	}
	for _, c := range classifiers {
		if strings.HasPrefix(c, "Intended Audience ::") {
			return lastSegment(c)
		}
	}
	return ""
}

func lastSegment(classifier string) string {
	parts := strings.Split(classifier, "::")
	return strings.TrimSpace(parts[len(parts)-1])
}
