// Package acceptlang parses Accept-Language style preference lists.
package acceptlang

import "strings"

// Parse returns the language ranges of header in the order the client wrote
// them. Items are trimmed and lowercased; parameters such as ";q=0.8" are
// dropped and empty items skipped. Quality weights do not reorder the list.
func Parse(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	var langs []string
	for _, part := range strings.Split(header, ",") {
		lang := part
		if semi := strings.IndexByte(lang, ';'); semi >= 0 {
			lang = lang[:semi]
		}
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == "" {
			continue
		}
		langs = append(langs, lang)
	}
	return langs
}

// Primary returns the primary language subtag of lang ("fr" for "fr-ca").
// ok is false when lang has no subtag to strip.
func Primary(lang string) (primary string, ok bool) {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i], true
	}
	return "", false
}
