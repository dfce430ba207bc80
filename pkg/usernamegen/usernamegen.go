// Package usernamegen derives candidate usernames from name lists.
// Format: prefix + first-name part + last-name part + suffix
// (e.g., "adm" + "joh" + "sve" + "01" -> "admjohsve01")
package usernamegen

import "strings"

// aaoReplacer transliterates å, ä and ö to their closest ASCII letters.
var aaoReplacer = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")

// Options controls how name parts are derived before combination.
type Options struct {
	// NumFirstNameChars is the number of leading characters kept from each first name.
	NumFirstNameChars int
	// NumLastNameChars is the number of leading characters kept from each last name.
	NumLastNameChars int
	// PermitAao keeps å, ä and ö in usernames instead of transliterating them.
	PermitAao bool
}

// Generate enumerates the cartesian product of prefixes, first names, last
// names and suffixes and returns the set of unique non-empty usernames.
//
// Each first and last name contributes only its leading characters (per
// Options), trimmed, lower-cased and with é folded to e. An empty input
// slice is treated as containing a single empty string, so prefixes and
// suffixes are optional and never zero out the product. The returned set
// is freshly allocated per call; Generate reads nothing else and is safe
// for concurrent use.
func Generate(firstNames, lastNames, prefixes, suffixes []string, opts Options) map[string]struct{} {
	if len(firstNames) == 0 {
		firstNames = []string{""}
	}
	if len(lastNames) == 0 {
		lastNames = []string{""}
	}
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}
	if len(suffixes) == 0 {
		suffixes = []string{""}
	}

	usernames := make(map[string]struct{})

	for _, prefix := range prefixes {
		for _, firstName := range firstNames {
			firstNamePart := namePart(firstName, opts.NumFirstNameChars, opts.PermitAao)
			for _, lastName := range lastNames {
				lastNamePart := namePart(lastName, opts.NumLastNameChars, opts.PermitAao)
				for _, suffix := range suffixes {
					if username := prefix + firstNamePart + lastNamePart + suffix; username != "" {
						usernames[username] = struct{}{}
					}
				}
			}
		}
	}

	return usernames
}

// namePart keeps the leading n characters of name, trims surrounding
// whitespace, lower-cases and folds é to e. Truncation counts runes so
// multi-byte characters are never split.
func namePart(name string, n int, permitAao bool) string {
	runes := []rune(name)
	if n < len(runes) {
		runes = runes[:n]
	}

	part := strings.ToLower(strings.TrimSpace(string(runes)))
	part = strings.ReplaceAll(part, "é", "e")

	if !permitAao {
		part = aaoReplacer.Replace(part)
	}

	return part
}
