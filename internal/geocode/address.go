// Package geocode parses free-text addresses into structured components
// and resolves them against an ingested set of shapefile records: forward
// geocoding (address text -> coordinate) and reverse geocoding
// (coordinate -> address), both via fuzzy string matching and a spatial
// index for the reverse direction.
package geocode

import (
	"regexp"
	"strings"
)

// streetTypeAbbreviations maps a recognized street-type abbreviation to
// its expansion.
var streetTypeAbbreviations = map[string]string{
	"ST":   "STREET",
	"AVE":  "AVENUE",
	"BLVD": "BOULEVARD",
	"RD":   "ROAD",
	"DR":   "DRIVE",
	"LN":   "LANE",
	"CT":   "COURT",
	"PL":   "PLACE",
	"WAY":  "WAY",
	"CIR":  "CIRCLE",
	"PKWY": "PARKWAY",
	"HWY":  "HIGHWAY",
}

// usStateAbbreviations maps the 50 states plus DC from two-letter code to
// full name.
var usStateAbbreviations = map[string]string{
	"AL": "ALABAMA", "AK": "ALASKA", "AZ": "ARIZONA", "AR": "ARKANSAS",
	"CA": "CALIFORNIA", "CO": "COLORADO", "CT": "CONNECTICUT", "DE": "DELAWARE",
	"DC": "DISTRICT OF COLUMBIA", "FL": "FLORIDA", "GA": "GEORGIA", "HI": "HAWAII",
	"ID": "IDAHO", "IL": "ILLINOIS", "IN": "INDIANA", "IA": "IOWA",
	"KS": "KANSAS", "KY": "KENTUCKY", "LA": "LOUISIANA", "ME": "MAINE",
	"MD": "MARYLAND", "MA": "MASSACHUSETTS", "MI": "MICHIGAN", "MN": "MINNESOTA",
	"MS": "MISSISSIPPI", "MO": "MISSOURI", "MT": "MONTANA", "NE": "NEBRASKA",
	"NV": "NEVADA", "NH": "NEW HAMPSHIRE", "NJ": "NEW JERSEY", "NM": "NEW MEXICO",
	"NY": "NEW YORK", "NC": "NORTH CAROLINA", "ND": "NORTH DAKOTA", "OH": "OHIO",
	"OK": "OKLAHOMA", "OR": "OREGON", "PA": "PENNSYLVANIA", "RI": "RHODE ISLAND",
	"SC": "SOUTH CAROLINA", "SD": "SOUTH DAKOTA", "TN": "TENNESSEE", "TX": "TEXAS",
	"UT": "UTAH", "VT": "VERMONT", "VA": "VIRGINIA", "WA": "WASHINGTON",
	"WV": "WEST VIRGINIA", "WI": "WISCONSIN", "WY": "WYOMING",
}

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// stateEntry pairs a state's two-letter abbreviation with its full name
// split into words, so a token run can be matched against either form.
type stateEntry struct {
	abbrev string
	name   string
	words  []string
}

var stateEntries = buildStateEntries()

func buildStateEntries() []stateEntry {
	entries := make([]stateEntry, 0, len(usStateAbbreviations))
	for abbrev, name := range usStateAbbreviations {
		entries = append(entries, stateEntry{abbrev: abbrev, name: name, words: strings.Fields(name)})
	}
	return entries
}

// streetTypeExpansions is the reverse of streetTypeAbbreviations, so a
// token already in its expanded form (as ToString produces) is also
// recognized as a street type -- this is what makes
// Parse(ToString(Parse(s))) stable.
var streetTypeExpansions = buildStreetTypeExpansions()

func buildStreetTypeExpansions() map[string]bool {
	expansions := make(map[string]bool, len(streetTypeAbbreviations))
	for _, expansion := range streetTypeAbbreviations {
		expansions[expansion] = true
	}
	return expansions
}

// ParsedAddress holds the components extracted by Parse.
type ParsedAddress struct {
	RawText     string
	HouseNumber string
	StreetName  string
	StreetType  string
	City        string
	State       string
	ZipCode     string
}

// Normalize uppercases s, replaces ',' and '.' with spaces, collapses
// whitespace runs to single spaces, and trims. Idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	upper := strings.ToUpper(s)
	replaced := strings.Map(func(r rune) rune {
		if r == ',' || r == '.' {
			return ' '
		}
		return r
	}, upper)
	fields := strings.Fields(replaced)
	return strings.Join(fields, " ")
}

// Parse normalizes and tokenizes s, then extracts a house number, street
// name/type, city, state, and zip code by walking the tokens left to
// right.
func Parse(s string) ParsedAddress {
	normalized := Normalize(s)
	tokens := strings.Fields(normalized)
	addr := ParsedAddress{RawText: s}

	i := 0
	if len(tokens) > 0 && isAllDigits(tokens[0]) {
		addr.HouseNumber = tokens[0]
		i = 1
	}

	var buffer []string
	for i < len(tokens) {
		if _, _, ok := matchState(tokens, i); ok {
			break
		}
		if isZipCode(tokens[i]) {
			break
		}
		buffer = append(buffer, tokens[i])
		i++
	}

	streetTypeIdx := -1
	for j := len(buffer) - 1; j >= 0; j-- {
		if expansion, ok := streetType(buffer[j]); ok {
			streetTypeIdx = j
			addr.StreetType = expansion
			break
		}
	}
	if streetTypeIdx >= 0 {
		addr.StreetName = strings.Join(buffer[:streetTypeIdx], " ")
		addr.City = strings.Join(buffer[streetTypeIdx+1:], " ")
	} else {
		addr.StreetName = strings.Join(buffer, " ")
	}

	if raw, consumed, ok := matchState(tokens, i); ok {
		addr.State = raw
		i += consumed
	}
	if i < len(tokens) && isZipCode(tokens[i]) {
		addr.ZipCode = tokens[i]
		i++
	}

	return addr
}

// matchState reports whether tokens starting at i spell out a state, as
// either its two-letter abbreviation or its full name (which may span
// several tokens, e.g. "NEW YORK"). Returns the literal input text that
// matched (the abbreviation token itself, or the run of full-name tokens
// joined back together) rather than a canonical substituted form, the
// number of tokens consumed, and whether a match was found.
func matchState(tokens []string, i int) (string, int, bool) {
	if i >= len(tokens) {
		return "", 0, false
	}
	if _, ok := usStateAbbreviations[tokens[i]]; ok {
		return tokens[i], 1, true
	}
	for _, entry := range stateEntries {
		if matchesWordsAt(tokens, i, entry.words) {
			return strings.Join(tokens[i:i+len(entry.words)], " "), len(entry.words), true
		}
	}
	return "", 0, false
}

func matchesWordsAt(tokens []string, i int, words []string) bool {
	if i+len(words) > len(tokens) {
		return false
	}
	for k, w := range words {
		if tokens[i+k] != w {
			return false
		}
	}
	return true
}

// streetType reports whether tok is a recognized street type, in either
// its abbreviated form (a key of streetTypeAbbreviations) or its expanded
// form (a value of streetTypeAbbreviations, as ToString produces).
// Returns the expansion either way.
func streetType(tok string) (string, bool) {
	if expansion, ok := streetTypeAbbreviations[tok]; ok {
		return expansion, true
	}
	if streetTypeExpansions[tok] {
		return tok, true
	}
	return "", false
}

// ToString reconstructs "<house> <street> <type> <city> <state> <zip>",
// omitting empty components and any trailing space.
func (a ParsedAddress) ToString() string {
	parts := []string{a.HouseNumber, a.StreetName, a.StreetType, a.City, a.State, a.ZipCode}
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// IsValid reports whether a house number and street name are both
// present -- the strict default validity rule.
func (a ParsedAddress) IsValid() bool {
	return a.HouseNumber != "" && a.StreetName != ""
}

// IsValidPermissive relaxes IsValid to "any state, or any raw address
// text at all" -- the GADM-oriented rule used when parsing administrative
// boundary attribute text that carries no house number or street.
func (a ParsedAddress) IsValidPermissive() bool {
	return a.State != "" || strings.TrimSpace(a.RawText) != ""
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isZipCode(tok string) bool {
	return zipPattern.MatchString(tok)
}

// zipPrefix returns the 5-digit prefix of a zip code, used when comparing
// a 9-digit zip against a bare 5-digit one.
func zipPrefix(zip string) string {
	if len(zip) >= 5 {
		return zip[:5]
	}
	return zip
}
