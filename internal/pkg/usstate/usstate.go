// Package usstate maps US state names and USPS codes onto a single canonical
// two-letter code. District of Columbia is treated as a state.
package usstate

import "strings"

var nameToCode = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"district of columbia": "DC",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
}

// aliases seen in OSM addr:state tags
var aliases = map[string]string{
	"washington dc":   "DC",
	"washington d.c.": "DC",
	"d.c.":            "DC",
}

var codeToName = func() map[string]string {
	m := make(map[string]string, len(nameToCode))
	for name, code := range nameToCode {
		m[code] = name
	}
	return m
}()

// Normalize returns the USPS code for a state name or code, case-insensitively.
func Normalize(s string) (string, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if key == "" {
		return "", false
	}
	if code, ok := nameToCode[key]; ok {
		return code, true
	}
	if code, ok := aliases[key]; ok {
		return code, true
	}
	upper := strings.ToUpper(key)
	if _, ok := codeToName[upper]; ok {
		return upper, true
	}
	return "", false
}

func IsUS(s string) bool {
	_, ok := Normalize(s)
	return ok
}
