// Package region maps two-letter US region codes to their full names and
// compares region values that may use either form.
package region

import "strings"

// names is keyed by upper-case code; values are upper-case full names.
var names = map[string]string{
	"AL": "ALABAMA",
	"AK": "ALASKA",
	"AS": "AMERICAN SAMOA",
	"AZ": "ARIZONA",
	"AR": "ARKANSAS",
	"CA": "CALIFORNIA",
	"CO": "COLORADO",
	"CT": "CONNECTICUT",
	"DE": "DELAWARE",
	"DC": "DISTRICT OF COLUMBIA",
	"FL": "FLORIDA",
	"GA": "GEORGIA",
	"GU": "GUAM",
	"HI": "HAWAII",
	"ID": "IDAHO",
	"IL": "ILLINOIS",
	"IN": "INDIANA",
	"IA": "IOWA",
	"KS": "KANSAS",
	"KY": "KENTUCKY",
	"LA": "LOUISIANA",
	"ME": "MAINE",
	"MD": "MARYLAND",
	"MA": "MASSACHUSETTS",
	"MI": "MICHIGAN",
	"MN": "MINNESOTA",
	"MS": "MISSISSIPPI",
	"MO": "MISSOURI",
	"MP": "NORTHERN MARIANA ISLANDS",
	"MT": "MONTANA",
	"NE": "NEBRASKA",
	"NV": "NEVADA",
	"NH": "NEW HAMPSHIRE",
	"NJ": "NEW JERSEY",
	"NM": "NEW MEXICO",
	"NY": "NEW YORK",
	"NC": "NORTH CAROLINA",
	"ND": "NORTH DAKOTA",
	"OH": "OHIO",
	"OK": "OKLAHOMA",
	"OR": "OREGON",
	"PA": "PENNSYLVANIA",
	"PR": "PUERTO RICO",
	"RI": "RHODE ISLAND",
	"SC": "SOUTH CAROLINA",
	"SD": "SOUTH DAKOTA",
	"TN": "TENNESSEE",
	"TX": "TEXAS",
	"UT": "UTAH",
	"VT": "VERMONT",
	"VA": "VIRGINIA",
	"VI": "VIRGIN ISLANDS",
	"WA": "WASHINGTON",
	"WV": "WEST VIRGINIA",
	"WI": "WISCONSIN",
	"WY": "WYOMING",
}

var codes = invert(names)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for code, name := range m {
		out[name] = code
	}
	return out
}

// Expand returns the upper-case full name for a region code.
func Expand(code string) (string, bool) {
	name, ok := names[normalize(code)]
	return name, ok
}

// Abbreviate returns the upper-case code for a full region name.
func Abbreviate(name string) (string, bool) {
	code, ok := codes[normalize(name)]
	return code, ok
}

// Codes returns every known region code in no particular order.
func Codes() []string {
	out := make([]string, 0, len(names))
	for code := range names {
		out = append(out, code)
	}
	return out
}

// Equivalent reports whether a and b name the same region. Comparison is
// case-insensitive and accepts a code on either side. Values absent from the
// table only match themselves.
func Equivalent(a, b string) bool {
	a, b = normalize(a), normalize(b)
	if a == b {
		return true
	}
	if name, ok := names[a]; ok && name == b {
		return true
	}
	if name, ok := names[b]; ok && name == a {
		return true
	}
	return false
}

func normalize(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), " "))
}
