package overpass

import (
	"fmt"
	"regexp"
	"strings"
)

var qlString = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// brandPattern turns a brand into a literal, case-insensitive Overpass regex body.
func brandPattern(brand string) string {
	return qlString.Replace(regexp.QuoteMeta(brand))
}

// BuildQuery unions nodes and ways whose brand, name (shops and amenities)
// or operator matches the brand. With scopeUS the union is limited to the
// United States area.
func BuildQuery(brand string, timeoutSec int, scopeUS bool) string {
	p := brandPattern(brand)
	area := ""
	if scopeUS {
		area = "(area.us)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n", timeoutSec)
	if scopeUS {
		b.WriteString("area[\"ISO3166-1\"=\"US\"][admin_level=2]->.us;\n")
	}
	b.WriteString("(\n")
	for _, kind := range []string{"node", "way"} {
		fmt.Fprintf(&b, "  %s[\"brand\"~\"%s\",i]%s;\n", kind, p, area)
		fmt.Fprintf(&b, "  %s[\"name\"~\"%s\",i][\"shop\"]%s;\n", kind, p, area)
		fmt.Fprintf(&b, "  %s[\"name\"~\"%s\",i][\"amenity\"]%s;\n", kind, p, area)
		fmt.Fprintf(&b, "  %s[\"operator\"~\"%s\",i]%s;\n", kind, p, area)
	}
	b.WriteString(");\nout center;")
	return b.String()
}
