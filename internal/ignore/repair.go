package ignore

import "strings"

// dirContentSuffixes are the trailing wildcards Repair collapses, longest first.
var dirContentSuffixes = []string{"/**", `\**`, "/*", `\*`}

// Repair rewrites raw ignore-file text so that "everything inside D" patterns
// become "D" patterns, letting the walker prune D without listing it.
//
// A leading UTF-8 byte order mark is removed. Lines are trimmed; blank lines and '#' comments are dropped. A trailing
// "/**", "\**", "/*" or "\*" is stripped. This is a heuristic: "D/*" and "D"
// differ in real gitignore semantics (a negated "!D/keep" can no longer
// re-include anything below D).
//
// Stripping repeats until no suffix remains and lines that end up empty are
// dropped, so Repair(Repair(x)) == Repair(x).
func Repair(raw string) string {
	lines := strings.Split(strings.TrimPrefix(raw, "\ufeff"), "\n")
	repaired := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line = repairLine(line); line == "" {
			continue
		}
		repaired = append(repaired, line)
	}
	return strings.Join(repaired, "\n")
}

func repairLine(line string) string {
	for {
		stripped := false
		for _, suffix := range dirContentSuffixes {
			if strings.HasSuffix(line, suffix) {
				line = strings.TrimSpace(strings.TrimSuffix(line, suffix))
				stripped = true
				break
			}
		}
		if !stripped {
			return line
		}
	}
}
