package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"comments and blanks", "# deps\n\n   \n# more\n", ""},
		{"plain patterns untouched", "*.log\nbuild/\n!keep.log", "*.log\nbuild/\n!keep.log"},
		{"double star suffix", "node_modules/**", "node_modules"},
		{"single star suffix", "node_modules/*", "node_modules"},
		{"backslash double star", `vendor\**`, "vendor"},
		{"backslash single star", `vendor\*`, "vendor"},
		{"nested directory", "src/gen/*", "src/gen"},
		{"surrounding whitespace", "  dist/*  \r\n\tout/**\t", "dist\nout"},
		{"crlf line endings", "a/*\r\nb\r\n", "a\nb"},
		{"degenerate suffix only", "/**\n/*\nkeep", "keep"},
		{"repeated suffixes", "cache/*/**", "cache"},
		{"wildcard mid pattern kept", "logs/*.txt\n**/tmp", "logs/*.txt\n**/tmp"},
		{"anchored directory", "/coverage/*", "/coverage"},
		{"byte order mark", "\ufeffnode_modules/*\r\n*.log\r\n", "node_modules\n*.log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.raw))
		})
	}
}

func TestRepairIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"node_modules/*\n# c\n*.o",
		"a/*/*\nb /**\n/**",
		"x\\*\\**\n  \n!y/**",
		"*/*",
		"deep/path/**/*",
		"trailing space /*   \n",
	}
	for _, in := range inputs {
		once := Repair(in)
		assert.Equal(t, once, Repair(once), "input %q", in)
	}
}
