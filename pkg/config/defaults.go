package config

import (
	_ "embed"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// GetDefaultsContent returns the embedded defaults.toml
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// defaultValues parses the embedded defaults into a koanf-ready map.
func defaultValues() (map[string]interface{}, error) {
	return toml.Parser().Unmarshal(defaultConfig)
}

// GenerateConfigContent returns defaults.toml as a template: comments and
// table headers kept, every assignment commented out.
func GenerateConfigContent() string {
	var b strings.Builder
	for i, line := range strings.Split(GetDefaultsContent(), "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if isAssignment(line) {
			b.WriteString("# ")
		}
		b.WriteString(line)
	}
	return b.String()
}

func isAssignment(line string) bool {
	t := strings.TrimSpace(line)
	switch {
	case t == "", strings.HasPrefix(t, "#"), strings.HasPrefix(t, "["):
		return false
	}
	return strings.Contains(t, "=")
}
