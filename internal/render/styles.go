package render

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour/styles"
)

// Glamour styles the preview knows by name
const (
	StyleDark  = styles.DarkStyle
	StyleLight = styles.LightStyle
	StyleNoTTY = styles.NoTTYStyle
	StyleASCII = styles.AsciiStyle
)

// IsBuiltinStyle reports whether style names one of glamour's bundled
// styles rather than a JSON file.
func IsBuiltinStyle(style string) bool {
	_, ok := styles.DefaultStyles[style]
	return ok
}

// StyleNames lists glamour's bundled styles in alphabetical order.
func StyleNames() []string {
	names := make([]string, 0, len(styles.DefaultStyles))
	for name := range styles.DefaultStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateStyle accepts a bundled style name or the path of an existing JSON
// style file. An empty style is the default.
func ValidateStyle(style string) error {
	if style == "" || IsBuiltinStyle(style) {
		return nil
	}
	if info, err := os.Stat(style); err == nil && !info.IsDir() {
		return nil
	}
	return fmt.Errorf("unknown style %q: use one of %s or a JSON style file", style, strings.Join(StyleNames(), ", "))
}
