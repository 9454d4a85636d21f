package catalog

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisplayName capitalizes the first letter of a record name.
func DisplayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Label renders a hyphenated identifier such as "special-attack" as words.
func Label(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

func FormatHeight(m float64) string {
	return fmt.Sprintf("%.1f m", m)
}

func FormatWeight(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatID renders an identifier the way the catalog numbers entries.
func FormatID(id int) string {
	return fmt.Sprintf("#%04d", id)
}
