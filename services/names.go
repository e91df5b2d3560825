package services

import "strings"

func displayName(full, first, last *string, fallback string) string {
	if full != nil && *full != "" {
		return *full
	}
	var parts []string
	for _, p := range []*string{first, last} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return fallback
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[:1])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}
