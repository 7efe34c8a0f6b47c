package cli

import "strings"

// NormalizeToken accepts both "{{char}}" and bare "char" from the
// command line and returns the brace-delimited form.
func NormalizeToken(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return arg
	}
	if strings.HasPrefix(arg, "{{") && strings.HasSuffix(arg, "}}") {
		return arg
	}
	return "{{" + arg + "}}"
}

// Pluralize returns "s" for any count except one.
func Pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
