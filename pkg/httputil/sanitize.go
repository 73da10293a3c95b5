package httputil

import "regexp"

// Mask replaces credential values in sanitized text.
const Mask = "***"

var secretPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)(api[_-]key)["']?\s*[:=]\s*["']?[a-zA-Z0-9_-]+["']?`), "${1}=" + Mask},
	{regexp.MustCompile(`(?i)(secret[_-]key)["']?\s*[:=]\s*["']?[a-zA-Z0-9_-]+["']?`), "${1}=" + Mask},
	{regexp.MustCompile(`(?i)(authorization)["']?\s*[:=]\s*["']?[a-zA-Z0-9_\s-]+["']?`), "${1}=" + Mask},
}

// Sanitize masks credentials in a log line. Any api_key, secret_key or
// authorization assignment ("key=value", "key: value", quoted JSON forms,
// and the Api-Key / Secret-Key header spellings) has its value replaced
// with [Mask]. Matching is case-insensitive.
func Sanitize(s string) string {
	for _, p := range secretPatterns {
		s = p.re.ReplaceAllString(s, p.repl)
	}
	return s
}
