package generator

import (
	"regexp"
	"strings"
)

// The backend sometimes echoes code into the Hint field despite the
// prompt forbidding it. CleanHint scrubs those artifacts and keeps only
// the first readable sentence.

const (
	minHintLen = 10
	maxHintLen = 200
)

var (
	hintFenceRe     = regexp.MustCompile("(?s)```.*?```")
	hintFenceOpenRe = regexp.MustCompile("```[a-zA-Z+]*")
	hintBraceRe     = regexp.MustCompile(`\{[^{}]*\}`)
	hintParenRe     = regexp.MustCompile(`\([^()]*\)`)
	hintSentenceRe  = regexp.MustCompile(`(?s)^(.*?[.!?])(\s|$)`)
)

var hintCommentPrefixes = []string{"//", "#", "/*", "*/", "*", "--", "'''", `"""`}

var hintCodeKeywords = []string{
	"def ", "class ", "function ", "func ", "public ", "private ",
	"static ", "void ", "#include", "import ", "package ", "return ",
	"const ", "var ", "let ",
}

// CleanHint normalizes a raw hint into at most one plain sentence.
// Cleaning an already-clean hint returns it unchanged.
func CleanHint(raw string) string {
	s := hintFenceRe.ReplaceAllString(raw, " ")
	s = hintFenceOpenRe.ReplaceAllString(s, " ")

	for hintBraceRe.MatchString(s) {
		s = hintBraceRe.ReplaceAllString(s, " ")
	}
	for hintParenRe.MatchString(s) {
		s = hintParenRe.ReplaceAllString(s, " ")
	}

	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if isCodeLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	s = strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
	if s == "" {
		return ""
	}

	if m := hintSentenceRe.FindStringSubmatch(s); m != nil {
		first := strings.TrimSpace(m[1])
		if len(first) >= minHintLen && len(first) <= maxHintLen {
			return first
		}
	}

	if len(s) > maxHintLen {
		s = strings.TrimSpace(s[:maxHintLen])
	}
	return s
}

// isCodeLine reports whether a hint line looks like leaked code or a
// comment rather than prose.
func isCodeLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	for _, p := range hintCommentPrefixes {
		if strings.HasPrefix(t, p) {
			return true
		}
	}
	lower := strings.ToLower(t)
	for _, kw := range hintCodeKeywords {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}
