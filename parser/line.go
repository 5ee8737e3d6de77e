package parser

import "strings"

// TrimLine normalizes one line of a '.names' or '.data' file: everything
// from the first '//' is dropped, surrounding whitespace is removed, and a
// single trailing period is stripped with a final re-trim. A line that
// becomes empty is blank.
//
// TrimLine is idempotent: trimming an already-trimmed line returns it
// unchanged.
func TrimLine(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if strings.HasSuffix(line, ".") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "."))
	}

	return line
}

// SplitValues tokenizes a comma-delimited fragment, as used both for
// '.names' value lists and '.data' records: split on ',', trim each token,
// and strip one pair of surrounding double quotes with a re-trim.
func SplitValues(s string) []string {
	raw := strings.Split(s, ",")
	values := make([]string, len(raw))
	for i, tok := range raw {
		tok = strings.TrimSpace(tok)
		if len(tok) > 1 && tok[0] == '"' && tok[len(tok)-1] == '"' {
			tok = strings.TrimSpace(tok[1 : len(tok)-1])
		}
		values[i] = tok
	}

	return values
}
