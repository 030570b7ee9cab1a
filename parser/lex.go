package parser

import "strings"

// token is a single whitespace-delimited token with its position on the line.
type token struct {
	text string
	col  int // 1-based rune column of the token's first rune
}

// line is a non-blank, non-comment input line split into tokens.
type line struct {
	number int // 1-based line number in the source text
	tokens []token
}

// lex splits the input into token lines. Comments ('#' to end of line) and
// blank lines are dropped. '{' and '}' are always tokens of their own, so
// "{s0 s2}" splits into "{", "s0", "s2", "}".
func lex(text string) []line {
	var lines []line
	for no, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}

		var toks []token
		col := 0
		start := -1
		var sb strings.Builder
		flush := func() {
			if start >= 0 {
				toks = append(toks, token{text: sb.String(), col: start})
				sb.Reset()
				start = -1
			}
		}
		for _, r := range raw {
			col++
			switch {
			case r == ' ' || r == '\t' || r == '\v' || r == '\f':
				flush()
			case r == '{' || r == '}':
				flush()
				toks = append(toks, token{text: string(r), col: col})
			default:
				if start < 0 {
					start = col
				}
				sb.WriteRune(r)
			}
		}
		flush()

		if len(toks) > 0 {
			lines = append(lines, line{number: no + 1, tokens: toks})
		}
	}
	return lines
}
