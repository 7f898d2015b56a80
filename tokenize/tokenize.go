// Package tokenize turns raw input lines into terminal symbols.
package tokenize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// IdentToken replaces every identifier or number of an expression.
const IdentToken = "id"

const exprOperators = "+*()"

// Expr splits an arithmetic expression. Operators and parentheses are tokens
// on their own, any run of letters, digits and underscores becomes IdentToken,
// everything else is skipped.
func Expr(s string) []string {
	res := []string{}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		switch r := runes[i]; {
		case unicode.IsSpace(r):
			i++
		case strings.ContainsRune(exprOperators, r):
			res = append(res, string(r))
			i++
		case isIdentRune(r):
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			res = append(res, IdentToken)
		default:
			i++
		}
	}

	return res
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

var notWord = regexp.MustCompile(`[^a-z'\s]`)

// Words splits an english sentence: lower case, punctuation removed.
func Words(s string) []string {
	return strings.Fields(notWord.ReplaceAllString(strings.ToLower(s), " "))
}

var assignment = regexp.MustCompile(`(?i)^\s*w\s*[:=]\s*(.*?);?\s*$`)

// StripAssignment accepts inputs written like `w = she eats a cake`,
// `w: the cat drinks;` or `"she eats"` and returns the bare text.
func StripAssignment(s string) string {
	if m := assignment.FindStringSubmatch(s); m != nil {
		s = m[1]
	} else {
		s = strings.TrimSpace(s)
	}

	if len(s) >= 2 && s[0] == s[len(s)-1] && (s[0] == '"' || s[0] == '\'') {
		s = s[1 : len(s)-1]
	}

	return s
}

// Mode selects a tokenizer.
type Mode string

const (
	ModeExpr  Mode = "expr"
	ModeWords Mode = "words"
)

var ErrUnknownMode = errors.New("unknown tokenizer mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeExpr, ModeWords:
		return m, nil
	default:
		return "", errors.WithMessagef(ErrUnknownMode, "%q", s)
	}
}

func (m Mode) Tokenize(s string) []string {
	if m == ModeExpr {
		return Expr(s)
	}

	return Words(s)
}
