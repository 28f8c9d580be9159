package lexfsm

import "strings"

// alphabet is the fixed domain over which ranged rules operate: lowercase
// letters, then uppercase letters, then digits. Range bounds are positions in
// this string, not raw byte values.
const alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789"

// Compile turns a compact single-symbol pattern into a Rule over bytes. The
// rule consumes exactly one symbol per evaluation; this is not a regex engine.
//
// Pattern grammar, scanned left to right:
//
//	^       negate the whole pattern (affects the final answer only)
//	.       accept any symbol, short-circuiting the rest of the pattern
//	X-Y     accept symbols between X and Y inclusive, by position in the
//	        fixed alphabet a-zA-Z0-9; a bound outside the alphabet makes
//	        the range empty
//	\\ \^ \- \.   the literal \ ^ - . characters
//	\w      an ASCII letter        \d  an ASCII digit
//	\s      space or tab           \n  newline
//	\t      tab                    \0  the NUL byte
//	c       any other character accepts exactly itself
//
// Alternatives are tried in order; the first that accepts the symbol decides.
// Under a leading ^ the result is inverted: a symbol matching any listed
// alternative is rejected and anything else is accepted. A pattern ending in
// a lone \ or - contributes no match for that trailing position.
func Compile(pattern string) Rule[byte] {
	return RuleFunc[byte](func(sym byte) bool {
		return matchPattern(pattern, sym)
	})
}

func matchPattern(pattern string, sym byte) bool {
	direct := true
	var prev byte

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '^':
			direct = false

		case '.':
			return direct

		case '-':
			// Range bounds are the raw bytes on either side of the
			// hyphen; prev carries the left one. A trailing hyphen
			// has no upper bound and matches nothing.
			if i+1 < len(pattern) {
				i++
				if inAlphabetRange(prev, pattern[i], sym) {
					return direct
				}
			}

		case '\\':
			// A trailing backslash matches nothing; never read past
			// the end of the pattern.
			if i+1 < len(pattern) {
				i++
				if matchClass(pattern[i], sym) {
					return direct
				}
			}

		default:
			if pattern[i] == sym {
				return direct
			}
		}

		prev = pattern[i]
	}

	return !direct
}

// inAlphabetRange reports whether sym lies between lo and hi inclusive when
// scanning the fixed alphabet. Any of the three bytes being absent from the
// alphabet makes the range empty.
func inAlphabetRange(lo, hi, sym byte) bool {
	loIdx := strings.IndexByte(alphabet, lo)
	hiIdx := strings.IndexByte(alphabet, hi)
	symIdx := strings.IndexByte(alphabet, sym)
	if loIdx < 0 || hiIdx < 0 || symIdx < 0 {
		return false
	}
	return loIdx <= symIdx && symIdx <= hiIdx
}

// matchClass evaluates the escape shorthand named by class against sym.
// Unknown classes match nothing.
func matchClass(class, sym byte) bool {
	switch class {
	case '\\', '^', '-', '.':
		return sym == class
	case 'w':
		return isLetter(sym)
	case 'd':
		return isDigit(sym)
	case 's':
		return sym == ' ' || sym == '\t'
	case 'n':
		return sym == '\n'
	case 't':
		return sym == '\t'
	case '0':
		return sym == 0
	}
	return false
}

func isLetter(sym byte) bool {
	return (sym >= 'a' && sym <= 'z') || (sym >= 'A' && sym <= 'Z')
}

func isDigit(sym byte) bool {
	return sym >= '0' && sym <= '9'
}
