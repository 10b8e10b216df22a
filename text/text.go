// Package text provides pure text-layout helpers for drawing text
// entities: inline formatting-code stripping, caret decoding, line-ending
// escaping and box-width wrapping. Nothing here touches shared state; the
// core packages do not depend on it.
package text

import (
	"strings"
	"unicode"
)

// specialChars maps the %%x special character codes to their glyphs.
// Unknown codes are discarded.
var specialChars = map[rune]string{
	'c': "Ø",
	'C': "Ø",
	'd': "°",
	'D': "°",
	'p': "±",
	'P': "±",
}

// oneCharCommands are inline commands that take no ';'-terminated
// argument. 'P' is a paragraph break; the rest toggle styling and are
// discarded.
const oneCharCommands = "PLlOoKkX"

// Plain strips inline formatting codes from multi-line drawing text:
// backslash commands, grouping braces and %%x special character codes.
// Paragraph breaks (\P) become newlines; stacking commands (\S) keep
// their user data.
func Plain(text string) string {
	var sb strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		char := runes[i]
		i++
		switch {
		case char == '\\':
			if i >= len(runes) {
				return sb.String() // premature end, ignore
			}
			cmd := runes[i]
			i++
			switch {
			case cmd == '\\' || cmd == '{' || cmd == '}':
				sb.WriteRune(cmd)
			case strings.ContainsRune(oneCharCommands, cmd):
				if cmd == 'P' {
					sb.WriteByte('\n')
				}
			default:
				// commands terminated by ';'; stacking surrounds user data
				stacking := cmd == 'S'
				end := i
				for end < len(runes) && runes[end] != ';' {
					if stacking {
						sb.WriteRune(runes[end])
					}
					end++
				}
				if end == len(runes) {
					// unterminated command: keep it verbatim and rescan
					// its argument as plain text
					sb.WriteByte('\\')
					sb.WriteRune(cmd)
				} else {
					i = end + 1
				}
			}
		case char == '{' || char == '}':
			// discard group markers
		case char == '%':
			if i < len(runes) && runes[i] == '%' {
				i++
				if i < len(runes) {
					sb.WriteString(specialChars[runes[i]])
					i++
				}
			} else {
				sb.WriteRune(char)
			}
		default:
			sb.WriteRune(char)
		}
	}
	return sb.String()
}

// CaretDecode normalizes caret-notation special characters: '^' followed
// by a character c decodes to the control character (c-64) mod 126, so
// "^I" is a tab and "^ " a literal caret.
func CaretDecode(text string) string {
	var sb strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '^' || i+1 >= len(runes) {
			sb.WriteRune(runes[i])
			continue
		}
		i++
		c := (int(runes[i]) - 64) % 126
		if c < 0 {
			c += 126
		}
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// EscapeLineEndings replaces newlines with the \P paragraph command, as
// required when exporting multi-line text.
func EscapeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ReplaceAll(text, "\n", "\\P")
}

// IsNonPrintable reports whether the character has no glyph in drawing
// text. Tab counts as printable.
func IsNonPrintable(char rune) bool {
	return char >= 0 && char < 32 && char != '\t'
}

// ReplaceNonPrintable replaces non-printable characters with the given
// replacement string.
func ReplaceNonPrintable(text, replacement string) string {
	var sb strings.Builder
	for _, char := range text {
		if IsNonPrintable(char) {
			sb.WriteString(replacement)
		} else {
			sb.WriteRune(char)
		}
	}
	return sb.String()
}

// Wrap wraps text at manual "\n" breaks and at boxWidth, measuring
// candidate lines with the given width function. A boxWidth <= 0 wraps at
// manual breaks only. The greedy algorithm matches interactive CAD text
// flow: a word that alone exceeds the box still gets its own line.
func Wrap(text string, boxWidth float64, textWidth func(string) float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	current := ""
	justWrapped := false

	for _, token := range tokenize(text) {
		onFirstLine := len(lines) == 0
		if token == "\n" && justWrapped {
			continue
		}
		justWrapped = false
		switch {
		case token == "\n":
			lines = append(lines, strings.TrimRight(current, " \t"))
			current = ""
		case isSpace(token):
			if current != "" || onFirstLine {
				current += token
			}
		default:
			if boxWidth > 0 && textWidth(current+token) > boxWidth {
				if current == "" {
					current = token
				} else {
					lines = append(lines, strings.TrimRight(current, " \t"))
					current = token
					justWrapped = true
				}
			} else {
				current += token
			}
		}
	}

	if current != "" && strings.TrimSpace(current) != "" {
		lines = append(lines, strings.TrimRight(current, " \t"))
	}
	return lines
}

// tokenize splits text into words, whitespace runs and "\n" tokens,
// preserving all of them.
func tokenize(text string) []string {
	var tokens []string
	start := 0
	kind := func(r rune) int {
		switch {
		case r == '\n':
			return 0
		case unicode.IsSpace(r):
			return 1
		default:
			return 2
		}
	}
	runes := []rune(text)
	for i := 0; i <= len(runes); i++ {
		if i == len(runes) || kind(runes[i]) != kind(runes[start]) || runes[i] == '\n' {
			if i > start {
				tokens = append(tokens, string(runes[start:i]))
			}
			start = i
		}
	}
	return tokens
}

func isSpace(token string) bool {
	return strings.TrimSpace(token) == ""
}
