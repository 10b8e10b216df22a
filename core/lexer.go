package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Lexer reads tags from a text stream. Every tag occupies two lines:
// the numeric group code, then the value. Value lines keep leading and
// trailing spaces except for the line terminator; code lines tolerate
// surrounding whitespace.
type Lexer struct {
	reader *bufio.Reader
	line   int
	eof    bool
}

// NewLexer creates a lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// Line returns the current 1-based line number, for diagnostics.
func (l *Lexer) Line() int { return l.line }

// NextTag returns the next tag from the input. It returns io.EOF after
// the last complete pair; a code line without a value line fails with
// ErrMalformedTag.
func (l *Lexer) NextTag() (Tag, error) {
	codeLine, err := l.readLine()
	if err == io.EOF && codeLine == "" {
		return Tag{}, io.EOF
	}
	if err != nil && err != io.EOF {
		return Tag{}, err
	}

	code, convErr := strconv.Atoi(strings.TrimSpace(codeLine))
	if convErr != nil {
		return Tag{}, fmt.Errorf("line %d: group code %q: %w", l.line, strings.TrimSpace(codeLine), ErrMalformedTag)
	}

	valueLine, err := l.readLine()
	if err == io.EOF && valueLine == "" && l.eof {
		return Tag{}, fmt.Errorf("line %d: missing value for group code %d: %w", l.line, code, ErrMalformedTag)
	}
	if err != nil && err != io.EOF {
		return Tag{}, err
	}
	return NewTag(code, valueLine), nil
}

// readLine reads one line, stripping the trailing \n or \r\n.
func (l *Lexer) readLine() (string, error) {
	if l.eof {
		return "", io.EOF
	}
	line, err := l.reader.ReadString('\n')
	if err == io.EOF {
		l.eof = true
		if line == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", fmt.Errorf("line %d: %w", l.line+1, err)
	}
	l.line++
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

// ReadTags lexes the whole stream into a tag sequence.
func ReadTags(r io.Reader) (Tags, error) {
	lexer := NewLexer(r)
	var tags Tags
	for {
		tag, err := lexer.NextTag()
		if err == io.EOF {
			return tags, nil
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
}
