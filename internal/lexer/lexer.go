package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/errors"
)

// Lexer tokenizes lazylambda source code one rune at a time.
type Lexer struct {
	input        string
	position     int // points at the current char
	readPosition int // points just past the current char
	ch           rune
	line         int
	column       int
	file         string
}

// New creates a Lexer over input. Callers should run input through
// Normalize first; New itself does not normalize.
func New(input string, filename string) *Lexer {
	l := &Lexer{
		input: input,
		file:  filename,
		line:  1,
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	ch, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.ch = ch
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return ch
}

func (l *Lexer) pos(line, column int) ast.Pos {
	return ast.Pos{File: l.file, Line: line, Column: column}
}

// NextToken scans and returns the next token, advancing the lexer.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	line, column := l.line, l.column
	newTok := func(t TokenType, lit string) Token {
		return NewToken(t, lit, line, column, l.file)
	}

	var tok Token
	switch l.ch {
	case 0:
		tok = newTok(EOF, "")
	case '+':
		tok = newTok(PLUS, "+")
	case '-':
		tok = newTok(MINUS, "-")
	case '*':
		tok = newTok(STAR, "*")
	case '(':
		tok = newTok(LPAREN, "(")
	case ')':
		tok = newTok(RPAREN, ")")
	case '\\':
		tok = newTok(BACKSLASH, "\\")
	case '.':
		tok = newTok(DOT, ".")
	case ':':
		tok = newTok(COLON, ":")
	case '#':
		tok = newTok(HASH, "#")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newTok(EQ, "==")
		} else {
			tok = newTok(ASSIGN, "=")
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newTok(LEQ, "<=")
		} else {
			l.readChar()
			return Token{}, errors.NewLexError(errors.LEX001, l.pos(line, column), "illegal character '<': only '<=' is recognized")
		}
	case ';':
		if l.peekChar() == ';' {
			l.readChar()
			tok = newTok(SEQ, ";;")
		} else {
			l.readChar()
			return Token{}, errors.NewLexError(errors.LEX001, l.pos(line, column), "illegal character ';': only ';;' is recognized")
		}
	default:
		switch {
		case isIdentStart(l.ch):
			lit := l.readIdentifier()
			return NewToken(LookupIdent(lit), lit, line, column, l.file), nil
		case isDigit(l.ch):
			lit := l.readNumber()
			return NewToken(NUM, lit, line, column, l.file), nil
		default:
			ch := l.ch
			l.readChar()
			return Token{}, errors.NewLexError(errors.LEX001, l.pos(line, column), "illegal character '"+string(ch)+"'")
		}
	}

	l.readChar()
	return tok, nil
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier scans [a-z][A-Za-z0-9]*, matching §6's identifier grammar.
// The first character has already been confirmed a lowercase letter by the
// caller via isIdentStart; continuation characters may be any letter or
// digit, upper or lower case (e.g. "myVar", "isZero").
func (l *Lexer) readIdentifier() string {
	start := l.position
	l.readChar()
	for isIdentCont(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// isIdentStart accepts only a lowercase letter: generated names start
// uppercase (spec §3/§6) and must stay outside what the surface grammar can
// write, so an identifier token may only begin lowercase.
func isIdentStart(ch rune) bool {
	return unicode.IsLower(ch) && unicode.IsLetter(ch)
}

// isIdentCont accepts any letter, upper or lower, for identifier
// continuation characters — only the first character is restricted.
func isIdentCont(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
