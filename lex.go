package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Text is the token's source text with whitespace removed.
	Text string
	// Kind is the classification of the token.
	Kind TokenKind
	// Pos is the column of the token's first rune in the original input,
	// counting from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the class of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number, possibly with a sign and a decimal point.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open bracket.
	TokenOpen
	// TokenClose is a close bracket.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenBracket and CloseBracket are the runes which group expressions.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

// signers contains the operators after which + and - are signs of a number
// rather than operators. The start of input and open brackets also qualify.
const signers = "*/"

type lexer struct {
	// src is the input with whitespace removed.
	src []rune
	// cols holds the column in the original input of each rune in src.
	cols []int
	// k is the index of the next rune in src to scan.
	k   int
	buf strings.Builder
	// prev is the most recently scanned token.
	prev Token
}

func lex(src string) *lexer {
	l := lexer{
		src:  make([]rune, 0, len(src)),
		cols: make([]int, 0, len(src)),
	}
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		l.src = append(l.src, r)
		l.cols = append(l.cols, col)
	}
	return &l
}

// more reports whether there is input left to scan.
func (l *lexer) more() bool {
	return l.k < len(l.src)
}

// next scans the next token. Callers must check more first.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	r := l.src[l.k]
	tok := Token{Pos: l.cols[l.k]}
	switch {
	case (r == '+' || r == '-') && l.signed():
		l.buf.WriteRune(r)
		l.k++
		if !l.more() || !numrune(l.src[l.k]) {
			return tok, &ExprError{Col: tok.Pos, Text: string(r), Err: ErrDanglingSign}
		}
		if err := l.scanNum(tok.Pos); err != nil {
			return tok, err
		}
		tok.Kind = TokenNum
	case numrune(r):
		if err := l.scanNum(tok.Pos); err != nil {
			return tok, err
		}
		tok.Kind = TokenNum
	case strings.ContainsRune(Operators, r):
		l.buf.WriteRune(r)
		l.k++
		tok.Kind = TokenOp
	case r == OpenBracket:
		l.buf.WriteRune(r)
		l.k++
		tok.Kind = TokenOpen
	case r == CloseBracket:
		l.buf.WriteRune(r)
		l.k++
		tok.Kind = TokenClose
	default:
		return tok, &ExprError{Col: tok.Pos, Text: string(r), Err: ErrInvalidCharacter}
	}
	tok.Text = l.buf.String()
	l.prev = tok
	return tok, nil
}

// signed reports whether a + or - at the current position is the sign of a
// number.
func (l *lexer) signed() bool {
	switch l.prev.Kind {
	case tokenNone, TokenOpen:
		return true
	case TokenOp:
		return strings.Contains(signers, l.prev.Text)
	default:
		return false
	}
}

// scanNum scans the digits and decimal point of a number into buf. pos is the
// column where the number token started, including any sign.
func (l *lexer) scanNum(pos int) error {
	var dig, dot bool
	for l.more() && numrune(l.src[l.k]) {
		r := l.src[l.k]
		l.buf.WriteRune(r)
		l.k++
		if r == '.' {
			if dot {
				return &ExprError{Col: pos, Text: l.buf.String(), Err: ErrMalformedNumber}
			}
			dot = true
			continue
		}
		dig = true
	}
	if !dig {
		return &ExprError{Col: pos, Text: l.buf.String(), Err: ErrMalformedNumber}
	}
	return nil
}

func numrune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

// Tokenize scans an expression into tokens. Whitespace anywhere in src is
// ignored, including inside numbers.
func Tokenize(src string) ([]Token, error) {
	l := lex(src)
	if !l.more() {
		return nil, &ExprError{Err: ErrEmptyExpression}
	}
	var toks []Token
	for l.more() {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
