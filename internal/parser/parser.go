// Package parser turns a token stream into the ast.Expr tree the evaluator
// consumes. It is a Pratt parser: a table of prefix/infix handlers keyed by
// token type plus a single precedence-climbing loop, following the same
// architecture as a classic hand-written expression parser.
//
// Grammar (spec §6/§4.F), tightest-to-loosest binding:
//
//	atoms  >  application  >  hd/tl  >  :  >  unary -  >  *  >  +,-  >  ==,<=  >  if/let/letrec  >  ;;
package parser

import (
	"fmt"
	"strconv"

	"github.com/nox-lang/lazylambda/internal/ast"
	"github.com/nox-lang/lazylambda/internal/errors"
	"github.com/nox-lang/lazylambda/internal/lexer"
)

// Precedence levels. Gaps of 10 leave room for the "-1" trick used by
// right-associative infix handlers (cons, seq) without colliding with a
// neighboring tier.
const (
	LOWEST    int = 0
	SEQPREC   int = 10 // ;;  (right-assoc)
	CMPPREC   int = 20 // ==, <=  (non-chained)
	SUMPREC   int = 30 // +, -  (left-assoc)
	PRODPREC  int = 40 // *  (left-assoc)
	UNARYPREC int = 50 // prefix -  (right-assoc, stackable)
	CONSPREC  int = 60 // :  (right-assoc)
	HDTLPREC  int = 70 // hd, tl  (prefix)
	CALLPREC  int = 80 // application (juxtaposition)
)

var precedences = map[lexer.TokenType]int{
	lexer.SEQ:   SEQPREC,
	lexer.EQ:    CMPPREC,
	lexer.LEQ:   CMPPREC,
	lexer.PLUS:  SUMPREC,
	lexer.MINUS: SUMPREC,
	lexer.STAR:  PRODPREC,
	lexer.COLON: CONSPREC,
}

// atomStart is the set of token types that can open an atom (spec §4.F):
// a numeric literal, an identifier, a lambda, the empty list, or a
// parenthesized expression. A peeked token in this set, outside of any
// registered infix operator, means "juxtapose — this is an application".
var atomStart = map[lexer.TokenType]bool{
	lexer.IDENT:     true,
	lexer.NUM:       true,
	lexer.BACKSLASH: true,
	lexer.HASH:      true,
	lexer.LPAREN:    true,
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parser builds an ast.Expr from a token stream, Pratt-style.
type Parser struct {
	l    *lexer.Lexer
	file string

	curToken  lexer.Token
	peekToken lexer.Token
	errs      []error

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:     p.parseVar,
		lexer.NUM:       p.parseNum,
		lexer.BACKSLASH: p.parseLambda,
		lexer.HASH:      p.parseNil,
		lexer.LPAREN:    p.parseGrouped,
		lexer.MINUS:     p.parseUnaryMinus,
		lexer.HD:        p.parseDestruct,
		lexer.TL:        p.parseDestruct,
		lexer.IF:        p.parseIf,
		lexer.LET:       p.parseLet,
		lexer.LETREC:    p.parseLetRec,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:  p.parseBinLeft,
		lexer.MINUS: p.parseBinLeft,
		lexer.STAR:  p.parseBinLeft,
		lexer.EQ:    p.parseBinNonChained,
		lexer.LEQ:   p.parseBinNonChained,
		lexer.COLON: p.parseCons,
		lexer.SEQ:   p.parseSeq,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every error accumulated while parsing.
func (p *Parser) Errors() []error { return p.errs }

// Parse parses the entire input as a single expression.
func (p *Parser) Parse() ast.Expr {
	expr := p.parseExpression(LOWEST)
	if !p.curTokenIs(lexer.EOF) {
		p.errorf(errors.PAR001, p.curPos(), "unexpected trailing input starting at %s", p.curToken.Literal)
	}
	return expr
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.errs = append(p.errs, err)
		tok = lexer.NewToken(lexer.ILLEGAL, "", p.curToken.Line, p.curToken.Column, p.file)
	}
	p.peekToken = tok
}

func (p *Parser) curPos() ast.Pos {
	return ast.Pos{File: p.file, Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances only if the peeked token has type t, recording a
// structured parse error otherwise.
func (p *Parser) expectPeek(t lexer.TokenType, code string, context string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(code, p.curPos(), "expected %s %s, got %s", t, context, p.peekToken.Type)
	return false
}

// expectBinderIdent advances only if the peeked token is a plain IDENT,
// distinguishing a reserved keyword in binder position (PAR003, e.g. "let
// if = 1 in if") from any other malformed binder (PAR004).
func (p *Parser) expectBinderIdent(context string) bool {
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		return true
	}
	if p.peekToken.Type.IsKeyword() {
		p.errorf(errors.PAR003, p.curPos(), "reserved word %s cannot be used %s", p.peekToken.Type, context)
		return false
	}
	p.errorf(errors.PAR004, p.curPos(), "expected IDENT %s, got %s", context, p.peekToken.Type)
	return false
}

func (p *Parser) errorf(code string, pos ast.Pos, format string, args ...interface{}) {
	p.errs = append(p.errs, errors.NewParseError(code, pos, fmt.Sprintf(format, args...)))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	if atomStart[p.peekToken.Type] {
		return CALLPREC
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression is the Pratt driver: one prefix dispatch to seed `left`,
// then a loop that either folds in a registered infix operator or, when the
// next token merely starts a new atom, builds a left-associative application
// node — application has no token of its own, so it is handled here rather
// than through the infix table.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.errorf(errors.PAR001, p.curPos(), "unexpected token %s, no expression starts here", p.curToken.Type)
		return nil
	}
	left := prefix()

	for precedence < p.peekPrecedence() {
		if _, isInfix := precedences[p.peekToken.Type]; !isInfix && atomStart[p.peekToken.Type] {
			p.nextToken()
			arg := p.parseAtomOperand()
			left = &ast.App{Fun: left, Arg: arg, Pos: left.Position()}
			continue
		}
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		opTok := p.peekToken.Type
		p.nextToken()
		left = infix(left)
		if isComparisonTok(opTok) && isComparisonTok(p.peekToken.Type) {
			p.errorf(errors.PAR001, p.curPos(), "comparisons do not chain, found %s after %s", p.peekToken.Type, opTok)
			break
		}
	}
	return left
}

func isComparisonTok(t lexer.TokenType) bool {
	return t == lexer.EQ || t == lexer.LEQ
}

// parseAtomOperand parses exactly one atom (spec §4.F's atom production),
// used for the right-hand side of a juxtaposed application so that
// "f x y" reads as "(f x) y" rather than "f (x y)".
func (p *Parser) parseAtomOperand() ast.Expr {
	if !atomStart[p.curToken.Type] {
		p.errorf(errors.PAR001, p.curPos(), "expected an atom, got %s", p.curToken.Type)
		return nil
	}
	return p.prefixParseFns[p.curToken.Type]()
}

func (p *Parser) parseVar() ast.Expr {
	return &ast.Var{Name: p.curToken.Literal, Pos: p.curPos()}
}

func (p *Parser) parseNum() ast.Expr {
	pos := p.curPos()
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errorf(errors.PAR001, pos, "invalid numeric literal %q", p.curToken.Literal)
		return &ast.Num{Value: 0, Pos: pos}
	}
	return &ast.Num{Value: v, Pos: pos}
}

func (p *Parser) parseNil() ast.Expr {
	return &ast.Nil{Pos: p.curPos()}
}

func (p *Parser) parseLambda() ast.Expr {
	pos := p.curPos()
	if !p.expectBinderIdent("as a lambda parameter") {
		return nil
	}
	param := p.curToken.Literal
	if !p.expectPeek(lexer.DOT, errors.PAR001, "after lambda parameter") {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Lam{Param: param, Body: body, Pos: pos}
}

func (p *Parser) parseGrouped() ast.Expr {
	p.nextToken()
	inner := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN, errors.PAR002, "to close '('") {
		return nil
	}
	return inner
}

func (p *Parser) parseUnaryMinus() ast.Expr {
	pos := p.curPos()
	p.nextToken()
	operand := p.parseExpression(UNARYPREC)
	return &ast.Neg{Operand: operand, Pos: pos}
}

func (p *Parser) parseDestruct() ast.Expr {
	pos := p.curPos()
	op := ast.OpHd
	if p.curTokenIs(lexer.TL) {
		op = ast.OpTl
	}
	p.nextToken()
	list := p.parseExpression(HDTLPREC)
	return &ast.Destruct{Op: op, List: list, Pos: pos}
}

func (p *Parser) parseIf() ast.Expr {
	pos := p.curPos()
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.THEN, errors.PAR001, "to introduce the then-branch") {
		return nil
	}
	p.nextToken()
	thenBranch := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.ELSE, errors.PAR001, "to introduce the else-branch") {
		return nil
	}
	p.nextToken()
	elseBranch := p.parseExpression(LOWEST)
	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch, Pos: pos}
}

func (p *Parser) parseLet() ast.Expr {
	pos := p.curPos()
	if !p.expectBinderIdent("as the bound name") {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN, errors.PAR001, "after let-bound name") {
		return nil
	}
	p.nextToken()
	bound := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.IN, errors.PAR001, "to introduce the let body") {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.Let{Name: name, Bound: bound, Body: body, Pos: pos}
}

func (p *Parser) parseLetRec() ast.Expr {
	pos := p.curPos()
	if !p.expectBinderIdent("as the bound name") {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(lexer.ASSIGN, errors.PAR001, "after letrec-bound name") {
		return nil
	}
	p.nextToken()
	bound := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.IN, errors.PAR001, "to introduce the letrec body") {
		return nil
	}
	p.nextToken()
	body := p.parseExpression(LOWEST)
	return &ast.LetRec{Name: name, Bound: bound, Body: body, Pos: pos}
}

func (p *Parser) parseBinLeft(left ast.Expr) ast.Expr {
	op, pos := binOpOf(p.curToken.Type), p.curPos()
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.Bin{Op: op, Lhs: left, Rhs: right, Pos: pos}
}

// parseBinNonChained handles == and <=. It builds the node exactly like any
// other left-associative binary operator; the actual non-chaining rule is
// enforced by the caller (parseExpression), which checks whether another
// comparison operator immediately follows and rejects it rather than looping
// back in for a second application.
func (p *Parser) parseBinNonChained(left ast.Expr) ast.Expr {
	return p.parseBinLeft(left)
}

func (p *Parser) parseCons(left ast.Expr) ast.Expr {
	pos := p.curPos()
	p.nextToken()
	right := p.parseExpression(CONSPREC - 1)
	return &ast.Cons{Head: left, Tail: right, Pos: pos}
}

func (p *Parser) parseSeq(left ast.Expr) ast.Expr {
	pos := p.curPos()
	p.nextToken()
	right := p.parseExpression(SEQPREC - 1)
	return &ast.Seq{Head: left, Tail: right, Pos: pos}
}

func binOpOf(t lexer.TokenType) ast.BinOp {
	switch t {
	case lexer.PLUS:
		return ast.OpPlus
	case lexer.MINUS:
		return ast.OpMinus
	case lexer.STAR:
		return ast.OpTimes
	case lexer.EQ:
		return ast.OpEq
	case lexer.LEQ:
		return ast.OpLeq
	default:
		panic("parser: binOpOf called on non-operator token")
	}
}
