/*
File    : lax/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser over the token
// list the lexer produces, following spec.md §4.2's grammar exactly.
// Grounded on go-mix's parser.Parser token-lookahead idiom
// (CurrToken/advance/expectAdvance/error collection), adapted from its
// Pratt-table dispatch to the explicit precedence ladder spec.md
// specifies, since Lax's grammar is fixed rather than
// operator-table-driven.
package parser

import (
	"github.com/akashmaji946/lax/ast"
	"github.com/akashmaji946/lax/errs"
	"github.com/akashmaji946/lax/token"
)

const maxArgs = 255

// Parser walks tokens left to right, one token of lookahead.
type Parser struct {
	tokens  []token.Token
	current int
	status  *errs.Status
}

// New creates a Parser over tokens that reports parse errors to status.
func New(tokens []token.Token, status *errs.Status) *Parser {
	return &Parser{tokens: tokens, status: status}
}

// Parse runs the full `program = declaration* EOF` rule, returning every
// statement it could recover. A statement that fails to parse is
// dropped after synchronize() runs, so one bad statement does not
// prevent later ones from being reported too.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.report(err)
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (p *Parser) report(err error) {
	if pe, ok := err.(errs.ParseError); ok {
		p.status.ReportParse(pe)
	}
}

// --- token plumbing ------------------------------------------------

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Kind == token.Eof }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, errs.ParseError{Token: p.peek(), Message: message}
}

// synchronize discards tokens until it reaches a point that plausibly
// starts a new statement, so one parse error does not cascade into a
// flood of spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fn, token.Let, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// --- declarations ----------------------------------------------------

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.Class):
		return p.classDecl()
	case p.match(token.Fn):
		return p.funcDecl("function")
	case p.match(token.Let):
		return p.letDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Var
	if p.match(token.Less) {
		superName, err := p.consume(token.Identifier, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = &ast.Var{ID: ast.NextExprID(), Name: superName}
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Func
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		method, err := p.funcDecl("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*ast.Func))
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

func (p *Parser) funcDecl(kind string) (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				return nil, errs.ParseError{Token: p.peek(), Message: "Can't have more than 255 parameters."}
			}
			param, err := p.consume(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Func{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) letDecl() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Let{Name: name, Init: init}, nil
}

// --- statements --------------------------------------------------------

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Stmts: stmts}, nil
	default:
		return p.exprStatement()
	}
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after while condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into a Block
// containing init followed by a While whose body is a Block of the
// loop body plus incr as an expression statement, per spec.md §4.2. A
// missing condition becomes the literal `true`.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Let):
		initializer, err = p.letDecl()
	default:
		initializer, err = p.exprStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: increment}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	body = &ast.While{Cond: cond, Body: body}
	if initializer != nil {
		body = &ast.Block{Stmts: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(token.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) exprStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

// --- expressions, low to high precedence --------------------------------

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Var:
			return &ast.Assign{ID: ast.NextExprID(), Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			return nil, errs.ParseError{Token: equals, Message: "Invalid assignment target."}
		}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{ID: ast.NextExprID(), Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{ID: ast.NextExprID(), Op: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				return nil, errs.ParseError{Token: p.peek(), Message: "Can't have more than 255 arguments."}
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}, nil
	case p.match(token.True):
		return &ast.Literal{Value: true}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number):
		return &ast.Literal{Value: p.previous().Literal.Num}, nil
	case p.match(token.String):
		return &ast.Literal{Value: p.previous().Literal.Str}, nil
	case p.match(token.Super):
		keyword := p.previous()
		if _, err := p.consume(token.Dot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(token.Identifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return &ast.Super{ID: ast.NextExprID(), Keyword: keyword, Method: method}, nil
	case p.match(token.This):
		return &ast.This{ID: ast.NextExprID(), Keyword: p.previous()}, nil
	case p.match(token.Identifier):
		return &ast.Var{ID: ast.NextExprID(), Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	default:
		return nil, errs.ParseError{Token: p.peek(), Message: "Expect expression."}
	}
}
