package parser

import (
	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/token"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.LBrace:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return block, nil
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	}
	if p.startsDeclaration() {
		return p.parseLocalVariable()
	}
	return p.parseExprStmt()
}

// parseBlock parses "{ stmt* }". A statement that fails is reported and
// skipped; the block keeps the statements around it.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBrace, "Expected '{' before block")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStmt{Tok: lbrace, Stmts: []ast.Stmt{}}
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		start := p.pos
		stmt, err := p.parseStatement()
		if err != nil {
			p.recoverAt(err, start)
			continue
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, err := p.closeWith(token.RBrace, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	tok := p.advance()
	cond, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStmt{Tok: tok, Cond: cond, Then: then}
	if p.check(token.KwElse) {
		p.advance()
		if stmt.Else, err = p.parseStatement(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseWhileStmt() (*ast.WhileStmt, error) {
	tok := p.advance()
	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}, nil
}

// parseCondition reads the parenthesized condition after if or while.
func (p *Parser) parseCondition(keyword string) (ast.Expr, error) {
	if _, err := p.expect(token.LParen, "Expected '(' after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "Expected ')' after condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) parseForStmt() (*ast.ForStmt, error) {
	tok := p.advance()
	if _, err := p.expect(token.LParen, "Expected '(' after 'for'"); err != nil {
		return nil, err
	}
	stmt := &ast.ForStmt{Tok: tok}

	switch {
	case p.check(token.Semicolon):
		p.advance()
	case p.startsDeclaration():
		init, err := p.parseLocalVariable()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	default:
		init, err := p.parseExprStmt()
		if err != nil {
			return nil, err
		}
		stmt.Init = init
	}

	if !p.check(token.Semicolon) {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Cond = cond
	}
	if _, err := p.expect(token.Semicolon, "Expected ';' after loop condition"); err != nil {
		return nil, err
	}

	if !p.check(token.RParen) {
		post, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Post = post
	}
	if _, err := p.expect(token.RParen, "Expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	stmt := &ast.ReturnStmt{Tok: p.advance()}
	if !p.match(token.Semicolon, token.RBrace, token.EOF) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	if _, err := p.closeWith(token.Semicolon, "Expected ';' after return value"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	tok := p.peek()
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.closeWith(token.Semicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Tok: tok, X: x}, nil
}
