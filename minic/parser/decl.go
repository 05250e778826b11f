package parser

import (
	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/token"
)

// parseDeclaration parses a top-level declaration, or a class member when
// inClass is set.
func (p *Parser) parseDeclaration(inClass bool) (ast.Decl, error) {
	public := false
	if p.check(token.KwPublic) {
		p.advance()
		public = true
	}

	switch {
	case p.check(token.KwClass) && !inClass:
		return p.parseClassDecl(public)
	case p.check(token.KwFn):
		return p.parseFnDecl(public)
	case p.startsDeclaration():
		typeName, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name, err := p.expect(token.Ident, "Expected name after type")
		if err != nil {
			return nil, err
		}
		if p.check(token.LParen) {
			return p.parseFunctionRest(public, name, typeName)
		}
		return p.parseVariableRest(public, name, typeName)
	}

	if inClass {
		return nil, p.errorf(p.peek(), "Expected member declaration")
	}
	return nil, p.errorf(p.peek(), "Expected declaration")
}

// startsDeclaration reports whether the upcoming tokens begin a typed
// declaration: a type keyword, or a class name followed by a name or by
// an array suffix.
func (p *Parser) startsDeclaration() bool {
	tok := p.peek()
	if tok.Kind.IsType() {
		return true
	}
	if tok.Kind != token.Ident {
		return false
	}
	next := p.peekN(1)
	return next.Kind == token.Ident ||
		next.Kind == token.LBracket && p.peekN(2).Kind == token.RBracket
}

// parseType reads a type name with any number of "[]" suffixes.
func (p *Parser) parseType() (string, error) {
	tok := p.peek()
	if !tok.Kind.IsType() && tok.Kind != token.Ident {
		return "", p.errorf(tok, "Expected type")
	}
	p.advance()
	name := tok.Text
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advance()
		p.advance()
		name += "[]"
	}
	return name, nil
}

func (p *Parser) parseClassDecl(public bool) (*ast.ClassDecl, error) {
	p.advance() // class
	name, err := p.expect(token.Ident, "Expected class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "Expected '{' before class body"); err != nil {
		return nil, err
	}

	class := &ast.ClassDecl{Tok: name, Name: name.Text, Members: []ast.Decl{}, Public: public}
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		start := p.pos
		member, err := p.parseDeclaration(true)
		if err != nil {
			p.recoverAt(err, start)
			continue
		}
		class.Members = append(class.Members, member)
	}
	if _, err := p.closeWith(token.RBrace, "Expected '}' after class body"); err != nil {
		return nil, err
	}
	return class, nil
}

// parseFnDecl parses the "fn name(params) [-> Type] { ... }" form. The
// return type defaults to void.
func (p *Parser) parseFnDecl(public bool) (*ast.FunctionDecl, error) {
	p.advance() // fn
	name, err := p.expect(token.Ident, "Expected function name")
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionDecl{Tok: name, Name: name.Text, ReturnType: "void", Public: public}
	closed, err := p.parseParams(fn)
	if err != nil {
		return nil, err
	}
	if !closed {
		fn.Body = p.emptyBlock()
		return fn, nil
	}
	if p.check(token.Arrow) {
		p.advance()
		if fn.ReturnType, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if fn.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseFunctionRest finishes the "Type name(params) { ... }" form once
// the type and name are consumed.
func (p *Parser) parseFunctionRest(public bool, name token.Token, returnType string) (*ast.FunctionDecl, error) {
	fn := &ast.FunctionDecl{Tok: name, Name: name.Text, ReturnType: returnType, Public: public}
	closed, err := p.parseParams(fn)
	if err != nil {
		return nil, err
	}
	if !closed {
		fn.Body = p.emptyBlock()
		return fn, nil
	}
	if fn.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseParams reads "(Type name, ...)". It returns false when the input
// ends before the closing parenthesis.
func (p *Parser) parseParams(fn *ast.FunctionDecl) (bool, error) {
	if _, err := p.expect(token.LParen, "Expected '(' after function name"); err != nil {
		return false, err
	}
	fn.Params = []*ast.ParameterDecl{}
	if !p.check(token.RParen) {
		for {
			typeName, err := p.parseType()
			if err != nil {
				return false, err
			}
			name, err := p.expect(token.Ident, "Expected parameter name")
			if err != nil {
				return false, err
			}
			fn.Params = append(fn.Params, &ast.ParameterDecl{Tok: name, TypeName: typeName, Name: name.Text})
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	return p.closeWith(token.RParen, "Expected ')' after parameters")
}

func (p *Parser) parseVariableRest(public bool, name token.Token, typeName string) (*ast.VariableDecl, error) {
	v := &ast.VariableDecl{Tok: name, TypeName: typeName, Name: name.Text, Public: public}
	if p.check(token.Assign) {
		p.advance()
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		v.Init = init
	}
	if _, err := p.closeWith(token.Semicolon, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return v, nil
}

// parseLocalVariable parses a variable declaration inside a block or a
// for initializer.
func (p *Parser) parseLocalVariable() (*ast.VariableDecl, error) {
	typeName, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident, "Expected variable name")
	if err != nil {
		return nil, err
	}
	return p.parseVariableRest(false, name, typeName)
}

func (p *Parser) emptyBlock() *ast.BlockStmt {
	return &ast.BlockStmt{Tok: p.peek(), Stmts: []ast.Stmt{}}
}
