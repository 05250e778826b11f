package parser

import (
	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/token"
)

// binaryPrec is the binding power of each left-associative binary
// operator. Higher binds tighter.
var binaryPrec = map[token.Kind]int{
	token.Or:        1,
	token.And:       2,
	token.Eq:        3,
	token.NotEq:     3,
	token.Less:      4,
	token.Greater:   4,
	token.LessEq:    4,
	token.GreaterEq: 4,
	token.Plus:      5,
	token.Minus:     5,
	token.Star:      6,
	token.Slash:     6,
	token.Percent:   6,
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Assign) {
		return left, nil
	}
	op := p.advance()
	if !ast.IsAssignable(left) {
		p.reportAt(op, "Invalid assignment target")
	}
	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Tok: op, Op: token.Assign, Left: left, Right: right}, nil
}

func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.check(token.Question) {
		return cond, nil
	}
	q := p.advance()
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "Expected ':' in conditional expression"); err != nil {
		return nil, err
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Tok: q, Cond: cond, Then: then, Else: els}, nil
}

// parseBinary parses operators binding at least as tight as minPrec.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binaryPrec[p.peek().Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Tok: op, Op: op.Kind, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.match(token.Minus, token.Not) {
		op := p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Tok: op, Op: op.Kind, X: x}, nil
	}
	return p.parsePostfix()
}

// parsePostfix applies calls, indexing and member access to a primary
// expression, left to right, for as long as they follow.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			args, closed, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			x = &ast.CallExpr{Tok: x.Token(), Callee: x, Args: args}
			if !closed {
				return x, nil
			}
		case token.LBracket:
			lbrack := p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			x = &ast.ArrayAccessExpr{Tok: lbrack, X: x, Index: index}
			closed, err := p.closeWith(token.RBracket, "Expected ']' after index")
			if err != nil {
				return nil, err
			}
			if !closed {
				return x, nil
			}
		case token.Dot:
			p.advance()
			name, err := p.expect(token.Ident, "Expected property name after '.'")
			if err != nil {
				return nil, err
			}
			x = &ast.MemberAccessExpr{Tok: name, X: x, Name: name.Text}
		default:
			return x, nil
		}
	}
}

// parseArgs reads a comma-separated argument list after '('. It reports
// false when the input ends before the closing parenthesis.
func (p *Parser) parseArgs() ([]ast.Expr, bool, error) {
	args := []ast.Expr{}
	if !p.check(token.RParen) {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, false, err
			}
			args = append(args, arg)
			if !p.check(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closed, err := p.closeWith(token.RParen, "Expected ')' after arguments")
	return args, closed, err
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Number, token.Float, token.Bool, token.String, token.Char:
		p.advance()
		return p.literal(tok), nil
	case token.Ident:
		p.advance()
		return &ast.IdentExpr{Tok: tok, Name: tok.Text}, nil
	case token.LParen:
		p.advance()
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.closeWith(token.RParen, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return x, nil
	case token.KwNew:
		return p.parseNew()
	case token.Bad:
		return nil, p.errorf(tok, "Unexpected character '%s'", tok.Text)
	}
	return nil, p.errorf(tok, "Expected expression")
}

// literal decodes a literal token. A malformed value is reported and
// replaced by its zero value so the tree stays complete.
func (p *Parser) literal(tok token.Token) *ast.LiteralExpr {
	lit := &ast.LiteralExpr{Tok: tok}
	switch tok.Kind {
	case token.Number:
		v, err := tok.IntValue()
		if err != nil {
			p.reportAt(tok, "Integer literal out of range")
			v = 0
		}
		lit.Value = ast.IntValue(v)
	case token.Float:
		v, err := tok.FloatValue()
		if err != nil {
			p.reportAt(tok, "Float literal out of range")
			v = 0
		}
		lit.Value = ast.FloatValue(v)
	case token.Bool:
		v, _ := tok.BoolValue()
		lit.Value = ast.BoolValue(v)
	case token.String:
		v, _ := tok.StringValue()
		lit.Value = ast.StringValue(v)
	case token.Char:
		v, _ := tok.StringValue()
		runes := []rune(v)
		if len(runes) != 1 {
			p.reportAt(tok, "Invalid character literal")
			lit.Value = ast.CharValue(0)
			break
		}
		lit.Value = ast.CharValue(runes[0])
	}
	return lit
}

// parseNew parses "new T[size]" and "new Class(args)".
func (p *Parser) parseNew() (ast.Expr, error) {
	newTok := p.advance()
	typ := p.peek()
	if !typ.Kind.IsType() && typ.Kind != token.Ident {
		return nil, p.errorf(typ, "Expected type name after 'new'")
	}
	p.advance()

	switch {
	case p.check(token.LBracket):
		p.advance()
		size, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.closeWith(token.RBracket, "Expected ']' after array size"); err != nil {
			return nil, err
		}
		return &ast.NewArrayExpr{Tok: newTok, ElemType: typ.Text, Size: size}, nil
	case typ.Kind == token.Ident && p.check(token.LParen):
		p.advance()
		args, _, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.NewObjectExpr{Tok: newTok, ClassName: typ.Text, Args: args}, nil
	case typ.Kind == token.Ident:
		return nil, p.errorf(p.peek(), "Expected '(' or '[' after class name")
	}
	return nil, p.errorf(p.peek(), "Expected '[' after type in array creation")
}
