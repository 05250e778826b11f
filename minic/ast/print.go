package ast

import (
	"fmt"
	"io"
	"strings"
)

// Sprint returns the indented tree dump of n.
func Sprint(n Node) string {
	var sb strings.Builder
	Fprint(&sb, n, false)
	return sb.String()
}

// Fprint writes one line per node to w, children indented by two spaces.
// With positions set, each line ends with the line:column of the node's
// token.
func Fprint(w io.Writer, n Node, positions bool) error {
	p := &printer{positions: positions}
	p.visit(n)
	_, err := io.WriteString(w, p.buf.String())
	return err
}

type printer struct {
	buf       strings.Builder
	depth     int
	positions bool
}

type none struct{}

func (p *printer) visit(n Node) {
	if isNil(n) {
		return
	}
	Accept[none](n, p)
}

func (p *printer) line(n Node, format string, args ...any) {
	p.buf.WriteString(strings.Repeat("  ", p.depth))
	p.buf.WriteString(n.Kind().String())
	if format != "" {
		p.buf.WriteString(" ")
		fmt.Fprintf(&p.buf, format, args...)
	}
	if p.positions {
		if tok := n.Token(); tok.Line > 0 {
			fmt.Fprintf(&p.buf, " [%d:%d]", tok.Line, tok.Column)
		}
	}
	p.buf.WriteString("\n")
}

func (p *printer) children(nodes ...Node) {
	p.depth++
	for _, n := range nodes {
		p.visit(n)
	}
	p.depth--
}

// labeled prints an optional child under a label line, as for the
// clauses of a for statement.
func (p *printer) labeled(label string, n Node) {
	if isNil(n) {
		return
	}
	p.depth++
	p.buf.WriteString(strings.Repeat("  ", p.depth))
	p.buf.WriteString(label + ":\n")
	p.children(n)
	p.depth--
}

func visibility(public bool) string {
	if public {
		return "public "
	}
	return ""
}

func (p *printer) VisitProgram(n *Program) none {
	p.line(n, "")
	for _, d := range n.Decls {
		p.children(d)
	}
	return none{}
}

func (p *printer) VisitFunctionDecl(n *FunctionDecl) none {
	params := make([]string, len(n.Params))
	for i, param := range n.Params {
		params[i] = param.TypeName + " " + param.Name
	}
	p.line(n, "%s%s(%s) -> %s", visibility(n.Public), n.Name, strings.Join(params, ", "), n.ReturnType)
	if n.Body != nil {
		p.children(n.Body)
	}
	return none{}
}

func (p *printer) VisitVariableDecl(n *VariableDecl) none {
	p.line(n, "%s%s %s", visibility(n.Public), n.TypeName, n.Name)
	p.children(n.Init)
	return none{}
}

func (p *printer) VisitClassDecl(n *ClassDecl) none {
	p.line(n, "%s%s", visibility(n.Public), n.Name)
	for _, m := range n.Members {
		p.children(m)
	}
	return none{}
}

func (p *printer) VisitParameterDecl(n *ParameterDecl) none {
	p.line(n, "%s %s", n.TypeName, n.Name)
	return none{}
}

func (p *printer) VisitBlockStmt(n *BlockStmt) none {
	p.line(n, "")
	for _, s := range n.Stmts {
		p.children(s)
	}
	return none{}
}

func (p *printer) VisitIfStmt(n *IfStmt) none {
	p.line(n, "")
	p.children(n.Cond, n.Then)
	p.labeled("else", n.Else)
	return none{}
}

func (p *printer) VisitWhileStmt(n *WhileStmt) none {
	p.line(n, "")
	p.children(n.Cond, n.Body)
	return none{}
}

func (p *printer) VisitForStmt(n *ForStmt) none {
	p.line(n, "")
	p.labeled("init", n.Init)
	p.labeled("cond", n.Cond)
	p.labeled("post", n.Post)
	p.children(n.Body)
	return none{}
}

func (p *printer) VisitReturnStmt(n *ReturnStmt) none {
	p.line(n, "")
	p.children(n.Value)
	return none{}
}

func (p *printer) VisitExprStmt(n *ExprStmt) none {
	p.line(n, "")
	p.children(n.X)
	return none{}
}

func (p *printer) VisitBinaryExpr(n *BinaryExpr) none {
	p.line(n, "%s", n.Op)
	p.children(n.Left, n.Right)
	return none{}
}

func (p *printer) VisitUnaryExpr(n *UnaryExpr) none {
	p.line(n, "%s", n.Op)
	p.children(n.X)
	return none{}
}

func (p *printer) VisitLiteralExpr(n *LiteralExpr) none {
	if n.Value == nil {
		p.line(n, "")
		return none{}
	}
	p.line(n, "%s", n.Value)
	return none{}
}

func (p *printer) VisitIdentExpr(n *IdentExpr) none {
	p.line(n, "%s", n.Name)
	return none{}
}

func (p *printer) VisitCallExpr(n *CallExpr) none {
	p.line(n, "")
	p.children(n.Callee)
	for _, a := range n.Args {
		p.children(a)
	}
	return none{}
}

func (p *printer) VisitArrayAccessExpr(n *ArrayAccessExpr) none {
	p.line(n, "")
	p.children(n.X, n.Index)
	return none{}
}

func (p *printer) VisitMemberAccessExpr(n *MemberAccessExpr) none {
	p.line(n, ".%s", n.Name)
	p.children(n.X)
	return none{}
}

func (p *printer) VisitNewArrayExpr(n *NewArrayExpr) none {
	p.line(n, "%s[]", n.ElemType)
	p.children(n.Size)
	return none{}
}

func (p *printer) VisitNewObjectExpr(n *NewObjectExpr) none {
	p.line(n, "%s", n.ClassName)
	for _, a := range n.Args {
		p.children(a)
	}
	return none{}
}

func (p *printer) VisitTernaryExpr(n *TernaryExpr) none {
	p.line(n, "")
	p.children(n.Cond, n.Then, n.Else)
	return none{}
}
