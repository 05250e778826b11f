package format

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/minic/minic/ast"
	"github.com/dhamidi/minic/minic/diag"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(prog *ast.Program, diags diag.List) error {
	text, err := e.MarshalText(prog, diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(prog *ast.Program, diags diag.List) ([]byte, error) {
	return json.MarshalIndent(newASTDocument(prog, diags), "", "  ")
}

type ASTYAMLEncoder struct {
	w io.Writer
}

func NewASTYAMLEncoder(w io.Writer) *ASTYAMLEncoder {
	return &ASTYAMLEncoder{w: w}
}

func (e *ASTYAMLEncoder) Encode(prog *ast.Program, diags diag.List) error {
	text, err := e.MarshalText(prog, diags)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTYAMLEncoder) MarshalText(prog *ast.Program, diags diag.List) ([]byte, error) {
	return yaml.Marshal(newASTDocument(prog, diags))
}

type astDocument struct {
	Program     *astNode           `json:"program" yaml:"program"`
	Diagnostics []diagnosticRecord `json:"diagnostics" yaml:"diagnostics"`
}

type astNode struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Role     string       `json:"role,omitempty" yaml:"role,omitempty"`
	Pos      *astPosition `json:"pos,omitempty" yaml:"pos,omitempty"`
	Name     string       `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string       `json:"type,omitempty" yaml:"type,omitempty"`
	Op       string       `json:"op,omitempty" yaml:"op,omitempty"`
	Public   bool         `json:"public,omitempty" yaml:"public,omitempty"`
	Value    *astValue    `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*astNode   `json:"children,omitempty" yaml:"children,omitempty"`
}

type astPosition struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

type astValue struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func newASTDocument(prog *ast.Program, diags diag.List) astDocument {
	doc := astDocument{Diagnostics: diagnosticRecords(diags)}
	if prog != nil {
		doc.Program = ast.Accept[*astNode](prog, projector{})
	}
	return doc
}

// projector turns the syntax tree into astNode records. Each child is
// tagged with the role it plays in its parent.
type projector struct{}

func (p projector) node(n ast.Node) *astNode {
	jn := &astNode{Kind: n.Kind().String()}
	if tok := n.Token(); tok.Line != 0 {
		jn.Pos = &astPosition{Line: tok.Line, Column: tok.Column}
	}
	return jn
}

func (p projector) add(parent *astNode, role string, n ast.Node) {
	if n == nil {
		return
	}
	child := ast.Accept[*astNode](n, p)
	child.Role = role
	parent.Children = append(parent.Children, child)
}

func (p projector) addExprs(parent *astNode, role string, xs []ast.Expr) {
	for _, x := range xs {
		p.add(parent, role, x)
	}
}

func (p projector) VisitProgram(n *ast.Program) *astNode {
	jn := p.node(n)
	for _, d := range n.Decls {
		p.add(jn, "decl", d)
	}
	return jn
}

func (p projector) VisitFunctionDecl(n *ast.FunctionDecl) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	jn.Type = n.ReturnType
	jn.Public = n.Public
	for _, param := range n.Params {
		p.add(jn, "param", param)
	}
	if n.Body != nil {
		p.add(jn, "body", n.Body)
	}
	return jn
}

func (p projector) VisitVariableDecl(n *ast.VariableDecl) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	jn.Type = n.TypeName
	jn.Public = n.Public
	p.add(jn, "init", n.Init)
	return jn
}

func (p projector) VisitClassDecl(n *ast.ClassDecl) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	jn.Public = n.Public
	for _, m := range n.Members {
		p.add(jn, "member", m)
	}
	return jn
}

func (p projector) VisitParameterDecl(n *ast.ParameterDecl) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	jn.Type = n.TypeName
	return jn
}

func (p projector) VisitBlockStmt(n *ast.BlockStmt) *astNode {
	jn := p.node(n)
	for _, s := range n.Stmts {
		p.add(jn, "stmt", s)
	}
	return jn
}

func (p projector) VisitIfStmt(n *ast.IfStmt) *astNode {
	jn := p.node(n)
	p.add(jn, "cond", n.Cond)
	p.add(jn, "then", n.Then)
	p.add(jn, "else", n.Else)
	return jn
}

func (p projector) VisitWhileStmt(n *ast.WhileStmt) *astNode {
	jn := p.node(n)
	p.add(jn, "cond", n.Cond)
	p.add(jn, "body", n.Body)
	return jn
}

func (p projector) VisitForStmt(n *ast.ForStmt) *astNode {
	jn := p.node(n)
	p.add(jn, "init", n.Init)
	p.add(jn, "cond", n.Cond)
	p.add(jn, "post", n.Post)
	p.add(jn, "body", n.Body)
	return jn
}

func (p projector) VisitReturnStmt(n *ast.ReturnStmt) *astNode {
	jn := p.node(n)
	p.add(jn, "value", n.Value)
	return jn
}

func (p projector) VisitExprStmt(n *ast.ExprStmt) *astNode {
	jn := p.node(n)
	p.add(jn, "expr", n.X)
	return jn
}

func (p projector) VisitBinaryExpr(n *ast.BinaryExpr) *astNode {
	jn := p.node(n)
	jn.Op = n.Op.String()
	p.add(jn, "left", n.Left)
	p.add(jn, "right", n.Right)
	return jn
}

func (p projector) VisitUnaryExpr(n *ast.UnaryExpr) *astNode {
	jn := p.node(n)
	jn.Op = n.Op.String()
	p.add(jn, "operand", n.X)
	return jn
}

func (p projector) VisitLiteralExpr(n *ast.LiteralExpr) *astNode {
	jn := p.node(n)
	switch v := n.Value.(type) {
	case ast.IntValue:
		jn.Value = &astValue{Type: "int", Value: int64(v)}
	case ast.FloatValue:
		jn.Value = &astValue{Type: "float", Value: float64(v)}
	case ast.BoolValue:
		jn.Value = &astValue{Type: "bool", Value: bool(v)}
	case ast.CharValue:
		jn.Value = &astValue{Type: "char", Value: string(rune(v))}
	case ast.StringValue:
		jn.Value = &astValue{Type: "string", Value: string(v)}
	}
	return jn
}

func (p projector) VisitIdentExpr(n *ast.IdentExpr) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	return jn
}

func (p projector) VisitCallExpr(n *ast.CallExpr) *astNode {
	jn := p.node(n)
	p.add(jn, "callee", n.Callee)
	p.addExprs(jn, "arg", n.Args)
	return jn
}

func (p projector) VisitArrayAccessExpr(n *ast.ArrayAccessExpr) *astNode {
	jn := p.node(n)
	p.add(jn, "array", n.X)
	p.add(jn, "index", n.Index)
	return jn
}

func (p projector) VisitMemberAccessExpr(n *ast.MemberAccessExpr) *astNode {
	jn := p.node(n)
	jn.Name = n.Name
	p.add(jn, "object", n.X)
	return jn
}

func (p projector) VisitNewArrayExpr(n *ast.NewArrayExpr) *astNode {
	jn := p.node(n)
	jn.Type = n.ElemType
	p.add(jn, "size", n.Size)
	return jn
}

func (p projector) VisitNewObjectExpr(n *ast.NewObjectExpr) *astNode {
	jn := p.node(n)
	jn.Type = n.ClassName
	p.addExprs(jn, "arg", n.Args)
	return jn
}

func (p projector) VisitTernaryExpr(n *ast.TernaryExpr) *astNode {
	jn := p.node(n)
	p.add(jn, "cond", n.Cond)
	p.add(jn, "then", n.Then)
	p.add(jn, "else", n.Else)
	return jn
}
