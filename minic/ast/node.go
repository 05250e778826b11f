package ast

import "github.com/dhamidi/minic/minic/token"

type NodeKind int

const (
	KindProgram NodeKind = iota

	// Declarations
	KindFunctionDecl
	KindVariableDecl
	KindClassDecl
	KindParameterDecl

	// Statements
	KindBlockStmt
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindReturnStmt
	KindExprStmt

	// Expressions
	KindBinaryExpr
	KindUnaryExpr
	KindLiteralExpr
	KindIdentExpr
	KindCallExpr
	KindArrayAccessExpr
	KindMemberAccessExpr
	KindNewArrayExpr
	KindNewObjectExpr
	KindTernaryExpr
)

var nodeKindNames = map[NodeKind]string{
	KindProgram:          "Program",
	KindFunctionDecl:     "FunctionDecl",
	KindVariableDecl:     "VariableDecl",
	KindClassDecl:        "ClassDecl",
	KindParameterDecl:    "ParameterDecl",
	KindBlockStmt:        "BlockStmt",
	KindIfStmt:           "IfStmt",
	KindWhileStmt:        "WhileStmt",
	KindForStmt:          "ForStmt",
	KindReturnStmt:       "ReturnStmt",
	KindExprStmt:         "ExprStmt",
	KindBinaryExpr:       "BinaryExpr",
	KindUnaryExpr:        "UnaryExpr",
	KindLiteralExpr:      "LiteralExpr",
	KindIdentExpr:        "IdentExpr",
	KindCallExpr:         "CallExpr",
	KindArrayAccessExpr:  "ArrayAccessExpr",
	KindMemberAccessExpr: "MemberAccessExpr",
	KindNewArrayExpr:     "NewArrayExpr",
	KindNewObjectExpr:    "NewObjectExpr",
	KindTernaryExpr:      "TernaryExpr",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every syntax tree node. Token is the token most
// relevant for error reporting: a name, a keyword or an operator.
type Node interface {
	Kind() NodeKind
	Token() token.Token
}

type Stmt interface {
	Node
	stmtNode()
}

// Decl is a Stmt so that local variables can appear in blocks and in the
// initializer of a for statement.
type Decl interface {
	Stmt
	DeclName() string
	declNode()
}

type Expr interface {
	Node
	exprNode()
}

// Program is the root. Decls is never nil.
type Program struct {
	Decls []Decl
}

func (n *Program) Kind() NodeKind     { return KindProgram }
func (n *Program) Token() token.Token { return token.Token{} }

// Declarations

type FunctionDecl struct {
	Tok        token.Token
	Name       string
	ReturnType string
	Params     []*ParameterDecl
	Body       *BlockStmt
	Public     bool
}

type VariableDecl struct {
	Tok      token.Token
	TypeName string
	Name     string
	Init     Expr
	Public   bool
}

type ClassDecl struct {
	Tok     token.Token
	Name    string
	Members []Decl
	Public  bool
}

type ParameterDecl struct {
	Tok      token.Token
	TypeName string
	Name     string
}

// Statements

type BlockStmt struct {
	Tok   token.Token
	Stmts []Stmt
}

type IfStmt struct {
	Tok  token.Token
	Cond Expr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	Tok  token.Token
	Cond Expr
	Body Stmt
}

// ForStmt clauses are each optional.
type ForStmt struct {
	Tok  token.Token
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

type ReturnStmt struct {
	Tok   token.Token
	Value Expr
}

type ExprStmt struct {
	Tok token.Token
	X   Expr
}

// Expressions

// BinaryExpr also represents assignment, with Op == token.Assign.
type BinaryExpr struct {
	Tok   token.Token
	Op    token.Kind
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Tok token.Token
	Op  token.Kind
	X   Expr
}

type LiteralExpr struct {
	Tok   token.Token
	Value Value
}

type IdentExpr struct {
	Tok  token.Token
	Name string
}

type CallExpr struct {
	Tok    token.Token
	Callee Expr
	Args   []Expr
}

type ArrayAccessExpr struct {
	Tok   token.Token
	X     Expr
	Index Expr
}

type MemberAccessExpr struct {
	Tok  token.Token
	X    Expr
	Name string
}

type NewArrayExpr struct {
	Tok      token.Token
	ElemType string
	Size     Expr
}

type NewObjectExpr struct {
	Tok       token.Token
	ClassName string
	Args      []Expr
}

type TernaryExpr struct {
	Tok  token.Token
	Cond Expr
	Then Expr
	Else Expr
}

func (n *FunctionDecl) Kind() NodeKind     { return KindFunctionDecl }
func (n *VariableDecl) Kind() NodeKind     { return KindVariableDecl }
func (n *ClassDecl) Kind() NodeKind        { return KindClassDecl }
func (n *ParameterDecl) Kind() NodeKind    { return KindParameterDecl }
func (n *BlockStmt) Kind() NodeKind        { return KindBlockStmt }
func (n *IfStmt) Kind() NodeKind           { return KindIfStmt }
func (n *WhileStmt) Kind() NodeKind        { return KindWhileStmt }
func (n *ForStmt) Kind() NodeKind          { return KindForStmt }
func (n *ReturnStmt) Kind() NodeKind       { return KindReturnStmt }
func (n *ExprStmt) Kind() NodeKind         { return KindExprStmt }
func (n *BinaryExpr) Kind() NodeKind       { return KindBinaryExpr }
func (n *UnaryExpr) Kind() NodeKind        { return KindUnaryExpr }
func (n *LiteralExpr) Kind() NodeKind      { return KindLiteralExpr }
func (n *IdentExpr) Kind() NodeKind        { return KindIdentExpr }
func (n *CallExpr) Kind() NodeKind         { return KindCallExpr }
func (n *ArrayAccessExpr) Kind() NodeKind  { return KindArrayAccessExpr }
func (n *MemberAccessExpr) Kind() NodeKind { return KindMemberAccessExpr }
func (n *NewArrayExpr) Kind() NodeKind     { return KindNewArrayExpr }
func (n *NewObjectExpr) Kind() NodeKind    { return KindNewObjectExpr }
func (n *TernaryExpr) Kind() NodeKind      { return KindTernaryExpr }

func (n *FunctionDecl) Token() token.Token     { return n.Tok }
func (n *VariableDecl) Token() token.Token     { return n.Tok }
func (n *ClassDecl) Token() token.Token        { return n.Tok }
func (n *ParameterDecl) Token() token.Token    { return n.Tok }
func (n *BlockStmt) Token() token.Token        { return n.Tok }
func (n *IfStmt) Token() token.Token           { return n.Tok }
func (n *WhileStmt) Token() token.Token        { return n.Tok }
func (n *ForStmt) Token() token.Token          { return n.Tok }
func (n *ReturnStmt) Token() token.Token       { return n.Tok }
func (n *ExprStmt) Token() token.Token         { return n.Tok }
func (n *BinaryExpr) Token() token.Token       { return n.Tok }
func (n *UnaryExpr) Token() token.Token        { return n.Tok }
func (n *LiteralExpr) Token() token.Token      { return n.Tok }
func (n *IdentExpr) Token() token.Token        { return n.Tok }
func (n *CallExpr) Token() token.Token         { return n.Tok }
func (n *ArrayAccessExpr) Token() token.Token  { return n.Tok }
func (n *MemberAccessExpr) Token() token.Token { return n.Tok }
func (n *NewArrayExpr) Token() token.Token     { return n.Tok }
func (n *NewObjectExpr) Token() token.Token    { return n.Tok }
func (n *TernaryExpr) Token() token.Token      { return n.Tok }

func (n *FunctionDecl) DeclName() string  { return n.Name }
func (n *VariableDecl) DeclName() string  { return n.Name }
func (n *ClassDecl) DeclName() string     { return n.Name }
func (n *ParameterDecl) DeclName() string { return n.Name }

func (*FunctionDecl) declNode()  {}
func (*VariableDecl) declNode()  {}
func (*ClassDecl) declNode()     {}
func (*ParameterDecl) declNode() {}

func (*FunctionDecl) stmtNode()  {}
func (*VariableDecl) stmtNode()  {}
func (*ClassDecl) stmtNode()     {}
func (*ParameterDecl) stmtNode() {}
func (*BlockStmt) stmtNode()     {}
func (*IfStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()     {}
func (*ForStmt) stmtNode()       {}
func (*ReturnStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()      {}

func (*BinaryExpr) exprNode()       {}
func (*UnaryExpr) exprNode()        {}
func (*LiteralExpr) exprNode()      {}
func (*IdentExpr) exprNode()        {}
func (*CallExpr) exprNode()         {}
func (*ArrayAccessExpr) exprNode()  {}
func (*MemberAccessExpr) exprNode() {}
func (*NewArrayExpr) exprNode()     {}
func (*NewObjectExpr) exprNode()    {}
func (*TernaryExpr) exprNode()      {}

// IsAssignable reports whether x may appear on the left of '='.
func IsAssignable(x Expr) bool {
	switch x.(type) {
	case *IdentExpr, *ArrayAccessExpr, *MemberAccessExpr:
		return true
	}
	return false
}
