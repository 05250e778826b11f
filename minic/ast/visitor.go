package ast

import "fmt"

// Visitor has one handler per node kind. Analyses are written as new
// Visitor implementations; the node types never change to add behavior.
type Visitor[T any] interface {
	VisitProgram(*Program) T

	VisitFunctionDecl(*FunctionDecl) T
	VisitVariableDecl(*VariableDecl) T
	VisitClassDecl(*ClassDecl) T
	VisitParameterDecl(*ParameterDecl) T

	VisitBlockStmt(*BlockStmt) T
	VisitIfStmt(*IfStmt) T
	VisitWhileStmt(*WhileStmt) T
	VisitForStmt(*ForStmt) T
	VisitReturnStmt(*ReturnStmt) T
	VisitExprStmt(*ExprStmt) T

	VisitBinaryExpr(*BinaryExpr) T
	VisitUnaryExpr(*UnaryExpr) T
	VisitLiteralExpr(*LiteralExpr) T
	VisitIdentExpr(*IdentExpr) T
	VisitCallExpr(*CallExpr) T
	VisitArrayAccessExpr(*ArrayAccessExpr) T
	VisitMemberAccessExpr(*MemberAccessExpr) T
	VisitNewArrayExpr(*NewArrayExpr) T
	VisitNewObjectExpr(*NewObjectExpr) T
	VisitTernaryExpr(*TernaryExpr) T
}

// Accept dispatches n to the handler of v for its concrete type.
func Accept[T any](n Node, v Visitor[T]) T {
	switch n := n.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *FunctionDecl:
		return v.VisitFunctionDecl(n)
	case *VariableDecl:
		return v.VisitVariableDecl(n)
	case *ClassDecl:
		return v.VisitClassDecl(n)
	case *ParameterDecl:
		return v.VisitParameterDecl(n)
	case *BlockStmt:
		return v.VisitBlockStmt(n)
	case *IfStmt:
		return v.VisitIfStmt(n)
	case *WhileStmt:
		return v.VisitWhileStmt(n)
	case *ForStmt:
		return v.VisitForStmt(n)
	case *ReturnStmt:
		return v.VisitReturnStmt(n)
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *LiteralExpr:
		return v.VisitLiteralExpr(n)
	case *IdentExpr:
		return v.VisitIdentExpr(n)
	case *CallExpr:
		return v.VisitCallExpr(n)
	case *ArrayAccessExpr:
		return v.VisitArrayAccessExpr(n)
	case *MemberAccessExpr:
		return v.VisitMemberAccessExpr(n)
	case *NewArrayExpr:
		return v.VisitNewArrayExpr(n)
	case *NewObjectExpr:
		return v.VisitNewObjectExpr(n)
	case *TernaryExpr:
		return v.VisitTernaryExpr(n)
	}
	panic(fmt.Sprintf("ast.Accept: unexpected node %T", n))
}

// Inspect traverses the tree rooted at n in depth-first source order,
// calling f for each node. If f returns false the children of that node
// are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}

	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			Inspect(d, f)
		}
	case *FunctionDecl:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	case *VariableDecl:
		Inspect(n.Init, f)
	case *ClassDecl:
		for _, m := range n.Members {
			Inspect(m, f)
		}
	case *BlockStmt:
		for _, s := range n.Stmts {
			Inspect(s, f)
		}
	case *IfStmt:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	case *WhileStmt:
		Inspect(n.Cond, f)
		Inspect(n.Body, f)
	case *ForStmt:
		Inspect(n.Init, f)
		Inspect(n.Cond, f)
		Inspect(n.Post, f)
		Inspect(n.Body, f)
	case *ReturnStmt:
		Inspect(n.Value, f)
	case *ExprStmt:
		Inspect(n.X, f)
	case *BinaryExpr:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *UnaryExpr:
		Inspect(n.X, f)
	case *CallExpr:
		Inspect(n.Callee, f)
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *ArrayAccessExpr:
		Inspect(n.X, f)
		Inspect(n.Index, f)
	case *MemberAccessExpr:
		Inspect(n.X, f)
	case *NewArrayExpr:
		Inspect(n.Size, f)
	case *NewObjectExpr:
		for _, a := range n.Args {
			Inspect(a, f)
		}
	case *TernaryExpr:
		Inspect(n.Cond, f)
		Inspect(n.Then, f)
		Inspect(n.Else, f)
	}
}

// isNil catches both a nil interface and a typed nil pointer stored in
// an optional child.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *BlockStmt:
		return n == nil
	case *ParameterDecl:
		return n == nil
	case *Program:
		return n == nil
	}
	return false
}
