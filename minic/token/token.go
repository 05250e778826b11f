package token

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	EOF Kind = iota
	Bad

	literalBeg
	Number
	Float
	Char
	String
	Bool
	literalEnd

	Ident

	operatorBeg
	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	NotEq
	Less
	Greater
	LessEq
	GreaterEq
	And
	Or
	Not
	Assign
	operatorEnd

	Arrow
	Question
	Colon
	Semicolon
	Comma
	Dot
	LBrace
	RBrace
	LBracket
	RBracket
	LParen
	RParen

	keywordBeg
	typeBeg
	KwInt
	KwFloat
	KwBool
	KwChar
	KwString
	KwVoid
	typeEnd
	KwFn
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwPublic
	KwClass
	KwNew
	keywordEnd
)

var kindNames = map[Kind]string{
	EOF:       "EOF",
	Bad:       "Bad",
	Number:    "Number",
	Float:     "Float",
	Char:      "Char",
	String:    "String",
	Bool:      "Bool",
	Ident:     "Identifier",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Eq:        "==",
	NotEq:     "!=",
	Less:      "<",
	Greater:   ">",
	LessEq:    "<=",
	GreaterEq: ">=",
	And:       "&&",
	Or:        "||",
	Not:       "!",
	Assign:    "=",
	Arrow:     "->",
	Question:  "?",
	Colon:     ":",
	Semicolon: ";",
	Comma:     ",",
	Dot:       ".",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	KwInt:     "int",
	KwFloat:   "float",
	KwBool:    "bool",
	KwChar:    "char",
	KwString:  "string",
	KwVoid:    "void",
	KwFn:      "fn",
	KwReturn:  "return",
	KwIf:      "if",
	KwElse:    "else",
	KwWhile:   "while",
	KwFor:     "for",
	KwPublic:  "public",
	KwClass:   "class",
	KwNew:     "new",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k Kind) IsKeyword() bool  { return k > keywordBeg && k < keywordEnd && k != typeBeg && k != typeEnd }
func (k Kind) IsLiteral() bool  { return k > literalBeg && k < literalEnd }
func (k Kind) IsOperator() bool { return k > operatorBeg && k < operatorEnd }

// IsType reports whether k is one of the built-in type keywords.
func (k Kind) IsType() bool { return k > typeBeg && k < typeEnd }

var keywords = map[string]Kind{
	"int":    KwInt,
	"float":  KwFloat,
	"bool":   KwBool,
	"char":   KwChar,
	"string": KwString,
	"void":   KwVoid,
	"fn":     KwFn,
	"return": KwReturn,
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"for":    KwFor,
	"public": KwPublic,
	"class":  KwClass,
	"new":    KwNew,
	"true":   Bool,
	"false":  Bool,
}

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Token is an immutable lexeme. Offset is a byte offset into the source;
// Line and Column are 1-based, Column counted in runes.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
	Line   int
	Column int
}

func (t Token) Len() int { return len(t.Text) }
func (t Token) End() int { return t.Offset + t.Len() }

// Equal compares kind and text only. Two tokens scanned at different
// positions are equal when they spell the same lexeme.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

func (t Token) IsKeyword() bool  { return t.Kind.IsKeyword() }
func (t Token) IsLiteral() bool  { return t.Kind.IsLiteral() }
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

func (t Token) IntValue() (int64, error) {
	if t.Kind != Number {
		return 0, fmt.Errorf("token %s is not an integer literal", t.Kind)
	}
	return strconv.ParseInt(t.Text, 10, 64)
}

func (t Token) FloatValue() (float64, error) {
	if t.Kind != Float {
		return 0, fmt.Errorf("token %s is not a float literal", t.Kind)
	}
	return strconv.ParseFloat(t.Text, 64)
}

// NumericValue returns an int64 for Number tokens and a float64 for Float
// tokens.
func (t Token) NumericValue() (any, error) {
	switch t.Kind {
	case Number:
		return t.IntValue()
	case Float:
		return t.FloatValue()
	}
	return nil, fmt.Errorf("token %s is not a numeric literal", t.Kind)
}

func (t Token) BoolValue() (bool, error) {
	if t.Kind != Bool {
		return false, fmt.Errorf("token %s is not a boolean literal", t.Kind)
	}
	return t.Text == "true", nil
}

// StringValue strips the quotes of a string or char token. Escape
// sequences were already decoded by the lexer.
func (t Token) StringValue() (string, error) {
	if t.Kind != String && t.Kind != Char {
		return "", fmt.Errorf("token %s is not a string or character literal", t.Kind)
	}
	if len(t.Text) < 2 {
		return t.Text, nil
	}
	return t.Text[1 : len(t.Text)-1], nil
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, '%s' at %d:%d)", t.Kind, t.Text, t.Line, t.Column)
}
