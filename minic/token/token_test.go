package token

import "testing"

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind     Kind
		keyword  bool
		literal  bool
		operator bool
		isType   bool
	}{
		{EOF, false, false, false, false},
		{Bad, false, false, false, false},
		{Number, false, true, false, false},
		{Float, false, true, false, false},
		{String, false, true, false, false},
		{Char, false, true, false, false},
		{Bool, false, true, false, false},
		{Ident, false, false, false, false},
		{Plus, false, false, true, false},
		{Percent, false, false, true, false},
		{Assign, false, false, true, false},
		{Not, false, false, true, false},
		{Arrow, false, false, false, false},
		{Semicolon, false, false, false, false},
		{KwInt, true, false, false, true},
		{KwVoid, true, false, false, true},
		{KwFn, true, false, false, false},
		{KwNew, true, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsKeyword(); got != tt.keyword {
				t.Errorf("IsKeyword() = %v, want %v", got, tt.keyword)
			}
			if got := tt.kind.IsLiteral(); got != tt.literal {
				t.Errorf("IsLiteral() = %v, want %v", got, tt.literal)
			}
			if got := tt.kind.IsOperator(); got != tt.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tt.operator)
			}
			if got := tt.kind.IsType(); got != tt.isType {
				t.Errorf("IsType() = %v, want %v", got, tt.isType)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"fn", KwFn},
		{"class", KwClass},
		{"string", KwString},
		{"true", Bool},
		{"false", Bool},
		{"main", Ident},
		{"Int", Ident},
		{"fnord", Ident},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenEqualIgnoresPosition(t *testing.T) {
	a := Token{Kind: Ident, Text: "x", Offset: 0, Line: 1, Column: 1}
	b := Token{Kind: Ident, Text: "x", Offset: 40, Line: 3, Column: 7}
	if !a.Equal(b) {
		t.Errorf("%s.Equal(%s) = false, want true", a, b)
	}

	c := Token{Kind: Ident, Text: "y", Line: 1, Column: 1}
	if a.Equal(c) {
		t.Errorf("%s.Equal(%s) = true, want false", a, c)
	}
	d := Token{Kind: String, Text: "x", Line: 1, Column: 1}
	if a.Equal(d) {
		t.Errorf("%s.Equal(%s) = true, want false", a, d)
	}
}

func TestTokenValues(t *testing.T) {
	n := Token{Kind: Number, Text: "123"}
	if v, err := n.IntValue(); err != nil || v != 123 {
		t.Errorf("IntValue() = %d, %v, want 123", v, err)
	}
	if v, err := n.NumericValue(); err != nil || v != int64(123) {
		t.Errorf("NumericValue() = %v, %v, want int64 123", v, err)
	}

	f := Token{Kind: Float, Text: "2.5"}
	if v, err := f.FloatValue(); err != nil || v != 2.5 {
		t.Errorf("FloatValue() = %g, %v, want 2.5", v, err)
	}
	if v, err := f.NumericValue(); err != nil || v != 2.5 {
		t.Errorf("NumericValue() = %v, %v, want 2.5", v, err)
	}

	b := Token{Kind: Bool, Text: "false"}
	if v, err := b.BoolValue(); err != nil || v {
		t.Errorf("BoolValue() = %v, %v, want false", v, err)
	}

	s := Token{Kind: String, Text: `"hi"`}
	if v, err := s.StringValue(); err != nil || v != "hi" {
		t.Errorf("StringValue() = %q, %v, want hi", v, err)
	}
	c := Token{Kind: Char, Text: "'z'"}
	if v, err := c.StringValue(); err != nil || v != "z" {
		t.Errorf("StringValue() = %q, %v, want z", v, err)
	}
}

func TestTokenValueKindMismatch(t *testing.T) {
	id := Token{Kind: Ident, Text: "x"}
	if _, err := id.IntValue(); err == nil {
		t.Error("IntValue() on identifier: want error")
	}
	if _, err := id.FloatValue(); err == nil {
		t.Error("FloatValue() on identifier: want error")
	}
	if _, err := id.NumericValue(); err == nil {
		t.Error("NumericValue() on identifier: want error")
	}
	if _, err := id.BoolValue(); err == nil {
		t.Error("BoolValue() on identifier: want error")
	}
	if _, err := id.StringValue(); err == nil {
		t.Error("StringValue() on identifier: want error")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Ident, Text: "main", Line: 2, Column: 4}
	if got, want := tok.String(), "Token(Identifier, 'main' at 2:4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Kind(-1).String(), "Unknown"; got != want {
		t.Errorf("Kind(-1).String() = %q, want %q", got, want)
	}
}
