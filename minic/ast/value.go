package ast

import (
	"strconv"
)

// Value is the decoded value of a literal: one of IntValue, FloatValue,
// BoolValue, CharValue or StringValue.
type Value interface {
	String() string
	value()
}

type (
	IntValue    int64
	FloatValue  float64
	BoolValue   bool
	CharValue   rune
	StringValue string
)

func (IntValue) value()    {}
func (FloatValue) value()  {}
func (BoolValue) value()   {}
func (CharValue) value()   {}
func (StringValue) value() {}

func (v IntValue) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }
func (v CharValue) String() string   { return strconv.QuoteRune(rune(v)) }
func (v StringValue) String() string { return strconv.Quote(string(v)) }
