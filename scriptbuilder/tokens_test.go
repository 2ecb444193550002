package scriptbuilder

import (
	"errors"
	"testing"
)

func TestPunctLiteral(t *testing.T) {
	tests := []struct {
		p    Punct
		want string
	}{
		{PunctLParen, "("},
		{PunctRParen, ")"},
		{PunctLBrace, "{"},
		{PunctRBrace, "}"},
		{PunctLBracket, "["},
		{PunctRBracket, "]"},
		{PunctComma, ","},
		{PunctSemicolon, ";"},
		{PunctColon, ":"},
		{PunctDot, "."},
		{PunctSpace, " "},
		{PunctQuote, `"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := tt.p.literal()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPunctLiteralUnknown(t *testing.T) {
	for _, p := range []Punct{-1, 12, 99} {
		if _, err := p.literal(); !errors.Is(err, ErrUnknownToken) {
			t.Errorf("Punct(%d).literal() err = %v, want ErrUnknownToken", int(p), err)
		}
	}
}

func TestOperatorLiteral(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{OpAssign, "="},
		{OpEqual, "=="},
		{OpNotEqual, "!="},
		{OpLess, "<"},
		{OpLessOrEqual, "<="},
		{OpGreater, ">"},
		{OpGreaterOrEqual, ">="},
		{OpPlus, "+"},
		{OpMinus, "-"},
		{OpMultiply, "*"},
		{OpDivide, "/"},
		{OpModulo, "%"},
		{OpNot, "!"},
		{OpAnd, "&&"},
		{OpOr, "||"},
		{OpLambda, "=>"},
		{OpNullCoalesce, "??"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := tt.op.literal()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperatorLiteralUnknown(t *testing.T) {
	for _, op := range []Operator{-1, 17, 200} {
		if _, err := op.literal(); !errors.Is(err, ErrUnknownToken) {
			t.Errorf("Operator(%d).literal() err = %v, want ErrUnknownToken", int(op), err)
		}
	}
}

func TestPaddingSides(t *testing.T) {
	tests := []struct {
		name   string
		pad    Padding
		before bool
		after  bool
	}{
		{"none", PadNone, false, false},
		{"before", PadBefore, true, false},
		{"after", PadAfter, false, true},
		{"around", PadAround, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pad.before(); got != tt.before {
				t.Errorf("before() = %v, want %v", got, tt.before)
			}
			if got := tt.pad.after(); got != tt.after {
				t.Errorf("after() = %v, want %v", got, tt.after)
			}
		})
	}
}
