package scriptbuilder

import "fmt"

// Padding selects which sides of a token receive a pad character. Padding
// is always exactly one character per padded side.
type Padding uint8

// Padding modes.
const (
	PadNone   Padding = 0
	PadBefore Padding = 1 << 0
	PadAfter  Padding = 1 << 1
	PadAround Padding = PadBefore | PadAfter
)

func (p Padding) before() bool { return p&PadBefore != 0 }
func (p Padding) after() bool  { return p&PadAfter != 0 }

// Punct identifies one punctuation token.
type Punct int

// Enum values for Punct.
const (
	PunctLParen Punct = iota
	PunctRParen
	PunctLBrace
	PunctRBrace
	PunctLBracket
	PunctRBracket
	PunctComma
	PunctSemicolon
	PunctColon
	PunctDot
	PunctSpace
	PunctQuote
)

// literal maps p to its source text. The switch is exhaustive over the
// declared values; anything else is an error.
func (p Punct) literal() (string, error) {
	switch p {
	case PunctLParen:
		return "(", nil
	case PunctRParen:
		return ")", nil
	case PunctLBrace:
		return "{", nil
	case PunctRBrace:
		return "}", nil
	case PunctLBracket:
		return "[", nil
	case PunctRBracket:
		return "]", nil
	case PunctComma:
		return ",", nil
	case PunctSemicolon:
		return ";", nil
	case PunctColon:
		return ":", nil
	case PunctDot:
		return ".", nil
	case PunctSpace:
		return " ", nil
	case PunctQuote:
		return "\"", nil
	default:
		return "", fmt.Errorf("punctuation %d: %w", int(p), ErrUnknownToken)
	}
}

// Operator identifies one operator token.
type Operator int

// Enum values for Operator.
const (
	OpAssign Operator = iota
	OpEqual
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
	OpPlus
	OpMinus
	OpMultiply
	OpDivide
	OpModulo
	OpNot
	OpAnd
	OpOr
	OpLambda
	OpNullCoalesce
)

// literal maps op to its source text, with the same contract as
// [Punct.literal].
func (op Operator) literal() (string, error) {
	switch op {
	case OpAssign:
		return "=", nil
	case OpEqual:
		return "==", nil
	case OpNotEqual:
		return "!=", nil
	case OpLess:
		return "<", nil
	case OpLessOrEqual:
		return "<=", nil
	case OpGreater:
		return ">", nil
	case OpGreaterOrEqual:
		return ">=", nil
	case OpPlus:
		return "+", nil
	case OpMinus:
		return "-", nil
	case OpMultiply:
		return "*", nil
	case OpDivide:
		return "/", nil
	case OpModulo:
		return "%", nil
	case OpNot:
		return "!", nil
	case OpAnd:
		return "&&", nil
	case OpOr:
		return "||", nil
	case OpLambda:
		return "=>", nil
	case OpNullCoalesce:
		return "??", nil
	default:
		return "", fmt.Errorf("operator %d: %w", int(op), ErrUnknownToken)
	}
}
