package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexInvalidUTF8              Code = 1005
	LexCarriageReturnInString   Code = 1006

	// Парсерные
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2006
	SynUnclosedBrace     Code = 2007
	SynUnclosedBracket   Code = 2008
	SynExpectIdentifier  Code = 2102
	SynExpectExpression  Code = 2103
	SynExpectBlock       Code = 2104
	SynNestingTooDeep    Code = 2105
	SynEmptyProgram      Code = 2200
	SynGenericParseError Code = 2999

	// Кодогенерация: только предупреждения strict-режима
	GenDroppedStatement Code = 3001
	GenDroppedExpr      Code = 3002
	GenArityMismatch    Code = 3003

	// IO
	IOReadFailed Code = 4001
	IONotZinc    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexInvalidUTF8:              "Invalid UTF-8 in string literal",
	LexCarriageReturnInString:   "Bare carriage return in string literal",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectBlock:              "Expected block",
	SynNestingTooDeep:           "Nesting too deep",
	SynEmptyProgram:             "No statements found",
	SynGenericParseError:        "Parse failed",
	GenDroppedStatement:         "Statement lowered to nothing",
	GenDroppedExpr:              "Expression lowered to nothing",
	GenArityMismatch:            "Builtin called with wrong number of arguments",
	IOReadFailed:                "Cannot read source file",
	IONotZinc:                   "Not a .zn source file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
