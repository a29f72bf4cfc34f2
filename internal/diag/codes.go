package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка — на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Парсерные
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedBrace   Code = 2002
	SynExpectSemicolon Code = 2003
	SynBadBaseClause   Code = 2004
	SynBadMember       Code = 2005

	// Разрешение имён
	ResInfo           Code = 3000
	ResUnresolvedBase Code = 3001

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeNames = map[Code]string{
	UnknownCode:                 "E0000",
	LexInfo:                     "L1000",
	LexUnknownChar:              "L1001",
	LexUnterminatedString:       "L1002",
	LexUnterminatedBlockComment: "L1003",
	SynInfo:                     "S2000",
	SynUnexpectedToken:          "S2001",
	SynUnclosedBrace:            "S2002",
	SynExpectSemicolon:          "S2003",
	SynBadBaseClause:            "S2004",
	SynBadMember:                "S2005",
	ResInfo:                     "R3000",
	ResUnresolvedBase:           "R3001",
	IOInfo:                      "IO4000",
	IOLoadFileError:             "IO4001",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("E%04d", uint16(c))
}
