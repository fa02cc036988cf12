package gsheets

import (
	"strconv"
	"strings"
)

// ColumnLetters converts a 1-based column number to its A1 letters (1 -> A, 27 -> AA).
func ColumnLetters(column int) string {
	if column < 1 {
		return ""
	}
	letters := []byte{}
	for column > 0 {
		column--
		letters = append([]byte{byte('A' + column%26)}, letters...)
		column /= 26
	}
	return string(letters)
}

func quoteSheetName(sheetName string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}

// CellRange returns the A1 notation of a single cell, e.g. 'Form Responses 1'!V12.
func CellRange(sheetName string, row int, column int) string {
	cell := ColumnLetters(column) + strconv.Itoa(row)
	if sheetName == "" {
		return cell
	}
	return quoteSheetName(sheetName) + "!" + cell
}

// SheetRange prefixes an A1 range like F4:F with the quoted sheet name.
func SheetRange(sheetName string, a1Range string) string {
	if sheetName == "" {
		return a1Range
	}
	return quoteSheetName(sheetName) + "!" + a1Range
}
