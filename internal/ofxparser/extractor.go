package ofxparser

import (
	"strings"

	"github.com/agrolivro/agrolivro/internal/models"
)

const (
	stmtTrnOpen  = "<STMTTRN>"
	stmtTrnClose = "</STMTTRN>"
)

// tagValue returns the text content of the first <name>...</name> pair in
// s, or "" when the tag is absent. It expects normalized input where every
// data tag carries an explicit close.
func tagValue(s, name string) string {
	open := "<" + name + ">"
	start := strings.Index(s, open)
	if start < 0 {
		return ""
	}
	start += len(open)
	end := strings.Index(s[start:], "<")
	if end < 0 {
		return strings.TrimSpace(s[start:])
	}
	return strings.TrimSpace(s[start : start+end])
}

// ExtractBankCode returns the document-level BANKID with leading zeros
// stripped, so "001" and "1" compare equal when gating bank-specific
// behavior. An all-zero code normalizes to "0".
func ExtractBankCode(normalized string) string {
	code := tagValue(normalized, "BANKID")
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" && code != "" {
		return "0"
	}
	return trimmed
}

// ExtractBlocks pulls one RawTransactionBlock per <STMTTRN> pair from the
// normalized statement text. Fields are raw strings; absence is the empty
// string. Truncated trailing blocks are ignored.
func ExtractBlocks(normalized string) []models.RawTransactionBlock {
	var blocks []models.RawTransactionBlock

	rest := normalized
	for {
		start := strings.Index(rest, stmtTrnOpen)
		if start < 0 {
			break
		}
		rest = rest[start+len(stmtTrnOpen):]
		end := strings.Index(rest, stmtTrnClose)
		if end < 0 {
			break
		}
		block := rest[:end]
		rest = rest[end+len(stmtTrnClose):]

		blocks = append(blocks, models.RawTransactionBlock{
			PostedDate: tagValue(block, "DTPOSTED"),
			Memo:       tagValue(block, "MEMO"),
			Name:       tagValue(block, "NAME"),
			Amount:     tagValue(block, "TRNAMT"),
			FitID:      tagValue(block, "FITID"),
			RefNum:     tagValue(block, "REFNUM"),
			CheckNum:   tagValue(block, "CHECKNUM"),
			TrnType:    tagValue(block, "TRNTYPE"),
		})
	}
	return blocks
}
