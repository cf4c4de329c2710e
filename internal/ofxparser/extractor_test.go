package ofxparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks(t *testing.T) {
	normalized := NormalizeTags(`
<OFX><BANKID>001
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240310
<TRNAMT>-50.00
<FITID>F1
<MEMO>PIX ENVIADO
<REFNUM>R1
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240312
<TRNAMT>120.00
<FITID>F2
<NAME>FAZENDA BOA VISTA
<CHECKNUM>77
</STMTTRN>
</OFX>`)

	blocks := ExtractBlocks(normalized)
	require.Len(t, blocks, 2)

	assert.Equal(t, "20240310", blocks[0].PostedDate)
	assert.Equal(t, "-50.00", blocks[0].Amount)
	assert.Equal(t, "F1", blocks[0].FitID)
	assert.Equal(t, "PIX ENVIADO", blocks[0].Memo)
	assert.Equal(t, "R1", blocks[0].RefNum)
	assert.Equal(t, "", blocks[0].Name)
	assert.Equal(t, "", blocks[0].CheckNum)
	assert.Equal(t, "DEBIT", blocks[0].TrnType)

	assert.Equal(t, "F2", blocks[1].FitID)
	assert.Equal(t, "FAZENDA BOA VISTA", blocks[1].Name)
	assert.Equal(t, "", blocks[1].Memo)
	assert.Equal(t, "77", blocks[1].CheckNum)
}

func TestExtractBlocksTruncatedTrailingBlock(t *testing.T) {
	normalized := "<STMTTRN><FITID>F1</FITID></STMTTRN><STMTTRN><FITID>F2</FITID>"
	blocks := ExtractBlocks(normalized)
	require.Len(t, blocks, 1)
	assert.Equal(t, "F1", blocks[0].FitID)
}

func TestExtractBlocksNoTransactions(t *testing.T) {
	assert.Empty(t, ExtractBlocks("<OFX><BANKID>237</BANKID></OFX>"))
}

func TestExtractBankCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"leading zeros stripped", "<BANKID>001</BANKID>", "1"},
		{"plain code", "<BANKID>237</BANKID>", "237"},
		{"all zeros", "<BANKID>000</BANKID>", "0"},
		{"absent", "<OFX></OFX>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractBankCode(tt.input))
		})
	}
}
