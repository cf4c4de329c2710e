package ofxparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolivro/agrolivro/internal/models"
	"github.com/agrolivro/agrolivro/internal/parsererror"
)

const sampleStatement = `OFXHEADER:100
DATA:OFXSGML

<OFX>
<BANKACCTFROM>
<BANKID>341
<ACCTID>12345-6
</BANKACCTFROM>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240312
<TRNAMT>1500.00
<FITID>A100
<MEMO>TED RECEBIDA VENDA SOJA
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240310
<TRNAMT>-50.00
<FITID>A200
<MEMO>PIX ENVIADO INSUMOS
</STMTTRN>
<STMTTRN>
<TRNTYPE>OTHER
<DTPOSTED>20240311
<TRNAMT>0.00
<MEMO>MOVIMENTO DO DIA
</STMTTRN>
</BANKTRANLIST>
</OFX>`

const consolidatedStatement = `<OFX>
<BANKID>001
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240310
<TRNAMT>120.00
<FITID>F1
<MEMO>BB CONS PARCELA 1
<REFNUM>R9
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240310
<TRNAMT>-20.00
<FITID>F1
<MEMO>BB CONS PARCELA 2
<REFNUM>R9
</STMTTRN>
</OFX>`

func TestParseSampleStatement(t *testing.T) {
	parser := New(testLogger())
	result := parser.Parse(sampleStatement)

	// The summary line has no FITID and is dropped; survivors come back
	// sorted ascending by date.
	require.Len(t, result.Movements, 2)
	assert.Equal(t, "341", result.BankCode)
	assert.Equal(t, "A200", result.Movements[0].FitID)
	assert.Equal(t, "A100", result.Movements[1].FitID)
	assert.Equal(t, "2024-03-10", result.Movements[0].DateISO)

	assert.True(t, result.Totals.Credits.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, result.Totals.Debits.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, result.Totals.Net.Equal(decimal.RequireFromString("1450.00")))
	assert.Equal(t, "2024-03-10", result.Totals.PeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-12", result.Totals.PeriodEnd.Format("2006-01-02"))
}

func TestParseIdentityStability(t *testing.T) {
	parser := New(testLogger())
	first := parser.Parse(sampleStatement)
	second := parser.Parse(sampleStatement)

	require.Equal(t, len(first.Movements), len(second.Movements))
	for i := range first.Movements {
		assert.Equal(t, first.Movements[i].ImportIdentity, second.Movements[i].ImportIdentity)
	}
}

func TestParseBankConsolidationScenario(t *testing.T) {
	parser := New(testLogger())
	result := parser.Parse(consolidatedStatement)

	require.Len(t, result.Movements, 1)
	movement := result.Movements[0]
	assert.True(t, movement.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, models.DirectionCredit, movement.Direction)
	assert.Contains(t, movement.Description, "Agrupado")
	assert.Contains(t, movement.Description, "R9")
}

func TestParseEmptyInput(t *testing.T) {
	parser := New(testLogger())
	result := parser.Parse("")
	assert.Empty(t, result.Movements)
	assert.True(t, result.Totals.Net.IsZero())
}

func TestParseFileNotFound(t *testing.T) {
	parser := New(testLogger())
	_, err := parser.ParseFile(filepath.Join(t.TempDir(), "missing.ofx"))
	require.Error(t, err)
	var notFound *parsererror.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestParseFileAndValidateFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extrato.ofx")
	require.NoError(t, os.WriteFile(path, []byte(sampleStatement), 0o644))

	parser := New(testLogger())

	ok, err := parser.ValidateFormat(path)
	require.NoError(t, err)
	assert.True(t, ok)

	result, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, result.Movements, 2)

	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("just some notes"), 0o644))
	ok, err = parser.ValidateFormat(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComputeTotalsRecomputedAfterFiltering(t *testing.T) {
	parser := New(testLogger())
	result := parser.Parse(sampleStatement)

	filtered := result.Movements[:1]
	totals := ComputeTotals(filtered)
	assert.True(t, totals.Debits.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, totals.Credits.IsZero())
}
