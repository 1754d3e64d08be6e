package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegen-dev/parsegen/internal/model"
)

func amt(t *testing.T, s string) model.Amount {
	t.Helper()
	a, err := model.ParseAmount(s)
	require.NoError(t, err)
	return a
}

func sampleTable(t *testing.T) model.Table {
	return model.Table{
		{Date: "01-01-2024", Description: "Salary Credit", Credit: amt(t, "5000.00"), Balance: amt(t, "10000.00")},
		{Date: "02-01-2024", Description: "ATM Withdrawal", Debit: amt(t, "2000.00"), Balance: amt(t, "8000.00")},
	}
}

func TestTables_Reflexive(t *testing.T) {
	table := sampleTable(t)
	result := Tables(table, table)
	assert.Equal(t, Pass, result.Status)
	assert.True(t, result.Passed())
}

func TestTables_ZeroEqualsAbsent(t *testing.T) {
	produced := sampleTable(t)
	expected := sampleTable(t)
	// A stored numeric zero compares equal to a blank cell.
	produced[0].Debit = model.NewAmount(decimal.Zero)

	result := Tables(produced, expected)
	assert.Equal(t, Pass, result.Status)
}

func TestTables_LenientAcceptsCoreMatch(t *testing.T) {
	produced := sampleTable(t)
	expected := sampleTable(t)
	produced[0].Description = "SALARY CR"
	produced[1].Debit = amt(t, "1999.99")

	result := Tables(produced, expected)
	assert.Equal(t, PassLenient, result.Status)
	assert.True(t, result.Passed())
}

func TestTables_LenientRejectsBalanceMismatch(t *testing.T) {
	produced := sampleTable(t)
	expected := sampleTable(t)
	produced[1].Balance = amt(t, "8000.01")

	result := Tables(produced, expected)
	assert.Equal(t, Fail, result.Status)
}

func TestTables_LenientRejectsDateMismatch(t *testing.T) {
	produced := sampleTable(t)
	expected := sampleTable(t)
	produced[0].Date = "03-01-2024"

	result := Tables(produced, expected)
	assert.Equal(t, Fail, result.Status)
}

func TestTables_RowCountMismatch(t *testing.T) {
	produced := sampleTable(t)
	expected := sampleTable(t)[:1]

	result := Tables(produced, expected)
	assert.Equal(t, Fail, result.Status)
	assert.False(t, result.Passed())
}

func TestTables_OrderMatters(t *testing.T) {
	produced := sampleTable(t)
	expected := model.Table{produced[1], produced[0]}

	result := Tables(produced, expected)
	assert.Equal(t, Fail, result.Status)
}

func TestTables_FailDiagnostics(t *testing.T) {
	produced := sampleTable(t)[:1]
	expected := sampleTable(t)

	result := Tables(produced, expected)
	require.Equal(t, Fail, result.Status)
	require.NotEmpty(t, result.Diagnostics)
	assert.Contains(t, result.Diagnostics[0], "expected shape: (2, 5)")
	assert.Contains(t, result.Diagnostics[0], "got shape: (1, 5)")
	assert.Contains(t, result.Diagnostics[1], "Debit Amt")
}
