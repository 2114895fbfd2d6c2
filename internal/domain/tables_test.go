package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSingleTable() SingleRelativeTable {
	t := make(SingleRelativeTable, PatientAgeRows)
	for i := range t {
		row := make([]float64, RelativeAgeBins)
		for j := range row {
			row[j] = float64(i+1) / 100
		}
		t[i] = row
	}
	return t
}

func TestSingleRelativeTable_CellNegativeRowAddressesLifetime(t *testing.T) {
	table := validSingleTable()

	// Row -1 is both the lifetime sentinel and the row below age 29.
	assert.Equal(t, table[PatientAgeRows-1][0], table.Cell(LifetimeRow, 0))
	assert.Equal(t, table[0][3], table.Cell(0, 3))
}

func TestSingleRelativeTable_Validate(t *testing.T) {
	require.NoError(t, validSingleTable().Validate("ok"))

	short := validSingleTable()[:4]
	assert.ErrorIs(t, SingleRelativeTable(short).Validate("short"), ErrMalformedTable)

	ragged := validSingleTable()
	ragged[2] = ragged[2][:3]
	assert.ErrorIs(t, ragged.Validate("ragged"), ErrMalformedTable)

	outOfRange := validSingleTable()
	outOfRange[1][1] = 1.5
	assert.ErrorIs(t, outOfRange.Validate("out_of_range"), ErrMalformedTable)
}

func TestPairRelativeTable_Validate(t *testing.T) {
	valid := make(PairRelativeTable, PatientAgeRows)
	for i := range valid {
		plane := make([][]float64, RelativeAgeBins)
		for j := range plane {
			plane[j] = make([]float64, RelativeAgeBins)
		}
		valid[i] = plane
	}
	require.NoError(t, valid.Validate("ok"))

	assert.Equal(t, valid[PatientAgeRows-1][2][3], valid.Cell(LifetimeRow, 2, 3))

	ragged := make(PairRelativeTable, PatientAgeRows)
	copy(ragged, valid)
	ragged[0] = valid[0][:2]
	assert.ErrorIs(t, ragged.Validate("ragged"), ErrMalformedTable)
}
