package domain

import "fmt"

// Table layout shared by all Claus lookup tables.
//
// Rows are patient age bins anchored at age 29 in 10-year steps
// (29, 39, 49, 59, 69), with the final row holding the cumulative
// lifetime risk by age 79. A negative row index counts back from the
// end, so row -1 addresses the lifetime row; this also makes the row
// below age 29 well defined for patients in their twenties.
//
// Columns are relative onset-age bins in 10-year steps starting at
// age 20 ([20,29] ... [70,79]), giving indices 0 through 5.
const (
	PatientAgeRows  = 6
	RelativeAgeBins = 6

	// LifetimeRow addresses the cumulative risk by age 79.
	LifetimeRow = -1
)

// SingleRelativeTable is a Claus table indexed by one relative's
// onset-age bin.
type SingleRelativeTable [][]float64

// Cell returns the cumulative risk for the given patient row and
// relative bin. Indices outside the validated shape are a fatal
// table-data defect and panic.
func (t SingleRelativeTable) Cell(patientRow, relativeBin int) float64 {
	return t[wrapRow(patientRow, len(t))][relativeBin]
}

// Validate checks the table shape so that malformed data fails at load
// time rather than mid-calculation.
func (t SingleRelativeTable) Validate(name string) error {
	if len(t) != PatientAgeRows {
		return fmt.Errorf("%w: table %s has %d patient rows, want %d",
			ErrMalformedTable, name, len(t), PatientAgeRows)
	}
	for i, row := range t {
		if len(row) != RelativeAgeBins {
			return fmt.Errorf("%w: table %s row %d has %d relative bins, want %d",
				ErrMalformedTable, name, i, len(row), RelativeAgeBins)
		}
		for j, cell := range row {
			if cell < 0 || cell > 1 {
				return fmt.Errorf("%w: table %s cell [%d][%d] = %v outside [0,1]",
					ErrMalformedTable, name, i, j, cell)
			}
		}
	}
	return nil
}

// PairRelativeTable is a Claus table indexed by two relatives'
// onset-age bins.
type PairRelativeTable [][][]float64

// Cell returns the cumulative risk for the given patient row and pair
// of relative bins.
func (t PairRelativeTable) Cell(patientRow, rel1Bin, rel2Bin int) float64 {
	return t[wrapRow(patientRow, len(t))][rel1Bin][rel2Bin]
}

// Validate checks the table shape.
func (t PairRelativeTable) Validate(name string) error {
	if len(t) != PatientAgeRows {
		return fmt.Errorf("%w: table %s has %d patient rows, want %d",
			ErrMalformedTable, name, len(t), PatientAgeRows)
	}
	for i, plane := range t {
		if len(plane) != RelativeAgeBins {
			return fmt.Errorf("%w: table %s row %d has %d relative bins, want %d",
				ErrMalformedTable, name, i, len(plane), RelativeAgeBins)
		}
		for j, row := range plane {
			if len(row) != RelativeAgeBins {
				return fmt.Errorf("%w: table %s cell [%d][%d] has %d relative bins, want %d",
					ErrMalformedTable, name, i, j, len(row), RelativeAgeBins)
			}
			for k, cell := range row {
				if cell < 0 || cell > 1 {
					return fmt.Errorf("%w: table %s cell [%d][%d][%d] = %v outside [0,1]",
						ErrMalformedTable, name, i, j, k, cell)
				}
			}
		}
	}
	return nil
}

func wrapRow(i, n int) int {
	if i < 0 {
		return i + n
	}
	return i
}

// ClausTables is the full set of lookup tables the Claus model selects
// among, keyed by which relatives are affected and their degree of
// relation.
type ClausTables struct {
	OneFirstDegree               SingleRelativeTable
	OneSecondDegree              SingleRelativeTable
	TwoFirstDegree               PairRelativeTable
	TwoSecondDegreeSameSide      PairRelativeTable
	TwoSecondDegreeDifferentSide PairRelativeTable
	MotherMaternalAunt           PairRelativeTable
	MotherPaternalAunt           PairRelativeTable
}

// Validate checks the shape of every table in the set.
func (ct *ClausTables) Validate() error {
	if err := ct.OneFirstDegree.Validate("one_first_degree"); err != nil {
		return err
	}
	if err := ct.OneSecondDegree.Validate("one_second_degree"); err != nil {
		return err
	}
	if err := ct.TwoFirstDegree.Validate("two_first_degree"); err != nil {
		return err
	}
	if err := ct.TwoSecondDegreeSameSide.Validate("two_second_degree_same_side"); err != nil {
		return err
	}
	if err := ct.TwoSecondDegreeDifferentSide.Validate("two_second_degree_different_side"); err != nil {
		return err
	}
	if err := ct.MotherMaternalAunt.Validate("mother_maternal_aunt"); err != nil {
		return err
	}
	if err := ct.MotherPaternalAunt.Validate("mother_paternal_aunt"); err != nil {
		return err
	}
	return nil
}
