package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/claus-risk-server/internal/domain"
)

// ClausCalculator computes a conditional lifetime breast-cancer risk
// from the onset ages of affected relatives and the patient's current
// cancer-free age. It is purely functional over its inputs and the
// immutable lookup tables, so a single instance is safe for concurrent
// use.
type ClausCalculator struct {
	logger *logrus.Logger
	tables domain.ClausTables
}

// NewClausCalculator creates a calculator over a validated table set.
func NewClausCalculator(logger *logrus.Logger, tables domain.ClausTables) *ClausCalculator {
	return &ClausCalculator{
		logger: logger,
		tables: tables,
	}
}

// CalculateRisk returns the Claus risk estimate for the patient, or
// ok=false when the model is not applicable: patient age outside
// [20,79], or no qualifying relatives. Each family configuration the
// model covers contributes a candidate risk; the result is the maximum
// candidate, since risk only increases with additional risk factors.
func (c *ClausCalculator) CalculateRisk(patientAge int, history domain.FamilyHistory) (float64, bool) {
	if patientAge < domain.ValidMinAge || patientAge > domain.ValidMaxAge {
		c.logger.WithField("patient_age", patientAge).Debug("Patient age outside supported range")
		return 0, false
	}

	firstDegree := history.FirstDegreeAges()
	secondDegree := history.SecondDegreeAges()
	maternalSecond := history.MaternalSecondDegreeAges()
	paternalSecond := history.PaternalSecondDegreeAges()

	risk := 0.0

	// One affected first- or second-degree relative: the youngest onset
	// age drives the lookup.
	for _, cand := range []struct {
		ages  []int
		table domain.SingleRelativeTable
	}{
		{firstDegree, c.tables.OneFirstDegree},
		{secondDegree, c.tables.OneSecondDegree},
	} {
		if len(cand.ages) == 0 {
			continue
		}
		bin, _ := ageBin(cand.ages[0])
		table := cand.table
		if r, ok := c.conditionalRisk(patientAge, func(row int) float64 {
			return table.Cell(row, bin)
		}); ok {
			risk = math.Max(risk, r)
		}
	}

	// Affected mother plus an affected aunt on either side. The raw
	// aunt lists are used here, not the derived second-degree
	// categories, sorted so the youngest aunt drives the lookup.
	if mother := domain.SortValidAges(history.MotherOnsetAge); len(mother) > 0 {
		motherBin, _ := ageBin(mother[0])
		for _, cand := range []struct {
			aunts domain.AgeList
			table domain.PairRelativeTable
		}{
			{history.MaternalAuntOnsetAges, c.tables.MotherMaternalAunt},
			{history.PaternalAuntOnsetAges, c.tables.MotherPaternalAunt},
		} {
			aunts := domain.SortValidAges(cand.aunts)
			if len(aunts) == 0 {
				continue
			}
			auntBin, _ := ageBin(aunts[0])
			table := cand.table
			if r, ok := c.conditionalRisk(patientAge, func(row int) float64 {
				return table.Cell(row, motherBin, auntBin)
			}); ok {
				risk = math.Max(risk, r)
			}
		}
	}

	// Two relatives of the same degree on the same side: the two
	// youngest onset ages drive the lookup.
	for _, cand := range []struct {
		ages  []int
		table domain.PairRelativeTable
	}{
		{firstDegree, c.tables.TwoFirstDegree},
		{maternalSecond, c.tables.TwoSecondDegreeSameSide},
		{paternalSecond, c.tables.TwoSecondDegreeSameSide},
	} {
		if len(cand.ages) < 2 {
			continue
		}
		bin1, _ := ageBin(cand.ages[0])
		bin2, _ := ageBin(cand.ages[1])
		table := cand.table
		if r, ok := c.conditionalRisk(patientAge, func(row int) float64 {
			return table.Cell(row, bin1, bin2)
		}); ok {
			risk = math.Max(risk, r)
		}
	}

	// Two second-degree relatives on opposite sides.
	if len(maternalSecond) > 0 && len(paternalSecond) > 0 {
		maternalBin, _ := ageBin(maternalSecond[0])
		paternalBin, _ := ageBin(paternalSecond[0])
		if r, ok := c.conditionalRisk(patientAge, func(row int) float64 {
			return c.tables.TwoSecondDegreeDifferentSide.Cell(row, maternalBin, paternalBin)
		}); ok {
			risk = math.Max(risk, r)
		}
	}

	if risk <= 0 {
		return 0, false
	}
	return risk, true
}

// conditionalRisk computes the probability of onset between the
// patient's current age and 79, given cancer-free survival so far. The
// cell function binds the relative age bins, leaving the patient row as
// the free index.
//
// The patient's current-age risk is read from the row below their age
// and linearly interpolated toward the row above by the years past the
// row boundary. Both marginal cumulative risks then combine into the
// standard conditional probability.
func (c *ClausCalculator) conditionalRisk(patientAge int, cell func(row int) float64) (float64, bool) {
	lifetimeRisk := cell(domain.LifetimeRow)

	lowerRow, yearsOver := floorDivMod(patientAge-29, 10)
	currentAgeRisk := cell(lowerRow)
	if yearsOver != 0 {
		upperRisk := cell(lowerRow + 1)
		currentAgeRisk += (upperRisk - currentAgeRisk) * float64(yearsOver) / 10
	}

	// A degenerate table row with certain onset by the current age
	// would divide by zero below; such a candidate carries no usable
	// conditional risk, so it is discarded.
	if currentAgeRisk >= 1 {
		c.logger.WithField("patient_age", patientAge).
			Warn("Current-age risk saturated, discarding candidate")
		return 0, false
	}

	return round3((lifetimeRisk - currentAgeRisk) / (1 - currentAgeRisk)), true
}

// ageBin maps an onset age to its 10-year table bin. Only defined on
// [ValidMinAge, ValidMaxAge]; anything else reports ok=false.
func ageBin(age int) (int, bool) {
	if age < domain.ValidMinAge || age > domain.ValidMaxAge {
		return 0, false
	}
	return (age - domain.ValidMinAge) / 10, true
}

// floorDivMod is floored integer division with a non-negative
// remainder, matching the table row addressing for ages below 29.
func floorDivMod(n, d int) (int, int) {
	q, r := n/d, n%d
	if r < 0 {
		q--
		r += d
	}
	return q, r
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
