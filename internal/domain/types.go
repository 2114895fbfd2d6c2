// Package domain contains the core business entities for familial
// breast-cancer risk estimation using the Claus model.
//
// Reference: Claus EB, Risch N, Thompson WD (1994) Autosomal dominant
// inheritance of early-onset breast cancer. Implications for risk
// prediction. Cancer 73(3):643-51.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Valid onset-age range for the Claus model. Ages outside this range are
// considered unreliable and are excluded before any table lookup.
const (
	ValidMinAge = 20
	ValidMaxAge = 79
)

// AgeList holds zero or more onset ages for one relative category.
// It decodes from JSON null, a bare number, or an array of numbers, so
// callers may supply a single age where only one relative is affected.
// Zero and negative entries mean "unaffected or unknown" and are dropped
// during decoding; they are never treated as a real onset age.
type AgeList []int

// UnmarshalJSON implements the scalar-or-list input convention.
func (a *AgeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}

	if data[0] == '[' {
		var ages []int
		if err := json.Unmarshal(data, &ages); err != nil {
			return fmt.Errorf("onset ages must be integers: %w", err)
		}
		*a = normalizeAges(ages)
		return nil
	}

	var age int
	if err := json.Unmarshal(data, &age); err != nil {
		return fmt.Errorf("onset age must be an integer: %w", err)
	}
	*a = normalizeAges([]int{age})
	return nil
}

// normalizeAges drops non-positive entries, keeping the supplied order.
func normalizeAges(ages []int) AgeList {
	out := make(AgeList, 0, len(ages))
	for _, age := range ages {
		if age > 0 {
			out = append(out, age)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FamilyHistory captures the breast-cancer onset ages of a patient's
// relatives. Every field is optional; an absent field means no affected
// relatives in that category.
type FamilyHistory struct {
	MotherOnsetAge               AgeList `json:"mother_onset_age,omitempty"`
	DaughterOnsetAges            AgeList `json:"daughter_onset_ages,omitempty"`
	FullSisterOnsetAges          AgeList `json:"full_sister_onset_ages,omitempty"`
	MaternalAuntOnsetAges        AgeList `json:"maternal_aunt_onset_ages,omitempty"`
	PaternalAuntOnsetAges        AgeList `json:"paternal_aunt_onset_ages,omitempty"`
	MaternalGrandmotherOnsetAges AgeList `json:"maternal_grandmother_onset_ages,omitempty"`
	PaternalGrandmotherOnsetAges AgeList `json:"paternal_grandmother_onset_ages,omitempty"`
	MaternalHalfSisterOnsetAges  AgeList `json:"maternal_half_sister_onset_ages,omitempty"`
	PaternalHalfSisterOnsetAges  AgeList `json:"paternal_half_sister_onset_ages,omitempty"`
}

// Empty reports whether no onset ages were supplied at all.
func (h FamilyHistory) Empty() bool {
	return len(h.MotherOnsetAge) == 0 &&
		len(h.DaughterOnsetAges) == 0 &&
		len(h.FullSisterOnsetAges) == 0 &&
		len(h.MaternalAuntOnsetAges) == 0 &&
		len(h.PaternalAuntOnsetAges) == 0 &&
		len(h.MaternalGrandmotherOnsetAges) == 0 &&
		len(h.PaternalGrandmotherOnsetAges) == 0 &&
		len(h.MaternalHalfSisterOnsetAges) == 0 &&
		len(h.PaternalHalfSisterOnsetAges) == 0
}

// FirstDegreeAges returns the valid onset ages of first-degree relatives
// (mother, full sisters, daughters), sorted ascending.
func (h FamilyHistory) FirstDegreeAges() []int {
	return SortValidAges(h.MotherOnsetAge, h.FullSisterOnsetAges, h.DaughterOnsetAges)
}

// SecondDegreeAges returns the valid onset ages of second-degree
// relatives (aunts, grandmothers, half-sisters) on both sides, sorted
// ascending.
func (h FamilyHistory) SecondDegreeAges() []int {
	return SortValidAges(
		h.MaternalAuntOnsetAges, h.PaternalAuntOnsetAges,
		h.MaternalGrandmotherOnsetAges, h.PaternalGrandmotherOnsetAges,
		h.MaternalHalfSisterOnsetAges, h.PaternalHalfSisterOnsetAges,
	)
}

// MaternalSecondDegreeAges returns the valid onset ages of maternal-side
// second-degree relatives, sorted ascending.
func (h FamilyHistory) MaternalSecondDegreeAges() []int {
	return SortValidAges(
		h.MaternalAuntOnsetAges,
		h.MaternalGrandmotherOnsetAges,
		h.MaternalHalfSisterOnsetAges,
	)
}

// PaternalSecondDegreeAges returns the valid onset ages of paternal-side
// second-degree relatives, sorted ascending.
func (h FamilyHistory) PaternalSecondDegreeAges() []int {
	return SortValidAges(
		h.PaternalAuntOnsetAges,
		h.PaternalGrandmotherOnsetAges,
		h.PaternalHalfSisterOnsetAges,
	)
}

// SortValidAges merges the given lists, discards ages outside
// [ValidMinAge, ValidMaxAge] entirely, and sorts the remainder ascending
// so that index 0 is always the youngest affected relative.
func SortValidAges(lists ...AgeList) []int {
	out := make([]int, 0)
	for _, ages := range lists {
		for _, age := range ages {
			if age >= ValidMinAge && age <= ValidMaxAge {
				out = append(out, age)
			}
		}
	}
	sort.Ints(out)
	return out
}

// RiskAssessment is the persisted record of one Claus risk calculation.
type RiskAssessment struct {
	ID         string        `json:"id"`
	PatientAge int           `json:"patient_age"`
	History    FamilyHistory `json:"history"`

	// Risk is the conditional probability of onset between the current
	// age and 79, rounded to 3 decimals. Nil when the model is not
	// applicable to the supplied inputs.
	Risk       *float64 `json:"risk,omitempty"`
	Applicable bool     `json:"applicable"`

	CreatedAt time.Time `json:"created_at"`
}
