// Package bodycalc holds the body mass index and daily intake formulas.
package bodycalc

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	ObjectiveGain        = "Gain de masse"
	ObjectiveLoss        = "Perte de poids"
	ObjectiveMaintenance = "Maintien"

	SexMale = "Homme"

	activityFactor  = 1.55
	proteinPerKg    = 2.3
	kcalPerGramCarb = 4
	kcalPerGramFat  = 9
)

type BMICategory struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

var bmiTable = []BMICategory{
	{Label: "Maigreur", Min: 0, Max: 18.5},
	{Label: "Normal", Min: 18.5, Max: 25},
	{Label: "Surpoids", Min: 25, Max: 30},
	{Label: "Obésité modérée", Min: 30, Max: 40},
	{Label: "Obésité sévère", Min: 40, Max: 999},
}

type BMIResult struct {
	Value    float64      `json:"value"`
	Category *BMICategory `json:"category,omitempty"`
}

// BMI returns weight / height² with its bucket. Values past the table have no category.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{}, fmt.Errorf("%w: weight %v, height %v", ErrInvalidInput, weightKg, heightCm)
	}
	heightM := heightCm / 100
	result := BMIResult{Value: weightKg / (heightM * heightM)}
	for i := range bmiTable {
		if result.Value >= bmiTable[i].Min && result.Value < bmiTable[i].Max {
			category := bmiTable[i]
			result.Category = &category
			break
		}
	}
	return result, nil
}

type NutritionPlan struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

// Nutrition applies Harris-Benedict with a moderate activity factor, then
// splits the objective's calories into macros.
func Nutrition(weightKg float64, age int, sex, objective string, heightCm float64) (NutritionPlan, error) {
	if weightKg <= 0 || age <= 0 || heightCm <= 0 {
		return NutritionPlan{}, fmt.Errorf("%w: weight %v, age %d, height %v", ErrInvalidInput, weightKg, age, heightCm)
	}

	var plan NutritionPlan
	if sex == SexMale {
		plan.BMR = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		plan.BMR = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	plan.TDEE = plan.BMR * activityFactor

	carbShare, fatShare := 0.45, 0.25
	switch objective {
	case ObjectiveGain:
		plan.Calories = plan.TDEE * 1.10
		carbShare, fatShare = 0.47, 0.23
	case ObjectiveLoss:
		plan.Calories = plan.TDEE * 0.90
		carbShare, fatShare = 0.37, 0.23
	default:
		plan.Calories = plan.TDEE
	}

	plan.ProteinG = weightKg * proteinPerKg
	plan.CarbsG = plan.Calories * carbShare / kcalPerGramCarb
	plan.FatG = plan.Calories * fatShare / kcalPerGramFat
	return plan, nil
}

type Adjustment struct {
	Label string  `json:"label"`
	Ratio float64 `json:"ratio"`
}

// Adjustments lists the calorie adjustment presets in display order.
var Adjustments = []Adjustment{
	{Label: "Déficit léger (-10 à -15%)", Ratio: -0.125},
	{Label: "Déficit modéré (-15 à -25%)", Ratio: -0.20},
	{Label: "Maintien (0%)", Ratio: 0},
	{Label: "Surplus léger (lean) (+5 à +10%)", Ratio: 0.075},
	{Label: "Surplus standard (+10 à +15%)", Ratio: 0.125},
	{Label: "Surplus agressif (+15 à +20%)", Ratio: 0.175},
}

func AdjustmentRatio(label string) (float64, bool) {
	for _, a := range Adjustments {
		if a.Label == label {
			return a.Ratio, true
		}
	}
	return 0, false
}

func ObjectiveFromAdjustment(label string) string {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "déficit"):
		return ObjectiveLoss
	case strings.Contains(label, "surplus"):
		return ObjectiveGain
	default:
		return ObjectiveMaintenance
	}
}
