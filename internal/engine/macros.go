package engine

import (
	"math"
	"strings"
)

// MacroProfile is the percentage split of protein/carbohydrate/fat calories
// for a diet category. Percentages always sum to 100.
type MacroProfile struct {
	ProteinPct int
	CarbsPct   int
	FatsPct    int
}

// DefaultCategory is used when a requested category is unknown.
const DefaultCategory = "Balanced"

// Calories per gram of each macro nutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// macroProfiles maps lower-cased category names to their fixed splits.
var macroProfiles = map[string]MacroProfile{
	"balanced":      {ProteinPct: 30, CarbsPct: 40, FatsPct: 30},
	"high protein":  {ProteinPct: 40, CarbsPct: 30, FatsPct: 30},
	"low carb":      {ProteinPct: 35, CarbsPct: 25, FatsPct: 40},
	"ketogenic":     {ProteinPct: 25, CarbsPct: 5, FatsPct: 70},
	"vegan":         {ProteinPct: 25, CarbsPct: 50, FatsPct: 25},
	"paleo":         {ProteinPct: 35, CarbsPct: 30, FatsPct: 35},
	"mediterranean": {ProteinPct: 25, CarbsPct: 45, FatsPct: 30},
}

// ProfileFor returns the macro profile for a category. Unknown categories
// fall back to Balanced so macro math always succeeds.
func ProfileFor(category string) MacroProfile {
	if p, ok := macroProfiles[strings.ToLower(strings.TrimSpace(category))]; ok {
		return p
	}
	return macroProfiles[strings.ToLower(DefaultCategory)]
}

// Categories returns the known category names in no particular order.
func Categories() []string {
	names := make([]string, 0, len(macroProfiles))
	for name := range macroProfiles {
		names = append(names, name)
	}
	return names
}

// Macros holds computed macro targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// ComputeMacros derives gram targets from a calorie target and a category.
// Pure function, no side effects.
func ComputeMacros(targetCalories int, category string) Macros {
	p := ProfileFor(category)
	return Macros{
		Protein: gramsFor(targetCalories, p.ProteinPct, kcalPerGramProtein),
		Carbs:   gramsFor(targetCalories, p.CarbsPct, kcalPerGramCarbs),
		Fats:    gramsFor(targetCalories, p.FatsPct, kcalPerGramFat),
	}
}

func gramsFor(calories, pct, kcalPerGram int) int {
	return roundToInt(float64(calories) * float64(pct) / 100 / float64(kcalPerGram))
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
