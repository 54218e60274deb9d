package utils

import "strings"

// Timing requirements a medication can carry.
const (
	TimingWithFood     = "with_food"
	TimingEmptyStomach = "empty_stomach"
)

// DrugTiming is one row of the timing-requirement table: how a medication
// should sit relative to meals, and which other drugs it must be kept
// apart from.
type DrugTiming struct {
	Requirement  string   // TimingWithFood, TimingEmptyStomach, or ""
	SeparateFrom []string // lowercase name substrings of drugs to keep >=4h away
	Guidance     string   // FDA labeling summary shown to caregivers
}

// drugTimings maps lowercase medication names to their timing rules.
// Absence from the table means "no documented requirement" — never a
// conflict by itself.
var drugTimings = map[string]DrugTiming{
	"metformin": {
		Requirement: TimingWithFood,
		Guidance:    "FDA labeling: take metformin with meals to reduce gastrointestinal side effects.",
	},
	"ibuprofen": {
		Requirement: TimingWithFood,
		Guidance:    "FDA labeling: take ibuprofen with food or milk to lessen stomach upset.",
	},
	"naproxen": {
		Requirement: TimingWithFood,
		Guidance:    "FDA labeling: take naproxen with food to reduce risk of stomach irritation.",
	},
	"prednisone": {
		Requirement: TimingWithFood,
		Guidance:    "FDA labeling: take prednisone with food to avoid stomach upset.",
	},
	"amoxicillin/clavulanate": {
		Requirement: TimingWithFood,
		Guidance:    "FDA labeling: take at the start of a meal to improve absorption and tolerability.",
	},
	"levothyroxine": {
		Requirement:  TimingEmptyStomach,
		SeparateFrom: []string{"calcium", "iron", "omeprazole", "antacid"},
		Guidance:     "FDA labeling: take levothyroxine on an empty stomach 30–60 minutes before breakfast; separate from calcium or iron by at least 4 hours.",
	},
	"omeprazole": {
		Requirement: TimingEmptyStomach,
		Guidance:    "FDA labeling: take omeprazole before a meal, preferably in the morning.",
	},
	"alendronate": {
		Requirement:  TimingEmptyStomach,
		SeparateFrom: []string{"calcium", "antacid"},
		Guidance:     "FDA labeling: take alendronate first thing in the morning with plain water, at least 30 minutes before food or other medicines.",
	},
	"ciprofloxacin": {
		SeparateFrom: []string{"calcium", "iron", "antacid", "zinc"},
		Guidance:     "FDA labeling: separate ciprofloxacin from antacids and calcium/iron/zinc supplements; they bind the drug and block absorption.",
	},
	"doxycycline": {
		SeparateFrom: []string{"calcium", "iron", "antacid"},
		Guidance:     "FDA labeling: separate doxycycline from antacids and calcium or iron products by several hours.",
	},
	"warfarin": {
		SeparateFrom: []string{"aspirin", "ibuprofen", "naproxen"},
		Guidance:     "FDA labeling: combining warfarin with NSAIDs or aspirin raises bleeding risk; schedules should be reviewed by a clinician.",
	},
}

// LookupDrugTiming finds the timing rule for a medication name.
// Matching is case-insensitive and exact.
func LookupDrugTiming(name string) (DrugTiming, bool) {
	dt, ok := drugTimings[strings.ToLower(strings.TrimSpace(name))]
	return dt, ok
}
