package extractor

import (
	"regexp"
	"strconv"

	"github.com/jonathan/skillmatch/internal/types"
)

const (
	seniorYears = 8
	midYears    = 3
)

var (
	// "5+ years of experience", "3 yrs exp"
	yearsExperiencePattern = regexp.MustCompile(`(\d+)[+\s]*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

	// "python: 4 years", "node.js - 2 yrs"
	skillWithYearsPattern = regexp.MustCompile(`(\w+(?:\.\w+)*)\s*[:-]\s*(\d+)[+\s]*(?:years?|yrs?)`)
)

// extractExperience pulls years-of-experience statements out of
// lowercased text. Total years is the largest overall claim; per-skill
// years come from "skill: N years" constructions.
func extractExperience(textLower string) types.Experience {
	exp := types.Experience{
		SkillExperience: make(map[string]int),
		Level:           types.LevelEntry,
	}

	for _, m := range yearsExperiencePattern.FindAllStringSubmatch(textLower, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > exp.TotalYears {
			exp.TotalYears = years
		}
	}

	for _, m := range skillWithYearsPattern.FindAllStringSubmatch(textLower, -1) {
		years, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		exp.SkillExperience[m[1]] = years
	}

	switch {
	case exp.TotalYears >= seniorYears:
		exp.Level = types.LevelSenior
	case exp.TotalYears >= midYears:
		exp.Level = types.LevelMid
	}

	return exp
}
