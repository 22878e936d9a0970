package scoring

import (
	"regexp"
	"strings"

	"github.com/ironsupr/docrank/internal/persona"
)

// MaxScore is the ceiling every relevance score is clamped to.
const MaxScore = 100.0

var tokenPattern = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// Score rates how relevant a section is to the given context, on a [0, 100]
// scale. Title and body are concatenated; the body may repeat the title when
// no separate body text is available. Context bonuses multiply the keyword
// signal rather than replacing it: text with no keyword or pattern hits
// scores zero no matter the context.
func Score(title, body string, ctx persona.Context) float64 {
	if title == "" && body == "" {
		return 0
	}

	full := strings.ToLower(title + " " + body)
	tokens := tokenPattern.FindAllString(full, -1)
	if len(tokens) == 0 {
		return 0
	}

	var keywordScore float64
	for _, tok := range tokens {
		keywordScore += travelKeywords[tok]
	}
	baseScore := keywordScore / float64(len(tokens)) * 10

	var patternBonus float64
	for _, p := range contentPatterns {
		hits := 0
		for _, phrase := range p.phrases {
			if strings.Contains(full, phrase) {
				hits++
			}
		}
		patternBonus += float64(hits) * p.multiplier * 5
	}

	multiplier := 1.0
	if ctx.Persona == persona.PersonaTravelProfessional && containsAny(full, plannerCues) {
		multiplier += 0.3
	}
	if ctx.Group == persona.GroupGroup && containsAny(full, groupCues) {
		multiplier += 0.4
	}
	switch ctx.Age {
	case persona.AgeYoungAdult:
		if containsAny(full, youngAdultCues) {
			multiplier += 0.3
		}
	case persona.AgeFamily:
		if containsAny(full, familyCues) {
			multiplier += 0.3
		}
	}
	switch ctx.Budget {
	case persona.BudgetBudget:
		if containsAny(full, budgetCues) {
			multiplier += 0.2
		}
	case persona.BudgetLuxury:
		if containsAny(full, luxuryCues) {
			multiplier += 0.2
		}
	}
	for _, pref := range ctx.Activities {
		if cues, ok := activityCues[pref]; ok && containsAny(full, cues) {
			multiplier += 0.2
		}
	}

	score := (baseScore + patternBonus) * multiplier
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
