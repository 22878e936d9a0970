package persona

import (
	"regexp"
	"strconv"
	"strings"
)

// PersonaType classifies who the output is for.
type PersonaType string

const (
	PersonaGeneral            PersonaType = "general"
	PersonaTravelProfessional PersonaType = "travel_professional"
	PersonaContentCreator     PersonaType = "content_creator"
	PersonaBusiness           PersonaType = "business"
)

// GroupType distinguishes solo from group travel.
type GroupType string

const (
	GroupIndividual GroupType = "individual"
	GroupGroup      GroupType = "group"
)

// AgeGroup classifies the travelers' age bracket.
type AgeGroup string

const (
	AgeAdult      AgeGroup = "adult"
	AgeYoungAdult AgeGroup = "young_adult"
	AgeFamily     AgeGroup = "family"
	AgeSenior     AgeGroup = "senior"
)

// BudgetLevel classifies spending expectations.
type BudgetLevel string

const (
	BudgetMidRange BudgetLevel = "mid-range"
	BudgetBudget   BudgetLevel = "budget"
	BudgetLuxury   BudgetLevel = "luxury"
)

// Activity is a travel activity preference category.
type Activity string

const (
	ActivityAdventure  Activity = "adventure"
	ActivityCultural   Activity = "cultural"
	ActivityRelaxation Activity = "relaxation"
	ActivityNightlife  Activity = "nightlife"
	ActivityCulinary   Activity = "culinary"
	ActivityNature     Activity = "nature"
)

// DurationUnknown is the trip duration when no duration cue matched.
const DurationUnknown = "unknown"

// Context is the structured interpretation of a persona plus job-to-be-done
// pair. It is computed once by Analyze and never mutated afterwards.
type Context struct {
	Persona    PersonaType
	Group      GroupType
	GroupSize  int // 0 when not stated
	Age        AgeGroup
	Duration   string // "unknown", "<n>_days", "<n>_weeks", "weekend", "long_weekend"
	Budget     BudgetLevel
	Activities []Activity
}

// Wants reports whether an activity preference was detected.
func (c Context) Wants(a Activity) bool {
	for _, have := range c.Activities {
		if have == a {
			return true
		}
	}
	return false
}

// Persona phrase sets, checked in priority order; first match wins.
var personaPhrases = []struct {
	kind    PersonaType
	phrases []string
}{
	{PersonaTravelProfessional, []string{"travel planner", "travel agent", "tour guide"}},
	{PersonaContentCreator, []string{"blogger", "writer", "journalist"}},
	{PersonaBusiness, []string{"business", "corporate", "executive"}},
}

var agePhrases = []struct {
	age     AgeGroup
	phrases []string
}{
	{AgeYoungAdult, []string{"college", "student", "young", "youth"}},
	{AgeFamily, []string{"family", "children", "kids"}},
	{AgeSenior, []string{"senior", "elderly", "retirement"}},
}

var budgetPhrases = []struct {
	level   BudgetLevel
	phrases []string
}{
	{BudgetBudget, []string{"budget", "cheap", "affordable", "low-cost"}},
	{BudgetLuxury, []string{"luxury", "premium", "high-end", "expensive"}},
}

// activityPhrases drives the non-exclusive preference scan. Iteration order is
// fixed so that Context.Activities is deterministic.
var activityPhrases = []struct {
	activity Activity
	phrases  []string
}{
	{ActivityAdventure, []string{"adventure", "outdoor", "hiking", "sports", "active"}},
	{ActivityCultural, []string{"cultural", "museum", "historical", "art", "heritage"}},
	{ActivityRelaxation, []string{"relax", "spa", "beach", "peaceful", "quiet"}},
	{ActivityNightlife, []string{"nightlife", "party", "bars", "clubs", "entertainment"}},
	{ActivityCulinary, []string{"food", "culinary", "dining", "restaurant", "cooking"}},
	{ActivityNature, []string{"nature", "natural", "park", "wildlife", "scenery"}},
}

// Duration patterns, checked in priority order; first match wins. Hyphenated
// forms like "4-day trip" count the same as "4 day trip".
var durationPatterns = []struct {
	re     *regexp.Regexp
	suffix string // appended to the captured number, empty for literal matches
	value  string // used when there is no capture group
}{
	{regexp.MustCompile(`(\d+)[\s-]*days?`), "_days", ""},
	{regexp.MustCompile(`(\d+)[\s-]*weeks?`), "_weeks", ""},
	{regexp.MustCompile(`weekend`), "", "weekend"},
	{regexp.MustCompile(`long weekend`), "", "long_weekend"},
}

// Group size detection prefers the number attached to the group phrase
// itself; a bare leading number is often a trip duration ("4-day trip for a
// group of 6").
var (
	groupOfPattern   = regexp.MustCompile(`group\s+of\s+(\d+)`)
	anyNumberPattern = regexp.MustCompile(`\b(\d+)\b`)
)

// Analyze derives a Context from free-text persona and job descriptions.
// Both inputs may be empty; absent cues simply yield the defaults. The
// function is pure: the same inputs always produce an identical Context.
func Analyze(personaText, jobText string) Context {
	combined := strings.ToLower(personaText + " " + jobText)

	ctx := Context{
		Persona:  PersonaGeneral,
		Group:    GroupIndividual,
		Age:      AgeAdult,
		Duration: DurationUnknown,
		Budget:   BudgetMidRange,
	}

	for _, p := range personaPhrases {
		if containsAny(combined, p.phrases) {
			ctx.Persona = p.kind
			break
		}
	}

	if strings.Contains(combined, "group") {
		ctx.Group = GroupGroup
		ctx.GroupSize = findGroupSize(strings.ToLower(jobText))
	}

	for _, a := range agePhrases {
		if containsAny(combined, a.phrases) {
			ctx.Age = a.age
			break
		}
	}

	for _, d := range durationPatterns {
		m := d.re.FindStringSubmatch(combined)
		if m == nil {
			continue
		}
		if d.value != "" {
			ctx.Duration = d.value
		} else {
			ctx.Duration = m[1] + d.suffix
		}
		break
	}

	for _, b := range budgetPhrases {
		if containsAny(combined, b.phrases) {
			ctx.Budget = b.level
			break
		}
	}

	for _, a := range activityPhrases {
		if containsAny(combined, a.phrases) {
			ctx.Activities = append(ctx.Activities, a.activity)
		}
	}

	return ctx
}

// findGroupSize extracts a group size from the job text only, not the
// persona. "group of N" wins over the first bare integer.
func findGroupSize(jobText string) int {
	if m := groupOfPattern.FindStringSubmatch(jobText); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n
		}
	}
	if m := anyNumberPattern.FindString(jobText); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
