package scoring

import "github.com/ironsupr/docrank/internal/persona"

// travelKeywords maps a token to its relevance weight. Tokens are matched
// against lower-cased alphabetic words of length >= 3; anything absent from
// the table contributes zero. Loaded once, never mutated.
var travelKeywords = map[string]float64{
	// Core travel planning
	"trip": 15, "travel": 15, "planning": 20, "itinerary": 18, "journey": 12,
	"vacation": 12, "holiday": 10, "tour": 14, "visit": 8, "explore": 12,

	// Group and social travel
	"group": 20, "friends": 18, "college": 15, "student": 12, "young": 10,
	"together": 8, "social": 10, "party": 8, "team": 8,

	// Activities and experiences
	"activities": 18, "experiences": 16, "adventures": 16, "attractions": 14,
	"entertainment": 14, "nightlife": 14, "cultural": 12, "outdoor": 10,
	"sightseeing": 12, "excursions": 10,

	// Accommodation and logistics
	"accommodation": 12, "hotels": 12, "restaurants": 12, "dining": 10,
	"booking": 8, "reservations": 8, "transportation": 10,

	// Travel advice
	"tips": 16, "advice": 14, "guide": 18, "recommendations": 14,
	"suggestions": 10, "tricks": 12, "information": 8,

	// Destination types
	"coastal": 14, "beach": 12, "sea": 8, "water": 8, "mountain": 8,
	"city": 10, "urban": 8, "rural": 6, "countryside": 6,

	// Food and drink
	"culinary": 16, "cuisine": 14, "food": 12, "cooking": 10, "wine": 8,
	"restaurant": 10, "cafe": 6,

	// Practical travel
	"packing": 14, "luggage": 8, "clothes": 6, "weather": 8,
	"documents": 8, "passport": 6, "visa": 6,

	// Budget
	"budget": 16, "cheap": 10, "affordable": 12, "expensive": 6,
	"cost": 8, "price": 6, "money": 6,
}

// contentPattern describes a section archetype. Every phrase hit in the
// combined text adds multiplier*5 to the pattern bonus; patterns are not
// mutually exclusive.
type contentPattern struct {
	phrases     []string
	multiplier  float64
	contentType string
}

var contentPatterns = []contentPattern{
	{[]string{"guide", "comprehensive", "overview", "introduction"}, 1.5, "overview"},
	{[]string{"activities", "adventures", "things", "do", "outdoor", "sports"}, 1.4, "activities"},
	{[]string{"food", "culinary", "cuisine", "dining", "restaurants", "cooking"}, 1.3, "culinary"},
	{[]string{"hotels", "accommodation", "stay", "lodging", "booking"}, 1.2, "accommodation"},
	{[]string{"transportation", "travel", "getting", "around", "logistics"}, 1.1, "transportation"},
	{[]string{"tips", "advice", "tricks", "recommendations", "suggestions"}, 1.3, "tips"},
	{[]string{"nightlife", "entertainment", "bars", "clubs", "party"}, 1.2, "entertainment"},
	{[]string{"cultural", "culture", "historical", "history", "heritage"}, 1.1, "cultural"},
}

// Context cue sets. Each multiplier bonus fires when the matching context
// attribute is set and any cue appears in the text.
var (
	plannerCues    = []string{"guide", "comprehensive", "planning"}
	groupCues      = []string{"group", "friends", "together"}
	youngAdultCues = []string{"nightlife", "adventure", "budget", "student"}
	familyCues     = []string{"family", "safe", "activities", "educational"}
	budgetCues     = []string{"budget", "cheap", "affordable", "tips"}
	luxuryCues     = []string{"luxury", "premium", "exclusive", "high-end"}
)

// activityCues maps an activity preference to its bonus cue set. Relaxation
// and nature carry no cues: those preferences steer synthesis, not scoring.
var activityCues = map[persona.Activity][]string{
	persona.ActivityAdventure: {"adventure", "outdoor", "active"},
	persona.ActivityCultural:  {"cultural", "museum", "historical"},
	persona.ActivityCulinary:  {"food", "culinary", "restaurant"},
	persona.ActivityNightlife: {"nightlife", "entertainment", "bars"},
}
