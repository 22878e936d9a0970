package synthesis

import (
	"fmt"
	"strings"

	"github.com/ironsupr/docrank/internal/persona"
)

// sectionType classifies a heading for fallback template selection.
type sectionType string

const (
	sectionGuide          sectionType = "guide"
	sectionActivities     sectionType = "activities"
	sectionCulinary       sectionType = "culinary"
	sectionAccommodation  sectionType = "accommodation"
	sectionTips           sectionType = "tips"
	sectionEntertainment  sectionType = "entertainment"
	sectionTransportation sectionType = "transportation"
	sectionGeneral        sectionType = "general"
)

// sectionTypeKeywords is checked in order; first match wins.
var sectionTypeKeywords = []struct {
	kind     sectionType
	keywords []string
}{
	{sectionGuide, []string{"guide", "comprehensive", "overview"}},
	{sectionActivities, []string{"activities", "things", "adventures"}},
	{sectionCulinary, []string{"food", "culinary", "dining", "restaurant"}},
	{sectionAccommodation, []string{"accommodation", "hotels", "stay"}},
	{sectionTips, []string{"tips", "advice", "packing"}},
	{sectionEntertainment, []string{"nightlife", "entertainment", "bars"}},
	{sectionTransportation, []string{"transportation", "travel", "getting"}},
}

// Fallback composes deterministic placeholder content for a section when
// extraction yields too little. The sentences are fixed templates chosen by
// section type and context; the result is never empty.
func Fallback(title string, ctx persona.Context) string {
	titleLower := strings.ToLower(title)

	kind := sectionGeneral
	for _, st := range sectionTypeKeywords {
		if containsAnyWord(titleLower, st.keywords) {
			kind = st.kind
			break
		}
	}

	var parts []string
	add := func(s string) { parts = append(parts, s) }

	switch kind {
	case sectionGuide:
		add(fmt.Sprintf("This %s provides comprehensive information for planning your trip.", titleLower))
		if ctx.Group == persona.GroupGroup {
			size := "multiple"
			if ctx.GroupSize > 0 {
				size = fmt.Sprintf("%d", ctx.GroupSize)
			}
			add(fmt.Sprintf("Designed specifically for group travel, with recommendations suitable for %s travelers.", size))
		}
		if ctx.Age == persona.AgeYoungAdult {
			add("Includes budget-friendly options and activities popular with young travelers.")
		}
		if ctx.Age == persona.AgeFamily {
			add("Features family-friendly activities, educational experiences, and multi-generational bonding opportunities that cater to different age groups.")
		}

	case sectionActivities:
		add(fmt.Sprintf("Explore a variety of %s designed to enhance your travel experience.", titleLower))
		if ctx.Wants(persona.ActivityAdventure) {
			add("Features outdoor adventures, active experiences, and thrilling activities perfect for creating lasting memories.")
		}
		if ctx.Wants(persona.ActivityCultural) || ctx.Age == persona.AgeFamily {
			add("Includes cultural experiences, historical sites, museums, and local traditions that provide educational value.")
		}
		if ctx.Group == persona.GroupGroup {
			add("Group-friendly activities that everyone can enjoy together, with options for different skill levels and interests.")
		}
		if strings.Contains(titleLower, "coastal") || strings.Contains(titleLower, "beach") {
			add("Beach activities include swimming, sunbathing, water sports, and coastal walks. Popular beaches offer amenities like restaurants, equipment rentals, and lifeguard services.")
		}

	case sectionCulinary:
		add(fmt.Sprintf("Discover the %s that showcase local flavors and dining traditions.", titleLower))
		add("From traditional dishes to modern cuisine, explore cooking classes, food tours, and restaurant recommendations.")
		if ctx.Budget == persona.BudgetBudget {
			add("Includes affordable dining options, local food markets, and budget-friendly restaurants that offer authentic experiences.")
		} else if ctx.Budget == persona.BudgetLuxury {
			add("Features fine dining establishments, exclusive culinary experiences, and renowned restaurants with exceptional service.")
		}
		if ctx.Age == persona.AgeFamily {
			add("Family-friendly restaurants with varied menus, child-appropriate options, and welcoming atmospheres for all ages.")
		}

	case sectionAccommodation:
		add(fmt.Sprintf("Find %s options suited to your stay, from central locations to quieter neighborhoods.", titleLower))
		if ctx.Budget == persona.BudgetBudget {
			add("Covers hostels, guesthouses, and well-priced hotels that keep more of your budget free for activities.")
		} else if ctx.Budget == persona.BudgetLuxury {
			add("Highlights premium hotels and resorts with full-service amenities and exceptional comfort.")
		}
		if ctx.Group == persona.GroupGroup {
			add("Includes larger rooms, shared apartments, and properties that can host an entire group together.")
		}

	case sectionTips:
		add(fmt.Sprintf("Essential %s to help you prepare for and enjoy your trip.", titleLower))
		if ctx.Age == persona.AgeYoungAdult {
			add("Student-friendly tips for budget travel, money-saving strategies, and making the most of your experience.")
		}
		if ctx.Group == persona.GroupGroup {
			add("Group travel considerations including coordination tips, shared expenses, and communication strategies.")
		}
		if ctx.Age == persona.AgeFamily {
			add("Family travel essentials including packing for different ages, safety considerations, and keeping everyone entertained.")
		}
		add("Packing recommendations include versatile clothing, essential documents, first aid supplies, and items specific to your planned activities.")

	case sectionEntertainment:
		add(fmt.Sprintf("Experience the vibrant %s scene with options ranging from casual to upscale venues.", titleLower))
		if ctx.Age == persona.AgeYoungAdult {
			add("Popular with college students and young travelers, featuring trendy bars, clubs, live music venues, and social hotspots.")
		}
		if ctx.Age == persona.AgeFamily {
			add("Family-appropriate entertainment including cultural performances, festivals, and evening activities suitable for all ages.")
		}
		add("Includes live music venues, entertainment districts, cultural shows, and nighttime activities with something for every taste.")

	case sectionTransportation:
		add(fmt.Sprintf("Covers %s to help you move around efficiently during your stay.", titleLower))
		add("Includes public transit options, rental services, and route planning advice for getting between major sights.")
		if ctx.Group == persona.GroupGroup {
			add("Group transport options such as shared transfers and multi-seat rentals can simplify coordination.")
		}

	default:
		add(fmt.Sprintf("This section covers %s with practical information and recommendations.", titleLower))
		if ctx.Persona == persona.PersonaTravelProfessional {
			add("Provides detailed insights for professional travel planning and client recommendations.")
		}
		if ctx.Age == persona.AgeFamily {
			add("Includes considerations for traveling with multiple generations and varying interests.")
		}
	}

	// Context-specific closing tied to the planned trip length.
	if strings.Contains(ctx.Duration, "days") {
		duration := strings.ReplaceAll(ctx.Duration, "_", " ")
		add(fmt.Sprintf("Perfect for planning a %s itinerary with optimal time management and efficient use of your vacation time.", duration))
	} else if strings.Contains(ctx.Duration, "weeks") {
		duration := strings.ReplaceAll(ctx.Duration, "_", " ")
		add(fmt.Sprintf("Ideal for extended %s stays that allow for deeper exploration and immersive experiences.", duration))
	}

	return strings.Join(parts, " ")
}
