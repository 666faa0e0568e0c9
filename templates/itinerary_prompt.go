// templates/itinerary_prompt.go
package templates

import (
	"fmt"
	"strings"

	"departly/internal/domain/entity"
)

const PROMPT_HEADER = `You are a travel planner. Build a %d-day itinerary for %s.`

const PROMPT_RULES = `Plan strictly from the attractions listed in the CONTEXT block above.
Never invent attractions, prices or ratings that are not in the block.
Group the attractions into days, order each day sensibly, and mention the
entrance fee and the best time to visit where the block provides them.`

const PROMPT_UNGROUNDED = `No verified attraction records are available for this city, so note at
the top of your answer that this itinerary is not grounded in our
database. Suggest well-known places, but mark every suggestion as
unverified.`

// BuildItineraryPrompt renders the model prompt for a grounded request.
// Each knowledge-base row becomes one CONTEXT line so the model can only
// plan from what the database actually holds.
func BuildItineraryPrompt(city string, days int, rows []entity.Attraction) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(PROMPT_HEADER, days, city))
	sb.WriteString("\n\nCONTEXT:\n")
	for _, row := range rows {
		sb.WriteString(formatAttraction(row))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(PROMPT_RULES)
	return sb.String()
}

// BuildUngroundedPrompt renders the fallback prompt used when the
// knowledge base has no rows for the city and policy allows answering.
func BuildUngroundedPrompt(city string, days int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(PROMPT_HEADER, days, city))
	sb.WriteString("\n\n")
	sb.WriteString(PROMPT_UNGROUNDED)
	return sb.String()
}

func formatAttraction(row entity.Attraction) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("- %s (%s)", row.Name, row.Type))
	if row.Significance != "" {
		sb.WriteString(fmt.Sprintf(", significance: %s", row.Significance))
	}
	if row.EntranceFee > 0 {
		sb.WriteString(fmt.Sprintf(", entrance fee: INR %d", row.EntranceFee))
	} else {
		sb.WriteString(", entrance fee: free")
	}
	if row.VisitHours > 0 {
		sb.WriteString(fmt.Sprintf(", time needed: %.1f hrs", row.VisitHours))
	}
	if row.BestTime != "" {
		sb.WriteString(fmt.Sprintf(", best time: %s", row.BestTime))
	}
	if row.Rating > 0 {
		sb.WriteString(fmt.Sprintf(", rating: %.1f", row.Rating))
	}
	return sb.String()
}
