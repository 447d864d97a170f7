package llm

import "strings"

// BuildPrompt embeds the normalized transcript into the fixed instruction
// template. The transcript is inserted verbatim; no escaping is performed,
// and transcript content that resembles instructions is the model's problem,
// not this component's.
func BuildPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString(`You are an AI assistant extracting renovation details from a client transcript.
Please carefully analyze the conversation and return a JSON object with these keys:

1. "ProjectName": (If not mentioned, return "Not provided")
2. "ClientName": (If not mentioned, return "Not provided")
3. "PropertyAddress": (If not mentioned, return "Not provided")
4. "ProjectManager": (If not mentioned, return "Not provided")
5. "RenovationAreas": (List or describe the rooms/areas, e.g., "Kitchen, Bathroom")
6. "ScopeOfWork": (Summarize all renovation tasks or goals)
7. "MaterialPreferences": (List any specific materials or design preferences)
8. "BudgetOrCost": (Any budget or cost references)
9. "Timeline": (Any schedule or start/end dates mentioned)
10. "AdditionalNotes": (Extra details like permit requirements, constraints, etc.)

Transcript:
`)
	b.WriteString(transcript)
	b.WriteString(`

Return only valid JSON with exactly the keys:
ProjectName, ClientName, PropertyAddress, ProjectManager, RenovationAreas, ScopeOfWork, MaterialPreferences, BudgetOrCost, Timeline, AdditionalNotes.`)
	return b.String()
}
