package constants

// NotProvided is the placeholder written for any field the model did not return.
const NotProvided = "Not provided"

// FieldNames lists the ten extracted fields in their fixed render order.
// Header row and value row both follow this order exactly.
var FieldNames = []string{
	"ProjectName",
	"ClientName",
	"PropertyAddress",
	"ProjectManager",
	"RenovationAreas",
	"ScopeOfWork",
	"MaterialPreferences",
	"BudgetOrCost",
	"Timeline",
	"AdditionalNotes",
}

// Spreadsheet artifact identity.
const (
	SheetName        = "Renovation Data"
	ArtifactFilename = "Renovation_Extracted_Details.xlsx"
	ArtifactMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
