package constants

// Contact status codes the dashboard knows labels for. Status stays free-form in storage.
const (
	StatusNewLead    = "new_lead"
	StatusInProgress = "in_progress"
	StatusActive     = "active"
	StatusCompleted  = "completed"
)

// Relation statuses.
const (
	RelationInquiry  = "inquiry"
	RelationCurrent  = "current"
	RelationArchived = "archived"
)

// StatusPalette colors status slices by position, wrapping around.
var StatusPalette = []string{"#3b82f6", "#f59e0b", "#10b981", "#6b7280"}

func PaletteColor(index int) string {
	if index < 0 {
		index = -index
	}
	return StatusPalette[index%len(StatusPalette)]
}
