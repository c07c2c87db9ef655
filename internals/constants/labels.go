package constants

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Labels holds the user-facing strings the dashboard renders.
type Labels struct {
	Tag         language.Tag
	Months      [12]string
	Statuses    map[string]string
	OtherStatus string
	Now         string
	MinutesAgo  string
	HoursAgo    string
	DaysAgo     string
	AddedNote   string
	CreatedTask string
	DidAction   string
	SystemActor string
}

var english = Labels{
	Tag:    language.English,
	Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Statuses: map[string]string{
		StatusNewLead:    "New leads",
		StatusInProgress: "In progress",
		StatusActive:     "Active",
		StatusCompleted:  "Completed",
	},
	OtherStatus: "Other",
	Now:         "now",
	MinutesAgo:  "%d min ago",
	HoursAgo:    "%d hours ago",
	DaysAgo:     "%d days ago",
	AddedNote:   "added a note",
	CreatedTask: "created a task",
	DidAction:   "performed an action",
	SystemActor: "System",
}

var polish = Labels{
	Tag:    language.Polish,
	Months: [12]string{"Sty", "Lut", "Mar", "Kwi", "Maj", "Cze", "Lip", "Sie", "Wrz", "Paź", "Lis", "Gru"},
	Statuses: map[string]string{
		StatusNewLead:    "Nowe zgłoszenia",
		StatusInProgress: "W procesie",
		StatusActive:     "Aktywni",
		StatusCompleted:  "Zakończeni",
	},
	OtherStatus: "Inne",
	Now:         "teraz",
	MinutesAgo:  "%d min temu",
	HoursAgo:    "%d godz. temu",
	DaysAgo:     "%d dni temu",
	AddedNote:   "dodał notatkę",
	CreatedTask: "utworzył zadanie",
	DidAction:   "wykonał działanie",
	SystemActor: "System",
}

var (
	supported = []Labels{english, polish}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Polish})
)

// LabelsFor picks the closest supported locale for a BCP-47 tag or Accept-Language
// value; anything unmatched gets English.
func LabelsFor(locale string) Labels {
	_, idx := language.MatchStrings(matcher, locale)
	if idx < 0 || idx >= len(supported) {
		return english
	}
	return supported[idx]
}

// Month returns the abbreviation for a 1-based month.
func (l Labels) Month(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return l.Months[m-1]
}

func (l Labels) StatusLabel(status string) string {
	if s, ok := l.Statuses[status]; ok {
		return s
	}
	return l.OtherStatus
}

func (l Labels) Minutes(n int) string { return fmt.Sprintf(l.MinutesAgo, n) }
func (l Labels) Hours(n int) string   { return fmt.Sprintf(l.HoursAgo, n) }
func (l Labels) Days(n int) string    { return fmt.Sprintf(l.DaysAgo, n) }

// Collator is not safe for concurrent use; build one per sort.
func (l Labels) Collator() *collate.Collator {
	return collate.New(l.Tag, collate.IgnoreCase)
}
