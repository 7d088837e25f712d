package storage

import (
	"time"

	"github.com/adityaraj161616/campus-chatbot-go/internal/i18n"
)

// Program represents a degree program offered by the campus.
type Program struct {
	Code     string // Uppercase unique code, e.g. "BTECH"
	Name     i18n.Text
	Duration int // Length in semesters
	IsActive bool
}

// Branch represents a specialization within a program.
// SemesterFee is in whole rupees.
type Branch struct {
	ProgramCode string
	Code        string // Unique within the program, e.g. "CSE"
	Name        i18n.Text
	SemesterFee int
	IsActive    bool
}

// TimetableEntry is one scheduled class slot.
// Time stays verbatim in every language; Venue often holds room codes
// that must survive translation unchanged.
type TimetableEntry struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Faculty string `json:"faculty,omitempty"`
	Venue   string `json:"venue,omitempty"`
}

// Week holds the class slots per weekday. JSON keys match the stored
// document format.
type Week struct {
	Monday    []TimetableEntry `json:"MONDAY,omitempty"`
	Tuesday   []TimetableEntry `json:"TUESDAY,omitempty"`
	Wednesday []TimetableEntry `json:"WEDNESDAY,omitempty"`
	Thursday  []TimetableEntry `json:"THURSDAY,omitempty"`
	Friday    []TimetableEntry `json:"FRIDAY,omitempty"`
	Saturday  []TimetableEntry `json:"SATURDAY,omitempty"`
}

// DaySchedule pairs a weekday with its slots for ordered rendering.
type DaySchedule struct {
	Day     string
	Entries []TimetableEntry
}

// Ordered returns the week's non-empty days, Monday through Friday first
// and Saturday last.
func (w Week) Ordered() []DaySchedule {
	out := make([]DaySchedule, 0, 6)
	for _, d := range []DaySchedule{
		{Day: "Monday", Entries: w.Monday},
		{Day: "Tuesday", Entries: w.Tuesday},
		{Day: "Wednesday", Entries: w.Wednesday},
		{Day: "Thursday", Entries: w.Thursday},
		{Day: "Friday", Entries: w.Friday},
		{Day: "Saturday", Entries: w.Saturday},
	} {
		if len(d.Entries) > 0 {
			out = append(out, d)
		}
	}
	return out
}

// ClassTimetable is the weekly class schedule for one program semester.
type ClassTimetable struct {
	ProgramCode  string
	Semester     int
	Week         Week
	AcademicYear string
	IsActive     bool
}

// Scholarship represents a financial aid scheme. NameEN doubles as the
// stable identifier that session state refers back to.
type Scholarship struct {
	NameEN             string
	Name               i18n.Text
	Description        i18n.Text
	Eligibility        i18n.Text
	ApplicationProcess i18n.Text
	Amount             string
	Deadline           time.Time // Zero when open-ended
	IsActive           bool
}

// Circular is a campus-wide notice.
type Circular struct {
	ID            int64
	Title         i18n.Text
	Content       i18n.Text
	Category      string // exam, scholarship, fees, general, holiday, event
	Priority      int    // Higher sorts first, default 5
	PublishedDate time.Time
	LastDate      time.Time // Zero when not applicable
	IsActive      bool
}
