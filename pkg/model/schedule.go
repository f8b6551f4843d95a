package model

// Per-slot presence states.
const (
	SlotOccupied = "occupied"
	SlotFree     = "free"
	SlotIsLunch  = "lunch"
	SlotIsBreak  = "break"
)

// SlotStatus annotates one bell slot with a student's presence on it.
// Course is the matched course title and is set only for occupied slots.
type SlotStatus struct {
	Name         string       `json:"name"`
	Category     SlotCategory `json:"category"`
	Status       string       `json:"status"`
	Course       string       `json:"course,omitempty"`
	StartMinutes int          `json:"start_minutes"`
	EndMinutes   int          `json:"end_minutes"`
}

// DaySchedule is one student's campus presence on one rotation day.
// Arrival, ClassEnd and Departure are minutes since midnight and nil when
// the student has no obligations that day.
type DaySchedule struct {
	Day             int          `json:"day"`
	Arrival         *int         `json:"arrival"`
	ClassEnd        *int         `json:"class_end"`
	Departure       *int         `json:"departure"`
	Occupied        []string     `json:"occupied"`
	FreeBlocks      []string     `json:"free_blocks"`
	LunchFree       bool         `json:"lunch_free"`
	MayLeaveAtLunch bool         `json:"may_leave_at_lunch"`
	Slots           []SlotStatus `json:"slots"`
}

// StudentSchedule is one student's presence across the full rotation.
type StudentSchedule struct {
	Student          string               `json:"student"`
	Grade            int                  `json:"grade"`
	Days             map[int]*DaySchedule `json:"days"`
	HasCoCurricular  bool                 `json:"has_co_curricular"`
	CoCurricularEnd  int                  `json:"co_curricular_end"`
	CoCurricularName string               `json:"co_curricular_name,omitempty"`
}
