package model

// SlotCategory classifies a bell schedule interval.
type SlotCategory string

const (
	SlotBlock         SlotCategory = "block"
	SlotSeminar       SlotCategory = "seminar"
	SlotLunch         SlotCategory = "lunch"
	SlotBreak         SlotCategory = "break"
	SlotDirectedStudy SlotCategory = "directed_study"
	SlotCollaboration SlotCategory = "collaboration"
	SlotCommunity     SlotCategory = "community"
	SlotOfficeHours   SlotCategory = "office_hours"
)

// BellSlot is one scheduled interval on one rotation day. Block is 0 for
// slots that are not numbered academic blocks.
type BellSlot struct {
	Name         string       `json:"name"`
	Block        int          `json:"block,omitempty"`
	Category     SlotCategory `json:"category"`
	Start        string       `json:"start"`
	End          string       `json:"end"`
	StartMinutes int          `json:"start_minutes"`
	EndMinutes   int          `json:"end_minutes"`
}

// BellSchedule maps a rotation day (1-6) to its ordered slots.
type BellSchedule map[int][]BellSlot
