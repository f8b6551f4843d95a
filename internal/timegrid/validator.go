package timegrid

import (
	"fmt"

	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// Validate checks the rotation template for structural defects.
// Returns false and a message for invalid templates.
func Validate() (bool, string) {
	var message string
	var valid bool = true
	var hasDayDefect bool = false
	var hasOrderDefect bool = false
	var hasRotationDefect bool = false

	blockDays := make(map[int]int)

	for _, day := range Days() {
		slots := DaySlots(day)
		if len(slots) < 6 {
			valid = false
			hasDayDefect = true
			message += fmt.Sprintf("- Day %d has only %d slots\n", day, len(slots))
		}

		lunchCount := 0
		breakCount := 0
		seenBlocks := make(map[int]bool)
		for i, s := range slots {
			switch s.Category {
			case model.SlotLunch:
				lunchCount++
			case model.SlotBreak:
				breakCount++
			case model.SlotBlock:
				if !seenBlocks[s.Block] {
					seenBlocks[s.Block] = true
					blockDays[s.Block]++
				}
			}
			if s.EndMinutes <= s.StartMinutes {
				valid = false
				hasOrderDefect = true
				message += fmt.Sprintf("- Day %d slot %q ends before it starts\n", day, s.Name)
			}
			if i > 0 && slots[i-1].EndMinutes > s.StartMinutes {
				valid = false
				hasOrderDefect = true
				message += fmt.Sprintf("- Day %d slot %q overlaps %q\n", day, s.Name, slots[i-1].Name)
			}
		}
		if lunchCount != 1 {
			valid = false
			hasDayDefect = true
			message += fmt.Sprintf("- Day %d has %d lunch slots\n", day, lunchCount)
		}
		if breakCount != 1 {
			valid = false
			hasDayDefect = true
			message += fmt.Sprintf("- Day %d has %d break slots\n", day, breakCount)
		}
	}

	// Each block must meet on at least 3 days or the rotation doesn't rotate
	for b := 1; b <= NumberOfBlocks; b++ {
		if blockDays[b] < 3 {
			valid = false
			hasRotationDefect = true
			message += fmt.Sprintf("- Block %d meets on only %d days\n", b, blockDays[b])
		}
	}

	if hasRotationDefect {
		message = "[FAIL]: Block rotation check.\n" + message
	} else {
		message = "[  OK]: Block rotation check.\n" + message
	}
	if hasOrderDefect {
		message = "[FAIL]: Slot ordering check.\n" + message
	} else {
		message = "[  OK]: Slot ordering check.\n" + message
	}
	if hasDayDefect {
		message = "[FAIL]: Day structure check.\n" + message
	} else {
		message = "[  OK]: Day structure check.\n" + message
	}

	return valid, message
}
