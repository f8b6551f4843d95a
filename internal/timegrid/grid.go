package timegrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// NumberOfDays is the length of the rotation.
const NumberOfDays = 6

// NumberOfBlocks is the count of numbered academic blocks in the rotation.
const NumberOfBlocks = 7

// TimeToMinutes parses an H:MM or HH:MM 24-hour string into minutes since
// midnight. Callers are expected to supply well-formed strings; malformed
// input is a format error, not a clamped value.
func TimeToMinutes(s string) (int, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected H:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// MinutesToTime is the inverse of TimeToMinutes. No leading zero on the hour.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// OverlapMinutes returns the shared minutes of two intervals. Disjoint and
// merely touching intervals overlap by zero.
func OverlapMinutes(aStart, aEnd, bStart, bEnd int) int {
	low := aStart
	if bStart > low {
		low = bStart
	}
	high := aEnd
	if bEnd < high {
		high = bEnd
	}
	if high <= low {
		return 0
	}
	return high - low
}

// Days returns the rotation day keys in order.
func Days() []int {
	days := make([]int, NumberOfDays)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// DaySlots returns the ordered bell slots of one rotation day. A day outside
// 1-6 is a programming error and panics.
func DaySlots(day int) []model.BellSlot {
	slots, ok := rotation[day]
	if !ok {
		panic(fmt.Sprintf("timegrid: invalid rotation day %d", day))
	}
	return slots
}

// Schedule returns the full six-day bell schedule.
func Schedule() model.BellSchedule {
	return rotation
}

// LunchSlot returns the single lunch slot of the given day.
func LunchSlot(day int) model.BellSlot {
	for _, s := range DaySlots(day) {
		if s.Category == model.SlotLunch {
			return s
		}
	}
	panic(fmt.Sprintf("timegrid: day %d has no lunch slot", day))
}

// rotation is the fixed six-day bell schedule, built once and never mutated.
var rotation = buildRotation()

func mk(name string, block int, category model.SlotCategory, start, end string) model.BellSlot {
	startMin, err := TimeToMinutes(start)
	if err != nil {
		panic(err)
	}
	endMin, err := TimeToMinutes(end)
	if err != nil {
		panic(err)
	}
	return model.BellSlot{
		Name:         name,
		Block:        block,
		Category:     category,
		Start:        start,
		End:          end,
		StartMinutes: startMin,
		EndMinutes:   endMin,
	}
}

func block(n int, start, end string) model.BellSlot {
	return mk(fmt.Sprintf("Block %d", n), n, model.SlotBlock, start, end)
}

// buildRotation lays out the daily frame and rotates blocks 1-7 through the
// four block positions so that every block meets on at least 3 of 6 days.
func buildRotation() model.BellSchedule {
	lineups := map[int][4]int{
		1: {1, 2, 3, 4},
		2: {5, 6, 7, 1},
		3: {2, 3, 4, 5},
		4: {6, 7, 1, 2},
		5: {3, 4, 5, 6},
		6: {7, 1, 2, 3},
	}
	morning := map[int]model.BellSlot{
		1: mk("Community Meeting", 0, model.SlotCommunity, "9:40", "10:25"),
		2: mk("Senior Seminar", 0, model.SlotSeminar, "9:40", "10:25"),
		3: mk("Directed Study", 0, model.SlotDirectedStudy, "9:40", "10:25"),
		4: mk("Sophomore Seminar", 0, model.SlotSeminar, "9:40", "10:25"),
		5: mk("Junior Seminar", 0, model.SlotSeminar, "9:40", "10:25"),
		6: mk("Directed Study", 0, model.SlotDirectedStudy, "9:40", "10:25"),
	}
	afternoon := map[int]model.BellSlot{
		1: mk("Collaboration", 0, model.SlotCollaboration, "15:30", "16:10"),
		2: mk("Office Hours", 0, model.SlotOfficeHours, "15:30", "16:10"),
		3: mk("Collaboration", 0, model.SlotCollaboration, "15:30", "16:10"),
		4: mk("Office Hours", 0, model.SlotOfficeHours, "15:30", "16:10"),
		5: mk("Community Meeting", 0, model.SlotCommunity, "15:30", "16:10"),
		6: mk("Collaboration", 0, model.SlotCollaboration, "15:30", "16:10"),
	}

	schedule := make(model.BellSchedule, NumberOfDays)
	for day := 1; day <= NumberOfDays; day++ {
		blocks := lineups[day]
		schedule[day] = []model.BellSlot{
			block(blocks[0], "8:00", "9:15"),
			mk("Morning Break", 0, model.SlotBreak, "9:15", "9:35"),
			morning[day],
			block(blocks[1], "10:30", "11:45"),
			mk("Lunch", 0, model.SlotLunch, "11:50", "12:40"),
			block(blocks[2], "12:45", "14:00"),
			block(blocks[3], "14:10", "15:25"),
			afternoon[day],
		}
	}
	return schedule
}
