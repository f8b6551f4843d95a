package tandem

import (
	"testing"

	"github.com/hwdbaek77/iTandem-sub000/internal/presence"
	"github.com/hwdbaek77/iTandem-sub000/internal/timegrid"
	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// occupiedDay builds a DaySchedule from raw occupied intervals (minutes).
// departure < 0 means "leave when classes end".
func occupiedDay(day int, intervals [][2]int, departure int, mayLeave, lunchFree bool) *model.DaySchedule {
	d := &model.DaySchedule{Day: day, MayLeaveAtLunch: mayLeave, LunchFree: lunchFree}
	for _, iv := range intervals {
		start, end := iv[0], iv[1]
		d.Slots = append(d.Slots, model.SlotStatus{
			Status:       model.SlotOccupied,
			StartMinutes: start,
			EndMinutes:   end,
		})
		if d.Arrival == nil || start < *d.Arrival {
			d.Arrival = &start
		}
		if d.ClassEnd == nil || end > *d.ClassEnd {
			d.ClassEnd = &end
		}
	}
	if d.ClassEnd != nil {
		dep := *d.ClassEnd
		if departure >= 0 {
			dep = departure
		}
		d.Departure = &dep
	}
	return d
}

func emptyRotation(student string, grade int) *model.StudentSchedule {
	s := &model.StudentSchedule{Student: student, Grade: grade, Days: map[int]*model.DaySchedule{}}
	for _, day := range timegrid.Days() {
		s.Days[day] = occupiedDay(day, nil, -1, grade == 12, false)
	}
	return s
}

func TestWeightConservation(t *testing.T) {
	if MaxOverlapScore+MaxStaggerScore+MaxLunchScore+MaxActivitiesScore != 90 {
		t.Error("day sub-score maxima must sum to 90")
	}
	if MaxOverlapScore+MaxStaggerScore+MaxLunchScore+MaxActivitiesScore+GradeBonus != 100 {
		t.Error("day maxima plus grade bonus must sum to 100")
	}
}

func TestGradeGateTotality(t *testing.T) {
	// A senior with anyone younger, or any grade-9 pairing, is out
	blocked := [][2]int{{12, 11}, {11, 12}, {12, 10}, {10, 12}, {12, 9}, {9, 9}, {9, 10}, {11, 9}}
	for _, pair := range blocked {
		a := emptyRotation("A", pair[0])
		b := emptyRotation("B", pair[1])
		r := Compute(a, b)
		if r.Compatible {
			t.Errorf("grades %v should be incompatible", pair)
		}
		if r.Score != 0 || r.GradeBonus != 0 {
			t.Errorf("grades %v: score = %f bonus = %f, want 0", pair, r.Score, r.GradeBonus)
		}
		if len(r.Days) != 0 {
			t.Errorf("grades %v: day breakdown should be skipped", pair)
		}
	}

	allowed := [][2]int{{12, 12}, {11, 11}, {11, 10}, {10, 11}, {10, 10}}
	for _, pair := range allowed {
		r := Compute(emptyRotation("A", pair[0]), emptyRotation("B", pair[1]))
		if !r.Compatible || r.GradeBonus != GradeBonus {
			t.Errorf("grades %v should be compatible with full bonus", pair)
		}
	}
}

// The reproducible scenario: on day 1, A sits 8:00-9:15 and 10:30-11:45
// while B only sits 12:45-14:00. The other five days are empty.
func TestConcreteScenario(t *testing.T) {
	a := emptyRotation("A", 11)
	a.Days[1] = occupiedDay(1, [][2]int{{480, 555}, {630, 705}}, -1, false, false)
	b := emptyRotation("B", 11)
	b.Days[1] = occupiedDay(1, [][2]int{{765, 840}}, -1, false, false)

	r := Compute(a, b)
	day := r.Days[1]
	if day.Overlap != 35 {
		t.Errorf("overlap = %f, want 35", day.Overlap)
	}
	// gap = 12:45 - 11:45 = 60min -> 25 * (60+600)/1200
	if day.Stagger != 13.75 {
		t.Errorf("stagger = %f, want 13.75", day.Stagger)
	}
	// neither student is a senior
	if day.Lunch != 7.5 {
		t.Errorf("lunch = %f, want 7.5", day.Lunch)
	}
	// departures 11:45 vs 14:00 -> 15 * 135/180
	if day.Activities != 11.25 {
		t.Errorf("activities = %f, want 11.25", day.Activities)
	}
	if day.Total != 67.5 {
		t.Errorf("day total = %f, want 67.5", day.Total)
	}

	// Empty days score 35 + 25 + 15 + 7.5 = 82.5
	for d := 2; d <= 6; d++ {
		if r.Days[d].Total != 82.5 {
			t.Errorf("day %d total = %f, want 82.5", d, r.Days[d].Total)
		}
	}
	// (67.5 + 5*82.5) / 6 + 10
	if r.Score != 90 {
		t.Errorf("final score = %f, want 90", r.Score)
	}
}

// Two students with identical full seven-block schedules make the worst
// possible tandem pair: all overlap, no stagger, identical departures.
func TestIdenticalFullSchedulesScoreBelowFifty(t *testing.T) {
	var records []*model.CourseRecord
	for b := 1; b <= timegrid.NumberOfBlocks; b++ {
		days := make(map[int]model.Assignment, timegrid.NumberOfDays)
		for _, day := range timegrid.Days() {
			days[day] = model.Assignment{Kind: model.AssignNone}
			for _, slot := range timegrid.DaySlots(day) {
				if slot.Category == model.SlotBlock && slot.Block == b {
					days[day] = model.Assignment{Kind: model.AssignBlock, Block: b}
				}
			}
		}
		records = append(records, &model.CourseRecord{
			Title:    "Course",
			Category: model.CategoryAcademic,
			Days:     days,
		})
	}
	buckets := model.CourseBuckets{Academic: records}
	a := presence.BuildSchedule("A", 11, buckets, presence.NewDefaultOptions())
	b := presence.BuildSchedule("B", 11, buckets, presence.NewDefaultOptions())

	r := Compute(a, b)
	if !r.Compatible {
		t.Fatal("same-grade juniors must be compatible")
	}
	if r.Score >= 50 {
		t.Errorf("identical schedules scored %f, want < 50", r.Score)
	}
	for _, day := range timegrid.Days() {
		if r.Days[day].Overlap != 0 {
			t.Errorf("day %d overlap sub-score = %f, want 0", day, r.Days[day].Overlap)
		}
		if r.Days[day].Activities != 0 {
			t.Errorf("day %d activities sub-score = %f, want 0", day, r.Days[day].Activities)
		}
	}
}

func TestDisjointSchedulesMaxOverlapScore(t *testing.T) {
	a := emptyRotation("A", 10)
	b := emptyRotation("B", 10)
	for _, day := range timegrid.Days() {
		a.Days[day] = occupiedDay(day, [][2]int{{480, 555}}, -1, false, false)
		b.Days[day] = occupiedDay(day, [][2]int{{765, 840}, {850, 925}}, -1, false, false)
	}
	r := Compute(a, b)
	for _, day := range timegrid.Days() {
		if r.Days[day].Overlap != MaxOverlapScore {
			t.Errorf("day %d overlap = %f, want %f", day, r.Days[day].Overlap, MaxOverlapScore)
		}
	}
}

func TestLunchScoreCategories(t *testing.T) {
	mk := func(mayLeave, lunchFree bool) *model.DaySchedule {
		return occupiedDay(1, [][2]int{{480, 555}}, -1, mayLeave, lunchFree)
	}
	cases := []struct {
		a, b *model.DaySchedule
		want float64
	}{
		{mk(true, true), mk(true, true), 4.5},   // both can leave
		{mk(true, true), mk(false, true), 15},   // exactly one
		{mk(true, false), mk(false, true), 7.5}, // may-leave without a free lunch doesn't count
		{mk(false, false), mk(false, false), 7.5},
	}
	for i, c := range cases {
		if got := lunchScore(c.a, c.b); got != c.want {
			t.Errorf("case %d: lunch = %f, want %f", i, got, c.want)
		}
	}
}

func TestActivitiesScoreUnknownDeparture(t *testing.T) {
	known := occupiedDay(1, [][2]int{{480, 555}}, -1, false, false)
	unknown := occupiedDay(1, nil, -1, false, false)
	if got := activitiesScore(known, unknown); got != MaxActivitiesScore/2 {
		t.Errorf("unknown departure = %f, want %f", got, MaxActivitiesScore/2)
	}
}

func TestRankPartners(t *testing.T) {
	target := emptyRotation("Target", 11)
	target.Days[1] = occupiedDay(1, [][2]int{{480, 705}}, -1, false, false)

	good := emptyRotation("Good", 11)
	good.Days[1] = occupiedDay(1, [][2]int{{765, 925}}, -1, false, false)

	bad := emptyRotation("Bad", 11)
	bad.Days[1] = occupiedDay(1, [][2]int{{480, 705}}, -1, false, false)

	senior := emptyRotation("Senior", 12)

	pool := []*model.StudentSchedule{senior, bad, target, good}
	ranked := RankPartners(target, pool)

	if len(ranked) != 3 {
		t.Fatalf("ranked %d candidates, want 3 (self excluded)", len(ranked))
	}
	if ranked[0].StudentB != "Good" {
		t.Errorf("best match = %s", ranked[0].StudentB)
	}
	if ranked[len(ranked)-1].StudentB != "Senior" {
		t.Errorf("worst match = %s, want the incompatible senior", ranked[len(ranked)-1].StudentB)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Error("results not sorted descending")
		}
	}
}

func TestRankPartnersStableTies(t *testing.T) {
	target := emptyRotation("Target", 11)
	twinA := emptyRotation("TwinA", 11)
	twinB := emptyRotation("TwinB", 11)
	ranked := RankPartners(target, []*model.StudentSchedule{twinA, twinB})
	if ranked[0].StudentB != "TwinA" || ranked[1].StudentB != "TwinB" {
		t.Errorf("tie order changed: %s, %s", ranked[0].StudentB, ranked[1].StudentB)
	}
}
