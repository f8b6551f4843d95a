package tandem

import (
	"fmt"
	"math"
	"sort"

	"github.com/hwdbaek77/iTandem-sub000/internal/timegrid"
	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// Sub-score weights. The four maxima sum to 90; the grade bonus tops the
// scale off at 100.
const (
	MaxOverlapScore    = 35.0
	MaxStaggerScore    = 25.0
	MaxLunchScore      = 15.0
	MaxActivitiesScore = 15.0
	GradeBonus         = 10.0

	// Stagger gaps are normalized over [-600, +600] minutes.
	staggerWindow = 600.0
	// Departure differences cap out at 3 hours.
	activitiesCap = 180.0
)

// allowedGradePairs is the fixed set of grade combinations eligible for
// tandem parking. Everything else is incompatible outright.
var allowedGradePairs = map[[2]int]bool{
	{12, 12}: true,
	{11, 11}: true,
	{11, 10}: true,
	{10, 11}: true,
	{10, 10}: true,
}

// Compute scores one pair of students. Grade-incompatible pairs short-circuit
// to a zero score with no per-day breakdown.
func Compute(a, b *model.StudentSchedule) *model.CompatibilityResult {
	if !allowedGradePairs[[2]int{a.Grade, b.Grade}] {
		return newResult(a.Student, b.Student, false, nil, 0, 0)
	}

	days := make(map[int]model.DayScore, timegrid.NumberOfDays)
	sum := 0.0
	for _, day := range timegrid.Days() {
		score := scoreDay(a.Days[day], b.Days[day])
		days[day] = score
		sum += score.Total
	}
	average := sum / float64(timegrid.NumberOfDays)

	return newResult(a.Student, b.Student, true, days, average, GradeBonus)
}

// RankPartners scores the target against every other candidate and sorts
// descending by final score. Incompatible matches are kept; ties stay in
// encounter order.
func RankPartners(target *model.StudentSchedule, pool []*model.StudentSchedule) []*model.CompatibilityResult {
	results := make([]*model.CompatibilityResult, 0, len(pool))
	for _, candidate := range pool {
		if candidate.Student == target.Student {
			continue
		}
		results = append(results, Compute(target, candidate))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func scoreDay(a, b *model.DaySchedule) model.DayScore {
	score := model.DayScore{
		Overlap:    round2(overlapScore(a, b)),
		Stagger:    round2(staggerScore(a, b)),
		Lunch:      round2(lunchScore(a, b)),
		Activities: round2(activitiesScore(a, b)),
	}
	score.Total = score.Overlap + score.Stagger + score.Lunch + score.Activities
	return score
}

// overlapScore rewards pairs whose occupied slots share as little time as
// possible. A day with no obligations for either student cannot conflict.
func overlapScore(a, b *model.DaySchedule) float64 {
	if a.Arrival == nil || b.Arrival == nil {
		return MaxOverlapScore
	}
	totalA := occupiedMinutes(a)
	totalB := occupiedMinutes(b)
	smaller := totalA
	if totalB < smaller {
		smaller = totalB
	}
	if smaller == 0 {
		return MaxOverlapScore
	}
	shared := 0
	for _, sa := range a.Slots {
		if sa.Status != model.SlotOccupied {
			continue
		}
		for _, sb := range b.Slots {
			if sb.Status != model.SlotOccupied {
				continue
			}
			shared += timegrid.OverlapMinutes(sa.StartMinutes, sa.EndMinutes, sb.StartMinutes, sb.EndMinutes)
		}
	}
	normalized := float64(shared) / float64(smaller)
	return MaxOverlapScore * (1 - normalized)
}

// staggerScore rewards a clean handoff: the later arrival showing up after
// the earlier student has already left.
func staggerScore(a, b *model.DaySchedule) float64 {
	if a.Arrival == nil || b.Arrival == nil {
		return MaxStaggerScore
	}
	first, second := a, b
	if *b.Arrival < *a.Arrival {
		first, second = b, a
	}
	gap := float64(*second.Arrival - *first.Departure)
	normalized := (gap + staggerWindow) / (2 * staggerWindow)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return MaxStaggerScore * normalized
}

// lunchScore is categorical: the spot works best when exactly one student
// can take it off campus at midday.
func lunchScore(a, b *model.DaySchedule) float64 {
	if a.Arrival == nil || b.Arrival == nil {
		return MaxLunchScore
	}
	aLeaves := a.MayLeaveAtLunch && a.LunchFree
	bLeaves := b.MayLeaveAtLunch && b.LunchFree
	switch {
	case aLeaves && bLeaves:
		return 0.3 * MaxLunchScore
	case aLeaves || bLeaves:
		return MaxLunchScore
	}
	return 0.5 * MaxLunchScore
}

// activitiesScore spreads departures apart; identical departure times are a
// maximal conflict.
func activitiesScore(a, b *model.DaySchedule) float64 {
	if a.Departure == nil || b.Departure == nil {
		return MaxActivitiesScore / 2
	}
	diff := float64(*a.Departure - *b.Departure)
	if diff < 0 {
		diff = -diff
	}
	if diff > activitiesCap {
		diff = activitiesCap
	}
	return MaxActivitiesScore * diff / activitiesCap
}

func occupiedMinutes(d *model.DaySchedule) int {
	total := 0
	for _, s := range d.Slots {
		if s.Status == model.SlotOccupied {
			total += s.EndMinutes - s.StartMinutes
		}
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// newResult asserts the score invariant: a final score outside [0, 100] is a
// scoring bug, not a data state.
func newResult(studentA, studentB string, compatible bool, days map[int]model.DayScore, average, bonus float64) *model.CompatibilityResult {
	score := round2(average + bonus)
	if score < 0 || score > 100 {
		panic(fmt.Sprintf("tandem: score %f out of range for %s/%s", score, studentA, studentB))
	}
	return &model.CompatibilityResult{
		StudentA:   studentA,
		StudentB:   studentB,
		Compatible: compatible,
		Days:       days,
		Average:    round2(average),
		GradeBonus: bonus,
		Score:      score,
	}
}
