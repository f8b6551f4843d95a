package presence

import (
	"strings"

	"github.com/hwdbaek77/iTandem-sub000/internal/timegrid"
	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// DefaultCoCurricularEnd is 17:00, the default daily end of athletics and
// other co-curriculars.
const DefaultCoCurricularEnd = 17 * 60

// Seniors are the only grade allowed off campus during lunch.
const mayLeaveGrade = 12

// Options tune a single schedule build.
type Options struct {
	// CoCurricularEnd is minutes since midnight; applies only to students
	// with a co-curricular record.
	CoCurricularEnd int
}

// NewDefaultOptions returns the standard build options.
func NewDefaultOptions() Options {
	return Options{CoCurricularEnd: DefaultCoCurricularEnd}
}

// BuildSchedule reconstructs one student's per-day campus presence from
// their bucketed course records and the rotation template.
func BuildSchedule(student string, grade int, buckets model.CourseBuckets, opts Options) *model.StudentSchedule {
	if opts.CoCurricularEnd == 0 {
		opts.CoCurricularEnd = DefaultCoCurricularEnd
	}

	sched := &model.StudentSchedule{
		Student:         student,
		Grade:           grade,
		Days:            make(map[int]*model.DaySchedule, timegrid.NumberOfDays),
		HasCoCurricular: len(buckets.CoCurricular) > 0,
	}
	if sched.HasCoCurricular {
		sched.CoCurricularEnd = opts.CoCurricularEnd
		sched.CoCurricularName = buckets.CoCurricular[0].Title
	}

	for _, day := range timegrid.Days() {
		sched.Days[day] = buildDay(day, grade, buckets, sched.HasCoCurricular, opts.CoCurricularEnd)
	}
	return sched
}

func buildDay(day int, grade int, buckets model.CourseBuckets, hasCoCurricular bool, coCurricularEnd int) *model.DaySchedule {
	active := activeBlocks(day, buckets.Academic)

	ds := &model.DaySchedule{
		Day:             day,
		Occupied:        []string{},
		FreeBlocks:      []string{},
		MayLeaveAtLunch: grade == mayLeaveGrade,
	}

	for _, slot := range timegrid.DaySlots(day) {
		status := model.SlotStatus{
			Name:         slot.Name,
			Category:     slot.Category,
			StartMinutes: slot.StartMinutes,
			EndMinutes:   slot.EndMinutes,
		}
		switch slot.Category {
		case model.SlotBlock:
			if title, ok := active[slot.Block]; ok {
				status.Status = model.SlotOccupied
				status.Course = title
			} else {
				status.Status = model.SlotFree
				ds.FreeBlocks = append(ds.FreeBlocks, slot.Name)
			}
		case model.SlotDirectedStudy:
			if title, ok := directedStudyToday(day, buckets.DirectedStudy); ok {
				status.Status = model.SlotOccupied
				status.Course = title
			} else {
				status.Status = model.SlotFree
			}
		case model.SlotSeminar:
			if title, ok := seminarToday(day, grade, slot.Name, buckets.Seminar); ok {
				status.Status = model.SlotOccupied
				status.Course = title
			} else {
				status.Status = model.SlotFree
			}
		case model.SlotLunch:
			status.Status = model.SlotIsLunch
		case model.SlotBreak:
			status.Status = model.SlotIsBreak
		default:
			// collaboration, community, office hours
			status.Status = model.SlotFree
		}
		if status.Status == model.SlotOccupied {
			ds.Occupied = append(ds.Occupied, slot.Name)
		}
		ds.Slots = append(ds.Slots, status)
	}

	for _, s := range ds.Slots {
		if s.Status != model.SlotOccupied {
			continue
		}
		start := s.StartMinutes
		end := s.EndMinutes
		if ds.Arrival == nil || start < *ds.Arrival {
			ds.Arrival = &start
		}
		if ds.ClassEnd == nil || end > *ds.ClassEnd {
			ds.ClassEnd = &end
		}
	}

	if hasCoCurricular {
		departure := coCurricularEnd
		if ds.ClassEnd != nil && *ds.ClassEnd > departure {
			departure = *ds.ClassEnd
		}
		ds.Departure = &departure
	} else if ds.ClassEnd != nil {
		departure := *ds.ClassEnd
		ds.Departure = &departure
	}

	lunch := timegrid.LunchSlot(day)
	ds.LunchFree = straddlesLunch(ds.Slots, lunch.StartMinutes, lunch.EndMinutes)

	return ds
}

// activeBlocks maps block number to course title for one day.
func activeBlocks(day int, academic []*model.CourseRecord) map[int]string {
	active := make(map[int]string)
	for _, rec := range academic {
		a := rec.Days[day]
		if a.Kind == model.AssignBlock {
			active[a.Block] = rec.Title
		}
	}
	return active
}

func directedStudyToday(day int, records []*model.CourseRecord) (string, bool) {
	for _, rec := range records {
		if rec.Days[day].Kind != model.AssignNone {
			return rec.Title, true
		}
	}
	return "", false
}

// seminarToday keeps the two attendance branches independent: an explicit
// midday-seminar record pointing at the Senior slot, or a slot named for the
// student's own grade.
func seminarToday(day int, grade int, slotName string, records []*model.CourseRecord) (string, bool) {
	if strings.Contains(slotName, "Senior") {
		for _, rec := range records {
			if rec.Days[day].Kind == model.AssignSeminar {
				return rec.Title, true
			}
		}
	}
	if keyword := gradeKeyword(grade); keyword != "" && strings.Contains(slotName, keyword) {
		return slotName, true
	}
	return "", false
}

func gradeKeyword(grade int) string {
	switch grade {
	case 10:
		return "Sophomore"
	case 11:
		return "Junior"
	case 12:
		return "Senior"
	}
	return ""
}

// straddlesLunch reports whether the student has an obligation ending at or
// before lunch and another starting at or after it.
func straddlesLunch(slots []model.SlotStatus, lunchStart, lunchEnd int) bool {
	before := false
	after := false
	for _, s := range slots {
		if s.Status != model.SlotOccupied {
			continue
		}
		if s.EndMinutes <= lunchStart {
			before = true
		}
		if s.StartMinutes >= lunchEnd {
			after = true
		}
	}
	return before && after
}
