package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hwdbaek77/iTandem-sub000/internal/timegrid"
	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// Parse failures. Each is fatal to the document; retrying without changed
// input cannot succeed.
var (
	ErrHeaderNotFound   = errors.New("schedule header not found")
	ErrTableNotFound    = errors.New("course table not found")
	ErrMalformedPattern = errors.New("malformed day pattern")
)

// Document layout markers for the one supported schedule template.
const (
	TableCaption   = "Course Title Pattern Instructor"
	SemesterMarker = "Semester 2"

	headerScanWindow = 10
)

var (
	// "103442 8/25/2025 11 Doe, Jane Grade:" style header
	headerRe = regexp.MustCompile(`^(\d{3,})\s+(\d{1,2}/\d{1,2}/\d{2,4})\s+(9|1[0-2])\s+(.+?)\s+Grade:`)
	// Looser fallback without the leading id/date columns
	headerFallbackRe = regexp.MustCompile(`^(9|1[0-2])\s+(.+?)\s+Grade:`)
	// "4310-1" style course code at the start of a table row
	courseLineRe = regexp.MustCompile(`^\d{4}-\S+`)
	// Dot-delimited day pattern, e.g. "1.2.x.4.x.6" or "CC.CC.CC.CC.CC.CC"
	patternRe = regexp.MustCompile(`[0-9A-Za-z]+(?:\.[0-9A-Za-z]+)+`)
	// Room code anchored to the end of the title fragment, e.g. "STEM204"
	roomRe = regexp.MustCompile(`(?:^|\s)([A-Z]{1,4}\d{2,3}[A-Z]?)$`)
)

// Parse turns the ordered text lines of one schedule document into a header
// plus bucketed course records.
func Parse(lines []string) (*model.ParsedDocument, error) {
	student, grade, err := extractHeader(lines)
	if err != nil {
		return nil, err
	}

	rows, err := extractTableRows(lines)
	if err != nil {
		return nil, err
	}

	doc := &model.ParsedDocument{Student: student, Grade: grade}
	for _, row := range rows {
		rec, err := parseCourseRow(row)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		switch rec.Category {
		case model.CategoryCoCurricular:
			doc.Buckets.CoCurricular = append(doc.Buckets.CoCurricular, rec)
		case model.CategoryDirectedStudy:
			doc.Buckets.DirectedStudy = append(doc.Buckets.DirectedStudy, rec)
		case model.CategorySeminar:
			doc.Buckets.Seminar = append(doc.Buckets.Seminar, rec)
		default:
			doc.Buckets.Academic = append(doc.Buckets.Academic, rec)
		}
	}
	return doc, nil
}

// extractHeader scans the first few lines for the student name and grade.
func extractHeader(lines []string) (string, int, error) {
	window := headerScanWindow
	if len(lines) < window {
		window = len(lines)
	}
	for i := 0; i < window; i++ {
		line := strings.TrimSpace(lines[i])
		if m := headerRe.FindStringSubmatch(line); m != nil {
			grade, _ := strconv.Atoi(m[3])
			return strings.TrimSpace(m[4]), grade, nil
		}
		if m := headerFallbackRe.FindStringSubmatch(line); m != nil {
			grade, _ := strconv.Atoi(m[1])
			return strings.TrimSpace(m[2]), grade, nil
		}
	}
	return "", 0, fmt.Errorf("%w in first %d lines", ErrHeaderNotFound, window)
}

// extractTableRows joins the wrapped lines of the course table into one
// logical row per course. A line is a new course when it starts with a
// course code; anything else continues the title of the previous course.
func extractTableRows(lines []string) ([]string, error) {
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == TableCaption {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: missing caption %q", ErrTableNotFound, TableCaption)
	}

	var rows []string
	inCourse := false
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == SemesterMarker {
			break
		}
		if line == "" {
			continue
		}
		if courseLineRe.MatchString(line) {
			rows = append(rows, line)
			inCourse = true
		} else if inCourse {
			rows[len(rows)-1] = rows[len(rows)-1] + " " + line
		}
		// Stray content before the first course row is skipped
	}
	return rows, nil
}

// parseCourseRow decomposes one joined table row. Rows without a course code
// prefix yield no record and no error.
func parseCourseRow(row string) (*model.CourseRecord, error) {
	code := courseLineRe.FindString(row)
	if code == "" {
		return nil, nil
	}
	rest := strings.TrimSpace(row[len(code):])

	loc := patternRe.FindStringIndex(rest)
	if loc == nil {
		return nil, fmt.Errorf("%w: no pattern in row %q", ErrMalformedPattern, row)
	}
	pattern := rest[loc[0]:loc[1]]
	segments := strings.Split(pattern, ".")
	if len(segments) != timegrid.NumberOfDays {
		return nil, fmt.Errorf("%w: %q has %d segments, want %d",
			ErrMalformedPattern, pattern, len(segments), timegrid.NumberOfDays)
	}

	title := strings.TrimSpace(rest[:loc[0]])
	room := ""
	if m := roomRe.FindStringSubmatch(title); m != nil {
		room = m[1]
		title = strings.TrimSpace(strings.TrimSuffix(title, m[1]))
	}

	instructor := strings.TrimSpace(rest[loc[1]:])
	instructor = strings.TrimSuffix(instructor, ",")

	rec := &model.CourseRecord{
		Code:       code,
		Title:      title,
		Room:       room,
		Pattern:    pattern,
		Primary:    model.Assignment{Kind: model.AssignNone},
		Category:   model.CategoryAcademic,
		Days:       make(map[int]model.Assignment, timegrid.NumberOfDays),
		Instructor: instructor,
	}
	for i, seg := range segments {
		a := decodeSegment(seg)
		rec.Days[i+1] = a
		if rec.Primary.Kind == model.AssignNone && a.Kind != model.AssignNone {
			rec.Primary = a
			rec.Category = categoryFor(a)
		}
	}
	return rec, nil
}

// decodeSegment maps one pattern segment to its meaning on that rotation day.
func decodeSegment(seg string) model.Assignment {
	switch {
	case seg == "x" || seg == "X":
		return model.Assignment{Kind: model.AssignNone}
	case seg == "DS":
		return model.Assignment{Kind: model.AssignDirectedStudy}
	case seg == "M12":
		return model.Assignment{Kind: model.AssignSeminar}
	case isTwoLetters(seg):
		return model.Assignment{Kind: model.AssignCoCurricular}
	}
	if n, err := strconv.Atoi(seg); err == nil {
		return model.Assignment{Kind: model.AssignBlock, Block: n}
	}
	return model.Assignment{Kind: model.AssignUnknown, Raw: seg}
}

func categoryFor(a model.Assignment) string {
	switch a.Kind {
	case model.AssignCoCurricular:
		return model.CategoryCoCurricular
	case model.AssignDirectedStudy:
		return model.CategoryDirectedStudy
	case model.AssignSeminar:
		return model.CategorySeminar
	}
	return model.CategoryAcademic
}

func isTwoLetters(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
