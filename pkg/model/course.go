package model

// Assignment kinds decoded from one segment of the six-day pattern string.
const (
	AssignNone          = "none"
	AssignBlock         = "block"
	AssignCoCurricular  = "co_curricular"
	AssignDirectedStudy = "directed_study"
	AssignSeminar       = "seminar"
	AssignUnknown       = "unknown"
)

// Course categories derived from the first active pattern segment.
const (
	CategoryAcademic      = "academic"
	CategoryCoCurricular  = "co_curricular"
	CategoryDirectedStudy = "directed_study"
	CategorySeminar       = "seminar"
)

// Assignment is the decoded meaning of one pattern segment. Block is set
// only when Kind is AssignBlock; Raw preserves unrecognized tokens verbatim.
type Assignment struct {
	Kind  string `json:"kind"`
	Block int    `json:"block,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// CourseRecord is one row from a parsed schedule document.
type CourseRecord struct {
	Code       string             `json:"code"`
	Title      string             `json:"title"`
	Room       string             `json:"room,omitempty"`
	Pattern    string             `json:"pattern"`
	Primary    Assignment         `json:"primary"`
	Category   string             `json:"category"`
	Days       map[int]Assignment `json:"days"`
	Instructor string             `json:"instructor"`
}

// CourseBuckets partitions the records of one document by category.
type CourseBuckets struct {
	Academic      []*CourseRecord `json:"academic"`
	CoCurricular  []*CourseRecord `json:"co_curricular"`
	DirectedStudy []*CourseRecord `json:"directed_study"`
	Seminar       []*CourseRecord `json:"seminar"`
}

// ParsedDocument is the parser output for one student's schedule document.
type ParsedDocument struct {
	Student string        `json:"student"`
	Grade   int           `json:"grade"`
	Buckets CourseBuckets `json:"buckets"`
}

// RosterEntry is one row of the roster CSV consumed by the demo driver.
type RosterEntry struct {
	Student         string `csv:"Student"`
	Document        string `csv:"Document"`
	CoCurricularEnd string `csv:"Co_Curricular_End"`
}
