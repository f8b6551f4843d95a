package model

// DayScore is the per-day breakdown of a pairwise comparison. Each sub-score
// is already rounded to two decimals; Total is their sum (max 90).
type DayScore struct {
	Overlap    float64 `json:"overlap"`
	Stagger    float64 `json:"stagger"`
	Lunch      float64 `json:"lunch"`
	Activities float64 `json:"activities"`
	Total      float64 `json:"total"`
}

// CompatibilityResult is the outcome of scoring one pair of students for
// tandem parking. Days is empty for grade-incompatible pairs.
type CompatibilityResult struct {
	StudentA   string           `json:"student_a"`
	StudentB   string           `json:"student_b"`
	Compatible bool             `json:"compatible"`
	Days       map[int]DayScore `json:"days,omitempty"`
	Average    float64          `json:"average"`
	GradeBonus float64          `json:"grade_bonus"`
	Score      float64          `json:"score"`
}

// MatchCSVRow is the flattened export shape of one CompatibilityResult.
type MatchCSVRow struct {
	StudentA   string  `csv:"student_a"`
	StudentB   string  `csv:"student_b"`
	Compatible bool    `csv:"compatible"`
	Day1       float64 `csv:"day_1"`
	Day2       float64 `csv:"day_2"`
	Day3       float64 `csv:"day_3"`
	Day4       float64 `csv:"day_4"`
	Day5       float64 `csv:"day_5"`
	Day6       float64 `csv:"day_6"`
	Average    float64 `csv:"average"`
	GradeBonus float64 `csv:"grade_bonus"`
	Score      float64 `csv:"score"`
}
