package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// ExportRanking formats ranked compatibility results into MatchCSVRow
// structs and writes them to the CSV file specified by the given path.
// An empty path gets a generated run id. Returns the written path.
func ExportRanking(results []*model.CompatibilityResult, path string) (string, error) {
	if path == "" {
		path = "matches-" + uuid.NewString() + ".csv"
	}
	rows := formatRanking(results)

	// Remove file if exists
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ExportRankingString renders the ranked results as a CSV string.
func ExportRankingString(results []*model.CompatibilityResult) (string, error) {
	rows := formatRanking(results)
	return gocsv.MarshalString(&rows)
}

// PrintRanking prints a one-line summary per candidate, best match first.
func PrintRanking(target string, results []*model.CompatibilityResult) {
	fmt.Printf("Tandem partners for %s:\n", target)
	for i, r := range results {
		status := "ok"
		if !r.Compatible {
			status = "grade mismatch"
		}
		fmt.Printf("%2d. %-24s %6.2f  %s\n", i+1, r.StudentB, r.Score, status)
	}
	fmt.Printf("Printed rows: %d\n", len(results))
}

func formatRanking(results []*model.CompatibilityResult) []*model.MatchCSVRow {
	formatted := []*model.MatchCSVRow{}
	for _, r := range results {
		row := &model.MatchCSVRow{
			StudentA:   r.StudentA,
			StudentB:   r.StudentB,
			Compatible: r.Compatible,
			Day1:       r.Days[1].Total,
			Day2:       r.Days[2].Total,
			Day3:       r.Days[3].Total,
			Day4:       r.Days[4].Total,
			Day5:       r.Days[5].Total,
			Day6:       r.Days[6].Total,
			Average:    r.Average,
			GradeBonus: r.GradeBonus,
			Score:      r.Score,
		}
		formatted = append(formatted, row)
	}
	return formatted
}
