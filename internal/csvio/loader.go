package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// LoadDocument reads a linearized schedule document (one text line per
// logical line) and returns its ordered lines.
func LoadDocument(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

// LoadRoster reads and parses the given csv file for roster data.
func LoadRoster(path string, delim rune) ([]*model.RosterEntry, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	rosterFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rosterFile.Close()

	roster := []*model.RosterEntry{}
	if err := gocsv.UnmarshalFile(rosterFile, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, entry := range roster {
		entry.Student = strings.TrimSpace(entry.Student)
		entry.Document = strings.TrimSpace(entry.Document)
		entry.CoCurricularEnd = strings.TrimSpace(entry.CoCurricularEnd)
	}
	return roster, nil
}
