package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hwdbaek77/iTandem-sub000/internal/csvio"
	"github.com/hwdbaek77/iTandem-sub000/internal/parser"
	"github.com/hwdbaek77/iTandem-sub000/internal/presence"
	"github.com/hwdbaek77/iTandem-sub000/internal/tandem"
	"github.com/hwdbaek77/iTandem-sub000/internal/timegrid"
	"github.com/hwdbaek77/iTandem-sub000/pkg/model"
)

// Program parameters
const (
	RosterFile = "./res/roster.csv"
	ExportFile = ""
)

func main() {
	// Sanity check the rotation template before doing anything with it
	if valid, msg := timegrid.Validate(); !valid {
		fmt.Println("Invalid bell schedule template:")
		fmt.Println(msg)
		os.Exit(1)
	}

	roster, err := csvio.LoadRoster(RosterFile, ',')
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(roster) < 2 {
		fmt.Println("Roster needs at least two students")
		os.Exit(1)
	}

	start := time.Now().UnixNano()

	var schedules []*model.StudentSchedule
	for _, entry := range roster {
		lines, err := csvio.LoadDocument(entry.Document)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		doc, err := parser.Parse(lines)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", entry.Document, err)
			continue
		}

		opts := presence.NewDefaultOptions()
		if entry.CoCurricularEnd != "" {
			end, err := timegrid.TimeToMinutes(entry.CoCurricularEnd)
			if err != nil {
				fmt.Printf("Bad co-curricular end for %s: %v\n", entry.Student, err)
				os.Exit(1)
			}
			opts.CoCurricularEnd = end
		}
		schedules = append(schedules, presence.BuildSchedule(doc.Student, doc.Grade, doc.Buckets, opts))
	}

	if len(schedules) < 2 {
		fmt.Println("Not enough parsed schedules to rank")
		os.Exit(1)
	}

	// First roster entry is the student looking for a partner
	target := schedules[0]
	ranked := tandem.RankPartners(target, schedules)
	end := time.Now().UnixNano()

	outPath, err := csvio.ExportRanking(ranked, ExportFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	csvio.PrintRanking(target.Student, ranked)
	fmt.Printf("Timer: %f ms\n", float64(end-start)/1000000.0)
	fmt.Println("Exported output to: " + outPath)
}
