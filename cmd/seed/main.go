// Command seed resets the festival database and loads data into it:
// either the built-in sample lineup (default) or a real lineup CSV as
// produced by the schedule scraper, with columns
// artist,stage,start_time,end_time,day,image_url.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/festivalapp/festival-api/internal/config"
	"github.com/festivalapp/festival-api/internal/database"
	"github.com/festivalapp/festival-api/internal/model"
	"github.com/festivalapp/festival-api/internal/repository"
)

func main() {
	csvPath := flag.String("csv", "", "lineup CSV to import instead of the sample data")
	day1 := flag.String("day1", "2025-04-26", "calendar date for 'Saturday' rows in the CSV")
	day2 := flag.String("day2", "2025-04-27", "calendar date for 'Sunday' rows in the CSV")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := database.Reset(db, cfg.DBDriver); err != nil {
		log.Fatalf("reset database: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepo(db)
	sets := repository.NewSetRepo(db)
	selections := repository.NewSelectionRepo(db)

	if *csvPath != "" {
		n, err := importLineup(ctx, sets, *csvPath, map[string]string{
			"saturday": *day1,
			"sunday":   *day2,
		})
		if err != nil {
			log.Fatalf("import lineup: %v", err)
		}
		log.Printf("imported %d sets from %s", n, *csvPath)
		return
	}

	if err := seedSample(ctx, users, sets, selections); err != nil {
		log.Fatalf("seed sample data: %v", err)
	}
	log.Println("database seeded successfully")
}

// sampleSet describes one sample performance as an offset from the
// seed base time (today at noon).
type sampleSet struct {
	artist, stage, description string
	startOffset, endOffset     time.Duration
}

var sampleSets = []sampleSet{
	{"DJ Awesome", "Main Stage", "Opening DJ set", 0, time.Hour},
	{"Acoustic Singer", "Alternative Stage", "Unplugged acoustic session", 0, 45 * time.Minute},
	{"Rock Band", "Main Stage", "Headlining rock band", 90 * time.Minute, 150 * time.Minute},
	{"Pop Star", "Dance Tent", "Chart-topping pop act", time.Hour, 2 * time.Hour},
	{"Indie Group", "Alternative Stage", "Up and coming indie act", 2 * time.Hour, 3 * time.Hour},
	{"EDM Producer", "Dance Tent", "Electronic dance music", 150 * time.Minute, 4 * time.Hour},
	{"Folk Duo", "Acoustic Lounge", "Traditional folk music", 150 * time.Minute, 195 * time.Minute},
	{"Hip Hop Collective", "Main Stage", "Hip hop showcase", 3 * time.Hour, 4 * time.Hour},
	{"Jazz Ensemble", "Alternative Stage", "Jazz fusion performance", 210 * time.Minute, 270 * time.Minute},
	{"Metal Band", "Rock Stage", "Heavy metal experience", 4 * time.Hour, 5 * time.Hour},
}

// samplePicks maps sample users to the sets they plan to attend,
// by position in sampleSets.
var samplePicks = map[string][]int{
	"Alice":   {0, 3, 1},
	"Bob":     {2, 5},
	"Charlie": {4, 8, 6},
	"David":   {7, 9},
}

// seedSample loads the demo lineup: four attendees, ten sets across
// four stages starting today at noon, and a handful of selections.
func seedSample(ctx context.Context, users *repository.UserRepo, sets *repository.SetRepo, selections *repository.SelectionRepo) error {
	now := time.Now()
	base := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)

	setIDs := make([]uint64, len(sampleSets))
	for i, ss := range sampleSets {
		s := &model.Set{
			Artist:      ss.artist,
			Stage:       ss.stage,
			StartTime:   base.Add(ss.startOffset).Format(model.WireTime),
			EndTime:     base.Add(ss.endOffset).Format(model.WireTime),
			Description: ss.description,
		}
		if err := sets.Create(ctx, s); err != nil {
			return fmt.Errorf("create set %q: %w", ss.artist, err)
		}
		setIDs[i] = s.ID
	}

	for _, name := range []string{"Alice", "Bob", "Charlie", "David"} {
		u := &model.User{Name: name}
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %q: %w", name, err)
		}
		for _, pick := range samplePicks[name] {
			sel := &model.Selection{UserID: u.ID, SetID: setIDs[pick]}
			if err := selections.Create(ctx, sel); err != nil {
				return fmt.Errorf("create selection %s -> %s: %w", name, sampleSets[pick].artist, err)
			}
		}
	}
	return nil
}

// importLineup reads the scraper CSV and creates one set per row.
// The day column holds a weekday name which dayDates maps to a
// concrete calendar date; clock times are 12-hour ("9:30 PM").  An
// end time earlier than its start means the set runs past midnight.
func importLineup(ctx context.Context, sets *repository.SetRepo, path string, dayDates map[string]string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"artist", "stage", "start_time", "end_time", "day"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	count := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date, ok := dayDates[strings.ToLower(field("day"))]
		if !ok {
			return count, fmt.Errorf("row %d: unknown day %q", count+2, field("day"))
		}
		day, err := model.ParseDate(date)
		if err != nil {
			return count, err
		}
		start, err := clockOn(day, field("start_time"))
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+2, err)
		}
		end, err := clockOn(day, field("end_time"))
		if err != nil {
			return count, fmt.Errorf("row %d: %w", count+2, err)
		}
		if end.Before(start) {
			end = end.AddDate(0, 0, 1) // runs past midnight
		}

		s := &model.Set{
			Artist:    field("artist"),
			Stage:     field("stage"),
			StartTime: start.Format(model.WireTime),
			EndTime:   end.Format(model.WireTime),
		}
		if url := field("image_url"); url != "" {
			s.ImageURL = &url
		}
		if err := sets.Create(ctx, s); err != nil {
			return count, fmt.Errorf("row %d: %w", count+2, err)
		}
		count++
	}
	return count, nil
}

// clockOn parses a 12- or 24-hour clock time and anchors it on day.
func clockOn(day time.Time, clock string) (time.Time, error) {
	for _, layout := range []string{"3:04 PM", "3:04PM", "15:04"} {
		if t, err := time.Parse(layout, strings.ToUpper(clock)); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid clock time %q", clock)
}
