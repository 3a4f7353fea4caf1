package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalapp/festival-api/internal/database"
	"github.com/festivalapp/festival-api/internal/model"
	"github.com/festivalapp/festival-api/internal/repository"
)

const lineupCSV = `artist,stage,start_time,end_time,day,image_url
"DJ Awesome","Main Stage","3:00 PM","4:00 PM","Saturday","https://img.example/dj.png"
"Night Owl","Dance Tent","11:30 PM","12:30 AM","Saturday",""
"Closing Act","Main Stage","20:00","21:00","Sunday",""
`

func TestImportLineup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parsed.csv")
	require.NoError(t, os.WriteFile(path, []byte(lineupCSV), 0o644))

	db, err := database.OpenSQLite(filepath.Join(dir, "festival.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sets := repository.NewSetRepo(db)
	n, err := importLineup(context.Background(), sets, path, map[string]string{
		"saturday": "2025-04-26",
		"sunday":   "2025-04-27",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := sets.ListAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byArtist := map[string]int{}
	for i, s := range all {
		byArtist[s.Artist] = i
	}

	dj := all[byArtist["DJ Awesome"]]
	assert.Equal(t, "2025-04-26T15:00:00", dj.StartTime)
	assert.Equal(t, "2025-04-26T16:00:00", dj.EndTime)
	require.NotNil(t, dj.ImageURL)
	assert.Equal(t, "https://img.example/dj.png", *dj.ImageURL)

	// a set ending after midnight rolls its end time to the next day
	owl := all[byArtist["Night Owl"]]
	assert.Equal(t, "2025-04-26T23:30:00", owl.StartTime)
	assert.Equal(t, "2025-04-27T00:30:00", owl.EndTime)
	assert.Nil(t, owl.ImageURL)

	closing := all[byArtist["Closing Act"]]
	assert.Equal(t, "2025-04-27T20:00:00", closing.StartTime)
}

func TestImportLineupUnknownDay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parsed.csv")
	csv := "artist,stage,start_time,end_time,day,image_url\nX,Main,1:00 PM,2:00 PM,Friday,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	db, err := database.OpenSQLite(filepath.Join(dir, "festival.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = importLineup(context.Background(), repository.NewSetRepo(db), path, map[string]string{
		"saturday": "2025-04-26",
	})
	assert.ErrorContains(t, err, "unknown day")
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestClockOn(t *testing.T) {
	day, err := clockOn(mustDate(t, "2025-04-26"), "9:30 PM")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-26T21:30:00", day.Format("2006-01-02T15:04:05"))

	_, err = clockOn(mustDate(t, "2025-04-26"), "half past nine")
	assert.Error(t, err)
}

func TestSeedSample(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "festival.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := repository.NewUserRepo(db)
	sets := repository.NewSetRepo(db)
	selections := repository.NewSelectionRepo(db)
	require.NoError(t, seedSample(context.Background(), users, sets, selections))

	ctx := context.Background()
	allUsers, err := users.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allUsers, 4)

	allSets, err := sets.ListAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, allSets, len(sampleSets))

	allSelections, err := selections.ListAll(ctx)
	require.NoError(t, err)
	total := 0
	for _, picks := range samplePicks {
		total += len(picks)
	}
	assert.Len(t, allSelections, total)
}
