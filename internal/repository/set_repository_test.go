package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalapp/festival-api/internal/model"
)

func day(t *testing.T, date string) *time.Time {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	return &d
}

func TestSetCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	img := "https://img.example/dj.png"
	s := &model.Set{
		Artist:      "DJ Awesome",
		Stage:       "Main Stage",
		StartTime:   "2025-04-26T12:00:00",
		EndTime:     "2025-04-26T13:00:00",
		Description: "Opening DJ set",
		ImageURL:    &img,
	}
	require.NoError(t, NewSetRepo(db).Create(ctx, s))
	require.NotZero(t, s.ID)

	got, err := NewSetRepo(db).GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestSetOptionalFieldsDefault(t *testing.T) {
	db := openTestDB(t)

	s := mustSet(t, db, "Indie Group", "Alternative Stage", "2025-04-26T14:00:00", "2025-04-26T15:00:00")
	got, err := NewSetRepo(db).GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
	assert.Nil(t, got.ImageURL)
}

func TestSetGetMissing(t *testing.T) {
	db := openTestDB(t)

	_, err := NewSetRepo(db).GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSetNotFound)
}

// The lenient original never checked that a set ends after it starts;
// storage accepts an inverted window unchanged.
func TestSetInvertedWindowAccepted(t *testing.T) {
	db := openTestDB(t)

	s := mustSet(t, db, "Time Traveler", "Main Stage", "2025-04-26T13:00:00", "2025-04-26T12:00:00")
	got, err := NewSetRepo(db).GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-26T13:00:00", got.StartTime)
	assert.Equal(t, "2025-04-26T12:00:00", got.EndTime)
}

func TestSetListOrderedByStageThenStart(t *testing.T) {
	db := openTestDB(t)

	mustSet(t, db, "Rock Band", "Main Stage", "2025-04-26T13:30:00", "2025-04-26T14:30:00")
	mustSet(t, db, "DJ Awesome", "Main Stage", "2025-04-26T12:00:00", "2025-04-26T13:00:00")
	mustSet(t, db, "Acoustic Singer", "Alternative Stage", "2025-04-26T12:30:00", "2025-04-26T13:15:00")

	sets, err := NewSetRepo(db).ListAll(context.Background(), nil)
	require.NoError(t, err)
	artists := []string{}
	for _, s := range sets {
		artists = append(artists, s.Artist)
	}
	assert.Equal(t, []string{"Acoustic Singer", "DJ Awesome", "Rock Band"}, artists)
}

func TestSetListDayBoundaries(t *testing.T) {
	db := openTestDB(t)

	lastSecond := mustSet(t, db, "Night Owl", "Dance Tent", "2025-04-26T23:59:59", "2025-04-27T01:00:00")
	mustSet(t, db, "Early Bird", "Dance Tent", "2025-04-27T00:00:00", "2025-04-27T01:00:00")

	sets, err := NewSetRepo(db).ListAll(context.Background(), day(t, "2025-04-26"))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, lastSecond.ID, sets[0].ID)

	sunday, err := NewSetRepo(db).ListAll(context.Background(), day(t, "2025-04-27"))
	require.NoError(t, err)
	require.Len(t, sunday, 1)
	assert.Equal(t, "Early Bird", sunday[0].Artist)
}

func TestSetListDayWithoutSets(t *testing.T) {
	db := openTestDB(t)

	mustSet(t, db, "DJ Awesome", "Main Stage", "2025-04-26T12:00:00", "2025-04-26T13:00:00")

	sets, err := NewSetRepo(db).ListAll(context.Background(), day(t, "2025-05-01"))
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestFestivalDays(t *testing.T) {
	db := openTestDB(t)

	mustSet(t, db, "Closing Act", "Main Stage", "2025-04-27T20:00:00", "2025-04-27T21:00:00")
	mustSet(t, db, "DJ Awesome", "Main Stage", "2025-04-26T12:00:00", "2025-04-26T13:00:00")
	mustSet(t, db, "Rock Band", "Main Stage", "2025-04-26T15:00:00", "2025-04-26T16:00:00")

	days, err := NewSetRepo(db).FestivalDays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.FestivalDay{
		{Date: "2025-04-26", Label: "Saturday, April 26, 2025"},
		{Date: "2025-04-27", Label: "Sunday, April 27, 2025"},
	}, days)
}

func TestAttendeeCounts(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	alice := mustUser(t, db, "Alice")
	bob := mustUser(t, db, "Bob")
	popular := mustSet(t, db, "DJ Awesome", "Main Stage", "2025-04-26T12:00:00", "2025-04-26T13:00:00")
	niche := mustSet(t, db, "Folk Duo", "Acoustic Lounge", "2025-04-27T14:00:00", "2025-04-27T15:00:00")
	mustSet(t, db, "Nobody Cares", "Rock Stage", "2025-04-26T16:00:00", "2025-04-26T17:00:00")

	mustSelection(t, db, alice.ID, popular.ID)
	mustSelection(t, db, bob.ID, popular.ID)
	mustSelection(t, db, alice.ID, niche.ID)

	counts, err := NewSetRepo(db).AttendeeCounts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2, "2": 1}, counts)

	// restricted to Saturday, the Sunday set drops out
	saturday, err := NewSetRepo(db).AttendeeCounts(ctx, day(t, "2025-04-26"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 2}, saturday)
}

func TestAttendeeCountsEmpty(t *testing.T) {
	db := openTestDB(t)

	mustSet(t, db, "DJ Awesome", "Main Stage", "2025-04-26T12:00:00", "2025-04-26T13:00:00")

	counts, err := NewSetRepo(db).AttendeeCounts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NotNil(t, counts) // serializes as {} rather than null
}
