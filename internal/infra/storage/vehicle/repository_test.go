package vehicle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

type testLogger struct {
	warnings int
}

func (l *testLogger) Info(format string, v ...interface{})  {}
func (l *testLogger) Warn(format string, v ...interface{})  { l.warnings++ }
func (l *testLogger) Error(format string, v ...interface{}) {}

func newTestRepository(t *testing.T) (*Repository, *testLogger) {
	t.Helper()
	log := &testLogger{}
	path := filepath.Join(t.TempDir(), "parking_data.txt")
	return NewRepository(path, log), log
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)

	entry := time.Date(2025, 3, 10, 9, 15, 30, 0, time.Local)
	exit := time.Date(2025, 3, 10, 12, 45, 0, 0, time.Local)

	vehicles := []*domain.Vehicle{
		{
			Number:     "KA01AB1234",
			Type:       domain.TypeCar,
			SlotNumber: 2,
			EntryTime:  entry,
			Status:     domain.StatusActive,
		},
		{
			Number:     "MH12XY99",
			Type:       domain.TypeBike,
			SlotNumber: 7,
			EntryTime:  entry.Add(-24 * time.Hour),
			ExitTime:   &exit,
			Status:     domain.StatusCheckedOut,
		},
		{
			Number:     "DL05CV555",
			Type:       domain.TypeVan,
			SlotNumber: 11,
			EntryTime:  entry.Add(-time.Hour),
			Status:     domain.StatusActive,
		},
	}

	require.NoError(t, repo.Save(vehicles))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	for i, v := range vehicles {
		assert.Equal(t, v.Number, loaded[i].Number)
		assert.Equal(t, v.Type, loaded[i].Type)
		assert.Equal(t, v.SlotNumber, loaded[i].SlotNumber)
		assert.True(t, v.EntryTime.Equal(loaded[i].EntryTime))
		assert.Equal(t, v.Status, loaded[i].Status)
	}
	assert.Nil(t, loaded[0].ExitTime)
	require.NotNil(t, loaded[1].ExitTime)
	assert.True(t, exit.Equal(*loaded[1].ExitTime))
}

func TestLoadMissingFileYieldsEmptyLedger(t *testing.T) {
	repo, _ := newTestRepository(t)

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadLegacyFiveFieldRecord(t *testing.T) {
	repo, _ := newTestRepository(t)
	line := "KA01AB1234|Car|3|2025-03-10 09:15:30|IN\n"
	require.NoError(t, os.WriteFile(repo.Path(), []byte(line), 0o644))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	v := loaded[0]
	assert.Equal(t, "KA01AB1234", v.Number)
	assert.Equal(t, domain.TypeCar, v.Type)
	assert.Equal(t, 3, v.SlotNumber)
	assert.Nil(t, v.ExitTime)
	assert.Equal(t, domain.StatusActive, v.Status)
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	repo, log := newTestRepository(t)
	data := "KA01AB1234|Car|notanumber|2025-03-10 09:15:30|IN\n" + // bad slot
		"short|line\n" + // wrong field count
		"MH12XY99|Scooter|2|2025-03-10 09:15:30|IN\n" + // unknown type
		"DL05CV555|Van|4|2025-03-10 09:15:30||IN\n" + // valid
		"\n" // blank
	require.NoError(t, os.WriteFile(repo.Path(), []byte(data), 0o644))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "DL05CV555", loaded[0].Number)
	assert.Equal(t, 3, log.warnings)
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	repo, _ := newTestRepository(t)
	entry := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	require.NoError(t, repo.Save([]*domain.Vehicle{
		{Number: "AAA111", Type: domain.TypeCar, SlotNumber: 1, EntryTime: entry, Status: domain.StatusActive},
		{Number: "BBB222", Type: domain.TypeBike, SlotNumber: 2, EntryTime: entry, Status: domain.StatusActive},
	}))
	require.NoError(t, repo.Save([]*domain.Vehicle{
		{Number: "CCC333", Type: domain.TypeVan, SlotNumber: 3, EntryTime: entry, Status: domain.StatusActive},
	}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "CCC333", loaded[0].Number)
}
