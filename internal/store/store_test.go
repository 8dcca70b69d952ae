package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aslanbek/fitlog/internal/models"
)

func setupTestStore(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fitlog.db")
	require.NoError(t, InitializeAt(dbPath))
	t.Cleanup(func() {
		require.NoError(t, Close())
	})
}

func TestLoadEmptyStore(t *testing.T) {
	setupTestStore(t)

	snap, err := Load()
	require.NoError(t, err)
	require.Empty(t, snap.Members)
	require.Empty(t, snap.Events)

	// Fresh installs come with usable defaults.
	require.Equal(t, 60, snap.Settings.DefaultDurationMinutes)
	require.Equal(t, 8, snap.Settings.DefaultSessionsTotal)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	setupTestStore(t)

	snap := models.EmptySnapshot()
	snap.Members = []models.Member{{
		ID:        models.NewID(),
		Name:      "Aigerim",
		WhatsApp:  "+7701",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}
	snap.Events = []models.Event{{
		ID:              models.NewID(),
		Type:            models.TypePerson,
		MemberID:        snap.Members[0].ID,
		Date:            "2026-09-01",
		Time:            "09:00",
		DurationMinutes: 60,
		Status:          models.StatusScheduled,
	}}
	snap.Sessions = []models.Session{{
		ID:        models.NewID(),
		MemberID:  snap.Members[0].ID,
		Total:     8,
		Remaining: 8,
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}
	snap.Profile = models.Profile{Name: "Dana", WhatsApp: "+7702"}

	require.NoError(t, Save(snap))

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, snap, loaded)
}

func TestSaveOverwritesSingleBlob(t *testing.T) {
	setupTestStore(t)

	first := models.EmptySnapshot()
	first.Members = []models.Member{{ID: "m1", Name: "Aigerim"}}
	require.NoError(t, Save(first))

	second := models.EmptySnapshot()
	second.Members = []models.Member{{ID: "m2", Name: "Bekzat"}}
	require.NoError(t, Save(second))

	loaded, err := Load()
	require.NoError(t, err)
	require.Len(t, loaded.Members, 1)
	require.Equal(t, "m2", loaded.Members[0].ID)

	// One key, one row.
	var count int64
	require.NoError(t, DB.Model(&blob{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
