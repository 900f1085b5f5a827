package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/roster-engine/loader"
	"github.com/warp/roster-engine/roster"
	"github.com/warp/roster-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRows() []loader.Row {
	july1 := roster.NewDate(2024, time.July, 1)
	july2 := roster.NewDate(2024, time.July, 2)
	return []loader.Row{
		{EmployeeID: "1", Name: "Tanaka", Skills: roster.SkillSet{roster.SkillCashier}, Date: july1, Window: roster.NewWindow(9, 14)},
		{EmployeeID: "1", Name: "Tanaka", Skills: roster.SkillSet{roster.SkillCashier}, Date: july2, Window: roster.NewWindow(14, 20)},
		{EmployeeID: "2", Name: "Suzuki", Skills: roster.SkillSet{roster.SkillRefrigeration, roster.SkillStocking}, Date: july1, Window: roster.NewWindow(14, 17)},
	}
}

func TestImportAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Import(ctx, sampleRows()))

	employees, prefs, err := store.Load(ctx)
	require.NoError(t, err)

	require.Len(t, employees, 2)
	assert.Equal(t, roster.EmployeeID("1"), employees[0].ID)
	assert.Equal(t, "Tanaka", employees[0].Name)
	assert.Equal(t, 100, employees[0].PreferenceRate)
	assert.Equal(t, roster.SkillSet{roster.SkillRefrigeration, roster.SkillStocking}, employees[1].Skills)

	july1 := roster.NewDate(2024, time.July, 1)
	windows := prefs.Windows("1", july1)
	require.Len(t, windows, 1)
	assert.Equal(t, roster.NewWindow(9, 14), windows[0])
	assert.Len(t, prefs.Windows("2", july1), 1)
}

func TestImport_ReplacesPreviousData(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Import(ctx, sampleRows()))

	july8 := roster.NewDate(2024, time.July, 8)
	next := []loader.Row{
		{EmployeeID: "3", Name: "Sato", Date: july8, Window: roster.NewWindow(9, 17)},
	}
	require.NoError(t, store.Import(ctx, next))

	employees, prefs, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, roster.EmployeeID("3"), employees[0].ID)
	assert.False(t, prefs.AnyOn(roster.NewDate(2024, time.July, 1)))
}

func TestImport_PreservesPreferenceRates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Import(ctx, sampleRows()))
	require.NoError(t, store.SetPreferenceRate(ctx, "1", 40))

	// Re-importing the same roster keeps the adjusted rate for employee 1
	// and defaults the rest
	require.NoError(t, store.Import(ctx, sampleRows()))

	employees, _, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, 40, employees[0].PreferenceRate)
	assert.Equal(t, 100, employees[1].PreferenceRate)
}

func TestSetPreferenceRate_Validation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Import(ctx, sampleRows()))

	err := store.SetPreferenceRate(ctx, "1", 150)
	assert.ErrorIs(t, err, roster.ErrInvalidPreferenceRate)

	err = store.SetPreferenceRate(ctx, "ghost", 50)
	assert.ErrorIs(t, err, roster.ErrUnknownEmployee)

	require.NoError(t, store.SetPreferenceRate(ctx, "1", 0))
	employees, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, employees[0].PreferenceRate)
}

func TestLoad_EmptyStore(t *testing.T) {
	store := newTestStore(t)

	employees, prefs, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, employees)
	assert.Empty(t, prefs)
}
