package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progtrack/backend/engine"
	"progtrack/backend/storage"
)

func TestSeedCreatesAScoreableProgram(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	id, err := Seed(store)
	require.NoError(t, err)
	assert.Equal(t, ProgramID, id)
	assert.Equal(t, ProgramID, store.CurrentProgramID())

	program, err := store.LoadProgram()
	require.NoError(t, err)
	require.NotNil(t, program)
	assert.Len(t, program.Objectives, 4)
	assert.Len(t, program.Tasks, 2)

	start, err := time.Parse("2006-01-02", program.StartDate)
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", program.EndDate)
	require.NoError(t, err)
	assert.Equal(t, programDays-1, int(end.Sub(start).Hours()/24))

	data, err := store.UserData()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// The seeded history scores cleanly: mid-program, points on the board,
	// no configuration warnings.
	cal := engine.NewCalculator(program, engine.Options{})
	result, diags, err := cal.Progress(data)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Greater(t, result.CurrentPoints, 0.0)
	assert.Greater(t, result.ElapsedDays, 0)
	assert.Less(t, result.ElapsedDays, result.TotalDays)
	assert.Equal(t, programDays, result.TotalDays)
}

func TestSeedIsRepeatable(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = Seed(store)
	require.NoError(t, err)
	id, err := Seed(store)
	require.NoError(t, err)
	assert.Equal(t, ProgramID, id)
}
