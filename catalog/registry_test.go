package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Register("mario", "Race", nil, nil))
	assert.Equal(t, 1, r.Register("snake", "Arcade", nil, nil))
	assert.Equal(t, 2, r.Count())

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "mario", list[0].Name)
	assert.Equal(t, "Race", list[0].Category)
	assert.Equal(t, 1, list[1].ID)
}

func TestRegisterReplacesExisting(t *testing.T) {
	r := NewRegistry()
	var played string
	r.Register("mario", "Race", func() { played = "old" }, nil)
	id := r.Register("Mario", "Kart", func() { played = "new" }, nil)

	assert.Equal(t, 0, id)
	assert.Equal(t, 1, r.Count())
	assert.Equal(t, "Kart", r.Lookup("mario").Category)

	require.NoError(t, r.Dispatch([]string{"mario"}))
	assert.Equal(t, "new", played)
}

func TestDispatch(t *testing.T) {
	r := NewRegistry()
	var calls []string
	r.Register("mario", "Race",
		func() { calls = append(calls, "play") },
		func() { calls = append(calls, "help") })

	require.NoError(t, r.Dispatch([]string{"mario"}))
	require.NoError(t, r.Dispatch([]string{"MARIO", "help"}))
	require.NoError(t, r.Dispatch([]string{"mario", "Play"}))
	assert.Equal(t, []string{"play", "help", "play"}, calls)
}

func TestDispatchErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("mario", "Race", nil, nil)

	assert.ErrorIs(t, r.Dispatch(nil), ErrUnknownGame)
	assert.ErrorIs(t, r.Dispatch([]string{"luigi"}), ErrUnknownGame)
	assert.ErrorIs(t, r.Dispatch([]string{"mario", "quit"}), ErrUnknownCommand)
	assert.NoError(t, r.Dispatch([]string{"mario", "help"}), "missing callbacks are skipped")
}

func TestLookupMissing(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Lookup("mario"))
}

func TestString(t *testing.T) {
	r := NewRegistry()
	r.Register("mario", "Race", nil, nil)
	r.Register("snake", "Arcade", nil, nil)
	assert.Equal(t, "Catalog: 2 games [mario, snake]", r.String())
}
