package viewmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplepicker/internal/autocomplete"
	"peoplepicker/internal/domain"
)

func controllerWith(n int) *autocomplete.Controller {
	people := make([]domain.Person, n)
	for i := range people {
		people[i] = domain.Person{Name: string(rune('A' + i)), Born: 1900 + i, Died: 1950 + i}
	}
	return autocomplete.NewController(autocomplete.ControllerConfig{People: people})
}

func TestSetHighlightClampsAndScrolls(t *testing.T) {
	c := controllerWith(10)
	c.Focus()
	vm := NewViewModel(c, 3)

	vm.SetHighlight(-4)
	assert.Equal(t, 0, vm.Highlight())

	vm.SetHighlight(5)
	assert.Equal(t, 5, vm.Highlight())
	idx, ok := vm.IndexAtRow(2)
	require.True(t, ok)
	assert.Equal(t, 5, idx, "window follows the highlight")

	vm.SetHighlight(99)
	assert.Equal(t, 9, vm.Highlight())
	idx, ok = vm.IndexAtRow(0)
	require.True(t, ok)
	assert.Equal(t, 7, idx)

	vm.SetHighlight(0)
	idx, _ = vm.IndexAtRow(0)
	assert.Equal(t, 0, idx)
}

func TestVisibleCountAndIndexAtRow(t *testing.T) {
	c := controllerWith(2)
	vm := NewViewModel(c, 5)

	assert.Equal(t, 0, vm.VisibleCount(), "closed dropdown shows nothing")
	_, ok := vm.IndexAtRow(0)
	assert.False(t, ok)

	c.Focus()
	assert.Equal(t, 2, vm.VisibleCount())
	_, ok = vm.IndexAtRow(2)
	assert.False(t, ok)
	_, ok = vm.IndexAtRow(-1)
	assert.False(t, ok)
}

func TestVisibleCountAfterShrink(t *testing.T) {
	c := autocomplete.NewController(autocomplete.ControllerConfig{People: []domain.Person{
		{Name: "Alice"}, {Name: "Bob"}, {Name: "Carl"}, {Name: "Dora"},
	}})
	c.Focus()
	vm := NewViewModel(c, 2)
	vm.SetHighlight(3)

	c.ApplyEffective("alice")
	assert.Equal(t, 0, vm.VisibleCount(), "offset past the end clamps to zero rows")

	vm.SetHighlight(0)
	assert.Equal(t, 1, vm.VisibleCount())
}

func TestBuildViewState(t *testing.T) {
	c := controllerWith(12)
	c.Focus()
	vm := NewViewModel(c, 0)
	vm.SetDimensions(80, 24)
	vm.SetStatus("hello", false)

	state := vm.BuildViewState()
	assert.Equal(t, domain.NoSelectionTitle, state.Title)
	assert.False(t, state.HasSelection)
	assert.True(t, state.DropdownOpen)
	assert.Len(t, state.Rows, 8)
	assert.Equal(t, 4, state.Hidden)
	assert.True(t, state.Rows[0].Highlighted)
	assert.Equal(t, "(1900 - 1950)", state.Rows[0].Lifespan)
	assert.Equal(t, "hello", state.Status)
	assert.Empty(t, state.Help)

	c.PickIndex(1)
	state = vm.BuildViewState()
	assert.True(t, state.HasSelection)
	assert.Equal(t, "B (1901 - 1951)", state.Title)
	assert.False(t, state.DropdownOpen)
	assert.Empty(t, state.Rows)
}
