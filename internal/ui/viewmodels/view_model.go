package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"peoplepicker/internal/autocomplete"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/ui/views"
)

// ViewModel transforms picker state into view-ready data
type ViewModel struct {
	controller *autocomplete.Controller
	textInput  textinput.Model
	help       help.Model
	keys       help.KeyMap
	maxVisible int
	width      int
	height     int
	highlight  int
	offset     int
	status     string
	statusErr  bool
	showHelp   bool
}

// NewViewModel creates a new view model
func NewViewModel(controller *autocomplete.Controller, maxVisible int) *ViewModel {
	if maxVisible <= 0 {
		maxVisible = 8
	}
	return &ViewModel{
		controller: controller,
		textInput:  textinput.New(), // replaced by UpdateTextInput
		maxVisible: maxVisible,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it renders. A nil keymap hides help.
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
	vm.showHelp = keys != nil
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// SetStatus sets the status line
func (vm *ViewModel) SetStatus(status string, isError bool) {
	vm.status = status
	vm.statusErr = isError
}

// SetHighlight moves the dropdown highlight, keeping it inside the candidate
// list and scrolling the visible window to follow it
func (vm *ViewModel) SetHighlight(index int) {
	n := len(vm.controller.Candidates())
	switch {
	case n == 0:
		index = 0
	case index < 0:
		index = 0
	case index >= n:
		index = n - 1
	}
	vm.highlight = index

	if vm.highlight < vm.offset {
		vm.offset = vm.highlight
	}
	if vm.highlight >= vm.offset+vm.maxVisible {
		vm.offset = vm.highlight - vm.maxVisible + 1
	}
	if maxOffset := n - vm.maxVisible; vm.offset > maxOffset {
		vm.offset = max(maxOffset, 0)
	}
}

// Highlight returns the highlighted candidate index
func (vm *ViewModel) Highlight() int {
	return vm.highlight
}

// VisibleCount returns how many dropdown rows are on screen
func (vm *ViewModel) VisibleCount() int {
	if !vm.controller.DropdownOpen() {
		return 0
	}
	return max(min(len(vm.controller.Candidates())-vm.offset, vm.maxVisible), 0)
}

// IndexAtRow maps a dropdown row (0 is the first visible row) to a candidate index
func (vm *ViewModel) IndexAtRow(row int) (int, bool) {
	if row < 0 || row >= vm.VisibleCount() {
		return 0, false
	}
	return vm.offset + row, true
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	state := views.ViewState{
		Width:        vm.width,
		Height:       vm.height,
		Title:        domain.NoSelectionTitle,
		Input:        vm.textInput.View(),
		InputFocused: vm.textInput.Focused(),
		DropdownOpen: vm.controller.DropdownOpen(),
		NoMatches:    vm.controller.NoMatches(),
		Status:       vm.status,
		StatusError:  vm.statusErr,
	}

	if sel := vm.controller.Selected(); sel != nil {
		state.Title = sel.Title()
		state.HasSelection = true
	}

	if state.DropdownOpen {
		candidates := vm.controller.Candidates()
		visible := vm.VisibleCount()
		for i := vm.offset; i < vm.offset+visible; i++ {
			state.Rows = append(state.Rows, views.Row{
				Name:        candidates[i].Name,
				Lifespan:    candidates[i].Lifespan(),
				Highlighted: i == vm.highlight,
			})
		}
		state.Hidden = len(candidates) - visible
	}

	if vm.showHelp {
		state.Help = vm.help.View(vm.keys)
	}

	return state
}
