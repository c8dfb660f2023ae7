package input

import (
	"peoplepicker/internal/autocomplete"
	"peoplepicker/internal/ui/viewmodels"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Controller *autocomplete.Controller
	ViewModel  *viewmodels.ViewModel
}

// Highlight returns the highlighted candidate index
func (c *ModelContext) Highlight() int {
	return c.ViewModel.Highlight()
}

// CandidateCount returns the number of candidates for the effective query
func (c *ModelContext) CandidateCount() int {
	return len(c.Controller.Candidates())
}

// DropdownOpen reports whether the candidate list is visible
func (c *ModelContext) DropdownOpen() bool {
	return c.Controller.DropdownOpen()
}

// HasSelection reports whether a person is picked
func (c *ModelContext) HasSelection() bool {
	return c.Controller.Selected() != nil
}
