package autocomplete

import (
	"strings"

	"go.uber.org/zap"

	"peoplepicker/internal/domain"
)

// Phase is the coarse state of the input
type Phase int

const (
	// PhaseIdle means the input is empty
	PhaseIdle Phase = iota
	// PhaseTyping means there is text but no confirmed selection
	PhaseTyping
	// PhaseSelected means the text is exactly the selected person's name
	PhaseSelected
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTyping:
		return "typing"
	case PhaseSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// ControllerConfig holds the collaborators of a Controller
type ControllerConfig struct {
	// People is the read-only source list
	People []domain.Person

	// OnSelected is called with the picked person, or nil when the
	// selection is cleared. Optional.
	OnSelected func(*domain.Person)

	// Logger for debug output. Optional.
	Logger *zap.Logger
}

// Controller is the filter and selection state machine behind the picker.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	people     []domain.Person
	onSelected func(*domain.Person)
	logger     *zap.Logger

	query        string
	effective    string
	candidates   []domain.Person
	selected     *domain.Person
	dropdownOpen bool
	noMatches    bool
}

// NewController creates a controller showing the full list
func NewController(config ControllerConfig) *Controller {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		people:     config.People,
		onSelected: config.OnSelected,
		logger:     logger,
	}
	c.refilter()
	return c
}

// Query returns the raw input text
func (c *Controller) Query() string { return c.query }

// EffectiveQuery returns the debounced query driving the filter
func (c *Controller) EffectiveQuery() string { return c.effective }

// Candidates returns the visible people for the effective query
func (c *Controller) Candidates() []domain.Person { return c.candidates }

// DropdownOpen reports whether the candidate list is shown
func (c *Controller) DropdownOpen() bool { return c.dropdownOpen }

// NoMatches reports whether the "no matching suggestions" notice is shown
func (c *Controller) NoMatches() bool { return c.noMatches }

// Selected returns the picked person or nil
func (c *Controller) Selected() *domain.Person {
	if c.selected == nil {
		return nil
	}
	p := *c.selected
	return &p
}

// Phase derives the input phase from the current state
func (c *Controller) Phase() Phase {
	switch {
	case c.selected != nil:
		return PhaseSelected
	case c.query == "":
		return PhaseIdle
	default:
		return PhaseTyping
	}
}

// Edit records new input text. Moving away from a selected name clears the
// selection. It returns true when the text changed and the effective query
// needs rescheduling.
func (c *Controller) Edit(text string) bool {
	if text == c.query {
		return false
	}
	c.query = text

	if c.selected != nil && text != c.selected.Name {
		c.logger.Debug("selection cleared by edit",
			zap.String("was", c.selected.Slug),
			zap.String("query", text),
		)
		c.selected = nil
		c.notify(nil)
	}
	return true
}

// ApplyEffective sets the debounced query and refilters
func (c *Controller) ApplyEffective(query string) []domain.Person {
	c.effective = query
	c.refilter()
	c.logger.Debug("effective query applied",
		zap.String("query", query),
		zap.Int("matches", len(c.candidates)),
	)
	return c.candidates
}

// Pick selects a person, replaces the text with their name and closes the
// dropdown. It returns true when the text changed.
func (c *Controller) Pick(p domain.Person) bool {
	changed := c.query != p.Name
	picked := p
	c.selected = &picked
	c.query = p.Name
	c.dropdownOpen = false
	c.noMatches = false

	c.logger.Debug("person picked", zap.String("slug", p.Slug))
	c.notify(&picked)
	return changed
}

// PickIndex picks the i-th visible candidate
func (c *Controller) PickIndex(i int) (domain.Person, bool) {
	if i < 0 || i >= len(c.candidates) {
		return domain.Person{}, false
	}
	p := c.candidates[i]
	c.Pick(p)
	return p, true
}

// Focus opens the dropdown. An empty input never shows the no-matches notice.
func (c *Controller) Focus() {
	c.dropdownOpen = true
	if strings.TrimSpace(c.query) == "" {
		c.noMatches = false
	}
}

// Blur closes the dropdown and leaves everything else alone
func (c *Controller) Blur() {
	c.dropdownOpen = false
}

func (c *Controller) refilter() {
	c.candidates = Filter(c.effective, c.people)
	c.noMatches = len(c.candidates) == 0
}

func (c *Controller) notify(p *domain.Person) {
	if c.onSelected == nil {
		return
	}
	if p == nil {
		c.onSelected(nil)
		return
	}
	out := *p
	c.onSelected(&out)
}
