// Package people provides the read-only roster the picker searches.
package people

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"peoplepicker/internal/domain"
)

var (
	// ErrEmptyName is returned for a record without a name
	ErrEmptyName = errors.New("person has no name")
	// ErrDuplicateSlug is returned when two records share a slug
	ErrDuplicateSlug = errors.New("duplicate slug")
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Roster is an immutable, ordered list of people
type Roster struct {
	people []domain.Person
	bySlug map[string]int
}

// NewRoster validates people and builds a roster. Records without a slug
// get one derived from their name and birth year.
func NewRoster(people []domain.Person) (*Roster, error) {
	r := &Roster{
		people: make([]domain.Person, 0, len(people)),
		bySlug: make(map[string]int, len(people)),
	}

	for i, p := range people {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyName)
		}
		if p.Slug == "" {
			p.Slug = Slugify(p.Name, p.Born)
		}
		if prev, ok := r.bySlug[p.Slug]; ok {
			return nil, fmt.Errorf("record %d (%s) and record %d: %w %q", i, p.Name, prev, ErrDuplicateSlug, p.Slug)
		}
		r.bySlug[p.Slug] = len(r.people)
		r.people = append(r.people, p)
	}

	return r, nil
}

// Slugify derives a slug such as "carolus-haverbeke-1832"
func Slugify(name string, born int) string {
	base := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if born == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(born)
}

// All returns a copy of the roster in source order
func (r *Roster) All() []domain.Person {
	out := make([]domain.Person, len(r.people))
	copy(out, r.people)
	return out
}

// Len returns the number of people
func (r *Roster) Len() int {
	return len(r.people)
}

// BySlug looks a person up by slug
func (r *Roster) BySlug(slug string) (domain.Person, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return domain.Person{}, false
	}
	return r.people[i], true
}
