package autocomplete

import (
	"strings"

	"github.com/samber/lo"

	"peoplepicker/internal/domain"
)

// Matches reports whether a person's name contains query, ignoring case.
// An empty query matches everyone.
func Matches(p domain.Person, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}

// Filter returns the people matching query in source order
func Filter(query string, people []domain.Person) []domain.Person {
	if query == "" {
		return people
	}

	needle := strings.ToLower(query)
	return lo.Filter(people, func(p domain.Person, _ int) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}
