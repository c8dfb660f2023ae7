package domain

import "fmt"

// Person is a single roster entry
type Person struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	Sex        string `json:"sex,omitempty" yaml:"sex,omitempty" toml:"sex,omitempty"`
	Born       int    `json:"born" yaml:"born" toml:"born"`
	Died       int    `json:"died" yaml:"died" toml:"died"`
	FatherName string `json:"fatherName,omitempty" yaml:"fatherName,omitempty" toml:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty" yaml:"motherName,omitempty" toml:"motherName,omitempty"`
	Slug       string `json:"slug" yaml:"slug" toml:"slug"`
}

// Lifespan renders the birth and death years as "(born - died)"
func (p Person) Lifespan() string {
	return fmt.Sprintf("(%d - %d)", p.Born, p.Died)
}

// Title is the heading shown while the person is selected
func (p Person) Title() string {
	return p.Name + " " + p.Lifespan()
}

// NoSelectionTitle is the heading shown when nothing is selected
const NoSelectionTitle = "No selected person"
