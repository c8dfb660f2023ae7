package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"peoplepicker/internal/domain"
)

// rosterListing renders one line per person for the pager
func rosterListing(people []domain.Person) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-32s %-13s %-3s %s\n", "NAME", "LIFESPAN", "SEX", "PARENTS"))
	for _, p := range people {
		parents := strings.Join(nonEmpty(p.FatherName, p.MotherName), ", ")
		if parents == "" {
			parents = "-"
		}
		b.WriteString(fmt.Sprintf("%-32s %-13s %-3s %s\n", p.Name, p.Lifespan(), p.Sex, parents))
	}
	return b.String()
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// showInPager shows content using the ov pager
func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the roster back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// fetchRosterPager returns a command that shows the roster in ov, pausing and resuming rendering
func (m *Model) fetchRosterPager() tea.Cmd {
	program := m.program
	content := rosterListing(m.roster.All())
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := showInPager(program, content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return rosterPagerMsg{err: err}
	}
}
