package ui

// effectiveQueryMsg carries a debounced query once its delay has elapsed
type effectiveQueryMsg struct {
	seq   uint64
	query string
}

// rosterPagerMsg contains the result of a roster pager command
type rosterPagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying a slug
type clipboardMsg struct {
	slug string
	err  error
}

// pauseRenderingMsg stops rendering while an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg restarts rendering after the pager exits
type resumeRenderingMsg struct{}
