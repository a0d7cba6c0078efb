package ports

// Revealer shows a stored path in the platform's file browser.
type Revealer interface {
	Reveal(path string) error
}
