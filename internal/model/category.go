package model

// Category is a named grouping for transactions with a display color and icon.
// Categories are global, not scoped per profile.
type Category struct {
	ID    string
	Name  string
	Color string
	Icon  string
}
