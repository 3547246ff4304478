package constants

// Keys for the controller registry.
const (
	Note = iota
	Auth
)
