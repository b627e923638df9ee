package entities

// Greeting is a salutation rendered in one locale.
type Greeting struct {
	Locale string
	Text   string
}
