package domain

// Preferences holds the per-account display settings the web client used to
// keep in browser storage: interface language and the dark-mode flag.
type Preferences struct {
	Lang     string
	DarkMode bool
}

// DefaultPreferences matches the client defaults: Portuguese, light theme.
func DefaultPreferences() Preferences {
	return Preferences{Lang: "pt"}
}

func (p Preferences) Validate() error {
	if p.Lang != "pt" && p.Lang != "en" {
		return &ValidationError{Field: "lang", Reason: `must be "pt" or "en"`}
	}
	return nil
}
