package ports

// PreferenceStore is the abstraction for any kind of unprotected key-value
// storage intended to persist user settings.
type PreferenceStore interface {
	// GetPreference returns the value stored for the given name and whether
	// it is set.
	GetPreference(name string) (string, bool, error)
	// SetPreference stores the value for the given name.
	SetPreference(name, value string) error
	// DeletePreference clears the slot identified by the given name.
	DeletePreference(name string) error
	// Close releases the resources held by the store.
	Close()
}
