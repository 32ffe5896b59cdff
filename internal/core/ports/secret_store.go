package ports

import "github.com/vulpemventures/credstore/internal/core/domain"

// SecretStore is the abstraction for any kind of protected key-value storage
// intended to persist the user's secrets across restarts.
type SecretStore interface {
	// GetSecret returns the value of the given field and whether it is set.
	GetSecret(field domain.SecretField) (string, bool, error)
	// SetSecret stores the value for the given field, overwriting any
	// previous one.
	SetSecret(field domain.SecretField, value string) error
	// DeleteSecret removes the given field. Deleting a field that is not set
	// is not an error.
	DeleteSecret(field domain.SecretField) error
	// GetFlag returns the value of the given flag, false if never set.
	GetFlag(flag domain.SecretFlag) (bool, error)
	// SetFlag stores the value of the given flag.
	SetFlag(flag domain.SecretFlag, value bool) error
	// Clear wipes every secret and flag from the store.
	Clear() error
	// Close releases the resources held by the store.
	Close()
}
