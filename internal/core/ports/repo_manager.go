package ports

import (
	"github.com/vulpemventures/credstore/internal/core/domain"
)

// RepoManager is the abstraction for any kind of service intended to manage
// domain repositories implementations of the same concrete type.
type RepoManager interface {
	// TransactionRepository returns the tx repository.
	TransactionRepository() domain.TransactionRepository

	// Close closes the connection with all concrete repositories
	// implementations.
	Close()
}
