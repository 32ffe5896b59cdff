package inmemory

import (
	"github.com/vulpemventures/credstore/internal/core/domain"
	"github.com/vulpemventures/credstore/internal/core/ports"
)

type repoManager struct {
	txRepository *txRepository
}

func NewRepoManager() ports.RepoManager {
	return &repoManager{
		txRepository: newTransactionRepository(),
	}
}

func (rm *repoManager) TransactionRepository() domain.TransactionRepository {
	return rm.txRepository
}

func (rm *repoManager) Close() {}
