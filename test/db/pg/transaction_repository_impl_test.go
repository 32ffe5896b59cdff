package pgtest

import dbtest "github.com/vulpemventures/credstore/test/db"

func (p *PgDbTestSuite) TestTransactionRepository() {
	dbtest.TestTransactionRepository(
		p.T(), ctx, pgRepoManager.TransactionRepository(),
	)
}
