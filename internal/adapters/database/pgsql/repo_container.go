package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
)

// NewRepositoryProvider creates every Postgres-backed repository over one
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		JournalRepo: NewPgxJournalRepository(pool),
		AccountRepo: NewPgxAccountRepository(pool),
		TaxCodeRepo: NewPgxTaxCodeRepository(pool),
		UserRepo:    NewPgxUserRepository(pool),
	}
}
