package services

import (
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/services"
)

// NewContainer creates the service container with all dependencies wired.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.TaxCode = NewTaxCodeService(repos.TaxCodeRepo)
	container.User = NewUserService(repos.UserRepo)

	// Journal posting validates master data through the account and tax-code
	// facades, not their repositories, so business rules stay in one place.
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.TaxCode, nil)

	return container
}
