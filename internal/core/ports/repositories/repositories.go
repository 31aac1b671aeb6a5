package repositories

// RepositoryProvider bundles every repository facade for dependency
// injection into the service container.
type RepositoryProvider struct {
	JournalRepo JournalRepositoryFacade
	AccountRepo AccountRepositoryFacade
	TaxCodeRepo TaxCodeRepositoryFacade
	UserRepo    UserRepositoryFacade
}
