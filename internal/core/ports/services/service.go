package services

// ServiceContainer holds instances of all application services. Handlers
// receive this container and pick the facades they need.
type ServiceContainer struct {
	Journal JournalSvcFacade
	Account AccountSvcFacade
	TaxCode TaxCodeSvcFacade
	User    UserSvcFacade
}
