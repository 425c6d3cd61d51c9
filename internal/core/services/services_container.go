package services

import (
	portsrepo "github.com/bizledger/backoffice/internal/core/ports/repositories"
	portssvc "github.com/bizledger/backoffice/internal/core/ports/services"
	"github.com/bizledger/backoffice/internal/platform/resilience"
)

// NewServiceContainer wires the repositories and operation policies into
// the full service set consumed by the HTTP layer.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, policies resilience.Policies) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, policies),
		Ledger:    NewLedgerService(repos.JournalRepo, policies),
		Reporting: NewReportingService(repos.ReportingRepo, policies),
	}
}
