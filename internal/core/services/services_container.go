package services

import (
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payment_voucher_app/internal/core/ports/services"
	"github.com/SscSPs/payment_voucher_app/internal/platform/config"
	"github.com/SscSPs/payment_voucher_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Payment service first since the settlement service reads and submits through it
	container.Payment = NewPaymentService(
		repos.PartyRepo,
		repos.PaymentRepo,
		WithPaymentMetrics(m),
	)

	container.Settlement = NewSettlementService(
		repos.SessionStore,
		container.Payment,
		container.Payment,
		WithSessionTTL(cfg.SessionTTL),
		WithPartyFetchTimeout(cfg.PartyFetchTimeout),
		WithSettlementMetrics(m),
	)

	return container
}
