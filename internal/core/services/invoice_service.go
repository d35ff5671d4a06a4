package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/frigosaas/frigo-backend/internal/apperrors"
	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portsrepo "github.com/frigosaas/frigo-backend/internal/core/ports/repositories"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/dto"
	"github.com/frigosaas/frigo-backend/internal/utils/numbering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientRepositoryFacade
	counterRepo portsrepo.CounterRepositoryFacade
	audit       portssvc.AuditSvcFacade
}

// NewInvoiceService creates a new invoice service with the provided dependencies
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	counterRepo portsrepo.CounterRepositoryFacade,
	authorizer portssvc.TenantAuthorizerSvc,
	audit portssvc.AuditSvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService: BaseService{TenantAuthorizer: authorizer},
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		counterRepo: counterRepo,
		audit:       audit,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func invoiceCounterKey(year int) string {
	return fmt.Sprintf("%s-%d", numbering.InvoicePrefix, year)
}

// CreateInvoice issues an invoice numbered FAC-YYYY-NNNN from the tenant's
// atomic counter, so concurrent issuers never collide on a number.
func (s *invoiceService) CreateInvoice(ctx context.Context, tenantID string, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, tenantID, domain.RoleManager); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewAppError(400, "invoice amount must be positive", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, tenantID, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "client not found", apperrors.ErrValidation)
		}
		return nil, err
	}

	now := time.Now()
	seq, err := s.counterRepo.NextSequence(ctx, tenantID, invoiceCounterKey(now.Year()))
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate invoice number",
			slog.String("tenant_id", tenantID))
		return nil, err
	}

	invoice := domain.Invoice{
		InvoiceID:  uuid.NewString(),
		Number:     numbering.Format(numbering.InvoicePrefix, now.Year(), seq),
		TenantID:   tenantID,
		ClientID:   client.ClientID,
		ClientName: client.Name,
		Amount:     req.Amount,
		Status:     domain.InvoiceDraft,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("tenant_id", tenantID),
			slog.String("number", invoice.Number))
		return nil, err
	}

	s.audit.Record(ctx, tenantID, creatorUserID, "CREATE", "invoice", invoice.InvoiceID, invoice.Number)
	s.LogInfo(ctx, "Invoice issued",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", invoice.Number),
		slog.String("amount", req.Amount.String()))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, tenantID, invoiceID, requestingUserID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, tenantID, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice",
				slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, tenantID string, status domain.InvoiceStatus, limit, offset int, requestingUserID string) ([]domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleViewer); err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindInvoices(ctx, tenantID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices",
			slog.String("tenant_id", tenantID))
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, tenantID, invoiceID string, status domain.InvoiceStatus, requestingUserID string) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, tenantID, domain.RoleManager); err != nil {
		return err
	}
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, tenantID, invoiceID, status, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update invoice status",
				slog.String("invoice_id", invoiceID))
		}
		return err
	}
	s.audit.Record(ctx, tenantID, requestingUserID, "STATUS:"+string(status), "invoice", invoiceID, "")
	return nil
}
