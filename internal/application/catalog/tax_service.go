package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// TaxService handles tax-related business operations
type TaxService struct {
	taxRepo catalog.TaxRepository
	sync    *PricingSyncService
	logger  *zap.Logger
}

// NewTaxService creates a new TaxService
func NewTaxService(taxRepo catalog.TaxRepository, sync *PricingSyncService, logger *zap.Logger) *TaxService {
	return &TaxService{
		taxRepo: taxRepo,
		sync:    sync,
		logger:  logger,
	}
}

// Create creates a new tax and mirrors it to the payment provider
func (s *TaxService) Create(ctx context.Context, req CreateTaxRequest) (*TaxResponse, error) {
	tax, err := catalog.NewTax(req.Name, req.Description, req.Percentage)
	if err != nil {
		return nil, err
	}

	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}

	s.mirror(ctx, tax)

	return ToTaxResponse(tax), nil
}

// Update updates a tax and mirrors the new state to the payment provider
func (s *TaxService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxRequest) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tax.Name = req.Name
	tax.Description = req.Description
	tax.Percentage = req.Percentage
	if err := tax.Validate(); err != nil {
		return nil, err
	}

	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return nil, err
	}

	s.mirror(ctx, tax)

	return ToTaxResponse(tax), nil
}

// GetByID retrieves a tax by ID
func (s *TaxService) GetByID(ctx context.Context, id uuid.UUID) (*TaxResponse, error) {
	tax, err := s.taxRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTaxResponse(tax), nil
}

// List retrieves taxes matching the filter
func (s *TaxService) List(ctx context.Context, filter ListFilter) ([]*TaxResponse, int64, error) {
	taxes, total, err := s.taxRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*TaxResponse, 0, len(taxes))
	for _, tax := range taxes {
		responses = append(responses, ToTaxResponse(tax))
	}
	return responses, total, nil
}

// Delete deletes a tax; items that referenced it simply lose the
// association
func (s *TaxService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.taxRepo.Delete(ctx, id)
}

// mirror pushes the tax to the payment provider and persists the
// obtained tax rate id. A failed attempt leaves the previous id alone.
func (s *TaxService) mirror(ctx context.Context, tax *catalog.Tax) {
	result := s.sync.SyncTax(ctx, tax)
	if !result.Synced {
		s.logger.Warn("Tax sync failed",
			zap.String("tax_id", tax.ID.String()),
			zap.String("reason", result.Reason))
		return
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		s.logger.Warn("Failed to persist remote ids",
			zap.String("tax_id", tax.ID.String()),
			zap.Error(err))
	}
}
