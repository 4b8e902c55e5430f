package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergey87kuzin/stripe-payments/internal/domain/catalog"
	"github.com/sergey87kuzin/stripe-payments/internal/domain/shared"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	// Taxes are managed through ReplaceTaxes, not incidental saves
	return r.db.WithContext(ctx).Omit("Taxes").Save(item).Error
}

// FindByID finds an item by its ID, with its taxes preloaded
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).Preload("Taxes").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds items matching the filter, newest first
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Item, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&catalog.Item{})
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*catalog.Item
	if err := query.
		Preload("Taxes").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete deletes an item and its tax associations
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM item_taxes WHERE item_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Item{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// ReplaceTaxes replaces the item's tax associations with the given set.
// Duplicate ids count once.
func (r *GormItemRepository) ReplaceTaxes(ctx context.Context, item *catalog.Item, taxIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(taxIDs))
	unique := make([]uuid.UUID, 0, len(taxIDs))
	for _, taxID := range taxIDs {
		if _, ok := seen[taxID]; ok {
			continue
		}
		seen[taxID] = struct{}{}
		unique = append(unique, taxID)
	}

	var taxes []catalog.Tax
	if len(unique) > 0 {
		if err := r.db.WithContext(ctx).Find(&taxes, "id IN ?", unique).Error; err != nil {
			return err
		}
		if len(taxes) != len(unique) {
			return shared.ErrNotFound
		}
	}

	if err := r.db.WithContext(ctx).Model(item).Association("Taxes").Replace(taxes); err != nil {
		return err
	}
	item.Taxes = taxes
	return nil
}

// Ensure GormItemRepository implements ItemRepository
var _ catalog.ItemRepository = (*GormItemRepository)(nil)
