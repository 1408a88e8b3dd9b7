package store

import (
	"fmt"

	"fulfillo/internal/models"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// AddBrandFields carries the caller-supplied fields of a new brand;
// ID and color are assigned by the store
type AddBrandFields struct {
	Name          string
	Category      string
	AdminEmail    string
	AdminPhone    string
	Description   string
	BrandPassword string
}

// AddBrand appends a new brand with a generated id and a color chosen
// round-robin from the fixed palette, keyed by current brand count
func (s *Store) AddBrand(fields AddBrandFields) (models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	brand := models.Brand{
		ID:            fmt.Sprintf("b%d", len(s.brands)+1),
		Name:          fields.Name,
		Category:      fields.Category,
		Color:         models.BrandPalette[len(s.brands)%len(models.BrandPalette)],
		AdminEmail:    fields.AdminEmail,
		AdminPhone:    fields.AdminPhone,
		Description:   fields.Description,
		BrandPassword: fields.BrandPassword,
	}
	if brand.Category == "" {
		brand.Category = "Brand Partner"
	}

	s.brands = append(s.brands, brand)
	util.MutationsTotal.WithLabelValues("brand", "add").Inc()
	util.BrandsOnboardedTotal.Inc()
	s.logger.Info("Brand added",
		zap.String("brand_id", brand.ID),
		zap.String("name", brand.Name))
	return brand, nil
}

// RenameBrand changes a brand's display name. Dependent orders and
// inventory reference the brand by ID, so one record changes.
func (s *Store) RenameBrand(brandID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands[i].Name = name
			util.MutationsTotal.WithLabelValues("brand", "rename").Inc()
			return nil
		}
	}
	return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
}

// DeleteBrand removes the matching brand record. Orders, inventory and
// owner accounts referencing it are NOT cascade-deleted; they keep the
// dangling brand ID.
func (s *Store) DeleteBrand(brandID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands = append(s.brands[:i], s.brands[i+1:]...)
			util.MutationsTotal.WithLabelValues("brand", "delete").Inc()
			s.logger.Info("Brand deleted", zap.String("brand_id", brandID))
			return nil
		}
	}
	return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
}

// ReconcileBrandBalance adds amount (cents) to the brand's settled
// balance. Underlying orders are not marked reconciled here.
func (s *Store) ReconcileBrandBalance(brandID string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands[i].PreviousBalance += amount
			util.MutationsTotal.WithLabelValues("brand", "reconcile").Inc()
			s.logger.Info("Brand balance reconciled",
				zap.String("brand_id", brandID),
				zap.Int64("amount", amount),
				zap.Int64("balance", s.brands[i].PreviousBalance))
			return nil
		}
	}
	return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
}

// SetBrandIntegration toggles a brand's technical integration flag
func (s *Store) SetBrandIntegration(brandID string, integrated bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands[i].Integrated = integrated
			util.MutationsTotal.WithLabelValues("brand", "set_integration").Inc()
			return nil
		}
	}
	return fmt.Errorf("brand %s: %w", brandID, ErrNotFound)
}
