package store

import (
	"fmt"

	"fulfillo/internal/models"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// AddInquiry prepends a new partner inquiry with a generated INQ-####
// id and status NEW
func (s *Store) AddInquiry(inquiry models.PartnerInquiry) (models.PartnerInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inquiry.ID = generateID("INQ-", s.inquiryIDExists)
	inquiry.Status = models.InquiryStatusNew
	s.inquiries = append([]models.PartnerInquiry{inquiry}, s.inquiries...)
	util.MutationsTotal.WithLabelValues("inquiry", "add").Inc()
	util.InquiriesSubmittedTotal.Inc()
	s.logger.Info("Partner inquiry received",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("brand", inquiry.Brand))
	return inquiry, nil
}

func (s *Store) inquiryIDExists(id string) bool {
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			return true
		}
	}
	return false
}

// SetInquiryStatus replaces the matching inquiry's status
func (s *Store) SetInquiryStatus(inquiryID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == inquiryID {
			s.inquiries[i].Status = status
			util.MutationsTotal.WithLabelValues("inquiry", "set_status").Inc()
			s.logger.Info("Inquiry status set",
				zap.String("inquiry_id", inquiryID),
				zap.String("status", status))
			return nil
		}
	}
	return fmt.Errorf("inquiry %s: %w", inquiryID, ErrNotFound)
}
