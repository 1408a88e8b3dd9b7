package service

import (
	"context"
	"fmt"
	"sync"

	"fulfillo/internal/models"
	"fulfillo/internal/store"
	"fulfillo/internal/util"

	"go.uber.org/zap"
)

// PendingOnboarding is the handoff payload between inquiry review and
// brand creation. There is exactly one slot: approving another inquiry
// replaces it.
type PendingOnboarding struct {
	InquiryID string `json:"inquiry_id"`
	Brand     string `json:"brand"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Shipping  string `json:"shipping"`
	Products  string `json:"products"`
}

// OnboardingService runs the three-stage partner pipeline: public join
// request, admin review, brand creation from the pending payload.
type OnboardingService struct {
	store        *store.Store
	logger       *zap.Logger
	markApproved bool

	mu      sync.Mutex
	pending *PendingOnboarding
}

// NewOnboardingService creates a new onboarding service. markApproved
// controls whether creating a brand from the pending payload also flips
// the source inquiry to APPROVED; the original flow never does.
func NewOnboardingService(st *store.Store, markApproved bool) *OnboardingService {
	return &OnboardingService{store: st, logger: util.GetLogger(), markApproved: markApproved}
}

// JoinRequest carries the public application form fields
type JoinRequest struct {
	Brand    string `json:"brand" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Shipping string `json:"shipping"`
	Products string `json:"products" binding:"required"`
}

// SubmitJoinRequest records a new partner inquiry with status NEW
func (o *OnboardingService) SubmitJoinRequest(ctx context.Context, req JoinRequest) (*models.PartnerInquiry, error) {
	_, span := util.StartSpan(ctx, "OnboardingService.SubmitJoinRequest")
	defer span.End()

	inquiry, err := o.store.AddInquiry(models.PartnerInquiry{
		Brand:    req.Brand,
		Email:    req.Email,
		Phone:    req.Phone,
		Shipping: req.Shipping,
		Products: req.Products,
	})
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// ApproveInquiry copies the inquiry's data into the pending slot and
// returns the page the reviewer is sent to. The inquiry's own status is
// left at NEW here; see NewOnboardingService for the optional flip on
// brand creation.
func (o *OnboardingService) ApproveInquiry(ctx context.Context, inquiryID string) (string, error) {
	_, span := util.StartSpan(ctx, "OnboardingService.ApproveInquiry")
	defer span.End()

	inquiry, err := o.store.GetInquiryByID(inquiryID)
	if err != nil {
		return "", err
	}

	o.mu.Lock()
	o.pending = &PendingOnboarding{
		InquiryID: inquiry.ID,
		Brand:     inquiry.Brand,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Shipping:  inquiry.Shipping,
		Products:  inquiry.Products,
	}
	o.mu.Unlock()

	o.logger.Info("Inquiry approved for onboarding",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("brand", inquiry.Brand))
	return PageBrands, nil
}

// RejectInquiry sets the inquiry's status to REJECTED, a terminal state
func (o *OnboardingService) RejectInquiry(ctx context.Context, inquiryID string) error {
	_, span := util.StartSpan(ctx, "OnboardingService.RejectInquiry")
	defer span.End()
	return o.store.SetInquiryStatus(inquiryID, models.InquiryStatusRejected)
}

// SetInquiryStatus sets an inquiry's status directly
func (o *OnboardingService) SetInquiryStatus(ctx context.Context, inquiryID, status string) error {
	_, span := util.StartSpan(ctx, "OnboardingService.SetInquiryStatus")
	defer span.End()

	switch status {
	case models.InquiryStatusNew, models.InquiryStatusApproved, models.InquiryStatusRejected:
		return o.store.SetInquiryStatus(inquiryID, status)
	}
	return fmt.Errorf("unknown inquiry status: %s", status)
}

// Pending returns a copy of the pending onboarding payload, or nil
func (o *OnboardingService) Pending() *PendingOnboarding {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending == nil {
		return nil
	}
	p := *o.pending
	return &p
}

// CancelPending clears the pending slot without side effects
func (o *OnboardingService) CancelPending() {
	o.mu.Lock()
	o.pending = nil
	o.mu.Unlock()
}

// CreateBrand adds a brand. When the fields came from the pending slot
// the slot is cleared, and with the mark-approved switch on the source
// inquiry is flipped to APPROVED.
func (o *OnboardingService) CreateBrand(ctx context.Context, fields store.AddBrandFields) (*models.Brand, error) {
	_, span := util.StartSpan(ctx, "OnboardingService.CreateBrand")
	defer span.End()

	brand, err := o.store.AddBrand(fields)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	pending := o.pending
	o.pending = nil
	o.mu.Unlock()

	if pending != nil && o.markApproved {
		if err := o.store.SetInquiryStatus(pending.InquiryID, models.InquiryStatusApproved); err != nil {
			o.logger.Warn("Could not mark source inquiry approved",
				zap.String("inquiry_id", pending.InquiryID),
				zap.Error(err))
		}
	}
	return &brand, nil
}

// DeleteBrand removes a brand record. Dependents are not cascaded.
func (o *OnboardingService) DeleteBrand(ctx context.Context, brandID string) error {
	_, span := util.StartSpan(ctx, "OnboardingService.DeleteBrand")
	defer span.End()
	return o.store.DeleteBrand(brandID)
}

// RenameBrand changes a brand's display name in its one canonical record
func (o *OnboardingService) RenameBrand(ctx context.Context, brandID, name string) error {
	_, span := util.StartSpan(ctx, "OnboardingService.RenameBrand")
	defer span.End()
	if name == "" {
		return fmt.Errorf("brand name must not be empty")
	}
	return o.store.RenameBrand(brandID, name)
}
