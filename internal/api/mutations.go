package api

import (
	"errors"
	"net/http"

	"fulfillo/internal/models"
	"fulfillo/internal/service"
	"fulfillo/internal/store"

	"github.com/gin-gonic/gin"
)

// respondMutationError maps service errors to HTTP statuses
func respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}

// createOrder records a manually entered order
func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	order, err := h.ops.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// updateOrderStatus sets an order's status. The default path is the
// operator override; "validate": true consults the transition table.
func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req struct {
		Status   models.OrderStatus `json:"status" binding:"required"`
		Validate bool               `json:"validate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var err error
	if req.Validate {
		err = h.ops.AdvanceOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	} else {
		err = h.ops.SetOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	}
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

// updateStock adjusts an item's stock, absolute or by delta, floored at
// zero
func (h *Handler) updateStock(c *gin.Context) {
	var req struct {
		Stock *int `json:"stock"`
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Stock == nil && req.Delta == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide stock or delta"})
		return
	}

	var (
		stock int
		err   error
	)
	if req.Delta != nil {
		stock, err = h.ops.ChangeStock(c.Request.Context(), c.Param("id"), *req.Delta)
	} else {
		stock, err = h.ops.SetStock(c.Request.Context(), c.Param("id"), *req.Stock)
	}
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "stock": stock})
}

// createBrand adds a brand, consuming any pending onboarding payload
func (h *Handler) createBrand(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		Category      string `json:"category"`
		AdminEmail    string `json:"admin_email" binding:"required,email"`
		AdminPhone    string `json:"admin_phone"`
		Description   string `json:"description"`
		BrandPassword string `json:"brand_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	brand, err := h.onboarding.CreateBrand(c.Request.Context(), store.AddBrandFields{
		Name:          req.Name,
		Category:      req.Category,
		AdminEmail:    req.AdminEmail,
		AdminPhone:    req.AdminPhone,
		Description:   req.Description,
		BrandPassword: req.BrandPassword,
	})
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// renameBrand changes a brand's display name in its canonical record
func (h *Handler) renameBrand(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.onboarding.RenameBrand(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "name": req.Name})
}

// deleteBrand removes a brand record without cascading
func (h *Handler) deleteBrand(c *gin.Context) {
	if err := h.onboarding.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

// setBrandIntegration toggles a brand's integration flag
func (h *Handler) setBrandIntegration(c *gin.Context) {
	var req struct {
		Integrated *bool `json:"integrated" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.ops.SetBrandIntegration(c.Request.Context(), c.Param("id"), *req.Integrated); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "integrated": *req.Integrated})
}

// reconcile accumulates a settled payout into a brand's balance
func (h *Handler) reconcile(c *gin.Context) {
	var req struct {
		BrandID string `json:"brand_id" binding:"required"`
		Amount  int64  `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := h.ops.Reconcile(c.Request.Context(), req.BrandID, req.Amount); err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brand_id": req.BrandID, "amount": req.Amount})
}

// registerUser appends a new account to the registry
func (h *Handler) registerUser(c *gin.Context) {
	var req struct {
		Email      string      `json:"email" binding:"required,email"`
		Password   string      `json:"password" binding:"required"`
		Name       string      `json:"name" binding:"required"`
		Role       models.Role `json:"role" binding:"required"`
		Department string      `json:"department"`
		BrandID    string      `json:"brand_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	err := h.auth.RegisterUser(c.Request.Context(), models.UserAccount{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		BrandID:    req.BrandID,
	})
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"email": req.Email})
}

// updateUser merges name/password/department edits into an account
func (h *Handler) updateUser(c *gin.Context) {
	var req struct {
		Name       *string `json:"name"`
		Password   *string `json:"password"`
		Department *string `json:"department"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	err := h.auth.UpdateUser(c.Request.Context(), c.Param("email"), store.UserPatch{
		Name:       req.Name,
		Password:   req.Password,
		Department: req.Department,
	})
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": c.Param("email")})
}

// toggleUserActive flips an account's active flag. The handler accepts
// the caller's own email too; the dashboard disables that button, the
// API does not.
func (h *Handler) toggleUserActive(c *gin.Context) {
	active, err := h.auth.ToggleUserActive(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": c.Param("email"), "active": active})
}

// updateInquiry reviews a partner inquiry: approving loads the pending
// onboarding payload and directs the client to the brands page;
// rejecting is terminal
func (h *Handler) updateInquiry(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	switch req.Status {
	case models.InquiryStatusApproved:
		nextPage, err := h.onboarding.ApproveInquiry(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":        c.Param("id"),
			"next_page": nextPage,
			"pending":   h.onboarding.Pending(),
		})
	case models.InquiryStatusRejected:
		if err := h.onboarding.RejectInquiry(c.Request.Context(), c.Param("id")); err != nil {
			respondMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
	default:
		if err := h.onboarding.SetInquiryStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			respondMutationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
	}
}

// cancelOnboarding clears the pending onboarding payload
func (h *Handler) cancelOnboarding(c *gin.Context) {
	h.onboarding.CancelPending()
	c.JSON(http.StatusOK, gin.H{"pending": nil})
}
