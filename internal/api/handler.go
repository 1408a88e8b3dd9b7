package api

import (
	"net/http"
	"strings"
	"time"

	"fulfillo/internal/export"
	"fulfillo/internal/i18n"
	"fulfillo/internal/models"
	"fulfillo/internal/service"
	"fulfillo/internal/store"
	"fulfillo/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	store      *store.Store
	auth       *service.AuthService
	views      *service.ViewService
	ops        *service.OpsService
	onboarding *service.OnboardingService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	st *store.Store,
	auth *service.AuthService,
	views *service.ViewService,
	ops *service.OpsService,
	onboarding *service.OnboardingService,
) *Handler {
	return &Handler{
		store:      st,
		auth:       auth,
		views:      views,
		ops:        ops,
		onboarding: onboarding,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.login)
		v1.POST("/join", h.joinRequest)
		v1.GET("/i18n/:lang", h.localeTable)

		authed := v1.Group("", h.requireSession())
		{
			authed.POST("/auth/logout", h.logout)
			authed.GET("/me", h.me)
			authed.GET("/pages/:key", h.page)

			authed.POST("/orders", h.can(ordersWritable), h.createOrder)
			authed.PATCH("/orders/:id/status", h.can(ordersWritable), h.updateOrderStatus)
			authed.PATCH("/inventory/:id/stock", h.can(inventoryWritable), h.updateStock)

			authed.POST("/brands", h.can(brandsWritable), h.createBrand)
			authed.PATCH("/brands/:id/name", h.can(brandsWritable), h.renameBrand)
			authed.DELETE("/brands/:id", h.can(brandsDeletable), h.deleteBrand)
			authed.PATCH("/brands/:id/integration", h.can(integrationWritable), h.setBrandIntegration)
			authed.POST("/finance/reconcile", h.can(reconcileAllowed), h.reconcile)

			authed.POST("/users", h.can(usersWritable), h.registerUser)
			authed.PATCH("/users/:email", h.can(usersWritable), h.updateUser)
			authed.POST("/users/:email/toggle", h.can(usersWritable), h.toggleUserActive)

			authed.PATCH("/inquiries/:id", h.can(inquiriesWritable), h.updateInquiry)
			authed.DELETE("/onboarding/pending", h.can(brandsWritable), h.cancelOnboarding)

			authed.GET("/shipping/manifest.csv", h.downloadManifest)
			authed.GET("/orders/manifest", h.printManifest)
		}
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// login authenticates credentials and opens a session
func (h *Handler) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Lang     string `json:"lang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One generic message for every failure mode.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": i18n.T(i18n.Parse(req.Lang), "login_failed"),
		})
		return
	}

	c.SetCookie("session", result.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token":        result.Token,
		"user":         result.User,
		"landing_page": result.LandingPage,
		"pages":        service.PagesFor(result.User.Role),
	})
}

// logout drops the current session
func (h *Handler) logout(c *gin.Context) {
	if token := sessionToken(c); token != "" {
		h.auth.Logout(token)
	}
	c.SetCookie("session", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// me returns the authenticated identity and its navigation
func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"pages":        service.PagesFor(user.Role),
		"capabilities": service.CapabilitiesFor(user.Role),
	})
}

// joinRequest handles the public partner application form
func (h *Handler) joinRequest(c *gin.Context) {
	var req service.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	inquiry, err := h.onboarding.SubmitJoinRequest(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to submit join request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, inquiry)
}

// localeTable serves one locale's string table and text direction
func (h *Handler) localeTable(c *gin.Context) {
	locale := i18n.Parse(c.Param("lang"))
	c.JSON(http.StatusOK, gin.H{
		"locale":  locale,
		"dir":     i18n.Dir(locale),
		"strings": i18n.Table(locale),
	})
}

// page serves a role-scoped page payload. Unknown or unauthorized keys
// resolve to the dashboard.
func (h *Handler) page(c *gin.Context) {
	user := currentUser(c)
	view := h.views.Page(c.Request.Context(), user, c.Param("key"), service.PageQuery{
		BrandFilter:  c.Query("brand"),
		Search:       c.Query("q"),
		ShippingView: c.Query("view"),
	})
	c.JSON(http.StatusOK, view)
}

// downloadManifest streams the shipping queue as a CSV attachment
func (h *Handler) downloadManifest(c *gin.Context) {
	user := currentUser(c)
	view := strings.ToLower(c.DefaultQuery("view", service.ShippingViewOutbound))
	if view != service.ShippingViewReturns {
		view = service.ShippingViewOutbound
	}

	orders := service.VisibleOrders(h.store.Orders(), user, c.Query("brand"))
	queue := service.ShippingQueue(orders, view, c.Query("q"))

	filename := export.ManifestFilename(view, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.WriteManifestCSV(c.Writer, queue, h.store.BrandName); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	util.ManifestExportsTotal.WithLabelValues(view).Inc()
}

// printManifest renders a plain-text manifest for the selected orders
func (h *Handler) printManifest(c *gin.Context) {
	user := currentUser(c)
	wanted := make(map[string]bool)
	for _, id := range c.QueryArray("id") {
		wanted[id] = true
	}

	var selected []models.Order
	for _, o := range service.VisibleOrders(h.store.Orders(), user, "") {
		if wanted[o.ID] {
			selected = append(selected, o)
		}
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	if err := export.WritePrintManifest(c.Writer, selected, h.store.BrandName); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
