package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"fulfillo/internal/models"
	"fulfillo/internal/service"
	"fulfillo/internal/util"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "current_user"

// sessionToken extracts the session token from the Authorization header
// or the session cookie
func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("session"); err == nil {
		return cookie
	}
	return ""
}

// requireSession authenticates the request from its session token and
// loads the current account into the context. The account's active flag
// is deliberately not re-checked here: suspension gates future logins,
// not sessions already established.
func (h *Handler) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		session, ok := h.auth.SessionByToken(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		user, err := h.store.GetUserByEmail(session.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(ctxUserKey, *user)
		c.Next()
	}
}

// currentUser returns the account loaded by requireSession
func currentUser(c *gin.Context) models.UserAccount {
	user, _ := c.Get(ctxUserKey)
	return user.(models.UserAccount)
}

// Capability predicates for route gating
var (
	ordersWritable      = func(caps service.Capabilities) bool { return caps.MutateOrders }
	inventoryWritable   = func(caps service.Capabilities) bool { return caps.MutateInventory }
	brandsWritable      = func(caps service.Capabilities) bool { return caps.ManageBrands }
	brandsDeletable     = func(caps service.Capabilities) bool { return caps.DeleteBrands }
	reconcileAllowed    = func(caps service.Capabilities) bool { return caps.Reconcile }
	usersWritable       = func(caps service.Capabilities) bool { return caps.ManageUsers }
	inquiriesWritable   = func(caps service.Capabilities) bool { return caps.ReviewInquiries }
	integrationWritable = func(caps service.Capabilities) bool { return caps.ToggleIntegration }
)

// can rejects requests whose role lacks the given capability. The store
// below stays unguarded; this is the single authorization choke point.
func (h *Handler) can(allowed func(service.Capabilities) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(service.CapabilitiesFor(currentUser(c).Role)) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Action not permitted for role"})
			return
		}
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
