package store

import (
	"errors"
	"regexp"
	"testing"

	"fulfillo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOrderStatusScenario(t *testing.T) {
	s := NewSeededStore()

	// Seed: #ORD-7721 NEW, #ORD-7720 PACKAGING
	err := s.SetOrderStatus("#ORD-7720", models.OrderStatusPacked)
	require.NoError(t, err)

	packed := 0
	for _, o := range s.Orders() {
		if o.Status == models.OrderStatusPacked {
			packed++
		}
	}
	assert.Equal(t, 1, packed)

	untouched, err := s.GetOrderByID("#ORD-7721")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, untouched.Status)
}

func TestSetOrderStatusIdempotent(t *testing.T) {
	s := NewSeededStore()

	require.NoError(t, s.SetOrderStatus("#ORD-7720", models.OrderStatusPacked))
	after := s.Orders()

	require.NoError(t, s.SetOrderStatus("#ORD-7720", models.OrderStatusPacked))
	assert.Equal(t, after, s.Orders())
}

func TestSetOrderStatusNotFound(t *testing.T) {
	s := NewSeededStore()
	err := s.SetOrderStatus("#ORD-0000", models.OrderStatusPacked)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddOrderPrepends(t *testing.T) {
	s := NewSeededStore()

	order, err := s.AddOrder(models.Order{
		BrandID:  "b1",
		Customer: "Test Buyer",
		Status:   models.OrderStatusNew,
		Total:    9900,
		Created:  "2023-11-01",
		Source:   "Manual",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^#ORD-\d{4}$`), order.ID)

	orders := s.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestAddBrandRoundTrip(t *testing.T) {
	s := NewSeededStore()
	before := len(s.Brands())

	fields := AddBrandFields{
		Name:          "EcoThreads",
		AdminEmail:    "hello@ecothreads.co",
		AdminPhone:    "+966 54 333 2222",
		Description:   "Sustainable apparel.",
		BrandPassword: "ECO-KEY-1",
	}
	brand, err := s.AddBrand(fields)
	require.NoError(t, err)

	brands := s.Brands()
	require.Len(t, brands, before+1)
	got := brands[len(brands)-1]
	assert.Equal(t, brand.ID, got.ID)
	assert.Equal(t, "b3", got.ID)
	assert.Equal(t, fields.Name, got.Name)
	assert.Equal(t, fields.AdminEmail, got.AdminEmail)
	assert.Equal(t, fields.AdminPhone, got.AdminPhone)
	assert.Equal(t, fields.Description, got.Description)
	assert.Equal(t, "Brand Partner", got.Category)
	// Two seeded brands exist, so the third color in the palette is next.
	assert.Equal(t, models.BrandPalette[2], got.Color)
}

func TestAddBrandPaletteRoundRobin(t *testing.T) {
	s := NewStore()
	for i := 0; i < 8; i++ {
		brand, err := s.AddBrand(AddBrandFields{Name: "B", AdminEmail: "b@b.co"})
		require.NoError(t, err)
		assert.Equal(t, models.BrandPalette[i%len(models.BrandPalette)], brand.Color)
	}
}

func TestDeleteBrandDoesNotCascade(t *testing.T) {
	s := NewSeededStore()
	ordersBefore := len(s.Orders())
	inventoryBefore := len(s.Inventory())

	require.NoError(t, s.DeleteBrand("b1"))

	_, err := s.GetBrandByID("b1")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, s.Orders(), ordersBefore)
	assert.Len(t, s.Inventory(), inventoryBefore)

	// Orphaned references resolve to the raw id.
	assert.Equal(t, "b1", s.BrandName("b1"))
}

func TestRenameBrandUpdatesOneRecord(t *testing.T) {
	s := NewSeededStore()

	require.NoError(t, s.RenameBrand("b1", "GlowSkin Labs"))
	assert.Equal(t, "GlowSkin Labs", s.BrandName("b1"))

	// Dependents reference the id, so they follow the rename.
	order, err := s.GetOrderByID("#ORD-7721")
	require.NoError(t, err)
	assert.Equal(t, "b1", order.BrandID)
}

func TestReconcileBrandBalanceAccumulates(t *testing.T) {
	s := NewSeededStore()
	brand, err := s.GetBrandByID("b2")
	require.NoError(t, err)
	start := brand.PreviousBalance

	require.NoError(t, s.ReconcileBrandBalance("b2", 5000))
	require.NoError(t, s.ReconcileBrandBalance("b2", 2500))

	brand, err = s.GetBrandByID("b2")
	require.NoError(t, err)
	assert.Equal(t, start+7500, brand.PreviousBalance)

	// Orders are not marked reconciled by reconciliation.
	for _, o := range s.Orders() {
		assert.False(t, o.Reconciled)
	}
}

func TestSetStockIsRaw(t *testing.T) {
	s := NewSeededStore()

	// The store applies the value as-is; the zero floor belongs to the
	// caller.
	require.NoError(t, s.SetStock("1", -5))
	item, err := s.GetInventoryItemByID("1")
	require.NoError(t, err)
	assert.Equal(t, -5, item.Stock)
}

func TestRegisterUserForcesActive(t *testing.T) {
	s := NewSeededStore()

	err := s.RegisterUser(models.UserAccount{
		Email:    "new@fulfillo.com",
		Password: "pw",
		Name:     "New Staff",
		Role:     models.RoleSupport,
		Active:   false,
	})
	require.NoError(t, err)

	user, err := s.GetUserByEmail("new@fulfillo.com")
	require.NoError(t, err)
	assert.True(t, user.Active)

	err = s.RegisterUser(models.UserAccount{Email: "new@fulfillo.com", Role: models.RoleSupport})
	assert.Error(t, err)
}

func TestToggleUserActiveHasNoSelfGuard(t *testing.T) {
	s := NewSeededStore()

	// The handler flips any account, including the caller's own; the UI
	// disables the button, nothing here does.
	active, err := s.ToggleUserActive("admin@fulfillo.com")
	require.NoError(t, err)
	assert.False(t, active)

	active, err = s.ToggleUserActive("admin@fulfillo.com")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestAddInquiryGeneratesPatternID(t *testing.T) {
	s := NewSeededStore()
	before := len(s.Inquiries())

	inquiry, err := s.AddInquiry(models.PartnerInquiry{Brand: "Acme", Email: "a@acme.co"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^INQ-\d{4}$`), inquiry.ID)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	inquiries := s.Inquiries()
	require.Len(t, inquiries, before+1)
	assert.Equal(t, inquiry.ID, inquiries[0].ID)
}
