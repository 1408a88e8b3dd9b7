package store

import "fulfillo/internal/models"

// NewSeededStore creates a store loaded with the demo dataset the
// dashboard starts from on every boot
func NewSeededStore() *Store {
	s := NewStore()

	s.users = []models.UserAccount{
		{Email: "admin@fulfillo.com", Password: "admin-unique-7721", Name: "Majed Al-Otaibi", Role: models.RoleAdmin, Department: "Headquarters", Active: true},
		{Email: "ops@fulfillo.com", Password: "ops-secure-991", Name: "Sarah Miller", Role: models.RoleOperations, Department: "Ops Control", Active: true},
		{Email: "pack@fulfillo.com", Password: "warehouse-key-5", Name: "John Ware", Role: models.RolePackaging, Department: "Warehouse A", Active: true},
		{Email: "glowskin@brand.com", Password: "glow-brand-secure", Name: "Lina Glow", Role: models.RoleBrandOwner, Department: "GlowSkin", BrandID: "b1", Active: true},
	}

	s.brands = []models.Brand{
		{ID: "b1", Name: "GlowSkin", Category: "Cosmetics", Color: "#2563eb", PreviousBalance: 1250000, AdminEmail: "support@glowskin.me", AdminPhone: "+966 50 111 2222", Description: "Premium organic skin repair serums.", BrandPassword: "GLOW-ACCESS-88", Integrated: true},
		{ID: "b2", Name: "TechGear", Category: "Electronics", Color: "#f59e0b", PreviousBalance: 420050, AdminEmail: "ops@techgear.com", AdminPhone: "+966 55 999 8888", Description: "Mechanical keyboards.", BrandPassword: "TECH-SECRET-99", Integrated: false},
	}

	s.orders = []models.Order{
		{ID: "#ORD-7721", BrandID: "b1", Customer: "Ahmed Ali", Status: models.OrderStatusNew, Total: 12000, Created: "2023-10-25", Source: "Shopify", Carrier: "SMSA Express"},
		{ID: "#ORD-7720", BrandID: "b2", Customer: "Sarah Connor", Status: models.OrderStatusPackaging, Total: 4550, Created: "2023-10-25", Source: "Manual", Carrier: "DHL"},
	}

	s.inventory = []models.InventoryItem{
		{ID: "1", Name: "Skin Repair Serum", SKU: "GS-001", Stock: 45, Price: 2500, BrandID: "b1"},
		{ID: "2", Name: "Tech Keyboard Pro", SKU: "TG-99", Stock: 12, Price: 8900, BrandID: "b2"},
	}

	s.customers = []models.Customer{
		{ID: "C-1", Name: "Ahmed Ali", Email: "ahmed@example.com"},
	}

	s.inquiries = []models.PartnerInquiry{
		{ID: "INQ-001", Brand: "EcoThreads", Email: "hello@ecothreads.co", Phone: "+966 54 333 2222", Shipping: "Aramex", Products: "Sustainable apparel.", Status: models.InquiryStatusNew},
	}

	return s
}
