// Package i18n is a static string table for the two supported locales.
// It is a flat lookup with a text direction per locale: no pluralization
// and no formatting engine.
package i18n

// Locale is one of the two supported languages
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleAR Locale = "ar"
)

// DefaultLocale is used when a requested locale is unknown
const DefaultLocale = LocaleAR

// Parse maps a raw locale value to a supported one, falling back to the
// default
func Parse(raw string) Locale {
	switch Locale(raw) {
	case LocaleEN, LocaleAR:
		return Locale(raw)
	}
	return DefaultLocale
}

// Dir returns the text direction of a locale
func Dir(l Locale) string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

var tables = map[Locale]map[string]string{
	LocaleEN: {
		"brand_name":           "FULFILLO",
		"hub_title":            "Internal Operations Hub",
		"login":                "Authenticate",
		"email_label":          "Work Email",
		"password_label":       "Security Key",
		"login_failed":         "Invalid credentials or account suspended.",
		"nav.dashboard":        "Dashboard",
		"nav.orders":           "Orders",
		"nav.brands":           "Brands",
		"nav.inventory":        "Inventory",
		"nav.customers":        "Customers",
		"nav.shipping":         "Shipping",
		"nav.reports":          "Finance & Reports",
		"nav.settings":         "Settings",
		"logout":               "Logout",
		"welcome_back":         "Welcome back to Fulfillo Operations.",
		"stats.today_orders":   "Today's Orders",
		"stats.pending_pack":   "Pending Packaging",
		"stats.revenue":        "Settled Revenue",
		"stats.return_rate":    "Return Rate",
		"finance.total":        "Total Settled Earnings",
		"finance.projected":    "Projected Revenue",
		"finance.breakdown":    "Revenue Breakdown by Brand",
		"finance.settled":      "Settled",
		"finance.pending":      "In Transit",
		"create_order":         "Create Order",
		"search":               "Search orders...",
		"status.NEW":           "New",
		"status.PACKAGING":     "Packaging",
		"status.PACKED":        "Packed",
		"status.SHIPPED":       "Shipped",
		"status.DELIVERED":     "Delivered",
		"status.RETURNED":      "Returned",
		"status.EXCHANGE":      "Exchange",
	},
	LocaleAR: {
		"brand_name":           "فلفيلو",
		"hub_title":            "مركز العمليات الداخلي",
		"login":                "تسجيل الدخول",
		"email_label":          "البريد الإلكتروني للعمل",
		"password_label":       "مفتاح الأمان",
		"login_failed":         "بيانات الدخول غير صحيحة أو الحساب معلق",
		"nav.dashboard":        "لوحة التحكم",
		"nav.orders":           "الطلبات",
		"nav.brands":           "العلامات التجارية",
		"nav.inventory":        "المخزون",
		"nav.customers":        "العملاء",
		"nav.shipping":         "الشحن",
		"nav.reports":          "المالية والتقارير",
		"nav.settings":         "الإعدادات",
		"logout":               "تسجيل الخروج",
		"welcome_back":         "مرحباً بك مجدداً في عمليات فلفيلو.",
		"stats.today_orders":   "طلبات اليوم",
		"stats.pending_pack":   "في انتظار التغليف",
		"stats.revenue":        "الإيرادات المحصلة",
		"stats.return_rate":    "معدل المرتجعات",
		"finance.total":        "إجمالي الأرباح المحصلة",
		"finance.projected":    "الإيرادات المتوقعة",
		"finance.breakdown":    "توزيع الإيرادات حسب العلامة",
		"finance.settled":      "تم التحصيل",
		"finance.pending":      "قيد الشحن",
		"create_order":         "إنشاء طلب",
		"search":               "بحث في الطلبات...",
		"status.NEW":           "جديد",
		"status.PACKAGING":     "جاري التغليف",
		"status.PACKED":        "تم التغليف",
		"status.SHIPPED":       "تم الشحن",
		"status.DELIVERED":     "تم التوصيل",
		"status.RETURNED":      "مرتجع",
		"status.EXCHANGE":      "استبدال",
	},
}

// T looks up a key in a locale's table, falling back to English and
// then to the key itself
func T(l Locale, key string) string {
	if s, ok := tables[l][key]; ok {
		return s
	}
	if s, ok := tables[LocaleEN][key]; ok {
		return s
	}
	return key
}

// Table returns a copy of the whole string table for a locale
func Table(l Locale) map[string]string {
	src, ok := tables[l]
	if !ok {
		src = tables[DefaultLocale]
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
