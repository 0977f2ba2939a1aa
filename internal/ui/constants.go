package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconExport    = "⇩"
	IconColumns   = "▥"
	IconAdd       = "＋"
	IconInvoices  = "🧾"
	IconCustomers = "👥"
	IconSuppliers = "🏭"
	IconOrgChart  = "🏢"
	IconReturns   = "↩"
	IconRental    = "🔑"
	IconPurchases = "📦"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Page chrome sizing
const (
	PageTitleMinWidth  float32 = 160
	ColumnMenuWidth    float32 = 220
	SettingsFormWidth  float32 = 520
	SettingsFormHeight float32 = 460
	RecordFormWidth    float32 = 480
)

// Export file naming
const (
	ExportFilePrefix     = "ledgerdesk"
	ExportFileTimeFormat = "20060102-150405"
)
