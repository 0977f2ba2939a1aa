package layout

// Preset names for the table-bearing pages. Each page builds its engine from
// the matching registry below.
const (
	PresetInvoices        = "invoices"
	PresetCustomers       = "customers"
	PresetSuppliers       = "suppliers"
	PresetDepartments     = "departments"
	PresetReturns         = "returns"
	PresetRentalInventory = "rental_inventory"
	PresetPurchaseOrders  = "purchase_orders"
)

// Shared column sizing constants
const (
	ActionsColumnWidth float32 = 120
	DateColumnMin      float32 = 90
	DateColumnPref     float32 = 110
	AmountColumnMin    float32 = 80
	AmountColumnPref   float32 = 100
	StatusColumnMin    float32 = 80
	StatusColumnMax    float32 = 140
)

// presets maps a preset name to its ordered column registry. Order is the
// left-to-right display order.
var presets = map[string][]ColumnSpec{
	PresetInvoices: {
		{Name: "number", Star: 1, MinWidth: 90, MaxWidth: 160, Preferred: 110},
		{Name: "date", Star: 1, MinWidth: DateColumnMin, MaxWidth: 150, Preferred: DateColumnPref},
		{Name: "customer", Star: 2, MinWidth: 140, Preferred: 220},
		{Name: "amount", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "status", Star: 1, MinWidth: StatusColumnMin, MaxWidth: StatusColumnMax, Preferred: 100},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetCustomers: {
		{Name: "name", Star: 2, MinWidth: 140, Preferred: 220},
		{Name: "phone", Star: 1, MinWidth: 110, MaxWidth: 180, Preferred: 140},
		{Name: "email", Star: 1.5, MinWidth: 140, Preferred: 200},
		{Name: "balance", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetSuppliers: {
		{Name: "name", Star: 2, MinWidth: 140, Preferred: 220},
		{Name: "phone", Star: 1, MinWidth: 110, MaxWidth: 180, Preferred: 140},
		{Name: "email", Star: 1.5, MinWidth: 140, Preferred: 200},
		{Name: "balance", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetDepartments: {
		{Name: "name", Star: 2, MinWidth: 140, Preferred: 200},
		{Name: "manager", Star: 1.5, MinWidth: 120, Preferred: 160},
		{Name: "headcount", Star: 1, MinWidth: 70, MaxWidth: 120, Preferred: 90},
		{Name: "budget", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetReturns: {
		{Name: "number", Star: 1, MinWidth: 90, MaxWidth: 160, Preferred: 110},
		{Name: "date", Star: 1, MinWidth: DateColumnMin, MaxWidth: 150, Preferred: DateColumnPref},
		{Name: "customer", Star: 2, MinWidth: 140, Preferred: 220},
		{Name: "reason", Star: 1.5, MinWidth: 120, Preferred: 180, Hidden: true},
		{Name: "amount", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "status", Star: 1, MinWidth: StatusColumnMin, MaxWidth: StatusColumnMax, Preferred: 100},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetRentalInventory: {
		{Name: "asset", Star: 2, MinWidth: 140, Preferred: 200},
		{Name: "category", Star: 1, MinWidth: 100, MaxWidth: 180, Preferred: 130},
		{Name: "daily_rate", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "rented_to", Star: 1.5, MinWidth: 120, Preferred: 180},
		{Name: "due_back", Star: 1, MinWidth: DateColumnMin, MaxWidth: 150, Preferred: DateColumnPref},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
	PresetPurchaseOrders: {
		{Name: "number", Star: 1, MinWidth: 90, MaxWidth: 160, Preferred: 110},
		{Name: "date", Star: 1, MinWidth: DateColumnMin, MaxWidth: 150, Preferred: DateColumnPref},
		{Name: "supplier", Star: 2, MinWidth: 140, Preferred: 220},
		{Name: "expected", Star: 1, MinWidth: DateColumnMin, MaxWidth: 150, Preferred: DateColumnPref, Hidden: true},
		{Name: "amount", Star: 1, MinWidth: AmountColumnMin, MaxWidth: 160, Preferred: AmountColumnPref},
		{Name: "status", Star: 1, MinWidth: StatusColumnMin, MaxWidth: StatusColumnMax, Preferred: 100},
		{Name: "actions", Fixed: true, FixedWidth: ActionsColumnWidth},
	},
}

// Preset returns a copy of the named registry, or nil for an unknown name.
// Callers own the returned slice and may adjust it before building an engine.
func Preset(name string) []ColumnSpec {
	specs, ok := presets[name]
	if !ok {
		return nil
	}
	out := make([]ColumnSpec, len(specs))
	copy(out, specs)
	return out
}

// PresetNames returns the known preset names in page order.
func PresetNames() []string {
	return []string{
		PresetInvoices,
		PresetCustomers,
		PresetSuppliers,
		PresetDepartments,
		PresetReturns,
		PresetRentalInventory,
		PresetPurchaseOrders,
	}
}
