package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyExportCSV       = "export_csv"
	KeyColumns         = "columns"
	KeyNewRecord       = "new_record"
	KeyLanguage        = "language"
	KeyDensity         = "density"
	KeyDateFormat      = "date_format"
	KeyDefaultCountry  = "default_country"
	KeyExportDirectory = "export_directory"
	KeyLayoutOverrides = "layout_overrides"
	KeySettingsSaved   = "settings_saved"
	KeyExportCompleted = "export_completed"
	KeyExportFailed    = "export_failed"
	KeyRecordSaved     = "record_saved"
	KeyName            = "name"
	KeyPhone           = "phone"
	KeyDate            = "date"
	KeySalesSection    = "sales_section"
	KeyPurchasing      = "purchasing_section"
	KeyOperations      = "operations_section"
	KeyInvoices        = "invoices"
	KeyCustomers       = "customers"
	KeySuppliers       = "suppliers"
	KeyDepartments     = "departments"
	KeyReturns         = "returns"
	KeyRentalInventory = "rental_inventory"
	KeyPurchaseOrders  = "purchase_orders"
	KeyRevenue         = "revenue"
	KeyExpenses        = "expenses"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "LedgerDesk",
		KeySettings:        "Settings",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyExportCSV:       "Export CSV",
		KeyColumns:         "Columns",
		KeyNewRecord:       "New Record",
		KeyLanguage:        "Language",
		KeyDensity:         "Density",
		KeyDateFormat:      "Date Format",
		KeyDefaultCountry:  "Default Phone Country",
		KeyExportDirectory: "Export Directory",
		KeyLayoutOverrides: "Column Layout File",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyExportCompleted: "Export completed",
		KeyExportFailed:    "Export failed",
		KeyRecordSaved:     "Record saved",
		KeyName:            "Name",
		KeyPhone:           "Phone",
		KeyDate:            "Date",
		KeySalesSection:    "Sales",
		KeyPurchasing:      "Purchasing",
		KeyOperations:      "Operations",
		KeyInvoices:        "Invoices",
		KeyCustomers:       "Customers",
		KeySuppliers:       "Suppliers",
		KeyDepartments:     "Departments",
		KeyReturns:         "Returns",
		KeyRentalInventory: "Rental Inventory",
		KeyPurchaseOrders:  "Purchase Orders",
		KeyRevenue:         "Revenue",
		KeyExpenses:        "Expenses",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:        "LedgerDesk",
		KeySettings:        "Einstellungen",
		KeySave:            "Speichern",
		KeyCancel:          "Abbrechen",
		KeyBrowse:          "Durchsuchen",
		KeyExportCSV:       "CSV exportieren",
		KeyColumns:         "Spalten",
		KeyNewRecord:       "Neuer Eintrag",
		KeyLanguage:        "Sprache",
		KeyDensity:         "Dichte",
		KeyDateFormat:      "Datumsformat",
		KeyDefaultCountry:  "Standard-Telefonland",
		KeyExportDirectory: "Exportverzeichnis",
		KeyLayoutOverrides: "Spaltenlayout-Datei",
		KeySettingsSaved:   "Einstellungen erfolgreich gespeichert!",
		KeyExportCompleted: "Export abgeschlossen",
		KeyExportFailed:    "Export fehlgeschlagen",
		KeyRecordSaved:     "Eintrag gespeichert",
		KeyName:            "Name",
		KeyPhone:           "Telefon",
		KeyDate:            "Datum",
		KeySalesSection:    "Verkauf",
		KeyPurchasing:      "Einkauf",
		KeyOperations:      "Betrieb",
		KeyInvoices:        "Rechnungen",
		KeyCustomers:       "Kunden",
		KeySuppliers:       "Lieferanten",
		KeyDepartments:     "Abteilungen",
		KeyReturns:         "Retouren",
		KeyRentalInventory: "Mietbestand",
		KeyPurchaseOrders:  "Bestellungen",
		KeyRevenue:         "Umsatz",
		KeyExpenses:        "Ausgaben",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:        "LedgerDesk",
		KeySettings:        "Configuración",
		KeySave:            "Guardar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Examinar",
		KeyExportCSV:       "Exportar CSV",
		KeyColumns:         "Columnas",
		KeyNewRecord:       "Nuevo registro",
		KeyLanguage:        "Idioma",
		KeyDensity:         "Densidad",
		KeyDateFormat:      "Formato de fecha",
		KeyDefaultCountry:  "País telefónico predeterminado",
		KeyExportDirectory: "Directorio de exportación",
		KeyLayoutOverrides: "Archivo de diseño de columnas",
		KeySettingsSaved:   "¡Configuración guardada correctamente!",
		KeyExportCompleted: "Exportación completada",
		KeyExportFailed:    "Error de exportación",
		KeyRecordSaved:     "Registro guardado",
		KeyName:            "Nombre",
		KeyPhone:           "Teléfono",
		KeyDate:            "Fecha",
		KeySalesSection:    "Ventas",
		KeyPurchasing:      "Compras",
		KeyOperations:      "Operaciones",
		KeyInvoices:        "Facturas",
		KeyCustomers:       "Clientes",
		KeySuppliers:       "Proveedores",
		KeyDepartments:     "Departamentos",
		KeyReturns:         "Devoluciones",
		KeyRentalInventory: "Inventario de alquiler",
		KeyPurchaseOrders:  "Órdenes de compra",
		KeyRevenue:         "Ingresos",
		KeyExpenses:        "Gastos",
	}
}
