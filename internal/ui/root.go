package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ledgerdesk/ledgerdesk/internal/config"
	"github.com/ledgerdesk/ledgerdesk/internal/layout"
	"github.com/ledgerdesk/ledgerdesk/internal/model"
	"github.com/ledgerdesk/ledgerdesk/internal/platform"
	"github.com/ledgerdesk/ledgerdesk/internal/widgets"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	overrides    *layout.Overrides
	modals       *widgets.ModalHost

	sidebar *widgets.Sidebar
	legend  *widgets.ChartLegend
	pages   map[string]*tablePage
	content *fyne.Container
	shell   *responsiveShell

	currentPage string
}

// tablePage is one table-bearing page of the shell.
type tablePage struct {
	preset   string
	titleKey string
	icon     string
	rows     []map[string]string

	table      *widgets.DataTable
	titleLabel *widget.Label
	scrollHint *widget.Label
	view       fyne.CanvasObject

	sortColumn string
	sortAsc    bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		modals:       widgets.NewModalHost(window),
		pages:        make(map[string]*tablePage),
	}

	ui.loadOverrides()

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.createUI()
	return ui
}

// Content returns the root canvas object for the window.
func (ui *RootUI) Content() fyne.CanvasObject {
	return ui.shell
}

// loadOverrides reads the column-layout overrides file named in settings.
func (ui *RootUI) loadOverrides() {
	path := ui.settings.GetLayoutOverridesPath()
	if path == "" {
		ui.overrides = &layout.Overrides{}
		return
	}

	overrides, err := layout.LoadOverrides(path)
	if err != nil {
		zap.S().Warnw("failed to load layout overrides", "path", path, "error", err)
		ui.overrides = &layout.Overrides{}
		return
	}
	ui.overrides = overrides
}

// createUI creates and arranges all UI components
func (ui *RootUI) createUI() {
	ui.pages = make(map[string]*tablePage)
	for _, def := range ui.pageDefinitions() {
		ui.pages[def.preset] = ui.buildPage(def)
	}

	ui.sidebar = widgets.NewSidebar(ui.sidebarSections())
	ui.sidebar.SetCallbacks(ui.onNavigate)

	ui.content = container.NewStack()
	ui.shell = newResponsiveShell(ui)

	start := layout.PresetInvoices
	if ui.currentPage != "" {
		start = ui.currentPage
	}
	ui.sidebar.Select(start)
	ui.showPage(start)
}

// pageDefinitions lists the pages in sidebar order with their demo datasets.
func (ui *RootUI) pageDefinitions() []*tablePage {
	return []*tablePage{
		{preset: layout.PresetInvoices, titleKey: KeyInvoices, icon: IconInvoices, rows: invoiceRows()},
		{preset: layout.PresetCustomers, titleKey: KeyCustomers, icon: IconCustomers, rows: customerRows(model.SampleCustomers())},
		{preset: layout.PresetSuppliers, titleKey: KeySuppliers, icon: IconSuppliers, rows: customerRows(model.SampleSuppliers())},
		{preset: layout.PresetPurchaseOrders, titleKey: KeyPurchaseOrders, icon: IconPurchases, rows: purchaseOrderRows()},
		{preset: layout.PresetDepartments, titleKey: KeyDepartments, icon: IconOrgChart, rows: departmentRows()},
		{preset: layout.PresetReturns, titleKey: KeyReturns, icon: IconReturns, rows: returnRows()},
		{preset: layout.PresetRentalInventory, titleKey: KeyRentalInventory, icon: IconRental, rows: rentalRows()},
	}
}

// sidebarSections groups the pages into navigation sections.
func (ui *RootUI) sidebarSections() []widgets.SidebarSection {
	text := ui.localization.GetText
	item := func(preset string) widgets.SidebarItem {
		page := ui.pages[preset]
		return widgets.SidebarItem{
			ID:    preset,
			Icon:  page.icon,
			Label: text(page.titleKey),
			Badge: strconv.Itoa(len(page.rows)),
		}
	}

	return []widgets.SidebarSection{
		{
			Title: text(KeySalesSection),
			Items: []widgets.SidebarItem{
				item(layout.PresetInvoices),
				item(layout.PresetCustomers),
				item(layout.PresetReturns),
			},
		},
		{
			Title: text(KeyPurchasing),
			Items: []widgets.SidebarItem{
				item(layout.PresetPurchaseOrders),
				item(layout.PresetSuppliers),
			},
		},
		{
			Title: text(KeyOperations),
			Items: []widgets.SidebarItem{
				item(layout.PresetDepartments),
				item(layout.PresetRentalInventory),
			},
		},
	}
}

// buildPage assembles the table, toolbar, and footer of one page.
func (ui *RootUI) buildPage(page *tablePage) *tablePage {
	specs := ui.overrides.Apply(page.preset, layout.Preset(page.preset))

	titles := make(map[string]string, len(specs))
	for _, spec := range specs {
		titles[spec.Name] = columnTitle(spec.Name)
	}

	page.table = widgets.NewDataTable(specs, titles,
		func() int { return len(page.rows) },
		func(row int, column string) string {
			if row < 0 || row >= len(page.rows) {
				return ""
			}
			if v, ok := page.rows[row][column]; ok {
				return v
			}
			return DashPlaceholder
		},
	)

	page.scrollHint = widget.NewLabel("")
	page.scrollHint.TextStyle = fyne.TextStyle{Italic: true}
	page.scrollHint.Hide()

	page.table.SetCallbacks(
		func(row int) {
			zap.S().Debugw("row selected", "page", page.preset, "row", row)
		},
		func(column string, ascending bool) {
			ui.sortPage(page, column, ascending)
		},
		func(info layout.LayoutInfo) {
			ui.updateScrollHint(page, info)
		},
	)

	page.titleLabel = widget.NewLabel(ui.localization.GetText(page.titleKey))
	page.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	toolbar := ui.buildToolbar(page)
	top := container.NewBorder(nil, nil, page.titleLabel, toolbar)

	if page.preset == layout.PresetInvoices {
		ui.legend = ui.buildLegend()
		top = container.NewBorder(nil, nil, page.titleLabel, toolbar, container.NewCenter(ui.legend))
	}

	body := container.NewHScroll(page.table)
	page.view = container.NewBorder(top, page.scrollHint, nil, nil, body)
	return page
}

// buildToolbar creates the per-page action buttons.
func (ui *RootUI) buildToolbar(page *tablePage) *fyne.Container {
	text := ui.localization.GetText

	buttons := []fyne.CanvasObject{}

	if page.preset == layout.PresetInvoices || page.preset == layout.PresetCustomers {
		addBtn := widget.NewButton(IconAdd+" "+text(KeyNewRecord), func() { ui.showRecordForm(page) })
		buttons = append(buttons, addBtn)
	}

	columnsBtn := widget.NewButton(IconColumns+" "+text(KeyColumns), func() { ui.showColumnMenu(page) })
	columnsBtn.Importance = widget.LowImportance

	exportBtn := widget.NewButton(IconExport+" "+text(KeyExportCSV), func() { ui.onExport(page) })

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons = append(buttons, columnsBtn, exportBtn, settingsBtn)
	return container.NewHBox(buttons...)
}

// buildLegend creates the revenue/expenses summary legend for the dashboard
// header. Toggling a series is reflected in the swatch and label style.
func (ui *RootUI) buildLegend() *widgets.ChartLegend {
	text := ui.localization.GetText

	var revenue, expenses model.Money
	for _, inv := range model.SampleInvoices() {
		if inv.Status == model.StatusPaid || inv.Status == model.StatusPosted {
			revenue += inv.Amount
		}
	}
	for _, po := range model.SamplePurchaseOrders() {
		expenses += po.Amount
	}

	legend := widgets.NewChartLegend([]widgets.LegendEntry{
		{ID: "revenue", Label: text(KeyRevenue), Value: revenue.String(), Color: ui.app.Settings().Theme().Color(theme.ColorNameSuccess, ui.app.Settings().ThemeVariant())},
		{ID: "expenses", Label: text(KeyExpenses), Value: expenses.String(), Color: ui.app.Settings().Theme().Color(theme.ColorNameError, ui.app.Settings().ThemeVariant())},
	})
	legend.SetCallbacks(func(id string, visible bool) {
		zap.S().Debugw("legend series toggled", "series", id, "visible", visible)
	})
	return legend
}

// onNavigate switches the visible page.
func (ui *RootUI) onNavigate(id string) {
	ui.showPage(id)
}

func (ui *RootUI) showPage(id string) {
	page, ok := ui.pages[id]
	if !ok {
		zap.S().Warnw("navigation to unknown page", "page", id)
		return
	}

	ui.currentPage = id
	ui.content.RemoveAll()
	ui.content.Add(page.view)
	ui.content.Refresh()
}

// sortPage reorders the page rows by the named column.
func (ui *RootUI) sortPage(page *tablePage, column string, ascending bool) {
	page.sortColumn = column
	page.sortAsc = ascending

	sort.SliceStable(page.rows, func(i, j int) bool {
		a, b := page.rows[i][column], page.rows[j][column]
		if ascending {
			return compareCells(a, b)
		}
		return compareCells(b, a)
	})
	page.table.Refresh()
}

// compareCells orders two cell strings, numerically when both parse as
// amounts.
func compareCells(a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.ReplaceAll(a, ",", ""), 64)
	fb, errB := strconv.ParseFloat(strings.ReplaceAll(b, ",", ""), 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

// updateScrollHint shows the horizontal-scroll indicator when the table no
// longer fits the window.
func (ui *RootUI) updateScrollHint(page *tablePage, info layout.LayoutInfo) {
	if info.NeedsHScroll {
		page.scrollHint.SetText(fmt.Sprintf("↔ %.0fpx", info.MinTotalWidth))
		page.scrollHint.Show()
		return
	}
	page.scrollHint.Hide()
}

// showColumnMenu opens a popup with visibility checkboxes for the page's
// hideable columns.
func (ui *RootUI) showColumnMenu(page *tablePage) {
	widths := page.table.Widths()

	items := container.NewVBox()
	for _, name := range widths.Columns() {
		if widths.IsFixed(name) {
			continue
		}
		column := name
		check := widget.NewCheck(columnTitle(column), func(visible bool) {
			page.table.SetColumnVisible(column, visible)
		})
		check.SetChecked(widths.IsVisible(column))
		items.Add(check)
	}

	popup := widget.NewPopUp(items, ui.window.Canvas())
	popup.Resize(fyne.NewSize(ColumnMenuWidth, popup.MinSize().Height))
	popup.ShowAtPosition(fyne.NewPos(
		ui.window.Canvas().Size().Width-ColumnMenuWidth-widgets.ToastMargin,
		widgets.ToastMargin,
	))
}

// showRecordForm opens a modal form demonstrating the date and phone inputs.
func (ui *RootUI) showRecordForm(page *tablePage) {
	text := ui.localization.GetText

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(text(KeyName))

	phoneEntry := widgets.NewPhoneEntry(ui.settings.GetDefaultCountry())

	datePicker := widgets.NewDatePicker()
	datePicker.SetDate(time.Now())

	var modalID string

	saveBtn := widget.NewButton(text(KeySave), func() {
		zap.S().Infow("record saved",
			"page", page.preset,
			"name", nameEntry.Text,
			"phone", phoneEntry.Value(),
			"date", datePicker.Date().Format(ui.settings.GetDateFormat()),
		)
		ui.modals.Dismiss(modalID)
		ui.modals.ShowToast(text(KeyRecordSaved))
	})
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(text(KeyCancel), func() { ui.modals.Dismiss(modalID) })

	form := container.NewVBox(
		widget.NewLabel(text(KeyName)+":"),
		nameEntry,
		widget.NewLabel(text(KeyPhone)+":"),
		phoneEntry,
		widget.NewLabel(text(KeyDate)+":"),
		datePicker,
		container.NewHBox(cancelBtn, saveBtn),
	)

	modalID = ui.modals.Present(form, widgets.ModalOptions{
		DismissOnEscape:     true,
		DismissOnTapOutside: true,
		Width:               RecordFormWidth,
		FocusOnShow:         nameEntry,
	})
}

// onExport writes the current page's visible columns to a CSV file in the
// configured export directory.
func (ui *RootUI) onExport(page *tablePage) {
	text := ui.localization.GetText

	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		zap.S().Errorw("failed to create export directory", "dir", dir, "error", err)
		ui.modals.ShowToast(text(KeyExportFailed))
		return
	}

	name := fmt.Sprintf("%s-%s-%s.csv", ExportFilePrefix, page.preset, time.Now().Format(ExportFileTimeFormat))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		zap.S().Errorw("failed to create export file", "path", path, "error", err)
		ui.modals.ShowToast(text(KeyExportFailed))
		return
	}
	defer f.Close()

	if err := page.table.ExportCSV(f); err != nil {
		zap.S().Errorw("failed to write export", "path", path, "error", err)
		ui.modals.ShowToast(text(KeyExportFailed))
		return
	}

	zap.S().Infow("export completed", "page", page.preset, "path", path, "rows", len(page.rows))
	ui.modals.ShowToast(text(KeyExportCompleted) + MiddleDotSeparator + platform.ShortenPath(path))

	if ui.settings.GetAutoRevealOnExport() {
		if err := platform.RevealFileInManager(path); err != nil {
			zap.S().Warnw("failed to reveal export", "path", path, "error", err)
		}
	}
}

// onShowSettings opens the settings dialog.
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved re-applies language, theme, and layout overrides, then
// rebuilds the shell so every label picks up the new texts.
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.app.Settings().SetTheme(NewLedgerTheme(ui.settings.GetDensityPreset()))
	ui.loadOverrides()

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createUI()
	ui.window.SetContent(ui.Content())
}

// columnTitle turns a column name like "daily_rate" into "Daily Rate".
func columnTitle(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

// Demo dataset adapters: each maps typed sample rows onto column-keyed cells.

func invoiceRows() []map[string]string {
	invoices := model.SampleInvoices()
	out := make([]map[string]string, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.Cells()
	}
	return out
}

func customerRows(customers []model.Customer) []map[string]string {
	out := make([]map[string]string, len(customers))
	for i, c := range customers {
		out[i] = c.Cells()
	}
	return out
}

func purchaseOrderRows() []map[string]string {
	orders := model.SamplePurchaseOrders()
	out := make([]map[string]string, len(orders))
	for i, po := range orders {
		out[i] = po.Cells()
	}
	return out
}

func departmentRows() []map[string]string {
	departments := model.SampleDepartments()
	out := make([]map[string]string, len(departments))
	for i, d := range departments {
		out[i] = d.Cells()
	}
	return out
}

func returnRows() []map[string]string {
	returns := model.SampleReturns()
	out := make([]map[string]string, len(returns))
	for i, r := range returns {
		out[i] = r.Cells()
	}
	return out
}

func rentalRows() []map[string]string {
	assets := model.SampleRentalInventory()
	out := make([]map[string]string, len(assets))
	for i, a := range assets {
		out[i] = a.Cells()
	}
	return out
}

// responsiveShell hosts the sidebar and page content, collapsing the sidebar
// automatically when the window gets narrow.
type responsiveShell struct {
	widget.BaseWidget

	ui   *RootUI
	body *fyne.Container
}

func newResponsiveShell(ui *RootUI) *responsiveShell {
	s := &responsiveShell{ui: ui}
	s.body = container.NewBorder(nil, nil, ui.sidebar, nil, ui.content)
	s.ExtendBaseWidget(s)
	return s
}

// Resize collapses the sidebar below the width threshold before laying out.
func (s *responsiveShell) Resize(size fyne.Size) {
	s.ui.sidebar.SetCollapsed(size.Width < widgets.SidebarCollapseBelow)
	s.BaseWidget.Resize(size)
}

func (s *responsiveShell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.body)
}
