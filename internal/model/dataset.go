package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the default layout for dates shown in table cells.
const DateFormat = "2006-01-02"

// Invoice is one row of the invoices table.
type Invoice struct {
	ID       string
	Number   string
	Date     time.Time
	Customer string
	Amount   Money
	Status   DocumentStatus
}

// Cells maps the row onto the invoices column registry.
func (i Invoice) Cells() map[string]string {
	return map[string]string{
		"number":   i.Number,
		"date":     i.Date.Format(DateFormat),
		"customer": i.Customer,
		"amount":   i.Amount.String(),
		"status":   i.Status.String(),
	}
}

// Customer is one row of the customers table.
type Customer struct {
	ID      string
	Name    string
	Phone   string
	Email   string
	Balance Money
}

// Cells maps the row onto the customers column registry.
func (c Customer) Cells() map[string]string {
	return map[string]string{
		"name":    c.Name,
		"phone":   c.Phone,
		"email":   c.Email,
		"balance": c.Balance.String(),
	}
}

// PurchaseOrder is one row of the purchase orders table.
type PurchaseOrder struct {
	ID       string
	Number   string
	Date     time.Time
	Supplier string
	Expected time.Time
	Amount   Money
	Status   DocumentStatus
}

// Cells maps the row onto the purchase orders column registry.
func (p PurchaseOrder) Cells() map[string]string {
	return map[string]string{
		"number":   p.Number,
		"date":     p.Date.Format(DateFormat),
		"supplier": p.Supplier,
		"expected": p.Expected.Format(DateFormat),
		"amount":   p.Amount.String(),
		"status":   p.Status.String(),
	}
}

// sampleDate anchors the demo datasets so the tables render the same in
// every session.
var sampleDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

// SampleInvoices returns a deterministic demo dataset for the invoices page.
func SampleInvoices() []Invoice {
	names := []string{
		"Northwind Traders", "Acme Corp", "Blue Harbor LLC", "Cedar & Sons",
		"Dockside Freight", "Evergreen Retail", "Foxglove Studio", "Granite Partners",
	}
	statuses := []DocumentStatus{StatusPaid, StatusPosted, StatusOverdue, StatusDraft}

	out := make([]Invoice, 0, len(names)*3)
	for i := 0; i < len(names)*3; i++ {
		out = append(out, Invoice{
			ID:       uuid.NewString(),
			Number:   invoiceNumber(i),
			Date:     sampleDate.AddDate(0, 0, -i*3),
			Customer: names[i%len(names)],
			Amount:   Money(123456+int64(i)*78901),
			Status:   statuses[i%len(statuses)],
		})
	}
	return out
}

// SampleCustomers returns a deterministic demo dataset for the customers page.
func SampleCustomers() []Customer {
	entries := []struct {
		name, phone, email string
		balance            Money
	}{
		{"Northwind Traders", "(415) 555-2671", "billing@northwind.example", 482000},
		{"Acme Corp", "(212) 555-0148", "accounts@acme.example", -35050},
		{"Blue Harbor LLC", "(604) 555-0199", "finance@blueharbor.example", 0},
		{"Cedar & Sons", "(206) 555-0123", "office@cedarsons.example", 1200999},
		{"Dockside Freight", "(503) 555-0175", "ap@dockside.example", 75025},
		{"Evergreen Retail", "(646) 555-0102", "pay@evergreen.example", 9900},
	}

	out := make([]Customer, 0, len(entries))
	for _, e := range entries {
		out = append(out, Customer{
			ID:      uuid.NewString(),
			Name:    e.name,
			Phone:   e.phone,
			Email:   e.email,
			Balance: e.balance,
		})
	}
	return out
}

// SamplePurchaseOrders returns a deterministic demo dataset for the purchase
// orders page.
func SamplePurchaseOrders() []PurchaseOrder {
	suppliers := []string{
		"Pacific Paper Co", "Quarry Hardware", "Riverside Packaging",
		"Summit Logistics", "Tundra Office Supply",
	}
	statuses := []DocumentStatus{StatusPosted, StatusDraft, StatusPaid}

	out := make([]PurchaseOrder, 0, len(suppliers)*2)
	for i := 0; i < len(suppliers)*2; i++ {
		out = append(out, PurchaseOrder{
			ID:       uuid.NewString(),
			Number:   orderNumber(i),
			Date:     sampleDate.AddDate(0, 0, -i*5),
			Supplier: suppliers[i%len(suppliers)],
			Expected: sampleDate.AddDate(0, 0, 14-i*5),
			Amount:   Money(567800 + int64(i)*12345),
			Status:   statuses[i%len(statuses)],
		})
	}
	return out
}

// SampleSuppliers returns a deterministic demo dataset for the suppliers
// page. Suppliers share the customer row shape.
func SampleSuppliers() []Customer {
	entries := []struct {
		name, phone, email string
		balance            Money
	}{
		{"Pacific Paper Co", "(415) 555-0012", "sales@pacificpaper.example", -250000},
		{"Quarry Hardware", "(303) 555-0177", "orders@quarryhw.example", 0},
		{"Riverside Packaging", "(971) 555-0128", "ar@riversidepkg.example", -89990},
		{"Summit Logistics", "(801) 555-0109", "billing@summitlog.example", 145000},
		{"Tundra Office Supply", "(907) 555-0140", "invoices@tundra.example", -4025},
	}

	out := make([]Customer, 0, len(entries))
	for _, e := range entries {
		out = append(out, Customer{
			ID:      uuid.NewString(),
			Name:    e.name,
			Phone:   e.phone,
			Email:   e.email,
			Balance: e.balance,
		})
	}
	return out
}

// Department is one row of the departments table.
type Department struct {
	ID        string
	Name      string
	Manager   string
	Headcount int
	Budget    Money
}

// Cells maps the row onto the departments column registry.
func (d Department) Cells() map[string]string {
	return map[string]string{
		"name":      d.Name,
		"manager":   d.Manager,
		"headcount": fmt.Sprintf("%d", d.Headcount),
		"budget":    d.Budget.String(),
	}
}

// SampleDepartments returns a deterministic demo dataset for the departments
// page.
func SampleDepartments() []Department {
	entries := []struct {
		name, manager string
		headcount     int
		budget        Money
	}{
		{"Sales", "M. Okafor", 14, 18500000},
		{"Accounting", "J. Lindqvist", 6, 7200000},
		{"Warehouse", "P. Aldana", 22, 12900000},
		{"Support", "R. Meyer", 9, 5400000},
	}

	out := make([]Department, 0, len(entries))
	for _, e := range entries {
		out = append(out, Department{
			ID:        uuid.NewString(),
			Name:      e.name,
			Manager:   e.manager,
			Headcount: e.headcount,
			Budget:    e.budget,
		})
	}
	return out
}

// ReturnOrder is one row of the returns table.
type ReturnOrder struct {
	ID       string
	Number   string
	Date     time.Time
	Customer string
	Reason   string
	Amount   Money
	Status   DocumentStatus
}

// Cells maps the row onto the returns column registry.
func (r ReturnOrder) Cells() map[string]string {
	return map[string]string{
		"number":   r.Number,
		"date":     r.Date.Format(DateFormat),
		"customer": r.Customer,
		"reason":   r.Reason,
		"amount":   r.Amount.String(),
		"status":   r.Status.String(),
	}
}

// SampleReturns returns a deterministic demo dataset for the returns page.
func SampleReturns() []ReturnOrder {
	reasons := []string{"Damaged in transit", "Wrong item", "Overstock", "Quality defect"}
	customers := []string{"Acme Corp", "Blue Harbor LLC", "Evergreen Retail"}
	statuses := []DocumentStatus{StatusPosted, StatusDraft, StatusVoid}

	out := make([]ReturnOrder, 0, 6)
	for i := 0; i < 6; i++ {
		out = append(out, ReturnOrder{
			ID:       uuid.NewString(),
			Number:   fmt.Sprintf("RET-2026-%04d", 87+i),
			Date:     sampleDate.AddDate(0, 0, -i*7),
			Customer: customers[i%len(customers)],
			Reason:   reasons[i%len(reasons)],
			Amount:   Money(45000 + int64(i)*21300),
			Status:   statuses[i%len(statuses)],
		})
	}
	return out
}

// RentalAsset is one row of the rental inventory table.
type RentalAsset struct {
	ID        string
	Asset     string
	Category  string
	DailyRate Money
	RentedTo  string
	DueBack   time.Time
}

// Cells maps the row onto the rental inventory column registry.
func (r RentalAsset) Cells() map[string]string {
	rentedTo := r.RentedTo
	if rentedTo == "" {
		rentedTo = "—"
	}
	cells := map[string]string{
		"asset":      r.Asset,
		"category":   r.Category,
		"daily_rate": r.DailyRate.String(),
		"rented_to":  rentedTo,
		"due_back":   "—",
	}
	if !r.DueBack.IsZero() {
		cells["due_back"] = r.DueBack.Format(DateFormat)
	}
	return cells
}

// SampleRentalInventory returns a deterministic demo dataset for the rental
// inventory page.
func SampleRentalInventory() []RentalAsset {
	out := []RentalAsset{
		{Asset: "Scissor Lift SL-19", Category: "Access", DailyRate: 18500, RentedTo: "Cedar & Sons", DueBack: sampleDate.AddDate(0, 0, 4)},
		{Asset: "Forklift FK-3T", Category: "Material handling", DailyRate: 22000, RentedTo: "Dockside Freight", DueBack: sampleDate.AddDate(0, 0, 11)},
		{Asset: "Generator G-45", Category: "Power", DailyRate: 9500},
		{Asset: "Compressor C-8", Category: "Pneumatic", DailyRate: 7200, RentedTo: "Granite Partners", DueBack: sampleDate.AddDate(0, 0, 2)},
		{Asset: "Trailer T-12", Category: "Transport", DailyRate: 6000},
	}
	for i := range out {
		out[i].ID = uuid.NewString()
	}
	return out
}

func invoiceNumber(i int) string {
	return fmt.Sprintf("INV-2026-%04d", 1042+i)
}

func orderNumber(i int) string {
	return fmt.Sprintf("PO-2026-%04d", 508+i)
}
