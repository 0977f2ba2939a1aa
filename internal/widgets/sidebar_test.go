package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func sampleSidebar() *Sidebar {
	return NewSidebar([]SidebarSection{
		{
			Title: "Sales",
			Items: []SidebarItem{
				{ID: "invoices", Icon: "🧾", Label: "Invoices"},
				{ID: "customers", Icon: "👥", Label: "Customers"},
			},
		},
		{
			Title: "Purchasing",
			Items: []SidebarItem{
				{ID: "purchase_orders", Icon: "📦", Label: "Purchase Orders"},
			},
		},
	})
}

func TestSidebar_DefaultSelection(t *testing.T) {
	test.NewApp()
	s := sampleSidebar()

	assert.Equal(t, "invoices", s.Selected())
}

func TestSidebar_Select(t *testing.T) {
	test.NewApp()
	s := sampleSidebar()

	var fired []string
	s.SetCallbacks(func(id string) { fired = append(fired, id) })

	s.Select("customers")
	s.Select("customers") // reselect is a no-op

	assert.Equal(t, "customers", s.Selected())
	assert.Equal(t, []string{"customers"}, fired)
}

func TestSidebar_Collapse(t *testing.T) {
	test.NewApp()
	s := sampleSidebar()

	assert.False(t, s.Collapsed())
	assert.Equal(t, float32(SidebarWidth), s.MinSize().Width)

	s.SetCollapsed(true)

	assert.True(t, s.Collapsed())
	assert.Equal(t, float32(SidebarCollapsedWidth), s.MinSize().Width)

	s.SetCollapsed(true) // already collapsed, no-op
	assert.True(t, s.Collapsed())
}

func TestSidebar_SetBadge(t *testing.T) {
	test.NewApp()
	s := sampleSidebar()

	s.SetBadge("invoices", "3")

	assert.Equal(t, "3", s.sections[0].Items[0].Badge)

	b := s.itemButton(s.sections[0].Items[0])
	assert.Contains(t, b.Text, "(3)")
}
