package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SidebarItem is one navigation entry.
type SidebarItem struct {
	ID    string
	Icon  string // emoji/symbol shown in collapsed mode
	Label string
	Badge string // optional counter shown after the label
}

// SidebarSection groups items under a heading.
type SidebarSection struct {
	Title string
	Items []SidebarItem
}

// Sidebar is the collapsible navigation rail. In collapsed mode only item
// icons are shown.
type Sidebar struct {
	widget.BaseWidget

	sections  []SidebarSection
	selected  string
	collapsed bool

	content *fyne.Container

	onSelect func(id string)
}

// NewSidebar creates a sidebar from the given sections.
func NewSidebar(sections []SidebarSection) *Sidebar {
	s := &Sidebar{
		sections: sections,
		content:  container.NewVBox(),
	}
	if len(sections) > 0 && len(sections[0].Items) > 0 {
		s.selected = sections[0].Items[0].ID
	}
	s.ExtendBaseWidget(s)
	s.rebuild()
	return s
}

// SetCallbacks sets the item-selection callback. It may be nil.
func (s *Sidebar) SetCallbacks(onSelect func(id string)) {
	s.onSelect = onSelect
}

// Selected returns the active item ID.
func (s *Sidebar) Selected() string {
	return s.selected
}

// Select activates an item and notifies the callback.
func (s *Sidebar) Select(id string) {
	if s.selected == id {
		return
	}
	s.selected = id
	s.rebuild()
	if s.onSelect != nil {
		s.onSelect(id)
	}
}

// Collapsed reports whether the sidebar is in icons-only mode.
func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}

// SetCollapsed switches between the full and icons-only modes.
func (s *Sidebar) SetCollapsed(collapsed bool) {
	if s.collapsed == collapsed {
		return
	}
	s.collapsed = collapsed
	s.rebuild()
}

// SetBadge updates one item's badge text.
func (s *Sidebar) SetBadge(id, badge string) {
	for si := range s.sections {
		for ii := range s.sections[si].Items {
			if s.sections[si].Items[ii].ID == id {
				s.sections[si].Items[ii].Badge = badge
				s.rebuild()
				return
			}
		}
	}
}

// CreateRenderer implements fyne.Widget.
func (s *Sidebar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// MinSize pins the rail width for the current mode.
func (s *Sidebar) MinSize() fyne.Size {
	min := s.content.MinSize()
	if s.collapsed {
		min.Width = SidebarCollapsedWidth
	} else {
		min.Width = SidebarWidth
	}
	return min
}

func (s *Sidebar) rebuild() {
	s.content.RemoveAll()

	toggleIcon := IconCollapse
	if s.collapsed {
		toggleIcon = IconExpand
	}
	toggle := widget.NewButton(toggleIcon, func() { s.SetCollapsed(!s.collapsed) })
	toggle.Importance = widget.LowImportance
	s.content.Add(container.NewHBox(toggle))

	for _, section := range s.sections {
		if !s.collapsed && section.Title != "" {
			title := widget.NewLabel(section.Title)
			title.TextStyle = fyne.TextStyle{Bold: true}
			s.content.Add(title)
		}
		for _, item := range section.Items {
			s.content.Add(s.itemButton(item))
		}
	}
	s.content.Refresh()
}

func (s *Sidebar) itemButton(item SidebarItem) *widget.Button {
	caption := item.Icon
	if !s.collapsed {
		caption = item.Icon + " " + item.Label
		if item.Badge != "" {
			caption += " (" + item.Badge + ")"
		}
	}

	id := item.ID
	btn := widget.NewButton(caption, func() { s.Select(id) })
	btn.Alignment = widget.ButtonAlignLeading
	if id == s.selected {
		btn.Importance = widget.HighImportance
	} else {
		btn.Importance = widget.LowImportance
	}
	return btn
}
