package widgets

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sajari/fuzzy"

	"github.com/ledgerdesk/ledgerdesk/internal/model"
)

// PhoneEntry is a phone-number input with a country selector. Digits are
// regrouped as the user types according to the selected country's pattern;
// the canonical +<dial><digits> value is published through OnChanged.
type PhoneEntry struct {
	widget.BaseWidget

	country model.Country
	entry   *widget.Entry
	button  *widget.Button
	content *fyne.Container

	// formatting guards against the OnChanged feedback of SetText
	formatting bool

	search *countrySearch

	onChanged func(e164 string)
}

// NewPhoneEntry creates a phone input defaulting to the given country code.
// Unknown codes fall back to the first table entry.
func NewPhoneEntry(defaultCountry string) *PhoneEntry {
	p := &PhoneEntry{search: newCountrySearch()}

	country, ok := model.CountryByCode(defaultCountry)
	if !ok {
		country = model.Countries()[0]
	}
	p.country = country

	p.ExtendBaseWidget(p)
	p.createUI()
	return p
}

// SetCallbacks sets the value callback. It receives the E.164 form, or an
// empty string when the entry is cleared.
func (p *PhoneEntry) SetCallbacks(onChanged func(e164 string)) {
	p.onChanged = onChanged
}

// Country returns the selected country.
func (p *PhoneEntry) Country() model.Country {
	return p.country
}

// SetCountry switches the selected country and reformats the current digits.
func (p *PhoneEntry) SetCountry(code string) {
	country, ok := model.CountryByCode(code)
	if !ok {
		return
	}
	p.country = country
	p.button.SetText(country.Flag + " " + country.DialCode)
	p.reformat(p.entry.Text)
}

// SetNumber replaces the national number, reformatting it for the selected
// country.
func (p *PhoneEntry) SetNumber(digits string) {
	p.reformat(digits)
}

// Text returns the formatted national number as displayed.
func (p *PhoneEntry) Text() string {
	return p.entry.Text
}

// Value returns the E.164 form of the current input, or "" when empty.
func (p *PhoneEntry) Value() string {
	return p.country.E164(p.entry.Text)
}

// Valid reports whether the national digit count is in the country's range.
func (p *PhoneEntry) Valid() bool {
	return p.country.ValidNational(p.entry.Text)
}

// CreateRenderer implements fyne.Widget.
func (p *PhoneEntry) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

func (p *PhoneEntry) createUI() {
	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder(p.country.Pattern)
	p.entry.OnChanged = func(text string) {
		if p.formatting {
			return
		}
		p.reformat(text)
	}
	p.button = widget.NewButton(p.country.Flag+" "+p.country.DialCode, p.showCountryPopup)

	p.content = container.NewBorder(nil, nil, p.button, nil, p.entry)
}

// reformat regroups the digits in the entry per the country pattern and
// publishes the canonical value.
func (p *PhoneEntry) reformat(text string) {
	formatted := p.country.FormatNational(text)

	p.formatting = true
	p.entry.SetText(formatted)
	p.entry.CursorColumn = len(formatted)
	p.formatting = false

	if p.onChanged != nil {
		p.onChanged(p.country.E164(formatted))
	}
}

// showCountryPopup opens the searchable country selector.
func (p *PhoneEntry) showCountryPopup() {
	cnv := fyne.CurrentApp().Driver().CanvasForObject(p)
	if cnv == nil {
		return
	}

	list := container.NewVBox()
	var popup *widget.PopUp

	fill := func(matches []model.Country) {
		list.RemoveAll()
		for _, c := range matches {
			country := c
			item := widget.NewButton(country.Flag+" "+country.Name+" ("+country.DialCode+")", func() {
				p.SetCountry(country.Code)
				popup.Hide()
			})
			item.Alignment = widget.ButtonAlignLeading
			list.Add(item)
		}
		list.Refresh()
	}

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search country")
	searchEntry.OnChanged = func(q string) {
		fill(p.search.query(q))
	}

	fill(p.search.query(""))

	popup = widget.NewPopUp(container.NewBorder(searchEntry, nil, nil, nil, container.NewVScroll(list)), cnv)
	popup.Resize(fyne.NewSize(280, 320))
	popup.ShowAtPosition(fyne.CurrentApp().Driver().AbsolutePositionForObject(p.button))
	cnv.Focus(searchEntry)
}

// countrySearch ranks country-table entries against free-text queries,
// tolerating typos via a fuzzy model trained on country names.
type countrySearch struct {
	model *fuzzy.Model
}

func newCountrySearch() *countrySearch {
	m := fuzzy.NewModel()
	m.SetDepth(2)
	for _, c := range model.Countries() {
		for _, word := range strings.Fields(strings.ToLower(c.Name)) {
			m.TrainWord(word)
		}
	}
	return &countrySearch{model: m}
}

// query returns up to CountrySearchLimit matching countries. An empty query
// returns the head of the table.
func (cs *countrySearch) query(q string) []model.Country {
	q = strings.ToLower(strings.TrimSpace(q))
	all := model.Countries()
	if q == "" {
		if len(all) > CountrySearchLimit {
			return all[:CountrySearchLimit]
		}
		return all
	}

	matches := cs.match(all, q)
	if len(matches) == 0 {
		// Tolerate a typo: retry with the fuzzy-corrected query.
		if corrected := cs.model.SpellCheck(q); corrected != "" && corrected != q {
			matches = cs.match(all, corrected)
		}
	}
	if len(matches) > CountrySearchLimit {
		matches = matches[:CountrySearchLimit]
	}
	return matches
}

func (cs *countrySearch) match(all []model.Country, q string) []model.Country {
	var out []model.Country
	dial := "+" + strings.TrimPrefix(q, "+")
	for _, c := range all {
		switch {
		case strings.Contains(strings.ToLower(c.Name), q):
			out = append(out, c)
		case strings.EqualFold(c.Code, q):
			out = append(out, c)
		case len(dial) > 1 && strings.HasPrefix(c.DialCode, dial):
			out = append(out, c)
		}
	}
	return out
}
