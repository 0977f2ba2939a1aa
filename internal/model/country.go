package model

import "strings"

// Country describes one entry of the phone-input country table. Pattern uses
// '#' as a digit placeholder; other runes are literal separators.
type Country struct {
	Code      string // ISO 3166-1 alpha-2
	Name      string
	DialCode  string // including the leading +
	Flag      string // emoji flag
	Pattern   string // national-number grouping pattern
	MinDigits int    // minimum national digits for a valid number
	MaxDigits int    // maximum national digits
}

// countries is the built-in table, ordered for the selector popup.
var countries = []Country{
	{Code: "US", Name: "United States", DialCode: "+1", Flag: "🇺🇸", Pattern: "(###) ###-####", MinDigits: 10, MaxDigits: 10},
	{Code: "CA", Name: "Canada", DialCode: "+1", Flag: "🇨🇦", Pattern: "(###) ###-####", MinDigits: 10, MaxDigits: 10},
	{Code: "GB", Name: "United Kingdom", DialCode: "+44", Flag: "🇬🇧", Pattern: "#### ######", MinDigits: 9, MaxDigits: 10},
	{Code: "DE", Name: "Germany", DialCode: "+49", Flag: "🇩🇪", Pattern: "#### #######", MinDigits: 6, MaxDigits: 11},
	{Code: "FR", Name: "France", DialCode: "+33", Flag: "🇫🇷", Pattern: "# ## ## ## ##", MinDigits: 9, MaxDigits: 9},
	{Code: "ES", Name: "Spain", DialCode: "+34", Flag: "🇪🇸", Pattern: "### ### ###", MinDigits: 9, MaxDigits: 9},
	{Code: "IT", Name: "Italy", DialCode: "+39", Flag: "🇮🇹", Pattern: "### #######", MinDigits: 9, MaxDigits: 10},
	{Code: "NL", Name: "Netherlands", DialCode: "+31", Flag: "🇳🇱", Pattern: "# ########", MinDigits: 9, MaxDigits: 9},
	{Code: "PL", Name: "Poland", DialCode: "+48", Flag: "🇵🇱", Pattern: "### ### ###", MinDigits: 9, MaxDigits: 9},
	{Code: "UA", Name: "Ukraine", DialCode: "+380", Flag: "🇺🇦", Pattern: "## ### ####", MinDigits: 9, MaxDigits: 9},
	{Code: "BR", Name: "Brazil", DialCode: "+55", Flag: "🇧🇷", Pattern: "(##) #####-####", MinDigits: 10, MaxDigits: 11},
	{Code: "MX", Name: "Mexico", DialCode: "+52", Flag: "🇲🇽", Pattern: "### ### ####", MinDigits: 10, MaxDigits: 10},
	{Code: "JP", Name: "Japan", DialCode: "+81", Flag: "🇯🇵", Pattern: "##-####-####", MinDigits: 10, MaxDigits: 10},
	{Code: "AU", Name: "Australia", DialCode: "+61", Flag: "🇦🇺", Pattern: "### ### ###", MinDigits: 9, MaxDigits: 9},
}

// Countries returns the full country table in selector order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// CountryByCode looks up a country by ISO code. The second result is false
// when the code is unknown.
func CountryByCode(code string) (Country, bool) {
	code = strings.ToUpper(code)
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// FormatNational renders national digits through the country's grouping
// pattern. Digits beyond the pattern are appended unformatted; non-digit
// input characters are dropped.
func (c Country) FormatNational(input string) string {
	digits := DigitsOnly(input)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	next := 0
	for _, r := range c.Pattern {
		if next >= len(digits) {
			break
		}
		if r == '#' {
			b.WriteByte(digits[next])
			next++
		} else {
			b.WriteRune(r)
		}
	}
	if next < len(digits) {
		b.WriteString(digits[next:])
	}
	return b.String()
}

// E164 builds the canonical +<dial><digits> form from national digits.
func (c Country) E164(input string) string {
	digits := DigitsOnly(input)
	if digits == "" {
		return ""
	}
	return c.DialCode + digits
}

// ValidNational reports whether the national digit count is inside the
// country's expected range.
func (c Country) ValidNational(input string) bool {
	n := len(DigitsOnly(input))
	return n >= c.MinDigits && n <= c.MaxDigits
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
