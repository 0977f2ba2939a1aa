package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneEntry_FormatsAsTyped(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("US")

	var published string
	p.SetCallbacks(func(e164 string) { published = e164 })

	p.SetNumber("4155552671")

	assert.Equal(t, "(415) 555-2671", p.Text())
	assert.Equal(t, "+14155552671", p.Value())
	assert.Equal(t, "+14155552671", published)
	assert.True(t, p.Valid())
}

func TestPhoneEntry_PartialInput(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("US")

	p.SetNumber("415")

	assert.Equal(t, "(415", p.Text())
	assert.Equal(t, "+1415", p.Value())
	assert.False(t, p.Valid(), "three digits is not a complete US number")
}

func TestPhoneEntry_SetCountryReformats(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("US")
	p.SetNumber("301234567")

	p.SetCountry("DE")

	assert.Equal(t, "DE", p.Country().Code)
	assert.Equal(t, "3012 34567", p.Text())
	assert.Equal(t, "+49301234567", p.Value())
	assert.Equal(t, "🇩🇪 +49", p.button.Text)
}

func TestPhoneEntry_UnknownCountryIgnored(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("US")

	p.SetCountry("ZZ")

	assert.Equal(t, "US", p.Country().Code)
}

func TestPhoneEntry_UnknownDefaultFallsBack(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("nope")

	assert.NotEmpty(t, p.Country().Code)
}

func TestPhoneEntry_TypingTriggersReformat(t *testing.T) {
	test.NewApp()
	p := NewPhoneEntry("US")

	// Simulate the user typing raw digits into the entry.
	p.entry.SetText("4155552671")

	assert.Equal(t, "(415) 555-2671", p.Text())
}

func TestCountrySearch_Query(t *testing.T) {
	cs := newCountrySearch()

	t.Run("empty returns head of table", func(t *testing.T) {
		out := cs.query("")
		require.Len(t, out, CountrySearchLimit)
		assert.Equal(t, "US", out[0].Code)
	})

	t.Run("name substring", func(t *testing.T) {
		out := cs.query("united")
		require.Len(t, out, 2)
		assert.Equal(t, "US", out[0].Code)
		assert.Equal(t, "GB", out[1].Code)
	})

	t.Run("iso code", func(t *testing.T) {
		out := cs.query("de")
		require.NotEmpty(t, out)
		assert.Equal(t, "DE", out[0].Code)
	})

	t.Run("dial code prefix", func(t *testing.T) {
		out := cs.query("+4")
		codes := make([]string, 0, len(out))
		for _, c := range out {
			codes = append(codes, c.Code)
		}
		assert.Equal(t, []string{"GB", "DE", "PL"}, codes)
	})

	t.Run("typo corrected", func(t *testing.T) {
		out := cs.query("germny")
		require.NotEmpty(t, out)
		assert.Equal(t, "DE", out[0].Code)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, cs.query("xxqqzz"))
	})
}
