package formatter

import (
	"encoding/json"
	"testing"

	"github.com/alexanderramin/rihla/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatTrip(t *testing.T) {
	snap := testutil.NewTestTrip()
	snap.Hotel = json.RawMessage(`{"name":"Dar Al Tawhid","room":"1204"}`)

	out := FormatTrip(snap)

	// The box title is uppercased on render.
	assert.Contains(t, out, "TRIP TRIP-7")
	assert.Contains(t, out, "HOTEL")
	assert.Contains(t, out, "Dar Al Tawhid")
	assert.Contains(t, out, "CHECKLIST")
	assert.Contains(t, out, "Ihram garments")
}

func TestFormatTripSkipsEmptySections(t *testing.T) {
	snap := testutil.NewTestTrip()
	snap.Flight = nil
	snap.Meals = json.RawMessage(`{}`)

	out := FormatTrip(snap)

	assert.NotContains(t, out, "FLIGHT")
	assert.NotContains(t, out, "MEALS")
}

func TestRenderSectionValueKinds(t *testing.T) {
	raw := json.RawMessage(`{"nights":7,"paid":true,"hotel":"Hilton","rating":4.5,"extra":null}`)

	out := renderSection(raw)

	assert.Contains(t, out, "7")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "Hilton")
	assert.Contains(t, out, "4.5")
	assert.NotContains(t, out, "extra")
}
