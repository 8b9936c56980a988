package domain

import "encoding/json"

// TripSnapshot is the local copy of one trip as fetched from the remote
// service. Display sections are carried opaquely; the checklist is the
// only part the client mutates, and server order is preserved.
type TripSnapshot struct {
	TripID    string
	Booking   json.RawMessage
	Package   json.RawMessage
	Itinerary json.RawMessage
	Hotel     json.RawMessage
	Flight    json.RawMessage
	Meals     json.RawMessage
	Notes     json.RawMessage
	Checklist []ChecklistItem
}

// Item returns a pointer to the checklist item with the given ID.
func (t *TripSnapshot) Item(id string) (*ChecklistItem, error) {
	return FindItem(t.Checklist, id)
}
