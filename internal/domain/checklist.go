package domain

import "errors"

// ErrItemNotFound indicates an edit was requested for a checklist item
// that is not present in the local snapshot.
var ErrItemNotFound = errors.New("checklist item not found")

type ChecklistItem struct {
	ID     string
	Title  string
	Status ItemStatus
	Note   string
}

// DisplayTitle returns the item title, substituting a placeholder when
// the server sent none.
func (i ChecklistItem) DisplayTitle() string {
	if i.Title == "" {
		return "unnamed"
	}
	return i.Title
}

// FindItem returns a pointer into items for the given ID, or
// ErrItemNotFound. Items are unique per ID within one checklist.
func FindItem(items []ChecklistItem, id string) (*ChecklistItem, error) {
	for idx := range items {
		if items[idx].ID == id {
			return &items[idx], nil
		}
	}
	return nil, ErrItemNotFound
}
