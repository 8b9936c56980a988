package domain

// PendingEdit is the rollback snapshot for one optimistic checklist edit.
// It captures the item's values before the edit was applied locally and
// the values sent to the server; it exists only while the commit for that
// item is unresolved.
type PendingEdit struct {
	ID         string
	ItemID     string
	PrevStatus ItemStatus
	PrevNote   string
	NextStatus ItemStatus
	NextNote   string
}

// NewPendingEdit captures the item's current values as the rollback
// point, applies the new status and note to the item in place, and
// returns the snapshot. The caller assigns the edit ID.
func NewPendingEdit(item *ChecklistItem, nextStatus ItemStatus, nextNote string) *PendingEdit {
	e := &PendingEdit{
		ItemID:     item.ID,
		PrevStatus: item.Status,
		PrevNote:   item.Note,
		NextStatus: nextStatus,
		NextNote:   nextNote,
	}
	item.Status = nextStatus
	item.Note = nextNote
	return e
}

// Rollback restores the item to the values captured before the edit.
func (e *PendingEdit) Rollback(item *ChecklistItem) {
	item.Status = e.PrevStatus
	item.Note = e.PrevNote
}
