package testutil

import (
	"encoding/json"

	"github.com/alexanderramin/rihla/internal/domain"
)

// Trip options
type TripOption func(*domain.TripSnapshot)

func WithChecklist(items ...domain.ChecklistItem) TripOption {
	return func(t *domain.TripSnapshot) {
		t.Checklist = items
	}
}

func WithTripID(id string) TripOption {
	return func(t *domain.TripSnapshot) {
		t.TripID = id
	}
}

// NewTestTrip builds a trip snapshot with plausible display sections and
// a two-item checklist.
func NewTestTrip(opts ...TripOption) *domain.TripSnapshot {
	t := &domain.TripSnapshot{
		TripID:    "trip-7",
		Booking:   json.RawMessage(`{"ref":"BK-1881","pilgrims":2}`),
		Package:   json.RawMessage(`{"tier":"gold"}`),
		Itinerary: json.RawMessage(`[{"day":1,"city":"Makkah"},{"day":5,"city":"Madinah"}]`),
		Hotel:     json.RawMessage(`{"name":"Jabal Omar","distance_m":350}`),
		Flight:    json.RawMessage(`{"number":"SV-802","departs":"2026-03-01T02:40:00Z"}`),
		Meals:     json.RawMessage(`{"plan":"full-board"}`),
		Notes:     json.RawMessage(`"arrive before fajr"`),
		Checklist: []domain.ChecklistItem{
			{ID: "c1", Title: "Ihram garments", Status: domain.ItemPending, Note: ""},
			{ID: "c2", Title: "Vaccination card", Status: domain.ItemDone, Note: "renewed"},
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Checklist item options
type ItemOption func(*domain.ChecklistItem)

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.ChecklistItem) {
		i.Status = s
	}
}

func WithNote(n string) ItemOption {
	return func(i *domain.ChecklistItem) {
		i.Note = n
	}
}

func NewTestItem(id, title string, opts ...ItemOption) domain.ChecklistItem {
	item := domain.ChecklistItem{
		ID:     id,
		Title:  title,
		Status: domain.ItemPending,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// NewTestResult builds an analysis result in the shape the service
// returns for a recognized landmark.
func NewTestResult(audioAvailable bool) *domain.AnalysisResult {
	r := &domain.AnalysisResult{
		Success: true,
		Analysis: domain.Analysis{
			DetectedObjects: []domain.DetectedObject{
				{Name: "Kaaba", Confidence: 0.97},
			},
			AnalysisText: "The Kaaba at Masjid al-Haram.",
		},
		AudioAvailable: audioAvailable,
		UserID:         "pilgrim-42",
		Timestamp:      "2026-03-01T05:12:00Z",
	}
	if audioAvailable {
		r.Analysis.AudioURL = "/audio/abc123.mp3"
	}
	return r
}
