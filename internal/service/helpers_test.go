package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-resin-keeper/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.Event
}

func (p *recordingPublisher) Publish(event models.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) kinds() []models.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()

	kinds := make([]models.EventKind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (p *recordingPublisher) statuses() []models.AccountStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	var statuses []models.AccountStatus
	for _, e := range p.events {
		if e.Kind == models.EventAccountStatusChanged || e.Kind == models.EventCharacterStatusChanged {
			statuses = append(statuses, e.Status)
		}
	}
	return statuses
}

type fixedID string

func (id fixedID) Generate() string { return string(id) }
