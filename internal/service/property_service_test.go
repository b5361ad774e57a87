package service

import (
	"context"
	"testing"

	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/internal/store"
)

func TestPropertyDeletePublishesCascadeFootprint(t *testing.T) {
	entityStore := store.New(persistence.NewMemorySnapshotter())
	ctx := context.Background()
	if err := entityStore.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	dispatcher := &recordingDispatcher{}
	svc := NewPropertyService(entityStore, dispatcher)

	property, _ := svc.Create(ctx, store.PropertyInput{Title: "Lakeview Villa"})

	first, _ := entityStore.AddLead(ctx, store.LeadInput{Name: "Alice Buyer"})
	second, _ := entityStore.AddLead(ctx, store.LeadInput{Name: "Ben Renter"})
	_ = entityStore.LinkProperty(ctx, first.ID, property.ID)
	_ = entityStore.LinkProperty(ctx, second.ID, property.ID)

	if err := svc.Delete(ctx, managerActor, property.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	event, ok := dispatcher.lastOfType(events.EventPropertyDeleted)
	if !ok {
		t.Fatal("expected property_deleted event")
	}
	payload, ok := event.Payload.(events.PropertyDeletedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload.UnlinkedLeads != 2 {
		t.Fatalf("UnlinkedLeads = %d, want 2", payload.UnlinkedLeads)
	}

	for _, lead := range entityStore.Leads() {
		if lead.InterestedIn(property.ID) {
			t.Fatal("cascade must strip the deleted listing from interest sets")
		}
	}
}
