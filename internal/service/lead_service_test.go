package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/importer"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/internal/store"
)

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) lastOfType(t events.EventType) (events.Event, bool) {
	for i := len(d.published) - 1; i >= 0; i-- {
		if d.published[i].Type == t {
			return d.published[i], true
		}
	}
	return events.Event{}, false
}

func newLeadFixture(t *testing.T) (*LeadService, *store.Store, *recordingDispatcher) {
	t.Helper()
	entityStore := store.New(persistence.NewMemorySnapshotter())
	if err := entityStore.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	dispatcher := &recordingDispatcher{}
	return NewLeadService(entityStore, dispatcher), entityStore, dispatcher
}

var managerActor = events.Actor{Name: "The Manager", Role: domain.RoleManager}

func TestLeadListVisibilityAndFilters(t *testing.T) {
	svc, entityStore, _ := newLeadFixture(t)
	ctx := context.Background()

	_, _ = entityStore.AddTeamMember(ctx, store.TeamMemberInput{Name: "Bob Agent", Role: domain.RoleAgent})

	mine, _ := svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912", City: "Austin"})
	_, _ = svc.Create(ctx, managerActor, store.LeadInput{Name: "Ben Renter", Email: "ben@mail.test"})
	bob := "Bob Agent"
	if _, err := svc.Assign(ctx, managerActor, mine.ID, &bob); err != nil {
		t.Fatalf("assign: %v", err)
	}

	agent := events.Actor{Name: "Bob Agent", Role: domain.RoleAgent}
	visible := svc.List(agent, LeadFilter{})
	if len(visible) != 1 || visible[0].ID != mine.ID {
		t.Fatalf("agent should see exactly the assigned lead, got %d", len(visible))
	}

	all := svc.List(managerActor, LeadFilter{})
	if len(all) != 2 {
		t.Fatalf("manager should see all leads, got %d", len(all))
	}

	byStatus := svc.List(managerActor, LeadFilter{Statuses: []domain.LeadStatus{domain.LeadStatusNew}})
	if len(byStatus) != 2 {
		t.Fatalf("status filter lost leads, got %d", len(byStatus))
	}

	bySearch := svc.List(managerActor, LeadFilter{Search: "aus"})
	if len(bySearch) != 1 || bySearch[0].ID != mine.ID {
		t.Fatalf("city search should match one lead, got %d", len(bySearch))
	}
}

func TestLeadGetHiddenBehindVisibility(t *testing.T) {
	svc, _, _ := newLeadFixture(t)
	ctx := context.Background()

	lead, _ := svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912"})

	agent := events.Actor{Name: "Bob Agent", Role: domain.RoleAgent}
	if _, err := svc.Get(agent, lead.ID); err == nil {
		t.Fatal("unassigned lead must be hidden from an agent")
	}
	if _, err := svc.Get(managerActor, lead.ID); err != nil {
		t.Fatalf("manager must see the lead: %v", err)
	}
}

func TestLeadAssignValidatesMember(t *testing.T) {
	svc, entityStore, dispatcher := newLeadFixture(t)
	ctx := context.Background()

	_, _ = entityStore.AddTeamMember(ctx, store.TeamMemberInput{Name: "Bob Agent", Role: domain.RoleAgent})
	lead, _ := svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912"})

	ghost := "Nobody"
	if _, err := svc.Assign(ctx, managerActor, lead.ID, &ghost); err == nil {
		t.Fatal("assigning an unknown member must fail")
	}

	bob := "Bob Agent"
	assigned, err := svc.Assign(ctx, managerActor, lead.ID, &bob)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.AssignedTo == nil || *assigned.AssignedTo != "Bob Agent" {
		t.Fatal("assignment not applied")
	}
	if _, ok := dispatcher.lastOfType(events.EventLeadAssigned); !ok {
		t.Fatal("expected lead_assigned event")
	}

	cleared, err := svc.Assign(ctx, managerActor, lead.ID, nil)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if cleared.AssignedTo != nil {
		t.Fatal("nil name must clear the assignment")
	}
}

func TestLeadLinkPropertyRequiresExistingProperty(t *testing.T) {
	svc, entityStore, _ := newLeadFixture(t)
	ctx := context.Background()

	lead, _ := svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912"})

	if err := svc.LinkProperty(ctx, lead.ID, "missing"); err == nil {
		t.Fatal("linking a missing property must fail")
	}

	property, _ := entityStore.AddProperty(ctx, store.PropertyInput{Title: "Lakeview Villa"})
	if err := svc.LinkProperty(ctx, lead.ID, property.ID); err != nil {
		t.Fatalf("link: %v", err)
	}
	got, _ := entityStore.GetLead(lead.ID)
	if !got.InterestedIn(property.ID) {
		t.Fatal("link not applied")
	}
}

func TestImportRecordsDeduplicates(t *testing.T) {
	svc, _, dispatcher := newLeadFixture(t)
	ctx := context.Background()

	_, _ = svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912", Email: "Alice@Mail.test"})

	records := []importer.LeadRecord{
		{Name: "Duplicate Phone", Phone: "0912"},
		{Name: "Duplicate Email", Email: "alice@mail.test"},
		{Name: "Fresh Lead", Phone: "0913"},
		{Name: "Fresh Lead Again", Phone: "0913"},
		{Name: "Another Fresh", Email: "new@mail.test"},
	}

	imported, skipped, err := svc.ImportRecords(ctx, managerActor, records)
	if err != nil {
		t.Fatalf("ImportRecords: %v", err)
	}
	if imported != 2 || skipped != 3 {
		t.Fatalf("imported=%d skipped=%d, want 2/3", imported, skipped)
	}

	event, ok := dispatcher.lastOfType(events.EventLeadsImported)
	if !ok {
		t.Fatal("expected leads_imported event")
	}
	payload, ok := event.Payload.(events.LeadsImportedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload.Imported != 2 || payload.Skipped != 3 {
		t.Fatalf("payload = %+v, want 2/3", payload)
	}
}

func TestLeadUpdatePublishesStatusChange(t *testing.T) {
	svc, _, dispatcher := newLeadFixture(t)
	ctx := context.Background()

	lead, _ := svc.Create(ctx, managerActor, store.LeadInput{Name: "Alice Buyer", Phone: "0912"})

	status := domain.LeadStatusQualified
	if _, err := svc.Update(ctx, managerActor, lead.ID, store.LeadPatch{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	event, ok := dispatcher.lastOfType(events.EventLeadUpdated)
	if !ok {
		t.Fatal("expected lead_updated event")
	}
	payload, ok := event.Payload.(events.LeadStatusChangedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload.OldStatus != domain.LeadStatusNew || payload.NewStatus != domain.LeadStatusQualified {
		t.Fatalf("payload = %+v, want new to qualified", payload)
	}

	// a non-status update carries no payload
	city := "Austin"
	if _, err := svc.Update(ctx, managerActor, lead.ID, store.LeadPatch{City: &city}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	event, _ = dispatcher.lastOfType(events.EventLeadUpdated)
	if event.Payload != nil {
		t.Fatalf("non-status update payload = %+v, want nil", event.Payload)
	}
}

func TestLeadDeleteNotFound(t *testing.T) {
	svc, _, _ := newLeadFixture(t)

	err := svc.Delete(context.Background(), managerActor, "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
