package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/skycourier/backoffice/internal/core/domain"
	"github.com/skycourier/backoffice/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the lifecycle and conversion service tests
// ---------------------------------------------------------------------------

type stubShipmentRepo struct {
	byID      map[string]*domain.Shipment
	createErr error

	// beforeApply runs inside ApplyTransition before the status check,
	// simulating a writer that slips in between read and CAS.
	beforeApply func()
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{byID: make(map[string]*domain.Shipment)}
}

func cloneShipment(s *domain.Shipment) *domain.Shipment {
	clone := *s
	return &clone
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[s.ID] = cloneShipment(s)
	return nil
}

func (r *stubShipmentRepo) FindByNumber(_ context.Context, number string) (*domain.Shipment, error) {
	for _, s := range r.byID {
		if s.ShipmentNumber == number && s.DeletedAt == nil {
			return cloneShipment(s), nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	s, ok := r.byID[id]
	if !ok || s.DeletedAt != nil {
		return nil, domain.ErrShipmentNotFound
	}
	return cloneShipment(s), nil
}

func (r *stubShipmentRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Shipment, error) {
	for _, s := range r.byID {
		if s.IdempotencyKey == key && s.DeletedAt == nil {
			return cloneShipment(s), nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) List(_ context.Context, f ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	var matched []*domain.Shipment
	for _, s := range r.byID {
		if s.DeletedAt != nil {
			continue
		}
		if f.Status != "" && string(s.Status) != f.Status {
			continue
		}
		if f.ServiceType != "" && string(s.ServiceType) != f.ServiceType {
			continue
		}
		if f.Priority != "" && string(s.Priority) != f.Priority {
			continue
		}
		if f.CourierID != "" && s.CourierID != f.CourierID {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(s.ShipmentNumber), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, cloneShipment(s))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ShipmentNumber < matched[j].ShipmentNumber })
	return matched, int64(len(matched)), nil
}

// ApplyTransition mirrors the real Mongo CAS: the update only lands when the
// stored status still matches the expectation.
func (r *stubShipmentRepo) ApplyTransition(_ context.Context, id string, expected domain.ShipmentStatus, update domain.TransitionUpdate) error {
	if r.beforeApply != nil {
		r.beforeApply()
		r.beforeApply = nil
	}
	s, ok := r.byID[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrShipmentNotFound
	}
	if s.Status != expected {
		return domain.ErrStatusConflict
	}
	applyTransitionLocally(s, update)
	return nil
}

func (r *stubShipmentRepo) UpdateDetails(_ context.Context, id string, allowed []domain.ShipmentStatus, update domain.DetailsUpdate) error {
	s, ok := r.byID[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrShipmentNotFound
	}
	permitted := false
	for _, st := range allowed {
		if s.Status == st {
			permitted = true
			break
		}
	}
	if !permitted {
		return domain.ErrStatusConflict
	}
	applyDetailsLocally(s, update)
	return nil
}

func (r *stubShipmentRepo) SetCourier(_ context.Context, id, courierID string, at time.Time) error {
	s, ok := r.byID[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrShipmentNotFound
	}
	s.CourierID = courierID
	s.UpdatedAt = at
	return nil
}

func (r *stubShipmentRepo) SoftDelete(_ context.Context, id string, allowed []domain.ShipmentStatus, at time.Time) error {
	s, ok := r.byID[id]
	if !ok || s.DeletedAt != nil {
		return domain.ErrShipmentNotFound
	}
	for _, st := range allowed {
		if s.Status == st {
			s.DeletedAt = &at
			return nil
		}
	}
	return domain.ErrStatusConflict
}

func (r *stubShipmentRepo) Remove(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type stubSequenceRepo struct {
	counters map[domain.ServiceType]int64
	err      error
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{counters: make(map[domain.ServiceType]int64)}
}

func (r *stubSequenceRepo) NextShipmentSequence(_ context.Context, st domain.ServiceType) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.counters[st]++
	return r.counters[st], nil
}

type stubHistoryRepo struct {
	entries   []*domain.StatusHistoryEntry
	appendErr error
}

func (r *stubHistoryRepo) Append(_ context.Context, entry *domain.StatusHistoryEntry) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	clone := *entry
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubHistoryRepo) ListByShipment(_ context.Context, shipmentID string) ([]*domain.StatusHistoryEntry, error) {
	var out []*domain.StatusHistoryEntry
	for _, e := range r.entries {
		if e.ShipmentID == shipmentID {
			clone := *e
			out = append(out, &clone)
		}
	}
	// Timestamp ascending, insertion order on ties (stable sort).
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *stubHistoryRepo) DeleteByShipment(_ context.Context, shipmentID string) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ShipmentID != shipmentID {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	return nil
}

func (r *stubHistoryRepo) forShipment(shipmentID string) []*domain.StatusHistoryEntry {
	out, _ := r.ListByShipment(context.Background(), shipmentID)
	return out
}

type stubTaskRepo struct {
	tasks     []domain.Task
	failAfter int // if > 0, only the first failAfter tasks of a batch land
	batchErr  error
}

func (r *stubTaskRepo) CreateBatch(_ context.Context, tasks []domain.Task) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	if r.failAfter > 0 && len(tasks) > r.failAfter {
		r.tasks = append(r.tasks, tasks[:r.failAfter]...)
		return r.failAfter, domain.ErrPreconditionFailed
	}
	r.tasks = append(r.tasks, tasks...)
	return len(tasks), nil
}

func (r *stubTaskRepo) forShipment(shipmentID string) []domain.Task {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.ShipmentID == shipmentID {
			out = append(out, t)
		}
	}
	return out
}

type stubRefs struct {
	customers map[string]bool
	couriers  map[string]bool
	partners  map[string]bool
	invoiced  map[string]bool
}

func newStubRefs() *stubRefs {
	return &stubRefs{
		customers: map[string]bool{"cust-1": true},
		couriers:  map[string]bool{"courier-1": true},
		partners:  map[string]bool{"partner-1": true},
		invoiced:  map[string]bool{},
	}
}

func (r *stubRefs) CustomerExists(_ context.Context, id string) (bool, error) {
	return r.customers[id], nil
}

func (r *stubRefs) CourierExists(_ context.Context, id string) (bool, error) {
	return r.couriers[id], nil
}

func (r *stubRefs) PartnerExists(_ context.Context, id string) (bool, error) {
	return r.partners[id], nil
}

func (r *stubRefs) ShipmentHasInvoices(_ context.Context, shipmentID string) (bool, error) {
	return r.invoiced[shipmentID], nil
}

type stubAudit struct {
	records []ports.AuditRecord
}

func (a *stubAudit) Enqueue(rec ports.AuditRecord) {
	a.records = append(a.records, rec)
}

type stubGuard struct {
	dup    bool
	marked []string
}

func (g *stubGuard) IsDuplicate(_ context.Context, op, key string) (bool, error) {
	return g.dup, nil
}

func (g *stubGuard) Mark(_ context.Context, op, key string) error {
	g.marked = append(g.marked, op+":"+key)
	return nil
}

type stubQuoteRepo struct {
	byID map[string]*domain.Quote

	// beforeClaim runs inside ClaimConversion before the check, simulating
	// a rival conversion that claims the quote first.
	beforeClaim func()
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{byID: make(map[string]*domain.Quote)}
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id string) (*domain.Quote, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *q
	return &clone, nil
}

// ClaimConversion mirrors the real Mongo filter: accepted and unconverted,
// checked and written in one step.
func (r *stubQuoteRepo) ClaimConversion(_ context.Context, quoteID, shipmentID string, at time.Time) error {
	if r.beforeClaim != nil {
		r.beforeClaim()
		r.beforeClaim = nil
	}
	q, ok := r.byID[quoteID]
	if !ok {
		return domain.ErrQuoteNotFound
	}
	if q.Status != domain.QuoteAccepted || q.ConvertedToShipmentID != "" {
		return domain.ErrAlreadyConverted
	}
	q.ConvertedToShipmentID = shipmentID
	q.UpdatedAt = at
	return nil
}
