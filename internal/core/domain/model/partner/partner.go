package partner

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MaxCapacity bounds the number of orders a partner can carry at once.
const MaxCapacity = 3

// ErrPartnerIsNotConstructed is returned when a Partner instance was not
// created through NewPartner or RestorePartner.
var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")

// Partner is the aggregate root for a delivery partner. It manages contact
// details, operational status, area coverage and the current load counter.
//
// Invariants:
//   - 0 <= currentLoad <= MaxCapacity at all times
//   - the load counter is only mutated through TakeOrder, ReleaseOrder and
//     CompleteOrder so increments and decrements stay in matched pairs
type Partner struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	status      Status
	currentLoad int
	areas       []string
	shift       Shift
	metrics     Metrics

	isConstructed bool
}

// NewPartner creates an active Partner with zero load and fresh metrics.
func NewPartner(
	id kernel.UUID,
	name, email, phone string,
	areas []string,
	shift Shift,
) (*Partner, error) {
	p := &Partner{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setAreas(areas),
		p.setShift(shift),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a Partner from persistence, validating the
// stored status and load against the aggregate invariants.
func RestorePartner(
	id kernel.UUID,
	name, email, phone string,
	status Status,
	currentLoad int,
	areas []string,
	shift Shift,
	metrics Metrics,
) (*Partner, error) {
	p, err := NewPartner(id, name, email, phone, areas, shift)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentLoad < 0 || currentLoad > MaxCapacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, MaxCapacity)
	}

	p.status = status
	p.currentLoad = currentLoad
	p.metrics = metrics
	return p, nil
}

// Validate ensures the Partner was constructed via NewPartner or
// RestorePartner.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// IsEqual compares two partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's name.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's email address.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's phone number.
func (p *Partner) Phone() string {
	return p.phone
}

// Status returns the operational availability flag.
func (p *Partner) Status() Status {
	return p.status
}

// CurrentLoad returns the number of orders currently carried.
func (p *Partner) CurrentLoad() int {
	return p.currentLoad
}

// Areas returns a copy of the service areas.
func (p *Partner) Areas() []string {
	areas := make([]string, len(p.areas))
	copy(areas, p.areas)
	return areas
}

// Shift returns the working window.
func (p *Partner) Shift() Shift {
	return p.shift
}

// Metrics returns the delivery counters.
func (p *Partner) Metrics() Metrics {
	return p.metrics
}

// ServesArea reports whether the partner covers the given area.
func (p *Partner) ServesArea(area string) bool {
	for _, a := range p.areas {
		if a == area {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the partner can take another order right now.
func (p *Partner) IsAvailable() bool {
	return p.status == Active && p.currentLoad < MaxCapacity
}

// TakeOrder increments the load counter. Fails for inactive partners and for
// partners already at capacity, which keeps the capacity invariant intact
// even when callers race on a stale view of the partner.
func (p *Partner) TakeOrder() error {
	if p.status != Active {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("partner %s is not active", p.id))
	}
	if p.currentLoad >= MaxCapacity {
		return errs.NewValueIsOutOfRangeError("currentLoad", p.currentLoad+1, 0, MaxCapacity)
	}

	p.currentLoad++
	return nil
}

// ReleaseOrder decrements the load counter. The decrement is clamped at zero:
// releasing a partner that carries nothing leaves the counter untouched
// instead of driving it negative.
func (p *Partner) ReleaseOrder() {
	if p.currentLoad > 0 {
		p.currentLoad--
	}
}

// CompleteOrder releases one unit of load and records the completed delivery
// in the partner's metrics.
func (p *Partner) CompleteOrder() {
	p.ReleaseOrder()
	p.metrics = p.metrics.RecordCompletion()
}

// Activate marks the partner as operationally available.
func (p *Partner) Activate() {
	p.status = Active
}

// Deactivate withdraws the partner from assignment. Load carried at the time
// of deactivation is unaffected.
func (p *Partner) Deactivate() {
	p.status = Inactive
}

// UpdateProfile replaces the partner's contact details.
func (p *Partner) UpdateProfile(name, email, phone string) error {
	return errors.Join(
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
	)
}

// UpdateAreas replaces the set of service areas.
func (p *Partner) UpdateAreas(areas []string) error {
	return p.setAreas(areas)
}

// UpdateShift replaces the working window.
func (p *Partner) UpdateShift(shift Shift) error {
	return p.setShift(shift)
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not an email address", email))
	}
	p.email = email
	return nil
}

func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Partner) setAreas(areas []string) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}

	seen := make(map[string]struct{}, len(areas))
	deduped := make([]string, 0, len(areas))
	for _, area := range areas {
		if area == "" {
			return errs.NewValueIsRequiredError("area")
		}
		if _, ok := seen[area]; ok {
			continue
		}
		seen[area] = struct{}{}
		deduped = append(deduped, area)
	}

	p.areas = deduped
	return nil
}

func (p *Partner) setShift(shift Shift) error {
	if err := shift.Validate(); err != nil {
		return err
	}
	p.shift = shift
	return nil
}
