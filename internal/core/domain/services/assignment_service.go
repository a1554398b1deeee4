package services

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no suitable partner is available for an
// order. This occurs when either no partners are provided or none of the
// provided partners is active, under capacity and covering the order's area.
var ErrPartnerNotFound = errors.New("partner not found")

// AssignmentService is a domain service responsible for finding and assigning
// the best delivery partner for an order.
//
// Business rules:
//   - Orders must be valid and pending before assignment
//   - Partners must be active, under capacity and serve the order's area
//   - Selection picks the partner with the lowest current load
//   - Ties break on the lexicographically smallest partner ID, which keeps
//     repeated runs over the same data deterministic
//   - Order assignment is atomic: either both the order and the partner are
//     mutated, or neither is
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign finds the best partner for the given order and executes the
// assignment workflow: the chosen partner takes one unit of load and the
// order transitions to assigned.
//
// Returns ErrPartnerNotFound when no provided partner is eligible, or a
// validation error when the order or a partner is in an invalid state. The
// order and all partners are left untouched on any error.
func (s AssignmentService) Assign(ord *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	best, err := s.findBestPartner(ord, partners)
	if err != nil {
		return nil, err
	}

	if err = best.TakeOrder(); err != nil {
		return nil, err
	}

	if err = ord.Assign(best.ID()); err != nil {
		best.ReleaseOrder()
		return nil, err
	}

	return best, nil
}

// findBestPartner evaluates the provided partners and returns the eligible
// one with the lowest current load.
func (s AssignmentService) findBestPartner(ord *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	var best *partner.Partner

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() || !p.ServesArea(ord.Area()) {
			continue
		}

		if best == nil || s.lessLoaded(p, best) {
			best = p
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}

	return best, nil
}

func (s AssignmentService) lessLoaded(a, b *partner.Partner) bool {
	if a.CurrentLoad() != b.CurrentLoad() {
		return a.CurrentLoad() < b.CurrentLoad()
	}
	return a.ID().String() < b.ID().String()
}
