// aykutspohr | 2026
// service.go

package pricing

import (
	"sort"
)

// Service computes derived views over the immutable tier catalog.
type Service struct {
	tiers []Tier
}

func NewService(tiers []Tier) *Service {
	return &Service{tiers: tiers}
}

// All returns every tier in authoring order, including deprecated and
// unreleased ones.
func (s *Service) All() []Tier {
	out := make([]Tier, len(s.tiers))
	copy(out, s.tiers)
	return out
}

// Active returns bookable tiers sorted ascending by display order.
func (s *Service) Active() []Tier {
	out := make([]Tier, 0, len(s.tiers))
	for _, t := range s.tiers {
		if t.Bookable() {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})

	return out
}

// Highlighted returns bookable tiers flagged for visual emphasis.
func (s *Service) Highlighted() []Tier {
	out := make([]Tier, 0, len(s.tiers))
	for _, t := range s.tiers {
		if t.Bookable() && t.Highlighted {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) GetByID(id string) (*Tier, bool) {
	for i := range s.tiers {
		if s.tiers[i].ID == id {
			t := s.tiers[i]
			return &t, true
		}
	}
	return nil, false
}

func (s *Service) InCategory(cat TierCategory) []Tier {
	out := make([]Tier, 0, len(s.tiers))
	for _, t := range s.tiers {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}
