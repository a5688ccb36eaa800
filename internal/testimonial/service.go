// aykutspohr | 2026
// service.go

package testimonial

import (
	"sort"
)

// Service computes derived views over the immutable testimonial
// catalog. All public views only ever surface displayable entries;
// pending, rejected, archived and non-consented quotes stay internal.
type Service struct {
	testimonials []Testimonial
}

func NewService(testimonials []Testimonial) *Service {
	return &Service{testimonials: testimonials}
}

// Displayable returns publishable testimonials sorted ascending by
// display order.
func (s *Service) Displayable() []Testimonial {
	out := make([]Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		if t.Displayable() {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})

	return out
}

// Featured returns displayable testimonials flagged as featured,
// preserving display order.
func (s *Service) Featured() []Testimonial {
	out := make([]Testimonial, 0, len(s.testimonials))
	for _, t := range s.Displayable() {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) ByCategory(cat Category) []Testimonial {
	out := make([]Testimonial, 0, len(s.testimonials))
	for _, t := range s.Displayable() {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) InLanguage(lang Language) []Testimonial {
	out := make([]Testimonial, 0, len(s.testimonials))
	for _, t := range s.Displayable() {
		if t.Language == lang {
			out = append(out, t)
		}
	}
	return out
}

// GetByID looks up a testimonial by id among displayable entries only,
// so direct links cannot leak unpublished quotes.
func (s *Service) GetByID(id string) (*Testimonial, bool) {
	for i := range s.testimonials {
		if s.testimonials[i].ID == id && s.testimonials[i].Displayable() {
			t := s.testimonials[i]
			return &t, true
		}
	}
	return nil, false
}

// AverageRating returns the mean rating across displayable entries
// that carry one, and the number of rated entries. Zero entries yield
// a zero average, not NaN.
func (s *Service) AverageRating() (float64, int) {
	var total, count int
	for _, t := range s.Displayable() {
		if t.Rating > 0 {
			total += t.Rating
			count++
		}
	}

	if count == 0 {
		return 0, 0
	}

	return float64(total) / float64(count), count
}
