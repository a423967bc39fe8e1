package synth

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the single ordered random stream shared by every generation phase.
// Output is reproducible only if phases draw from it in the same order each run.
type Source struct {
	f *gofakeit.Faker
}

// NewSource returns a Source over a PCG stream seeded with seed. Every seed,
// zero included, yields the same stream on every run.
func NewSource(seed int64) *Source {
	return &Source{f: gofakeit.NewFaker(rand.NewPCG(uint64(seed), uint64(seed)), false)}
}

// Intn returns a uniform integer in [lo, hi].
func (s *Source) Intn(lo, hi int) int {
	return s.f.Number(lo, hi)
}

// Pick returns a uniform element of list.
func (s *Source) Pick(list []string) string {
	return list[s.f.Number(0, len(list)-1)]
}

func (s *Source) PickInt(list []int) int {
	return list[s.f.Number(0, len(list)-1)]
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.f.Float64() < p
}

func (s *Source) Bool() bool {
	return s.f.Bool()
}

// DateBetween returns a calendar day drawn uniformly from [start, end].
func (s *Source) DateBetween(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, s.f.Number(0, days))
}

// Price returns a dollar amount in [lo, hi] with cent precision.
func (s *Source) Price(lo, hi float64) float64 {
	return s.f.Price(lo, hi)
}

func (s *Source) FirstName() string { return s.f.FirstName() }
func (s *Source) LastName() string  { return s.f.LastName() }
func (s *Source) FullName() string  { return s.f.Name() }
func (s *Source) Street() string    { return s.f.Street() }
func (s *Source) City() string      { return s.f.City() }
func (s *Source) State() string     { return s.f.State() }
func (s *Source) Zip() string       { return s.f.Zip() }

// Phone returns a formatted phone number clipped to the 15-character column width.
func (s *Source) Phone() string {
	p := s.f.PhoneFormatted()
	if len(p) > 15 {
		p = p[:15]
	}
	return p
}

func (s *Source) Sentence(words int) string {
	return s.f.Sentence(words)
}

// Paragraph joins n sentences of 8 to 14 words.
func (s *Source) Paragraph(n int) string {
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, s.f.Sentence(s.f.Number(8, 14)))
	}
	return strings.Join(parts, " ")
}
