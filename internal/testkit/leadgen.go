// Package testkit generates synthetic lead files for exercising the
// classification and cleaning pipeline against realistic volume.
package testkit

import (
	"fmt"
	"math/rand"

	"leadhub/domain/lead"
)

// LeadGeneratorConfig configures the synthetic lead file generator.
type LeadGeneratorConfig struct {
	RowCount int
	// Fraction of cells left empty or filled with an NA marker.
	MessyRate float64
	Seed      int64
}

// DefaultLeadGeneratorConfig returns defaults large enough to force the
// classifier onto its sampling path.
func DefaultLeadGeneratorConfig() LeadGeneratorConfig {
	return LeadGeneratorConfig{
		RowCount:  500,
		MessyRate: 0.15,
		Seed:      42,
	}
}

// LeadGenerator produces a SourceTable with vendor-style headers and
// deliberately inconsistent cell formatting.
type LeadGenerator struct {
	config LeadGeneratorConfig
	rng    *rand.Rand
}

func NewLeadGenerator(config LeadGeneratorConfig) *LeadGenerator {
	return &LeadGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	firstNames = []string{"James", "Maria", "Wei", "Aisha", "Carlos", "Dana", "Yusuf", "Elena"}
	lastNames  = []string{"Smith", "Garcia", "Chen", "Okafor", "Brown", "Nguyen", "Patel", "Kim"}
	streets    = []string{"Main St", "Oak Ave", "2nd St", "Commerce Blvd", "Pine Rd"}
	cities     = []string{"Austin", "Tampa", "Reno", "Columbus", "Mesa"}
	states     = []string{"TX", "FL", "NV", "OH", "AZ"}
	naMarkers  = []string{"", "NA", "N/A", "null", "-"}
)

// Generate builds the table. Headers are obscure vendor names, so
// assignment has to come from value patterns rather than the alias table.
func (g *LeadGenerator) Generate() *lead.SourceTable {
	headers := []string{"col_a", "col_b", "col_c", "col_d", "col_e", "col_f"}
	rows := make([][]string, 0, g.config.RowCount)

	for i := 0; i < g.config.RowCount; i++ {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		rows = append(rows, []string{
			g.messy(first + " " + last),
			g.messy(g.phone()),
			g.messy(g.email(first, last)),
			g.messy(g.ssn()),
			g.messy(g.dob()),
			g.messy(fmt.Sprintf("%d %s, %s, %s", 100+g.rng.Intn(9000),
				streets[g.rng.Intn(len(streets))],
				cities[g.rng.Intn(len(cities))],
				states[g.rng.Intn(len(states))])),
		})
	}

	return &lead.SourceTable{
		Name:    "synthetic.csv",
		Headers: headers,
		Rows:    rows,
	}
}

func (g *LeadGenerator) messy(v string) string {
	if g.rng.Float64() < g.config.MessyRate {
		return naMarkers[g.rng.Intn(len(naMarkers))]
	}
	return v
}

// phone returns a 10-digit number in one of the formats seen in vendor
// exports.
func (g *LeadGenerator) phone() string {
	area := 200 + g.rng.Intn(700)
	mid := g.rng.Intn(1000)
	tail := g.rng.Intn(10000)
	switch g.rng.Intn(4) {
	case 0:
		return fmt.Sprintf("(%03d) %03d-%04d", area, mid, tail)
	case 1:
		return fmt.Sprintf("%03d-%03d-%04d", area, mid, tail)
	case 2:
		return fmt.Sprintf("%03d.%03d.%04d", area, mid, tail)
	default:
		return fmt.Sprintf("%03d%03d%04d", area, mid, tail)
	}
}

func (g *LeadGenerator) email(first, last string) string {
	return fmt.Sprintf("%s.%s%d@example.com", first, last, g.rng.Intn(100))
}

func (g *LeadGenerator) ssn() string {
	return fmt.Sprintf("%03d-%02d-%04d", 1+g.rng.Intn(899), g.rng.Intn(100), g.rng.Intn(10000))
}

// dob emits birth dates well before 2000 so the date window resolves to
// Date of Birth rather than Business Start Date.
func (g *LeadGenerator) dob() string {
	year := 1950 + g.rng.Intn(45)
	month := 1 + g.rng.Intn(12)
	day := 1 + g.rng.Intn(28)
	if g.rng.Intn(2) == 0 {
		return fmt.Sprintf("%02d/%02d/%d", month, day, year)
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}
