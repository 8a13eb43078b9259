package classify

import (
	"sort"

	"leadhub/domain/lead"
	"leadhub/domain/schema"
)

// Config makes the behavioral differences between the old page variants
// explicit: the alias table, the rule list, the sampling bound, the majority
// threshold, and the DOB / start-date year window.
type Config struct {
	Aliases           AliasTable
	Rules             []Rule
	SampleSize        int
	MajorityThreshold float64
	DOBYearBefore     int
	StartDateYearFrom int
}

// DefaultConfig returns the consolidated behavior: superset alias table,
// canonical rule order, 100-value samples, strict majority, DOB before 2000
// and start dates from 2005 on. Years 2000-2004 stay unassigned.
func DefaultConfig() Config {
	return Config{
		Aliases:           DefaultAliasTable(),
		Rules:             DefaultRules(),
		SampleSize:        100,
		MajorityThreshold: 0.5,
		DOBYearBefore:     2000,
		StartDateYearFrom: 2005,
	}
}

// Classifier assigns source columns to target fields: alias lookup first,
// value-pattern scoring for what's left.
type Classifier struct {
	config Config
}

// New creates a classifier from config. Zero sample size or threshold fall
// back to the defaults.
func New(config Config) *Classifier {
	if config.SampleSize <= 0 {
		config.SampleSize = 100
	}
	if config.MajorityThreshold <= 0 {
		config.MajorityThreshold = 0.5
	}
	return &Classifier{config: config}
}

// Classify maps every source column. Every scored candidate is kept in the
// result so tie-breaks are auditable, not implicit in iteration order.
// Multiple columns may land on the same field; value collisions are resolved
// later, first non-empty per row.
func (c *Classifier) Classify(table *lead.SourceTable) *lead.ColumnMapping {
	assignments := make([]lead.ColumnAssignment, len(table.Headers))
	var candidates []lead.Candidate

	for i, header := range table.Headers {
		assignments[i] = lead.ColumnAssignment{
			Column: i,
			Header: header,
			Field:  schema.None,
			Kind:   lead.MatchNone,
		}

		if field, ok := c.config.Aliases.Resolve(header); ok {
			assignments[i].Field = field
			assignments[i].Kind = lead.MatchAlias
			assignments[i].Confidence = 1.0
			candidates = append(candidates, lead.Candidate{
				Column:     i,
				Header:     header,
				Field:      field,
				Confidence: 1.0,
				Kind:       lead.MatchAlias,
			})
		}
	}

	for i := range assignments {
		if assignments[i].Field != schema.None {
			continue
		}
		sample := sampleNonEmpty(table.Column(i), c.config.SampleSize)
		if len(sample) == 0 {
			continue
		}

		scored := c.scoreColumn(i, table.Headers[i], sample)
		candidates = append(candidates, toCandidates(scored)...)

		if best, ok := pickBest(scored); ok {
			assignments[i].Field = best.Field
			assignments[i].Kind = lead.MatchPattern
			assignments[i].Confidence = best.Confidence
		}
	}

	return &lead.ColumnMapping{Assignments: assignments, Candidates: candidates}
}

// scoredCandidate carries the rule priority alongside the public candidate
// fields so pickBest can order explicitly.
type scoredCandidate struct {
	lead.Candidate
	Priority int
}

func (c *Classifier) scoreColumn(col int, header string, sample []string) []scoredCandidate {
	var out []scoredCandidate

	for _, rule := range c.config.Rules {
		ratio := matchRatio(sample, rule.Match)
		if ratio > c.config.MajorityThreshold {
			out = append(out, scoredCandidate{
				Candidate: lead.Candidate{
					Column:     col,
					Header:     header,
					Field:      rule.Field,
					Confidence: ratio,
					Kind:       lead.MatchPattern,
				},
				Priority: rule.Priority,
			})
		}
	}

	if field, ratio, ok := c.classifyDates(sample); ok {
		out = append(out, scoredCandidate{
			Candidate: lead.Candidate{
				Column:     col,
				Header:     header,
				Field:      field,
				Confidence: ratio,
				Kind:       lead.MatchPattern,
			},
			Priority: datePriority,
		})
	}

	return out
}

// classifyDates decides DOB vs Business Start Date from the median parsed
// year. Columns whose median lands inside the unassigned window produce no
// candidate at all.
func (c *Classifier) classifyDates(sample []string) (schema.Field, float64, bool) {
	var years []int
	parsed := 0
	for _, value := range sample {
		if t, ok := ParseDate(value); ok {
			parsed++
			years = append(years, t.Year())
		}
	}

	ratio := float64(parsed) / float64(len(sample))
	if ratio <= c.config.MajorityThreshold {
		return schema.None, 0, false
	}

	sort.Ints(years)
	median := years[len(years)/2]
	switch {
	case median < c.config.DOBYearBefore:
		return schema.FieldDOB, ratio, true
	case median >= c.config.StartDateYearFrom:
		return schema.FieldBusinessStartDate, ratio, true
	default:
		return schema.None, 0, false
	}
}

// pickBest selects by priority first, then confidence, then column order.
func pickBest(scored []scoredCandidate) (lead.Candidate, bool) {
	if len(scored) == 0 {
		return lead.Candidate{}, false
	}
	best := scored[0]
	for _, s := range scored[1:] {
		if s.Priority < best.Priority ||
			(s.Priority == best.Priority && s.Confidence > best.Confidence) {
			best = s
		}
	}
	return best.Candidate, true
}

func toCandidates(scored []scoredCandidate) []lead.Candidate {
	out := make([]lead.Candidate, len(scored))
	for i, s := range scored {
		out[i] = s.Candidate
	}
	return out
}

// sampleNonEmpty takes up to limit non-empty values, stride-sampled so long
// files contribute from their whole length, not just the top.
func sampleNonEmpty(values []string, limit int) []string {
	var nonEmpty []string
	for _, v := range values {
		if v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) <= limit {
		return nonEmpty
	}

	step := len(nonEmpty) / limit
	sample := make([]string, 0, limit)
	for i := 0; i < len(nonEmpty) && len(sample) < limit; i += step {
		sample = append(sample, nonEmpty[i])
	}
	return sample
}

func matchRatio(sample []string, match Predicate) float64 {
	if len(sample) == 0 {
		return 0
	}
	hits := 0
	for _, v := range sample {
		if match(v) {
			hits++
		}
	}
	return float64(hits) / float64(len(sample))
}
