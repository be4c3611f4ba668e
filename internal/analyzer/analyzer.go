// Package analyzer computes summary statistics over an already-loaded set of
// health records, entirely in memory. It never touches the store; callers
// load a user's records once and hand the slice over.
package analyzer

import "github.com/emontoya05/healthtrack/internal/models"

// Analyzer wraps a caller-owned snapshot of one user's records.
type Analyzer struct {
	records []models.HealthRecord
}

// New returns an Analyzer over the given records. The slice is not copied;
// the caller must not mutate it while the Analyzer is in use.
func New(records []models.HealthRecord) *Analyzer {
	return &Analyzer{records: records}
}

// AverageWeight is the mean of all weights strictly greater than zero.
// Returns 0 when no value qualifies.
func (a *Analyzer) AverageWeight() float64 {
	var total float64
	var count int
	for _, r := range a.records {
		if r.Weight > 0 {
			total += r.Weight
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// AverageGlucose is the mean of all glucose values strictly greater than
// zero. Returns 0 when no value qualifies.
func (a *Analyzer) AverageGlucose() float64 {
	var total float64
	var count int
	for _, r := range a.records {
		if r.Glucose > 0 {
			total += r.Glucose
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// AverageBloodPressure is the mean of the systolic components that parse to
// a number strictly greater than zero. Entries without the separator or with
// a non-numeric systolic part are skipped. Returns 0 when no value qualifies.
func (a *Analyzer) AverageBloodPressure() float64 {
	var total float64
	var count int
	for _, r := range a.records {
		v, ok := r.Systolic()
		if ok && v > 0 {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// Trend computations are part of the contract but deliberately not
// implemented: each one returns 0, and callers must not read that as a flat
// trend. Picking an actual algorithm (regression slope, moving average)
// is a separate decision.

// WeightTrend always returns 0. Not implemented.
func (a *Analyzer) WeightTrend() float64 {
	values := make([]float64, 0, len(a.records))
	for _, r := range a.records {
		values = append(values, r.Weight)
	}
	return a.calculateTrend(values)
}

// GlucoseTrend always returns 0. Not implemented.
func (a *Analyzer) GlucoseTrend() float64 {
	values := make([]float64, 0, len(a.records))
	for _, r := range a.records {
		values = append(values, r.Glucose)
	}
	return a.calculateTrend(values)
}

// BloodPressureTrend always returns 0. Not implemented.
func (a *Analyzer) BloodPressureTrend() float64 {
	var values []float64
	for _, r := range a.records {
		if v, ok := r.Systolic(); ok {
			values = append(values, v)
		}
	}
	return a.calculateTrend(values)
}

// calculateTrend always returns 0. Not implemented.
func (a *Analyzer) calculateTrend(values []float64) float64 {
	_ = values
	return 0
}
