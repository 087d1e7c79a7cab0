package pitch

import "github.com/HisDataisRafa/silencios/internal/stats"

// Record pairs a clip name with its estimated pitch in Hz. Pitch 0 means no
// confident pitch was found; it still enters the fence computation like any
// other value.
type Record struct {
	Name  string
	Pitch float64
}

// minRecords is the smallest table that gives the quartiles meaning.
const minRecords = 4

// fenceK is the standard Tukey fence multiplier. Not configurable.
const fenceK = 1.5

// Outliers returns the names of records whose pitch falls strictly outside
// the fence [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Fewer than four records yield no
// outliers. Result order follows the record table.
func Outliers(records []Record) []string {
	lower, upper, ok := Fence(records)
	if !ok {
		return nil
	}

	var flagged []string
	for _, r := range records {
		if r.Pitch < lower || r.Pitch > upper {
			flagged = append(flagged, r.Name)
		}
	}
	return flagged
}

// Fence computes the Tukey fence over the record pitches. ok is false when
// there are too few records to compute quartiles meaningfully.
func Fence(records []Record) (lower, upper float64, ok bool) {
	if len(records) < minRecords {
		return 0, 0, false
	}

	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Pitch
	}
	q1 := stats.Quantile(values, 0.25)
	q3 := stats.Quantile(values, 0.75)
	iqr := q3 - q1

	return q1 - fenceK*iqr, q3 + fenceK*iqr, true
}
