package report

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// Delta describes how one benchmark's figures moved between two reports.
type Delta struct {
	Name string

	BaselineNsPerOp float64
	CurrentNsPerOp  float64

	// PercentChange in ns/op; positive means the benchmark got slower.
	PercentChange float64

	BaselineAllocsPerOp float64
	CurrentAllocsPerOp  float64

	BaselineMBPerSec float64
	CurrentMBPerSec  float64

	// Regression is set when ns/op grew beyond the comparison threshold.
	Regression bool

	// Presence flags for benchmarks that exist on only one side.
	OnlyInBaseline bool
	OnlyInCurrent  bool
}

// Comparison is the outcome of comparing a current report to a baseline.
type Comparison struct {
	BaselineSuite string
	CurrentSuite  string

	// ThresholdPct is the ns/op growth, in percent, that counts as a
	// regression.
	ThresholdPct float64

	Deltas      []Delta
	Regressions int
}

// HasRegressions reports whether any benchmark regressed.
func (c *Comparison) HasRegressions() bool {
	return c.Regressions > 0
}

// Compare compares two validated report documents.
//
// Benchmarks are matched by name. A benchmark present on only one side is
// reported but never counted as a regression.
func Compare(baselineJSON, currentJSON string, thresholdPct float64) (*Comparison, error) {
	if thresholdPct < 0 {
		return nil, fmt.Errorf("threshold cannot be negative: %v", thresholdPct)
	}

	for _, doc := range []string{baselineJSON, currentJSON} {
		if _, err := Validate(doc); err != nil {
			return nil, err
		}
	}

	comparison := &Comparison{
		BaselineSuite: gjson.Get(baselineJSON, "suite").String(),
		CurrentSuite:  gjson.Get(currentJSON, "suite").String(),
		ThresholdPct:  thresholdPct,
	}

	baseline := resultsByName(baselineJSON)
	current := resultsByName(currentJSON)

	names := make([]string, 0, len(baseline)+len(current))
	for name := range baseline {
		names = append(names, name)
	}
	for name := range current {
		if _, ok := baseline[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		base, inBase := baseline[name]
		cur, inCur := current[name]

		delta := Delta{Name: name}

		switch {
		case !inCur:
			delta.OnlyInBaseline = true
			delta.BaselineNsPerOp = base.Get("nsPerOp").Float()
		case !inBase:
			delta.OnlyInCurrent = true
			delta.CurrentNsPerOp = cur.Get("nsPerOp").Float()
		default:
			delta.BaselineNsPerOp = base.Get("nsPerOp").Float()
			delta.CurrentNsPerOp = cur.Get("nsPerOp").Float()
			delta.BaselineAllocsPerOp = base.Get("allocsPerOp").Float()
			delta.CurrentAllocsPerOp = cur.Get("allocsPerOp").Float()
			delta.BaselineMBPerSec = base.Get("mbPerSec").Float()
			delta.CurrentMBPerSec = cur.Get("mbPerSec").Float()

			if delta.BaselineNsPerOp > 0 {
				delta.PercentChange = (delta.CurrentNsPerOp - delta.BaselineNsPerOp) /
					delta.BaselineNsPerOp * 100
			}

			if delta.PercentChange > thresholdPct {
				delta.Regression = true
				comparison.Regressions++
			}
		}

		comparison.Deltas = append(comparison.Deltas, delta)
	}

	return comparison, nil
}

// resultsByName indexes a report's results array by benchmark name.
func resultsByName(reportJSON string) map[string]gjson.Result {
	byName := make(map[string]gjson.Result)

	gjson.Get(reportJSON, "results").ForEach(func(_, value gjson.Result) bool {
		name := value.Get("name").String()
		if name != "" {
			byName[name] = value
		}
		return true
	})

	return byName
}
