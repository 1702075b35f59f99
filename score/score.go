// Package score calls microsatellite instability by comparing sample features to a control baseline.
package score

import (
	"github.com/omicsForestry/mSINGSlw/diversity"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/profile"
)

// Sigmas is the number of control standard deviations above the control mean a locus must exceed to be unstable.
const Sigmas float64 = 3

// MinTestedFraction is the fraction of baseline loci that must be determined in a sample for it to be scored.
const MinTestedFraction float64 = 0.1

// Result is the instability call of one sample.
type Result struct {
	Sample     string
	Score      float64 // percent of tested loci that are unstable
	Determined bool    // false when too few baseline loci were determined in the sample
	Sites      int     // loci in the baseline
	Tested     int     // baseline loci determined in the sample
	Unstable   int     // tested loci above the cutoff
}

// Cutoff returns the feature value a sample must exceed to be unstable at a locus.
func Cutoff(s loci.Stats) float64 {
	return s.Mean + Sigmas*s.SD
}

// Sample scores one sample. Only loci present in the baseline are tested.
func Sample(id string, f profile.Features, b loci.Baseline) Result {
	ans := Result{Sample: id}
	var feature int
	var found bool
	for locus, s := range b {
		ans.Sites++
		feature, found = f[locus]
		if !found || feature == diversity.Undetermined {
			continue
		}
		ans.Tested++
		if float64(feature) > Cutoff(s) {
			ans.Unstable++
		}
	}
	if float64(ans.Tested) > MinTestedFraction*float64(ans.Sites) {
		ans.Score = 100 * float64(ans.Unstable) / float64(ans.Tested)
		ans.Determined = true
	}
	return ans
}

// All scores every sample in order. A sample missing from sf is scored with no determined loci.
func All(order []string, sf profile.SampleFeatures, b loci.Baseline) []Result {
	ans := make([]Result, len(order))
	for i := range order {
		ans[i] = Sample(order[i], sf[order[i]], b)
	}
	return ans
}
