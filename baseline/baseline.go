// Package baseline builds the expected diversity of every locus from a panel of control samples.
package baseline

import (
	"github.com/omicsForestry/mSINGSlw/alignment"
	"github.com/omicsForestry/mSINGSlw/diversity"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/profile"
	"github.com/omicsForestry/mSINGSlw/samples"
	"gonum.org/v1/gonum/stat"
	"log"
)

// FromControls profiles every control and builds the baseline from the results.
func FromControls(controls []samples.Sample, ls []loci.Locus, minDepth, threads int, open alignment.Opener, verbose int) (loci.Baseline, error) {
	features, err := profile.Samples(controls, ls, minDepth, threads, open, verbose)
	if err != nil {
		return nil, err
	}
	return Build(ls, samples.IDs(controls), features), nil
}

// Observations collects the determined features of each locus across the controls, in control order.
func Observations(ls []loci.Locus, controls []string, features profile.SampleFeatures) map[string][]float64 {
	ans := make(map[string][]float64, len(ls))
	var id string
	var f int
	var found bool
	for i := range ls {
		id = ls[i].ID()
		ans[id] = make([]float64, 0, len(controls))
		for _, c := range controls {
			f, found = features[c][id]
			if !found || f == diversity.Undetermined {
				continue
			}
			ans[id] = append(ans[id], float64(f))
		}
	}
	return ans
}

// Build computes the mean and population standard deviation of the control features at
// every locus with enough support. A locus is dropped when it was determined in fewer than
// half as many controls as the best supported locus, or in no control at all.
func Build(ls []loci.Locus, controls []string, features profile.SampleFeatures) loci.Baseline {
	obs := Observations(ls, controls, features)

	var maxObservations int
	for _, v := range obs {
		if len(v) > maxObservations {
			maxObservations = len(v)
		}
	}

	ans := make(loci.Baseline)
	var s loci.Stats
	var dropped int
	for id, v := range obs {
		if len(v) == 0 || float64(len(v)) < float64(maxObservations)/2 {
			dropped++
			continue
		}
		s.Mean, s.SD = stat.PopMeanStdDev(v, nil)
		ans[id] = s
	}

	log.Printf("Control baseline: %d of %d loci retained (%d dropped with insufficient control support)\n", len(ans), len(ls), dropped)
	return ans
}
