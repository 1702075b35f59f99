package score

import (
	"fmt"
	"github.com/omicsForestry/mSINGSlw/diversity"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/profile"
	"testing"
)

// testBaseline has n loci with mean 1 and sd 0.5, so the cutoff is 2.5.
func testBaseline(n int) loci.Baseline {
	b := make(loci.Baseline)
	for i := 0; i < n; i++ {
		b[fmt.Sprintf("chr1:%d", i)] = loci.Stats{Mean: 1, SD: 0.5}
	}
	return b
}

func features(determined, unstable int) profile.Features {
	f := make(profile.Features)
	for i := 0; i < determined; i++ {
		if i < unstable {
			f[fmt.Sprintf("chr1:%d", i)] = 3
		} else {
			f[fmt.Sprintf("chr1:%d", i)] = 2
		}
	}
	return f
}

func TestSampleMinimumTested(t *testing.T) {
	b := testBaseline(100)

	r := Sample("s", features(9, 0), b)
	if r.Determined || r.Tested != 9 || r.Sites != 100 {
		t.Errorf("9 of 100 loci should be undetermined, got %+v", r)
	}

	r = Sample("s", features(10, 0), b)
	if r.Determined {
		t.Errorf("10 of 100 loci is not more than 10%%, got %+v", r)
	}

	r = Sample("s", features(11, 0), b)
	if !r.Determined || r.Score != 0 {
		t.Errorf("11 stable loci of 100 should score 0, got %+v", r)
	}
}

func TestSampleScore(t *testing.T) {
	r := Sample("s", features(40, 10), testBaseline(50))
	if !r.Determined || r.Tested != 40 || r.Unstable != 10 || r.Score != 25 {
		t.Errorf("expected 25%% unstable, got %+v", r)
	}
}

func TestSampleCutoffIsStrict(t *testing.T) {
	b := loci.Baseline{"chr1:1": {Mean: 2, SD: 0}, "chr1:2": {Mean: 0.5, SD: 0.5}}
	f := profile.Features{"chr1:1": 2, "chr1:2": 2}
	r := Sample("s", f, b)
	if r.Unstable != 0 || r.Score != 0 {
		t.Errorf("features equal to the cutoff should be stable, got %+v", r)
	}
	f["chr1:1"] = 3
	if r = Sample("s", f, b); r.Unstable != 1 || r.Score != 50 {
		t.Errorf("expected one unstable locus, got %+v", r)
	}
}

func TestSampleIgnoresLociOutsideBaseline(t *testing.T) {
	b := loci.Baseline{"chr1:1": {Mean: 1, SD: 0}}
	f := profile.Features{"chr1:1": 1, "chr2:5": 10, "chr2:6": 10}
	r := Sample("s", f, b)
	if r.Sites != 1 || r.Tested != 1 || r.Unstable != 0 {
		t.Errorf("only baseline loci should be tested, got %+v", r)
	}

	f["chr1:1"] = diversity.Undetermined
	if r = Sample("s", f, b); r.Determined || r.Tested != 0 {
		t.Errorf("undetermined locus should not be tested, got %+v", r)
	}

	if r = Sample("s", f, loci.Baseline{}); r.Determined {
		t.Errorf("an empty baseline cannot score a sample, got %+v", r)
	}
}

func TestAll(t *testing.T) {
	b := testBaseline(20)
	sf := profile.SampleFeatures{
		"b": features(20, 5),
		"a": features(20, 0),
	}
	r := All([]string{"b", "a", "c"}, sf, b)
	if len(r) != 3 || r[0].Sample != "b" || r[1].Sample != "a" || r[2].Sample != "c" {
		t.Fatalf("results should follow the given order, got %+v", r)
	}
	if r[0].Score != 25 || r[1].Score != 0 || r[2].Determined {
		t.Errorf("unexpected scores %+v", r)
	}
}
