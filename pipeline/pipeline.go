// Package pipeline connects the region table, control baseline, and sample scoring into the runs
// exposed on the command line. All options arrive through a Config that is validated first.
package pipeline

import (
	"errors"
	"github.com/omicsForestry/mSINGSlw/alignment"
	"github.com/omicsForestry/mSINGSlw/baseline"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/profile"
	"github.com/omicsForestry/mSINGSlw/report"
	"github.com/omicsForestry/mSINGSlw/samples"
	"github.com/omicsForestry/mSINGSlw/score"
	"log"
	"time"
)

// DefaultDepth is the default minimum number of determined reads for a locus to be used.
const DefaultDepth int = 30

// Config holds the options of a baseline build and/or scoring run.
type Config struct {
	Controls string // list of control alignment files
	Prebuilt string // region table with baseline columns, written by a previous Build
	Build    string // region table with baseline columns to write
	Samples  string // list of alignment file and sample ID to score
	Regions  string // region table without baseline columns
	Output   string // score table to write
	Plot     string // optional bar chart of the scores
	Depth    int
	Threads  int
	Verbose  int
	Open     alignment.Opener // defaults to alignment.OpenBam
}

// Validate checks that the options describe one consistent run.
func (c Config) Validate() error {
	switch {
	case c.Controls == "" && c.Prebuilt == "":
		return errors.New("either controls or prebuilt must be specified")
	case c.Controls != "" && c.Prebuilt != "":
		return errors.New("controls and prebuilt cannot be used together")
	case c.Build != "" && c.Controls == "":
		return errors.New("build requires controls")
	case (c.Controls != "") != (c.Regions != ""):
		return errors.New("controls and regions must be specified together")
	case c.Output != "" && c.Samples == "":
		return errors.New("output requires samples")
	case c.Samples != "" && c.Output == "":
		return errors.New("samples requires output")
	case c.Prebuilt != "" && c.Samples == "":
		return errors.New("loading a prebuilt control file, but no samples to process")
	case c.Controls != "" && c.Samples == "" && c.Build == "":
		return errors.New("controls specified, but no control file to build or samples to process")
	case c.Plot != "" && c.Samples == "":
		return errors.New("plot requires samples")
	case c.Depth < 0:
		return errors.New("depth must be >= 0")
	case c.Threads < 1:
		return errors.New("threads must be >= 1")
	}
	return nil
}

// Run builds or loads the control baseline, optionally saves it, and scores the samples if any were given.
func Run(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Open == nil {
		c.Open = alignment.OpenBam
	}
	startTime := time.Now()

	var ls []loci.Locus
	var b loci.Baseline
	var err error
	if c.Controls != "" {
		ls, _, err = loci.ReadTable(c.Regions, false)
		if err != nil {
			return err
		}
		controls := samples.ReadControls(c.Controls)
		log.Printf("Building baseline from %d controls at %d loci\n", len(controls), len(ls))
		b, err = baseline.FromControls(controls, ls, c.Depth, c.Threads, c.Open, c.Verbose)
		if err != nil {
			return err
		}
	} else {
		ls, b, err = loci.ReadTable(c.Prebuilt, true)
		if err != nil {
			return err
		}
		log.Printf("Loaded baseline for %d of %d loci from %s\n", len(b), len(ls), c.Prebuilt)
	}

	if c.Build != "" {
		loci.WriteTable(c.Build, ls, b)
	}

	if c.Output != "" {
		var ss []samples.Sample
		ss, err = samples.ReadList(c.Samples)
		if err != nil {
			return err
		}
		log.Printf("Scoring %d samples\n", len(ss))
		var sf profile.SampleFeatures
		sf, err = profile.Samples(ss, ls, c.Depth, c.Threads, c.Open, c.Verbose)
		if err != nil {
			return err
		}
		results := score.All(samples.IDs(ss), sf, b)
		report.WriteScores(c.Output, results)
		if c.Verbose > 0 {
			for _, r := range results {
				log.Printf("%s\tscore=%s\tunstable=%d\ttested=%d\tsites=%d\n", r.Sample, report.FormatScore(r), r.Unstable, r.Tested, r.Sites)
			}
		}
		if c.Plot != "" {
			if err = report.PlotScores(c.Plot, results); err != nil {
				log.Printf("WARNING: could not plot scores: %s\n", err)
			}
		}
	}

	log.Printf("Successfully Completed\nTotal Runtime: %s\n", time.Since(startTime).Round(time.Second))
	return nil
}

// ProfileConfig holds the options of a diagnostic export of per-locus read distributions.
type ProfileConfig struct {
	Samples  string
	Controls string
	Regions  string
	Output   string
	Depth    int
	Threads  int
	Verbose  int
	Open     alignment.Opener
}

// Validate checks that exactly one sample list and a region table were given.
func (c ProfileConfig) Validate() error {
	switch {
	case (c.Samples == "") == (c.Controls == ""):
		return errors.New("exactly one of samples or controls must be specified")
	case c.Regions == "":
		return errors.New("regions must be specified")
	case c.Depth < 0:
		return errors.New("depth must be >= 0")
	case c.Threads < 1:
		return errors.New("threads must be >= 1")
	}
	return nil
}

// Profile writes the depth, purity, allele count, and distribution of every sample at every locus.
// The region table may be a plain or a baseline table.
func Profile(c ProfileConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Open == nil {
		c.Open = alignment.OpenBam
	}
	if c.Output == "" {
		c.Output = "stdout"
	}

	ls, _, err := loci.ReadTable(c.Regions, false)
	if err != nil {
		return err
	}
	var ss []samples.Sample
	if c.Samples != "" {
		ss, err = samples.ReadList(c.Samples)
		if err != nil {
			return err
		}
	} else {
		ss = samples.ReadControls(c.Controls)
	}

	summaries, err := profile.SampleSummaries(ss, ls, c.Depth, c.Threads, c.Open, c.Verbose)
	if err != nil {
		return err
	}
	report.WriteDiagnostics(c.Output, ls, samples.IDs(ss), summaries)
	return nil
}
