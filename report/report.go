// Package report writes instability scores and per-locus diagnostics.
package report

import (
	"fmt"
	"github.com/omicsForestry/mSINGSlw/diversity"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/score"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strconv"
)

const scoreHeader string = "sample\tscore"
const diagnosticHeader string = "sample\tlocus\tdepth\tpurity\talleles\tmean\tSD\tfeature\tdistribution"

// FormatScore returns the score as a percentage, or NA when the sample could not be scored.
func FormatScore(r score.Result) string {
	if !r.Determined {
		return loci.NA
	}
	return strconv.FormatFloat(r.Score, 'f', -1, 64)
}

// WriteScores writes one line per sample with its instability score.
func WriteScores(filename string, results []score.Result) {
	out := fileio.EasyCreate(filename)
	defer cleanup(out)
	_, err := fmt.Fprintln(out, scoreHeader)
	exception.PanicOnErr(err)
	for i := range results {
		_, err = fmt.Fprintf(out, "%s\t%s\n", results[i].Sample, FormatScore(results[i]))
		exception.PanicOnErr(err)
	}
}

// WriteDiagnostics writes the read distribution summary of every sample at every locus.
// summaries holds, for each sample ID, one summary per locus in the order of ls.
func WriteDiagnostics(filename string, ls []loci.Locus, order []string, summaries map[string][]diversity.Summary) {
	out := fileio.EasyCreate(filename)
	defer cleanup(out)
	_, err := fmt.Fprintln(out, diagnosticHeader)
	exception.PanicOnErr(err)

	var s diversity.Summary
	var feature string
	for _, sample := range order {
		for i := range ls {
			s = summaries[sample][i]
			feature = loci.NA
			if s.Determined() {
				feature = strconv.Itoa(s.Feature)
			}
			_, err = fmt.Fprintf(out, "%s\t%s\t%d\t%.4g\t%d\t%.4g\t%.4g\t%s\t%s\n",
				sample, ls[i].ID(), s.Depth, s.Purity, s.Alleles, s.Mean, s.SD, feature, s.Distribution())
			exception.PanicOnErr(err)
		}
	}
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
