// Package diversity summarizes the repeat lengths observed in the reads covering one locus.
package diversity

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/repeats"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"strings"
)

// Undetermined is the feature value of a locus that failed the depth or purity check.
const Undetermined int = -1

// NoiseFraction is the fraction of the dominant allele count that another allele must exceed to be counted.
const NoiseFraction float64 = 0.05

// MinPurity is the minimum fraction of determined reads supporting the dominant allele.
const MinPurity float64 = 0.05

// Summary is the repeat length distribution for one sample at one locus.
type Summary struct {
	Counts    map[int]int // repeat count -> number of reads
	Depth     int         // reads with a determined repeat count
	Purity    float64     // dominant allele reads / Depth
	Fractions []float64   // allele counts above the noise floor, normalized to the dominant allele
	Alleles   int         // len(Fractions)
	Mean      float64     // mean of Fractions
	SD        float64     // population standard deviation of Fractions
	Feature   int         // Alleles, or Undetermined
}

// Summarize determines the repeat length of every read and reduces the distribution to the
// number of alleles above the noise floor. Feature is Undetermined when fewer than minDepth
// reads were determined or the dominant allele is supported by less than MinPurity of them.
func Summarize(reads []string, l loci.Locus, minDepth int) Summary {
	var ans Summary
	ans.Counts = make(map[int]int)
	ans.Feature = Undetermined

	var n int
	var found bool
	for i := range reads {
		n, found = repeats.Length(reads[i], l.LeftFlank, l.RightFlank, l.RepeatUnit)
		if !found {
			continue
		}
		ans.Counts[n]++
		ans.Depth++
	}

	if ans.Depth == 0 {
		return ans
	}

	var maxCount int
	for _, c := range ans.Counts {
		if c > maxCount {
			maxCount = c
		}
	}
	ans.Purity = float64(maxCount) / float64(ans.Depth)

	for _, k := range sortedKeys(ans.Counts) {
		if float64(ans.Counts[k]) > float64(maxCount)*NoiseFraction {
			ans.Fractions = append(ans.Fractions, float64(ans.Counts[k])/float64(maxCount))
		}
	}
	ans.Alleles = len(ans.Fractions)
	ans.Mean, ans.SD = stat.PopMeanStdDev(ans.Fractions, nil)

	if ans.Depth >= minDepth && ans.Purity >= MinPurity {
		ans.Feature = ans.Alleles
	}
	return ans
}

// Determined reports whether the locus passed the depth and purity checks.
func (s Summary) Determined() bool {
	return s.Feature != Undetermined
}

// Distribution formats the counts as repeatCount:reads pairs in increasing repeat count order.
func (s Summary) Distribution() string {
	if len(s.Counts) == 0 {
		return "."
	}
	sb := new(strings.Builder)
	for i, k := range sortedKeys(s.Counts) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(fmt.Sprintf("%d:%d", k, s.Counts[k]))
	}
	return sb.String()
}

// Plot draws the read count of every repeat length from the shortest to the longest observed.
func (s Summary) Plot(caption string) string {
	if len(s.Counts) == 0 {
		return caption + ": no determined reads"
	}
	keys := sortedKeys(s.Counts)
	minLen, maxLen := keys[0], keys[len(keys)-1]
	p := make([]float64, maxLen-minLen+1)
	for k, c := range s.Counts {
		p[k-minLen] = float64(c)
	}
	caption = fmt.Sprintf("%s (repeat units %d-%d)", caption, minLen, maxLen)
	return asciigraph.Plot(p, asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption(caption))
}

func sortedKeys(m map[int]int) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
