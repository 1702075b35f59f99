package loci

import (
	"fmt"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/fileio"
)

// ToBed converts the read window of a locus to a bed record named ID_<times>x<unit>.
func ToBed(l Locus) bed.Bed {
	var ans bed.Bed
	ans.Chrom = l.Chrom
	ans.ChromStart, ans.ChromEnd = l.Window()
	ans.Name = fmt.Sprintf("%s_%dx%s", l.ID(), l.RepeatTimes, l.RepeatUnit)
	ans.FieldsInitialized = 4
	return ans
}

// WriteWindows writes the read window of every locus as a bed file, e.g. to subset alignments upstream.
func WriteWindows(filename string, ls []Locus) {
	out := fileio.EasyCreate(filename)
	defer cleanup(out)
	for i := range ls {
		bed.WriteBed(out, ToBed(ls[i]))
	}
}
