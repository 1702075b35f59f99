// Package alignment provides the reads overlapping a genomic window from an indexed alignment file.
package alignment

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/sam"
	"os"
	"strings"
)

// Source returns the sequence of every read overlapping [start, end) on chrom.
// A Source is used by a single goroutine and must be closed when done.
type Source interface {
	FetchReads(chrom string, start, end int) ([]string, error)
	Close() error
}

// Opener opens the Source stored at path.
type Opener func(path string) (Source, error)

// ErrUnknownChrom is returned when a window is requested on a chromosome absent from the alignment header.
var ErrUnknownChrom = errors.New("chromosome not found in alignment header")

// Bam is a Source backed by a sorted and indexed bam file.
type Bam struct {
	path   string
	reader *sam.BamReader
	bai    sam.Bai
	chroms map[string]bool
}

// OpenBam opens a bam file and its index. The index is looked for at path.bai, then
// at path with the .bam suffix replaced by .bai.
func OpenBam(path string) (Source, error) {
	baiPath := path + ".bai"
	if _, err := os.Stat(baiPath); errors.Is(err, os.ErrNotExist) {
		baiPath = strings.TrimSuffix(path, ".bam") + ".bai"
		if _, err = os.Stat(baiPath); err != nil {
			return nil, fmt.Errorf("no index found for %s: %w", path, err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	b := &Bam{path: path, chroms: make(map[string]bool)}
	var header sam.Header
	b.reader, header = sam.OpenBam(path)
	b.bai = sam.ReadBai(baiPath)
	for i := range header.Chroms {
		b.chroms[header.Chroms[i].Name] = true
	}
	return b, nil
}

// FetchReads returns the sequences of the mapped reads overlapping [start, end).
func (b *Bam) FetchReads(chrom string, start, end int) ([]string, error) {
	if !b.chroms[chrom] {
		return nil, fmt.Errorf("%s: %w: %s", b.path, ErrUnknownChrom, chrom)
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return nil, nil
	}
	reads := sam.SeekBamRegion(b.reader, b.bai, chrom, uint32(start), uint32(end))
	ans := make([]string, 0, len(reads))
	for i := range reads {
		if sam.IsUnmapped(reads[i]) {
			continue
		}
		ans = append(ans, dna.BasesToString(reads[i].Seq))
	}
	return ans, nil
}

// Close releases the bam file handle.
func (b *Bam) Close() error {
	return b.reader.Close()
}
