package alignment

import (
	"fmt"
	"sync"
)

// Read is an aligned read held in memory by Fake. It covers [Start, Start+len(Seq)).
type Read struct {
	Chrom string
	Start int
	Seq   string
}

// Fake is an in-memory Source for tests. It records how many times it was opened and closed.
type Fake struct {
	Reads []Read

	mu     sync.Mutex
	opened int
	closed int
}

// FetchReads returns the reads overlapping [start, end). A chromosome with no reads at
// all is reported as ErrUnknownChrom, the same as a bam header lacking it.
func (f *Fake) FetchReads(chrom string, start, end int) ([]string, error) {
	var ans []string
	var chromFound bool
	for _, r := range f.Reads {
		if r.Chrom != chrom {
			continue
		}
		chromFound = true
		if r.Start < end && r.Start+len(r.Seq) > start {
			ans = append(ans, r.Seq)
		}
	}
	if !chromFound {
		return nil, fmt.Errorf("fake: %w: %s", ErrUnknownChrom, chrom)
	}
	return ans, nil
}

// Close marks one use of the fake as finished.
func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

// Balanced reports whether every open was matched by a close, and how many opens there were.
func (f *Fake) Balanced() (bool, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened == f.closed, f.opened
}

// FakeOpener returns an Opener serving the fakes keyed by path.
func FakeOpener(fakes map[string]*Fake) Opener {
	return func(path string) (Source, error) {
		f, found := fakes[path]
		if !found {
			return nil, fmt.Errorf("fake: no alignments for %s", path)
		}
		f.mu.Lock()
		f.opened++
		f.mu.Unlock()
		return f, nil
	}
}
