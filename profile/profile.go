// Package profile measures the diversity feature of every locus in one or more alignment files.
package profile

import (
	"fmt"
	"github.com/omicsForestry/mSINGSlw/alignment"
	"github.com/omicsForestry/mSINGSlw/diversity"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/omicsForestry/mSINGSlw/samples"
	"log"
	"sync"
	"time"
)

// Features maps locus ID to the diversity feature of one sample. Undetermined loci hold diversity.Undetermined.
type Features map[string]int

// SampleFeatures maps sample ID to the Features of that sample.
type SampleFeatures map[string]Features

// Summaries returns the full read distribution summary of every locus, in locus order.
func Summaries(src alignment.Source, ls []loci.Locus, minDepth int, verbose int) ([]diversity.Summary, error) {
	ans := make([]diversity.Summary, len(ls))
	var reads []string
	var start, end int
	var err error
	for i := range ls {
		start, end = ls[i].Window()
		reads, err = src.FetchReads(ls[i].Chrom, start, end)
		if err != nil {
			return nil, fmt.Errorf("locus %s: %w", ls[i].ID(), err)
		}
		ans[i] = diversity.Summarize(reads, ls[i], minDepth)
		if verbose > 1 {
			log.Printf("%s\tdepth=%d\tpurity=%.3f\talleles=%d\n%s\n", ls[i].ID(), ans[i].Depth, ans[i].Purity, ans[i].Alleles, ans[i].Plot(ls[i].ID()))
		}
	}
	return ans, nil
}

// Sample returns the diversity feature of every locus.
func Sample(src alignment.Source, ls []loci.Locus, minDepth int, verbose int) (Features, error) {
	summaries, err := Summaries(src, ls, minDepth, verbose)
	if err != nil {
		return nil, err
	}
	ans := make(Features, len(ls))
	for i := range ls {
		ans[ls[i].ID()] = summaries[i].Feature
	}
	return ans, nil
}

// Samples profiles every sample with threads workers. Each sample's alignment file is
// opened once by the worker handling it and closed before that worker moves on.
func Samples(ss []samples.Sample, ls []loci.Locus, minDepth, threads int, open alignment.Opener, verbose int) (SampleFeatures, error) {
	results, err := forEachSample(ss, threads, open, verbose, func(src alignment.Source) (Features, error) {
		return Sample(src, ls, minDepth, verbose)
	})
	if err != nil {
		return nil, err
	}
	ans := make(SampleFeatures, len(ss))
	for i := range ss {
		ans[ss[i].ID] = results[i]
	}
	return ans, nil
}

// SampleSummaries is Samples keeping the full summary of each locus, keyed by sample ID.
func SampleSummaries(ss []samples.Sample, ls []loci.Locus, minDepth, threads int, open alignment.Opener, verbose int) (map[string][]diversity.Summary, error) {
	results, err := forEachSample(ss, threads, open, verbose, func(src alignment.Source) ([]diversity.Summary, error) {
		return Summaries(src, ls, minDepth, verbose)
	})
	if err != nil {
		return nil, err
	}
	ans := make(map[string][]diversity.Summary, len(ss))
	for i := range ss {
		ans[ss[i].ID] = results[i]
	}
	return ans, nil
}

type result[T any] struct {
	idx int
	val T
	err error
}

// forEachSample runs fn on every sample and returns the results in sample order.
// If any sample fails, the error of the first failing sample in list order is returned.
func forEachSample[T any](ss []samples.Sample, threads int, open alignment.Opener, verbose int, fn func(alignment.Source) (T, error)) ([]T, error) {
	if threads < 1 {
		threads = 1
	}
	startTime := time.Now().UnixMilli()

	wg := new(sync.WaitGroup)
	inputChan := make(chan int, len(ss))
	outputChan := make(chan result[T], len(ss))
	for i := range ss {
		inputChan <- i
	}
	close(inputChan)

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go spawnThread(inputChan, outputChan, ss, open, fn, wg)
	}

	// spawn a goroutine to wait until threads are done, then close the output
	go func(*sync.WaitGroup) {
		wg.Wait()
		close(outputChan)
	}(wg)

	ans := make([]T, len(ss))
	errs := make([]error, len(ss))
	var samplesProcessed int
	for r := range outputChan {
		samplesProcessed++
		ans[r.idx] = r.val
		errs[r.idx] = r.err
		if verbose > 0 && r.err == nil {
			log.Printf("Processed sample %s (%d/%d)\t%dsec\n", ss[r.idx].ID, samplesProcessed, len(ss), (time.Now().UnixMilli()-startTime)/1000)
		}
	}

	for i := range errs {
		if errs[i] != nil {
			return nil, fmt.Errorf("sample %s (%s): %w", ss[i].ID, ss[i].Path, errs[i])
		}
	}
	return ans, nil
}

func spawnThread[T any](inputChan <-chan int, outputChan chan<- result[T], ss []samples.Sample, open alignment.Opener, fn func(alignment.Source) (T, error), wg *sync.WaitGroup) {
	var r result[T]
	for i := range inputChan {
		r.idx = i
		r.val, r.err = processSample(ss[i], open, fn)
		outputChan <- r
	}
	wg.Done()
}

// processSample holds the alignment source of one sample for the duration of fn.
func processSample[T any](s samples.Sample, open alignment.Opener, fn func(alignment.Source) (T, error)) (ans T, err error) {
	src, err := open(s.Path)
	if err != nil {
		return ans, err
	}
	defer func() {
		closeErr := src.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(src)
}
