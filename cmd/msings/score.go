package main

import (
	"flag"
	"fmt"
	"github.com/omicsForestry/mSINGSlw/pipeline"
	"github.com/pkg/profile"
	"github.com/vertgenlab/gonomics/exception"
)

func scoreUsage(scoreFlags *flag.FlagSet) {
	fmt.Print(
		"score - build a baseline from control samples and/or score samples for microsatellite instability\n\n" +
			"Usage:\n" +
			"  msings score -c controls.txt -r regions.txt -b baseline.txt\n" +
			"  msings score -c controls.txt -r regions.txt -s samples.txt -o scores.txt\n" +
			"  msings score -p baseline.txt -s samples.txt -o scores.txt\n\n" +
			"Options:\n")
	scoreFlags.PrintDefaults()
}

func runScore(args []string) {
	var err error
	scoreFlags := flag.NewFlagSet("score", flag.ExitOnError)

	cpuprofile := scoreFlags.Bool("cpuprofile", false, "write cpu profile")
	memprofile := scoreFlags.Bool("memprofile", false, "write memory profile")
	controls := scoreFlags.String("c", "", "File listing control bam files, one per line. Each must be indexed.")
	prebuilt := scoreFlags.String("p", "", "Region table with baseline columns written by a previous run with -b. Mutually exclusive with -c.")
	build := scoreFlags.String("b", "", "Write the region table with the control baseline to this file. Requires -c.")
	samplesFile := scoreFlags.String("s", "", "Tab separated file of bam file and sample ID to score, one sample per line. Each bam must be indexed.")
	regions := scoreFlags.String("r", "", "Region table of microsatellite loci. Required with -c.")
	output := scoreFlags.String("o", "", "Output file for sample scores. Required with -s.")
	depth := scoreFlags.Int("d", pipeline.DefaultDepth, "Minimum number of reads with a determined repeat length for a locus to be used.")
	threads := scoreFlags.Int("threads", 1, "Number of samples to process in parallel.")
	verbose := scoreFlags.Int("verbose", 0, "Level of verbosity in log. 2 plots the repeat length distribution of every locus.")
	plotFile := scoreFlags.String("plot", "", "Optional bar chart of sample scores. Format is taken from the extension (e.g. .pdf, .png, .svg). Requires -s.")

	err = scoreFlags.Parse(args)
	exception.PanicOnErr(err)
	scoreFlags.Usage = func() { scoreUsage(scoreFlags) }

	if *memprofile && *cpuprofile {
		scoreFlags.Usage()
		errExit("\nERROR: -memprofile and -cpuprofile are mutually exclusive")
	}
	if *memprofile {
		defer profile.Start(profile.MemProfile).Stop()
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	c := pipeline.Config{
		Controls: *controls,
		Prebuilt: *prebuilt,
		Build:    *build,
		Samples:  *samplesFile,
		Regions:  *regions,
		Output:   *output,
		Plot:     *plotFile,
		Depth:    *depth,
		Threads:  *threads,
		Verbose:  *verbose,
	}
	if err = c.Validate(); err != nil {
		scoreFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	if err = pipeline.Run(c); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
