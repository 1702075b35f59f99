package main

import (
	"flag"
	"fmt"
	"github.com/omicsForestry/mSINGSlw/pipeline"
	"github.com/vertgenlab/gonomics/exception"
)

func profileUsage(profileFlags *flag.FlagSet) {
	fmt.Print(
		"profile - write the repeat length distribution, depth, purity, and allele count of every sample at every locus\n\n" +
			"Usage:\n" +
			"  msings profile [options] -s samples.txt -r regions.txt > diagnostics.txt\n" +
			"  msings profile [options] -c controls.txt -r regions.txt > diagnostics.txt\n\n" +
			"Options:\n")
	profileFlags.PrintDefaults()
}

func runProfile(args []string) {
	var err error
	profileFlags := flag.NewFlagSet("profile", flag.ExitOnError)

	samplesFile := profileFlags.String("s", "", "Tab separated file of bam file and sample ID, one sample per line.")
	controls := profileFlags.String("c", "", "File listing control bam files, one per line. Mutually exclusive with -s.")
	regions := profileFlags.String("r", "", "Region table of microsatellite loci. A table with baseline columns is also accepted.")
	output := profileFlags.String("o", "stdout", "Output diagnostic table.")
	depth := profileFlags.Int("d", pipeline.DefaultDepth, "Minimum number of reads with a determined repeat length for a locus to be determined.")
	threads := profileFlags.Int("threads", 1, "Number of samples to process in parallel.")
	verbose := profileFlags.Int("verbose", 0, "Level of verbosity in log.")

	err = profileFlags.Parse(args)
	exception.PanicOnErr(err)
	profileFlags.Usage = func() { profileUsage(profileFlags) }

	c := pipeline.ProfileConfig{
		Samples:  *samplesFile,
		Controls: *controls,
		Regions:  *regions,
		Output:   *output,
		Depth:    *depth,
		Threads:  *threads,
		Verbose:  *verbose,
	}
	if err = c.Validate(); err != nil {
		profileFlags.Usage()
		errExit("\nERROR: " + err.Error())
	}

	if err = pipeline.Profile(c); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
