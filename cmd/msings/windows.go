package main

import (
	"flag"
	"fmt"
	"github.com/omicsForestry/mSINGSlw/loci"
	"github.com/vertgenlab/gonomics/exception"
)

func windowsUsage(windowsFlags *flag.FlagSet) {
	fmt.Print(
		"windows - write the read window fetched for every locus as a bed file\n\n" +
			"Usage:\n" +
			"  msings windows -r regions.txt -o windows.bed\n\n" +
			"Options:\n")
	windowsFlags.PrintDefaults()
}

func runWindows(args []string) {
	var err error
	windowsFlags := flag.NewFlagSet("windows", flag.ExitOnError)

	regions := windowsFlags.String("r", "", "Region table of microsatellite loci.")
	output := windowsFlags.String("o", "stdout", "Output bed file.")

	err = windowsFlags.Parse(args)
	exception.PanicOnErr(err)
	windowsFlags.Usage = func() { windowsUsage(windowsFlags) }

	if *regions == "" {
		windowsFlags.Usage()
		errExit("\nERROR: must specify a region table (-r)")
	}

	ls, _, err := loci.ReadTable(*regions, false)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	loci.WriteWindows(*output, ls)
}
