// Package loci reads and writes the microsatellite region table. The same table format
// carries the control baseline when the trailing mean and SD columns are present.
package loci

import (
	"errors"
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"strconv"
	"strings"
)

// Header is the first line of a region table. A table with a baseline adds BaselineHeader.
const Header string = "chromosome\tlocation\trepeat_unit_length\trepeat_unit_binary\trepeat_times\tleft_flank_binary\tright_flank_binary\trepeat_unit_bases\tleft_flank_bases\tright_flank_bases"
const BaselineHeader string = "mean\tSD"

// NA marks a missing value in all tab separated outputs.
const NA string = "NA"

const (
	regionFields   = 10
	baselineFields = 12
)

// Locus is one row of the region table.
type Locus struct {
	Chrom            string
	Location         int
	RepeatUnitLength int
	RepeatUnitBinary int
	RepeatTimes      int
	LeftFlankBinary  int
	RightFlankBinary int
	RepeatUnit       string
	LeftFlank        string
	RightFlank       string
}

// Stats is the control mean and population standard deviation of the diversity feature at one locus.
type Stats struct {
	Mean float64
	SD   float64
}

// Baseline maps a locus ID to its control Stats. Loci without enough control support are absent.
type Baseline map[string]Stats

// ErrDuplicateLocus is returned when two rows share chromosome and location.
var ErrDuplicateLocus = errors.New("duplicate locus in region table")

// ID returns the chromosome:location key that identifies the locus.
func (l Locus) ID() string {
	return l.Chrom + ":" + strconv.Itoa(l.Location)
}

// Window returns the half-open interval [start, end) used to fetch reads covering the repeat.
func (l Locus) Window() (start, end int) {
	start = l.Location - 2
	if start < 0 {
		start = 0
	}
	end = l.Location + len(l.RepeatUnit)*l.RepeatTimes + 2
	return start, end
}

// String formats the ten region columns of the locus.
func (l Locus) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s",
		l.Chrom, l.Location, l.RepeatUnitLength, l.RepeatUnitBinary, l.RepeatTimes,
		l.LeftFlankBinary, l.RightFlankBinary, l.RepeatUnit, l.LeftFlank, l.RightFlank)
}

// ReadTable reads a region table. The first line is a header and is skipped.
// When withBaseline is true every row must carry the trailing mean and SD columns,
// and rows with NA in those columns are left out of the returned Baseline.
// When withBaseline is false any trailing columns are ignored.
func ReadTable(filename string, withBaseline bool) ([]Locus, Baseline, error) {
	file := fileio.EasyOpen(filename)
	defer cleanup(file)

	var answer []Locus
	baseline := make(Baseline)
	seen := make(map[string]bool)
	var curr Locus
	var stats Stats
	var hasStats bool
	var line string
	var done bool
	var err error
	var lineNum int
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		lineNum++
		if lineNum == 1 || strings.TrimSpace(line) == "" {
			continue
		}
		curr, stats, hasStats, err = parseLine(line, withBaseline)
		if err != nil {
			return nil, nil, fmt.Errorf("%s line %d: %w", filename, lineNum, err)
		}
		if seen[curr.ID()] {
			return nil, nil, fmt.Errorf("%s line %d: %w: %s", filename, lineNum, ErrDuplicateLocus, curr.ID())
		}
		seen[curr.ID()] = true
		answer = append(answer, curr)
		if hasStats {
			baseline[curr.ID()] = stats
		}
	}
	return answer, baseline, nil
}

func parseLine(line string, withBaseline bool) (l Locus, s Stats, hasStats bool, err error) {
	words := strings.Fields(line)
	switch {
	case withBaseline && len(words) != baselineFields:
		return l, s, false, fmt.Errorf("expected %d columns with baseline, found %d", baselineFields, len(words))
	case len(words) < regionFields:
		return l, s, false, fmt.Errorf("expected at least %d columns, found %d", regionFields, len(words))
	}

	l.Chrom = words[0]
	ints := []*int{&l.Location, &l.RepeatUnitLength, &l.RepeatUnitBinary, &l.RepeatTimes, &l.LeftFlankBinary, &l.RightFlankBinary}
	for i := range ints {
		*ints[i], err = strconv.Atoi(words[i+1])
		if err != nil {
			return l, s, false, err
		}
	}
	l.RepeatUnit = words[7]
	l.LeftFlank = words[8]
	l.RightFlank = words[9]

	if !withBaseline || words[10] == NA || words[11] == NA {
		return l, s, false, nil
	}
	s.Mean, err = strconv.ParseFloat(words[10], 64)
	if err != nil {
		return l, s, false, err
	}
	s.SD, err = strconv.ParseFloat(words[11], 64)
	if err != nil {
		return l, s, false, err
	}
	return l, s, true, nil
}

// WriteTable writes loci in order with the baseline columns appended. Loci missing
// from b are written with NA in both baseline columns.
func WriteTable(filename string, ls []Locus, b Baseline) {
	out := fileio.EasyCreate(filename)
	defer cleanup(out)

	_, err := fmt.Fprintf(out, "%s\t%s\n", Header, BaselineHeader)
	exception.PanicOnErr(err)
	var s Stats
	var found bool
	for i := range ls {
		s, found = b[ls[i].ID()]
		if found {
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", ls[i], formatFloat(s.Mean), formatFloat(s.SD))
		} else {
			_, err = fmt.Fprintf(out, "%s\t%s\t%s\n", ls[i], NA, NA)
		}
		exception.PanicOnErr(err)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func cleanup(f io.Closer) {
	err := f.Close()
	exception.PanicOnErr(err)
}
