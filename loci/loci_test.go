package loci

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testLoci = []Locus{
	{"chr1", 1000, 1, 0, 12, 100, 200, "A", "GGCAT", "GTCAC"},
	{"chr2", 52000, 3, 18, 7, 300, 400, "CAG", "TTGCA", "AGGTC"},
	{"chrX", 1, 2, 6, 10, 500, 600, "CA", "GATTA", "CCGAT"},
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadRegionTable(t *testing.T) {
	s := new(strings.Builder)
	s.WriteString(Header + "\n")
	for i := range testLoci {
		s.WriteString(testLoci[i].String() + "\n")
	}
	ls, b, err := ReadTable(writeFile(t, "regions.txt", s.String()), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != len(testLoci) {
		t.Fatalf("expected %d loci, got %d", len(testLoci), len(ls))
	}
	for i := range ls {
		if ls[i] != testLoci[i] {
			t.Errorf("locus %d: expected %v got %v", i, testLoci[i], ls[i])
		}
	}
	if len(b) != 0 {
		t.Errorf("region table should not carry a baseline, got %v", b)
	}
}

func TestBaselineRoundTrip(t *testing.T) {
	b := Baseline{
		testLoci[0].ID(): {Mean: 1.6666666666666667, SD: 0.4714045207910317},
		testLoci[2].ID(): {Mean: 2, SD: 0},
	}
	path := filepath.Join(t.TempDir(), "controls.txt")
	WriteTable(path, testLoci, b)

	ls, reloaded, err := ReadTable(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(ls) != len(testLoci) {
		t.Fatalf("expected %d loci, got %d", len(testLoci), len(ls))
	}
	if len(reloaded) != len(b) {
		t.Fatalf("expected %d baseline entries, got %d", len(b), len(reloaded))
	}
	for id, s := range b {
		if reloaded[id] != s {
			t.Errorf("%s: expected %v got %v", id, s, reloaded[id])
		}
	}
	if _, found := reloaded[testLoci[1].ID()]; found {
		t.Errorf("dropped locus %s should not be in the reloaded baseline", testLoci[1].ID())
	}

	// a control table can also be read as a plain region table
	ls, reloaded, err = ReadTable(path, false)
	if err != nil || len(ls) != len(testLoci) || len(reloaded) != 0 {
		t.Errorf("reading control table without baseline: %d loci, %d stats, err %v", len(ls), len(reloaded), err)
	}
}

func TestWriteTableNA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.txt")
	WriteTable(path, testLoci[:1], Baseline{})
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", lines)
	}
	if !strings.HasSuffix(lines[1], "\tNA\tNA") {
		t.Errorf("expected NA baseline columns, got %q", lines[1])
	}
	if lines[0] != Header+"\t"+BaselineHeader {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestReadTableErrors(t *testing.T) {
	var err error
	short := Header + "\nchr1\t1000\t1\t0\t12\t100\t200\tA\tGGCAT\n"
	if _, _, err = ReadTable(writeFile(t, "short.txt", short), false); err == nil {
		t.Error("expected error for row with 9 columns")
	}

	raw := Header + "\n" + testLoci[0].String() + "\n"
	if _, _, err = ReadTable(writeFile(t, "raw.txt", raw), true); err == nil {
		t.Error("expected error reading a raw region table as a baseline table")
	}

	badInt := Header + "\nchr1\tX\t1\t0\t12\t100\t200\tA\tGGCAT\tGTCAC\n"
	if _, _, err = ReadTable(writeFile(t, "int.txt", badInt), false); err == nil {
		t.Error("expected error for non-integer location")
	}

	badMean := Header + "\t" + BaselineHeader + "\n" + testLoci[0].String() + "\tnope\t1\n"
	if _, _, err = ReadTable(writeFile(t, "mean.txt", badMean), true); err == nil {
		t.Error("expected error for non-numeric mean")
	}

	dup := Header + "\n" + testLoci[0].String() + "\n" + testLoci[0].String() + "\n"
	if _, _, err = ReadTable(writeFile(t, "dup.txt", dup), false); !errors.Is(err, ErrDuplicateLocus) {
		t.Errorf("expected ErrDuplicateLocus, got %v", err)
	}
}

func TestWindow(t *testing.T) {
	start, end := testLoci[1].Window()
	if start != 51998 || end != 52000+3*7+2 {
		t.Errorf("unexpected window [%d, %d)", start, end)
	}
	start, end = testLoci[2].Window()
	if start != 0 || end != 1+2*10+2 {
		t.Errorf("window should be clamped at 0, got [%d, %d)", start, end)
	}
}

func TestWriteWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.bed")
	WriteWindows(path, testLoci)
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	if len(lines) != len(testLoci) {
		t.Fatalf("expected %d bed lines, got %d", len(testLoci), len(lines))
	}
	if lines[1] != "chr2\t51998\t52023\tchr2:52000_7xCAG" {
		t.Errorf("unexpected bed line %q", lines[1])
	}
}
