// Package samples reads the lists of alignment files to test or to use as controls.
package samples

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strings"
)

// Sample is one alignment file and the name it is reported under.
type Sample struct {
	Path string
	ID   string
}

// ReadList reads a tab separated list of alignment path and sample ID, one sample per line
// and no header. If an ID is repeated the sample keeps its first position in the list and
// takes the path of its last occurrence.
func ReadList(filename string) ([]Sample, error) {
	file := fileio.EasyOpen(filename)
	defer cleanup(file)

	var answer []Sample
	idx := make(map[string]int)
	var words []string
	var line string
	var done bool
	var lineNum int
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		lineNum++
		words = strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) < 2 {
			return nil, fmt.Errorf("%s line %d: expected alignment file and sample ID, found %q", filename, lineNum, line)
		}
		if i, found := idx[words[1]]; found {
			log.Printf("WARNING: sample %s listed more than once in %s, using %s\n", words[1], filename, words[0])
			answer[i].Path = words[0]
			continue
		}
		idx[words[1]] = len(answer)
		answer = append(answer, Sample{Path: words[0], ID: words[1]})
	}
	return answer, nil
}

// ReadControls reads a list of control alignment files. Only the first column is used and
// each control is identified by its path. Repeated paths are kept once.
func ReadControls(filename string) []Sample {
	file := fileio.EasyOpen(filename)
	defer cleanup(file)

	var answer []Sample
	seen := make(map[string]bool)
	var words []string
	var line string
	var done bool
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		words = strings.Fields(line)
		if len(words) == 0 || seen[words[0]] {
			continue
		}
		seen[words[0]] = true
		answer = append(answer, Sample{Path: words[0], ID: words[0]})
	}
	return answer
}

// IDs returns the sample IDs in list order.
func IDs(s []Sample) []string {
	ans := make([]string, len(s))
	for i := range s {
		ans[i] = s[i].ID
	}
	return ans
}

func cleanup(f *fileio.EasyReader) {
	err := f.Close()
	exception.PanicOnErr(err)
}
