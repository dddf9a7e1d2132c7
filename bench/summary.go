package bench

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"
)

// ErrBadCSV is returned by ReadCSV for a malformed results file.
var ErrBadCSV = errors.New("bench: malformed results csv")

// Summary aggregates the runs of one (algo, dataset, n_start_vert) group.
type Summary struct {
	Algo    string
	Dataset string
	NStart  int
	Runs    int
	Mean    float64 // seconds
	Std     float64 // sample standard deviation; 0 for a single run
}

// ReadCSV parses a file written by Harness.Run.
func ReadCSV(r io.Reader) ([]Record, error) {
	var out []Record
	err := readRows(r, Header, func(line int, row []string) error {
		nStart, err := strconv.Atoi(row[2])
		if err != nil {
			return fmt.Errorf("%w: line %d: n_start_vert %q", ErrBadCSV, line, row[2])
		}
		d, err := parseSeconds(line, row[3])
		if err != nil {
			return err
		}
		out = append(out, Record{Algo: row[0], Dataset: row[1], NStart: nStart, Time: d})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ReadTriangleCSV parses a file written by Harness.RunTriangles. The
// triangle count is not part of the file and stays zero.
func ReadTriangleCSV(r io.Reader) ([]TriangleRecord, error) {
	var out []TriangleRecord
	err := readRows(r, TriangleHeader, func(line int, row []string) error {
		d, err := parseSeconds(line, row[2])
		if err != nil {
			return err
		}
		out = append(out, TriangleRecord{Algo: row[0], Dataset: row[1], Time: d})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func readRows(r io.Reader, header []string, parse func(line int, row []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	head, err := cr.Read()
	if err != nil {
		return fmt.Errorf("%w: header: %v", ErrBadCSV, err)
	}
	if !slices.Equal(head, header) {
		return fmt.Errorf("%w: header %v", ErrBadCSV, head)
	}

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadCSV, err)
		}
		if err := parse(line, row); err != nil {
			return err
		}
	}
}

func parseSeconds(line int, field string) (time.Duration, error) {
	secs, err := strconv.ParseFloat(field, 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%w: line %d: time %q", ErrBadCSV, line, field)
	}

	return time.Duration(secs * float64(time.Second)), nil
}

// Summarize groups records and orders the groups by algo, dataset, n_start_vert.
func Summarize(records []Record) []Summary {
	type key struct {
		algo, dataset string
		n             int
	}
	groups := map[key][]float64{}
	for _, r := range records {
		k := key{r.Algo, r.Dataset, r.NStart}
		groups[k] = append(groups[k], r.Time.Seconds())
	}

	out := make([]Summary, 0, len(groups))
	for k, xs := range groups {
		mean, std := meanStd(xs)
		out = append(out, Summary{Algo: k.algo, Dataset: k.dataset, NStart: k.n, Runs: len(xs), Mean: mean, Std: std})
	}
	slices.SortFunc(out, func(a, b Summary) int {
		return cmp.Or(
			cmp.Compare(a.Algo, b.Algo),
			cmp.Compare(a.Dataset, b.Dataset),
			cmp.Compare(a.NStart, b.NStart),
		)
	})

	return out
}

func meanStd(xs []float64) (mean, std float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}

	return stat.MeanStdDev(xs, nil)
}

// SummarizeTriangles groups triangle records by algo and dataset.
// The returned summaries carry NStart 0.
func SummarizeTriangles(records []TriangleRecord) []Summary {
	recs := make([]Record, len(records))
	for i, r := range records {
		recs[i] = Record{Algo: r.Algo, Dataset: r.Dataset, Time: r.Time}
	}

	return Summarize(recs)
}

// WriteSummary writes summaries as CSV: algo,dataset,n_start_vert,runs,mean,std.
func WriteSummary(w io.Writer, sums []Summary) error {
	return writeSummary(w, sums, true)
}

// WriteTriangleSummary writes summaries as CSV: algo,dataset,runs,mean,std.
func WriteTriangleSummary(w io.Writer, sums []Summary) error {
	return writeSummary(w, sums, false)
}

func writeSummary(w io.Writer, sums []Summary, withNStart bool) error {
	cw := csv.NewWriter(w)
	header := []string{"algo", "dataset", "n_start_vert", "runs", "mean", "std"}
	if !withNStart {
		header = slices.Delete(header, 2, 3)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range sums {
		row := []string{s.Algo, s.Dataset}
		if withNStart {
			row = append(row, strconv.Itoa(s.NStart))
		}
		row = append(row, strconv.Itoa(s.Runs),
			strconv.FormatFloat(s.Mean, 'g', 6, 64), strconv.FormatFloat(s.Std, 'g', 6, 64))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
