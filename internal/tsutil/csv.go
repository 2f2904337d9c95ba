package tsutil

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/bauman-team/GMDH/internal/gmdherr"
)

// LoadSeriesCSV reads a single-column CSV time series: an optional header
// row followed by one numeric value per line, time implicitly 0,1,2,...
// Adapted from the teacher's LoadCSVToTimeSeries (io.go), narrowed from a
// multi-variable K-column reader to the single series column
// TimeSeriesTransformation consumes.
func LoadSeriesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gmdherr.Wrap(gmdherr.FileError, "tsutil.LoadSeriesCSV", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = 1

	header, err := r.Read()
	if err != nil {
		return nil, gmdherr.Wrap(gmdherr.FileError, "tsutil.LoadSeriesCSV", err)
	}
	var series []float64
	if v, err := strconv.ParseFloat(header[0], 64); err == nil {
		series = append(series, v)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, gmdherr.Wrap(gmdherr.FileError, "tsutil.LoadSeriesCSV", err)
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, gmdherr.Wrap(gmdherr.FileError, "tsutil.LoadSeriesCSV", err)
		}
		series = append(series, v)
	}

	if len(series) == 0 {
		return nil, gmdherr.New(gmdherr.FileError, "tsutil.LoadSeriesCSV", "no data rows in %s", path)
	}
	return series, nil
}
