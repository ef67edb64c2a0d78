package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

const barWidth = 50

// WriteText renders the summary and histogram as plain text. Each bin
// shows its lower edge, a bar scaled to the largest bin, and the count.
// The bin holding the reference value is marked with '<'.
func (s *Summary) WriteText(w io.Writer) error {
	d := s.Description

	_, err := fmt.Fprintf(w,
		"trials: %s\nmean:   %.4f\nci95:   [%.4f, %.4f]\nsd:     %.4f\nq05:    %.4f\nmedian: %.4f\nq95:    %.4f\n\n",
		humanize.Comma(int64(d.Count)), d.Mean, s.Interval.Lower, s.Interval.Upper,
		d.StdDev, d.Q05, d.Median, d.Q95)
	if err != nil {
		return err
	}

	peak := 0
	for _, c := range s.Histogram.Counts {
		if c > peak {
			peak = c
		}
	}

	referenceBin := s.Histogram.Bin(s.Reference)
	for i, count := range s.Histogram.Counts {
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("*", count*barWidth/peak)
		}
		marker := ""
		if i == referenceBin {
			marker = fmt.Sprintf("  < ref %.4f", s.Reference)
		}
		_, err = fmt.Fprintf(w, "%8.2f | %-*s %s%s\n",
			s.Histogram.BinLower(i), barWidth, bar,
			humanize.Comma(int64(count)), marker)
		if err != nil {
			return err
		}
	}
	return nil
}
