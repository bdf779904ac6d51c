package report

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress counts settled extraction commands on a terminal progress bar.
type Progress struct {
	bar *progressbar.ProgressBar
}

func NewProgress(w io.Writer, total int) *Progress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("extracting metadata"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Settled matches exiftool.Runner.OnSettled; it is safe for concurrent use.
func (p *Progress) Settled(int) {
	_ = p.bar.Add(1)
}

func (p *Progress) Finish() {
	_ = p.bar.Finish()
}

func (p *Progress) Done() float64 {
	return p.bar.State().CurrentPercent
}
