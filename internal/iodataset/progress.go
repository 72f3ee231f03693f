package iodataset

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// progress wraps a byte progress bar. A hidden progress does nothing.
type progress struct {
	bar *pb.ProgressBar
}

func newProgress(hide bool, total int64, prefix string) *progress {
	if hide {
		return &progress{}
	}
	// unknown size
	if total < 0 {
		total = 0
	}
	bar := pb.Full.Start64(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return &progress{bar: bar}
}

func (p *progress) reader(r io.Reader) io.Reader {
	if p.bar == nil {
		return r
	}
	return p.bar.NewProxyReader(r)
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
