package iodataset

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/nycdb/nycdb/pkg/datasets"
)

// Download fetches all files of the dataset into RootDir/<name>/.
// Existing files are replaced.
func (d *dataset) Download(ctx context.Context) error {
	start := time.Now()
	dir := d.dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	gn.Info("Downloading <em>%s</em> to %s", d.def.Name, dir)
	var total int64
	for _, f := range d.def.Files {
		n, err := d.fetch(ctx, f, dir)
		if err != nil {
			return err
		}
		total += n
	}

	dur := time.Since(start)
	slog.Info("Dataset downloaded",
		"dataset", d.def.Name,
		"files", len(d.def.Files),
		"size", humanize.Bytes(uint64(total)),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info("Downloaded %s in <em>%s</em>",
		humanize.Bytes(uint64(total)), gnfmt.TimeString(dur.Seconds()))
	return nil
}

// fetch downloads one file through a temporary file that is renamed to
// its destination only after the whole body was written.
func (d *dataset) fetch(
	ctx context.Context,
	f datasets.File,
	dir string,
) (int64, error) {
	dest := filepath.Join(dir, f.Dest)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return 0, DownloadError(f.URL, err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return 0, DownloadError(f.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, DownloadStatusError(f.URL, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, "."+f.Dest+".*.part")
	if err != nil {
		return 0, WriteFileError(dest, err)
	}
	defer os.Remove(tmp.Name())

	bar := newProgress(d.cfg.HideProgress, resp.ContentLength, f.Dest+" ")
	n, err := io.Copy(tmp, bar.reader(resp.Body))
	bar.finish()
	if err != nil {
		tmp.Close()
		return 0, DownloadError(f.URL, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, WriteFileError(dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return 0, WriteFileError(dest, err)
	}

	slog.Info("File downloaded",
		"url", f.URL,
		"file", dest,
		"size", humanize.Bytes(uint64(n)),
	)
	return n, nil
}
