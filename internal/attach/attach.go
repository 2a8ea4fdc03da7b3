// Package attach turns file-like inputs into note attachment records.
// Files in a batch are read concurrently; progress is reported as files
// completed out of files requested, and any read failure rejects the
// whole batch.
package attach

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/minhtran-dev/deskboard/internal/models"
)

// File is the collaborator interface the upload surface implements.
// Open must return a fresh reader on every call.
type File interface {
	Name() string
	Size() int64
	Open() (io.ReadCloser, error)
}

// Progress is the aggregate state of a batch read.
type Progress struct {
	Completed int
	Requested int
}

// OSFile adapts a path on disk to the File interface.
type OSFile string

func (f OSFile) Name() string { return filepath.Base(string(f)) }

func (f OSFile) Size() int64 {
	info, err := os.Stat(string(f))
	if err != nil {
		return 0
	}
	return info.Size()
}

func (f OSFile) Open() (io.ReadCloser, error) { return os.Open(string(f)) }

// Read encodes a single file as a data-URL attachment record.
func Read(f File) (models.Attachment, error) {
	r, err := f.Open()
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to read file %s: %w", f.Name(), err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("failed to read file %s: %w", f.Name(), err)
	}

	return models.Attachment{
		Name: f.Name(),
		URL:  dataURL(f.Name(), data),
		Size: f.Size(),
	}, nil
}

// ReadBatch reads every file concurrently and returns the attachments
// in input order. onProgress (optional) is called after each completed
// file. The first failure cancels the batch and all partial results are
// dropped.
func ReadBatch(ctx context.Context, files []File, onProgress func(Progress)) ([]models.Attachment, error) {
	out := make([]models.Attachment, len(files))

	var (
		mu        sync.Mutex
		completed int
	)

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			att, err := Read(f)
			if err != nil {
				return err
			}
			out[i] = att

			mu.Lock()
			completed++
			p := Progress{Completed: completed, Requested: len(files)}
			mu.Unlock()
			if onProgress != nil {
				onProgress(p)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// dataURL encodes bytes as a base64 data URL with a best-guess MIME
// type from the file extension.
func dataURL(name string, data []byte) string {
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	// Drop parameters like "; charset=utf-8".
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
