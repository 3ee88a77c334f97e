package media

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ResizeOptions controls thumbnail generation for product images.
type ResizeOptions struct {
	Width   int  // target width in px, height scales to keep aspect
	Quality int  // webp quality 1-100
	Force   bool // regenerate even when the output already exists
}

// ResizeResult summarises one resize run.
type ResizeResult struct {
	Processed int
	Skipped   int
	Warnings  []string
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ResizeDir walks srcDir, resizes every supported image to opts.Width and
// writes a webp thumbnail into dstDir under the same relative path with a
// .webp extension. Existing thumbnails are kept unless Force is set.
func ResizeDir(srcDir, dstDir string, opts ResizeOptions) (*ResizeResult, error) {
	if opts.Width <= 0 {
		opts.Width = 600
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 80
	}

	res := &ResizeResult{}
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		out := filepath.Join(dstDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".webp")

		if !opts.Force {
			if _, err := os.Stat(out); err == nil {
				res.Skipped++
				return nil
			}
		}

		if err := resizeOne(path, out, opts); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", rel, err))
			return nil
		}
		res.Processed++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func resizeOne(src, dst string, opts ResizeOptions) error {
	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	var thumb image.Image = img
	if img.Bounds().Dx() > opts.Width {
		thumb = imaging.Resize(img, opts.Width, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	return webp.Encode(f, thumb, &webp.Options{Quality: float32(opts.Quality)})
}
