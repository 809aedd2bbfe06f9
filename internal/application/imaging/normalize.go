// Package imaging turns uploaded image files into embeddable data URIs,
// downscaling to a width bound and re-encoding as JPEG on the way.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Limits on accepted input.
const MaxUploadBytes = 5 << 20 // 5 MB

// Domain errors
var (
	ErrNotImage = errors.New("file is not a valid image")
	ErrTooLarge = errors.New("image must be under 5 MB")
)

// Options controls the normalization output.
type Options struct {
	MaxWidth int // output width bound in pixels
	Quality  int // JPEG quality 1-100
}

// DefaultOptions are the bounds used for uploads when the caller has no
// opinion.
func DefaultOptions() Options {
	return Options{MaxWidth: 900, Quality: 80}
}

// Normalize decodes an uploaded image, downscales it uniformly when its
// width exceeds opts.MaxWidth, and re-encodes it as a JPEG data URI.
// A nil or empty reader yields ("", nil). The pipeline runs under ctx:
// callers bound it with a timeout, so a pathological input cannot hang a
// submission indefinitely.
// PRE: opts.MaxWidth > 0, opts.Quality in 1-100
// POST: Returns a data:image/jpeg;base64 string, or an error with no
// partial result
func Normalize(ctx context.Context, r io.Reader, opts Options) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}
	if len(data) > MaxUploadBytes {
		return "", ErrTooLarge
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		uri string
		err error
	}
	ch := make(chan result, 1)
	go func() {
		uri, err := encode(data, opts)
		ch <- result{uri: uri, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.uri, res.err
	}
}

// encode runs the decode-scale-encode pipeline synchronously.
func encode(data []byte, opts Options) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	outW, outH := width, height
	if width > opts.MaxWidth {
		// Uniform downscale; factor is MaxWidth/width.
		outW = opts.MaxWidth
		outH = height * opts.MaxWidth / width
		if outH < 1 {
			outH = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
