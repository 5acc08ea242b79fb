package source

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"k8s.io/klog/v2"
)

// Decode reads ref's bytes, decodes them and converts the result to RGBA8,
// resizing to fit within the bounds of a Thumbnail target. It blocks; callers
// on the UI thread go through a Pool instead.
func Decode(ref ImageRef, size Size, resampler Resampler) (Rgba, error) {
	path := ref.Location.String()

	rc, err := ref.Location.Open()
	if err != nil {
		return Rgba{}, ioError(path, err)
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return Rgba{}, decodeError(path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return Rgba{}, decodeError(path, errEmptyImage)
	}
	klog.V(2).Infof("decoded %s (%s %dx%d) for %v", path, format, b.Dx(), b.Dy(), size)

	switch s := size.(type) {
	case Thumbnail:
		w, h := FitWithin(b.Dx(), b.Dy(), s.Width, s.Height)
		if w != b.Dx() || h != b.Dy() {
			if resampler == nil {
				resampler = DefaultResampler
			}
			return fromNRGBA(resampler.Resample(img, w, h)), nil
		}
	}
	return FromImage(img), nil
}

// FromImage converts any decoded image to a straight-alpha RGBA8 buffer.
func FromImage(img image.Image) Rgba {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && n.Stride == n.Rect.Dx()*4 {
		return fromNRGBA(n)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return fromNRGBA(dst)
}

func fromNRGBA(n *image.NRGBA) Rgba {
	return Rgba{Width: n.Rect.Dx(), Height: n.Rect.Dy(), Pixels: n.Pix}
}

// FitWithin returns the largest size with the aspect ratio of w x h that fits in
// maxW x maxH. Images already inside the bounds are not enlarged.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return w, h
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := min(maxW, max(1, int(math.Round(float64(w)*scale))))
	nh := min(maxH, max(1, int(math.Round(float64(h)*scale))))
	return nw, nh
}
