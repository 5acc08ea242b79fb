package source

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Resampler scales an image to exactly w x h.
type Resampler interface {
	Resample(src image.Image, w, h int) *image.NRGBA
	Name() string
}

type interpolatorResampler struct {
	name   string
	interp draw.Interpolator
}

func (r interpolatorResampler) Resample(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	r.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func (r interpolatorResampler) Name() string { return r.name }

// lanczosResampler delegates to bild, which works in premultiplied RGBA.
type lanczosResampler struct{}

func (lanczosResampler) Resample(src image.Image, w, h int) *image.NRGBA {
	rgba := transform.Resize(src, w, h, transform.Lanczos)
	dst := image.NewNRGBA(rgba.Bounds())
	draw.Draw(dst, dst.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
	return dst
}

func (lanczosResampler) Name() string { return "lanczos" }

// Available resamplers
var (
	CatmullRom Resampler = interpolatorResampler{name: "catmullrom", interp: draw.CatmullRom}
	BiLinear   Resampler = interpolatorResampler{name: "bilinear", interp: draw.BiLinear}
	Lanczos    Resampler = lanczosResampler{}

	DefaultResampler = CatmullRom
)

// ResamplerByName maps a config name to a Resampler.
func ResamplerByName(name string) (Resampler, bool) {
	switch name {
	case "catmullrom", "":
		return CatmullRom, true
	case "bilinear":
		return BiLinear, true
	case "lanczos":
		return Lanczos, true
	default:
		return DefaultResampler, false
	}
}
