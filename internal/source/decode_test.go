package source

import (
	"errors"
	"image"
	"path/filepath"
	"testing"
)

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		expectW    int
		expectH    int
	}{
		{"Already inside", 100, 50, 360, 360, 100, 50},
		{"Exact bounds", 360, 360, 360, 360, 360, 360},
		{"Wide", 1920, 1080, 360, 360, 360, 203},
		{"Tall", 1000, 4000, 360, 360, 90, 360},
		{"Square", 720, 720, 360, 360, 360, 360},
		{"Extreme ratio keeps one pixel", 10000, 1, 360, 360, 360, 1},
		{"Zero bounds keep size", 500, 400, 0, 0, 500, 400},
		{"Empty source", 0, 10, 360, 360, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.expectW || h != tt.expectH {
				t.Errorf("FitWithin(%d,%d,%d,%d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.expectW, tt.expectH)
			}
		})
	}
}

func TestDecodeOriginalPreservesStraightAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpha.png")
	writePNG(t, path, 8, 6)

	img, err := Decode(ImageRef{ID: 0, Location: File(path)}, Original{}, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !img.Valid() {
		t.Fatalf("Invalid buffer: %dx%d with %d bytes", img.Width, img.Height, len(img.Pixels))
	}
	if img.Width != 8 || img.Height != 6 {
		t.Errorf("Expected 8x6, got %dx%d", img.Width, img.Height)
	}

	// Left half is red at alpha 128; premultiplication would halve the red channel.
	px := img.Pixels[0:4]
	if px[0] != 255 || px[3] != 128 {
		t.Errorf("Expected straight alpha pixel (255,_,_,128), got %v", px)
	}
}

func TestDecodeThumbnailFitsBounds(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		w, h int
	}{
		{"Landscape", 800, 400},
		{"Portrait", 300, 900},
		{"Small", 40, 30},
	}

	for _, tt := range tests {
		for _, r := range []Resampler{CatmullRom, BiLinear, Lanczos} {
			t.Run(tt.name+"/"+r.Name(), func(t *testing.T) {
				path := filepath.Join(dir, tt.name+".png")
				writePNG(t, path, tt.w, tt.h)

				img, err := Decode(ImageRef{Location: File(path)}, Thumbnail{Width: 360, Height: 360}, r)
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !img.Valid() {
					t.Fatalf("Invalid buffer")
				}
				if img.Width > 360 || img.Height > 360 {
					t.Errorf("Thumbnail %dx%d exceeds 360x360", img.Width, img.Height)
				}
				if tt.w <= 360 && tt.h <= 360 && (img.Width != tt.w || img.Height != tt.h) {
					t.Errorf("Small image should not be resized, got %dx%d", img.Width, img.Height)
				}
			})
		}
	}
}

func TestDecodeGIFFirstFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")
	writeGIF(t, path, 5, 5)

	img, err := Decode(ImageRef{Location: File(path)}, Original{}, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	// First frame is white, second is black.
	if img.Pixels[0] != 255 || img.Pixels[3] != 255 {
		t.Errorf("Expected first (white) frame, got %v", img.Pixels[0:4])
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := touch(t, dir, "garbage.png")

	tests := []struct {
		name     string
		location Location
		kind     error
	}{
		{"Missing file", File(filepath.Join(dir, "missing.png")), ErrIO},
		{"Unparseable bytes", File(garbage), ErrDecode},
		{"Missing archive entry", ArchiveEntry{Archive: filepath.Join(dir, "none.zip"), Entry: "a.png"}, ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(ImageRef{Location: tt.location}, Original{}, nil)
			if !errors.Is(err, tt.kind) {
				t.Errorf("Expected %v, got %v", tt.kind, err)
			}
			var serr *Error
			if !errors.As(err, &serr) || serr.Path != tt.location.String() {
				t.Errorf("Expected *Error for %s, got %v", tt.location, err)
			}
		})
	}
}

func TestFromImageConvertsLayouts(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 2, 5, 4))
	for i := range gray.Pix {
		gray.Pix[i] = 200
	}

	img := FromImage(gray)
	if img.Width != 3 || img.Height != 2 || !img.Valid() {
		t.Fatalf("Unexpected conversion %dx%d (%d bytes)", img.Width, img.Height, len(img.Pixels))
	}
	for i := 0; i < len(img.Pixels); i += 4 {
		if img.Pixels[i] != 200 || img.Pixels[i+1] != 200 || img.Pixels[i+2] != 200 || img.Pixels[i+3] != 255 {
			t.Fatalf("Unexpected pixel %v", img.Pixels[i:i+4])
		}
	}
}
