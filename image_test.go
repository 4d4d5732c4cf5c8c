package gltexture

import (
	"image"
	stdcolor "image/color"
	"testing"
)

func TestUploadImageTightRGBA(t *testing.T) {
	tex := newStub2D(4, 4, 1)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, stdcolor.RGBA{R: 255, A: 255})

	if err := UploadImage(tex, img, 0); err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if tex.uploads != 1 {
		t.Fatalf("expected one upload, got %d", tex.uploads)
	}
	if tex.lastRange.Width != 4 || tex.lastRange.Height != 4 || tex.lastRange.MipLevel != 0 {
		t.Errorf("unexpected range: %+v", tex.lastRange)
	}
	if tex.lastStride != 16 {
		t.Errorf("expected tight stride 16, got %d", tex.lastStride)
	}
	// Tightly packed images upload their backing pixels directly.
	if &tex.lastData[0] != &img.Pix[0] {
		t.Error("tight RGBA images must not be copied")
	}
}

func TestUploadImageConvertsNonRGBA(t *testing.T) {
	tex := newStub2D(2, 2, 1)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, stdcolor.NRGBA{G: 128, A: 255})

	if err := UploadImage(tex, img, 0); err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if len(tex.lastData) != 2*2*4 {
		t.Errorf("expected flattened RGBA bytes, got %d", len(tex.lastData))
	}
}

func TestUploadImageFlattensSubimage(t *testing.T) {
	tex := newStub2D(2, 2, 1)
	parent := image.NewRGBA(image.Rect(0, 0, 8, 8))
	sub := parent.SubImage(image.Rect(3, 3, 5, 5)).(*image.RGBA)

	if err := UploadImage(tex, sub, 0); err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	// The subimage keeps the parent's stride, so it must be repacked.
	if tex.lastStride != 8 {
		t.Errorf("expected repacked stride 8, got %d", tex.lastStride)
	}
}

func TestUploadImageMipLevel(t *testing.T) {
	tex := newStub2D(8, 8, 3)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	if err := UploadImage(tex, img, 2); err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if tex.lastRange.MipLevel != 2 || tex.lastRange.Width != 2 {
		t.Errorf("unexpected range: %+v", tex.lastRange)
	}
}

func TestUploadImageRequiresRGBA8(t *testing.T) {
	tex := newStub2D(4, 4, 1)
	tex.format = FormatR8Unorm

	err := UploadImage(tex, image.NewRGBA(image.Rect(0, 0, 4, 4)), 0)
	if CodeOf(err) != CodeArgumentInvalid {
		t.Errorf("expected argument invalid, got %v", err)
	}
}
