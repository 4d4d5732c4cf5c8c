package gltexture

import (
	"image"

	"golang.org/x/image/draw"
)

// UploadImage uploads img into the given mip level of a 2D texture whose
// format is FormatRGBA8Unorm or FormatRGBA8UnormSrgb. The image is
// flattened to tightly packed RGBA bytes first; non-RGBA images and
// subimages with a padded stride are converted through x/image/draw.
//
// The image extent must match the texture extent at mipLevel; otherwise
// the upload fails range validation.
func UploadImage(t Texture, img image.Image, mipLevel int) error {
	switch t.Format() {
	case FormatRGBA8Unorm, FormatRGBA8UnormSrgb:
	default:
		return Errorf(CodeArgumentInvalid, "UploadImage requires an RGBA8 texture, have %s", t.Format())
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != width*4 || bounds.Min != (image.Point{}) {
		flat := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)
		rgba = flat
	}

	r := New2D(0, 0, width, height)
	r.MipLevel = mipLevel
	return t.Upload(r, rgba.Pix, rgba.Stride)
}
