package gltexture

import (
	"github.com/gogpu/gputypes"
)

// Interop with the gogpu family type vocabulary. Conversions cover the
// interchange formats shared by both APIs; formats specific to one side
// (GL alpha/luminance formats, WebGPU-only encodings) report no mapping.

// ToGPUFormat maps f to its gputypes equivalent. It returns
// gputypes.TextureFormatUndefined and false when no equivalent exists.
func ToGPUFormat(f TextureFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm, true
	case FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatBGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm, true
	case FormatDepth24UnormStencil8:
		return gputypes.TextureFormatDepth24PlusStencil8, true
	}
	return gputypes.TextureFormatUndefined, false
}

// FromGPUFormat maps a gputypes format to its gltexture equivalent. It
// returns FormatInvalid and false when no equivalent exists.
func FromGPUFormat(f gputypes.TextureFormat) (TextureFormat, bool) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8Unorm, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatDepth24UnormStencil8, true
	}
	return FormatInvalid, false
}

// ToGPUExtent converts level-0 dimensions to a gputypes extent. Array
// textures fold their layer count into DepthOrArrayLayers, matching the
// WebGPU convention.
func ToGPUExtent(d Dimensions, numLayers int) gputypes.Extent3D {
	depthOrLayers := d.Depth
	if numLayers > 1 {
		depthOrLayers = numLayers
	}
	if depthOrLayers < 1 {
		depthOrLayers = 1
	}
	return gputypes.Extent3D{
		Width:              uint32(max(d.Width, 1)),
		Height:             uint32(max(d.Height, 1)),
		DepthOrArrayLayers: uint32(depthOrLayers),
	}
}

// FromGPUExtent converts a gputypes extent to level-0 dimensions. The
// DepthOrArrayLayers slot lands in Depth; callers dealing with array
// textures interpret it as the layer count.
func FromGPUExtent(e gputypes.Extent3D) Dimensions {
	return Dimensions{
		Width:  int(e.Width),
		Height: int(e.Height),
		Depth:  int(e.DepthOrArrayLayers),
	}
}
