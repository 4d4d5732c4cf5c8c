package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/gltexture"
)

// formatDescGL is the resolved backend encoding of a logical pixel
// format: the sized internal storage format, the transfer format, and
// the component element type. For compressed formats xtype is glNone and
// the internal format doubles as the compressed block-format tag.
type formatDescGL struct {
	internalFormat uint32
	format         uint32
	xtype          uint32
}

func desc(internal, format, xtype uint32) (formatDescGL, bool) {
	return formatDescGL{internalFormat: internal, format: format, xtype: xtype}, true
}

// toFormatDescGL resolves a logical format plus usage intent to GL
// enums. Usage carrying neither storage nor sampled intent resolves as
// sampled; the adjustment is local to resolution. Combinations the
// catalog does not carry return ok == false — callers fail with
// ArgumentInvalid before any GL object exists.
func toFormatDescGL(f gltexture.TextureFormat, usage gltexture.TextureUsage) (formatDescGL, bool) {
	if usage&(gltexture.UsageStorage|gltexture.UsageSampled) == 0 {
		usage |= gltexture.UsageSampled
	}
	storage := usage&gltexture.UsageStorage != 0

	props := f.Properties()
	// Shader storage images exclude swizzled, reordered-transfer and
	// depth/stencil encodings. Compressed formats pass through: whether
	// a compressed resource can be realized is a capability question
	// answered at creation, not a catalog question.
	if storage && !props.IsCompressed() && !storageImageCapable(f) {
		return formatDescGL{}, false
	}

	switch f {
	case gltexture.FormatA8Unorm, gltexture.FormatL8Unorm:
		// Stored as red in core profiles; A8 gains a swizzle remap at
		// initialization.
		return desc(gl.R8, gl.RED, gl.UNSIGNED_BYTE)
	case gltexture.FormatR8Unorm:
		return desc(gl.R8, gl.RED, gl.UNSIGNED_BYTE)
	case gltexture.FormatRG8Unorm:
		return desc(gl.RG8, gl.RG, gl.UNSIGNED_BYTE)

	case gltexture.FormatR16Float:
		return desc(gl.R16F, gl.RED, gl.HALF_FLOAT)
	case gltexture.FormatR16Uint:
		return desc(gl.R16UI, gl.RED_INTEGER, gl.UNSIGNED_SHORT)
	case gltexture.FormatR16Unorm:
		return desc(gl.R16, gl.RED, gl.UNSIGNED_SHORT)

	case gltexture.FormatRGBA8Unorm:
		return desc(gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)
	case gltexture.FormatBGRA8Unorm:
		return desc(gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE)
	case gltexture.FormatRGBA8UnormSrgb:
		return desc(gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE)
	case gltexture.FormatBGRA8UnormSrgb:
		return desc(gl.SRGB8_ALPHA8, gl.BGRA, gl.UNSIGNED_BYTE)
	case gltexture.FormatRGB10A2Unorm:
		return desc(gl.RGB10_A2, gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV)
	case gltexture.FormatRG16Float:
		return desc(gl.RG16F, gl.RG, gl.HALF_FLOAT)

	case gltexture.FormatR32Float:
		return desc(gl.R32F, gl.RED, gl.FLOAT)
	case gltexture.FormatRGBA16Float:
		return desc(gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT)
	case gltexture.FormatRGBA32Float:
		return desc(gl.RGBA32F, gl.RGBA, gl.FLOAT)

	case gltexture.FormatETC2RGB8Unorm:
		return desc(gl.COMPRESSED_RGB8_ETC2, gl.RGB, glNone)
	case gltexture.FormatETC2RGB8UnormSrgb:
		return desc(gl.COMPRESSED_SRGB8_ETC2, gl.RGB, glNone)
	case gltexture.FormatETC2RGBA8Unorm:
		return desc(gl.COMPRESSED_RGBA8_ETC2_EAC, gl.RGBA, glNone)
	case gltexture.FormatEACR11Unorm:
		return desc(gl.COMPRESSED_R11_EAC, gl.RED, glNone)
	case gltexture.FormatEACRG11Unorm:
		return desc(gl.COMPRESSED_RG11_EAC, gl.RG, glNone)
	case gltexture.FormatASTC4x4Unorm:
		return desc(gl.COMPRESSED_RGBA_ASTC_4x4_KHR, gl.RGBA, glNone)
	case gltexture.FormatASTC4x4UnormSrgb:
		return desc(gl.COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR, gl.RGBA, glNone)
	case gltexture.FormatBC7Unorm:
		return desc(gl.COMPRESSED_RGBA_BPTC_UNORM, gl.RGBA, glNone)

	case gltexture.FormatDepth16Unorm:
		return desc(gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT)
	case gltexture.FormatDepth24Unorm:
		return desc(gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT)
	case gltexture.FormatDepth32Unorm:
		return desc(gl.DEPTH_COMPONENT32, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT)
	case gltexture.FormatDepth24UnormStencil8:
		return desc(gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8)
	case gltexture.FormatStencil8:
		return desc(gl.STENCIL_INDEX8, gl.STENCIL_INDEX, gl.UNSIGNED_BYTE)
	}

	return formatDescGL{}, false
}

// toRenderBufferFormatGL resolves a format for renderbuffer storage.
// Compressed formats have no renderbuffer representation.
func toRenderBufferFormatGL(f gltexture.TextureFormat, usage gltexture.TextureUsage) (uint32, bool) {
	if usage&gltexture.UsageAttachment == 0 {
		return 0, false
	}
	props := f.Properties()
	if props.IsCompressed() {
		return 0, false
	}
	fd, ok := toFormatDescGL(f, gltexture.UsageSampled)
	if !ok {
		return 0, false
	}
	return fd.internalFormat, true
}
