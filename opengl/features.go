package opengl

import (
	"github.com/gogpu/gltexture"
)

// DeviceFeatures exposes the read-only backend and GPU capability
// queries that drive allocation strategy and path selection. Queries
// have no side effects; the answer set is fixed at device creation.
type DeviceFeatures interface {
	// HasTexStorage reports whether immutable storage allocation
	// (glTexStorage*) is available.
	HasTexStorage() bool

	// HasCompressedTexImage reports whether compressed data can be
	// uploaded through the image-replace path.
	HasCompressedTexImage() bool

	// HasCompressedTexStorage reports whether compressed data can be
	// uploaded into immutably reserved storage.
	HasCompressedTexStorage() bool

	// HasBindlessTextures reports whether persistent bindless handles
	// are available.
	HasBindlessTextures() bool

	// SupportsType reports whether the dimensionality is supported.
	SupportsType(t gltexture.TextureType) bool

	// FormatCapabilities returns the capability bitset for a format.
	FormatCapabilities(f gltexture.TextureFormat) gltexture.FormatCapabilities

	// RequiresAlphaSwizzle reports whether the format needs the
	// channel-remap workaround: core profiles dropped the dedicated
	// alpha format, so stored red must feed the consumer-visible alpha
	// slot.
	RequiresAlphaSwizzle(f gltexture.TextureFormat) bool
}

// glFeatures answers capability queries from the GL version and
// extension list captured at device creation.
type glFeatures struct {
	major, minor int
	ext          map[string]bool
}

func newGLFeatures(ctx Context) *glFeatures {
	major, minor := ctx.Version()
	ext := make(map[string]bool)
	for _, name := range ctx.Extensions() {
		ext[name] = true
	}
	return &glFeatures{major: major, minor: minor, ext: ext}
}

// atLeast reports whether the context version is >= major.minor.
func (f *glFeatures) atLeast(major, minor int) bool {
	return f.major > major || (f.major == major && f.minor >= minor)
}

func (f *glFeatures) HasTexStorage() bool {
	return f.atLeast(4, 2) || f.ext["GL_ARB_texture_storage"]
}

func (f *glFeatures) HasCompressedTexImage() bool {
	// glCompressedTexImage* has been core since 1.3.
	return f.atLeast(1, 3)
}

func (f *glFeatures) HasCompressedTexStorage() bool {
	return f.HasTexStorage()
}

func (f *glFeatures) HasBindlessTextures() bool {
	return f.ext["GL_ARB_bindless_texture"]
}

func (f *glFeatures) SupportsType(t gltexture.TextureType) bool {
	switch t {
	case gltexture.TextureType1D, gltexture.TextureType2D, gltexture.TextureTypeCube:
		return true
	case gltexture.TextureType3D:
		return f.atLeast(1, 2)
	case gltexture.TextureType1DArray, gltexture.TextureType2DArray:
		return f.atLeast(3, 0) || f.ext["GL_EXT_texture_array"]
	case gltexture.TextureTypeExternalImage:
		return f.ext["GL_OES_EGL_image_external"]
	}
	return false
}

func (f *glFeatures) FormatCapabilities(format gltexture.TextureFormat) gltexture.FormatCapabilities {
	if format == gltexture.FormatInvalid {
		return 0
	}
	props := format.Properties()

	caps := gltexture.FormatCapabilitySampled
	if !props.IsCompressed() && format != gltexture.FormatR16Uint {
		caps |= gltexture.FormatCapabilityFiltered
	}
	if !props.IsCompressed() {
		caps |= gltexture.FormatCapabilityAttachment
	}
	if f.atLeast(4, 2) && storageImageCapable(format) {
		caps |= gltexture.FormatCapabilityStorage
	}
	return caps
}

// storageImageCapable reports whether the format is in the shader image
// load/store format list. Swizzled, packed-transfer and depth/stencil
// formats are not.
func storageImageCapable(format gltexture.TextureFormat) bool {
	switch format {
	case gltexture.FormatR8Unorm, gltexture.FormatRG8Unorm,
		gltexture.FormatR16Float, gltexture.FormatR16Uint, gltexture.FormatR16Unorm,
		gltexture.FormatRGBA8Unorm, gltexture.FormatRGB10A2Unorm, gltexture.FormatRG16Float,
		gltexture.FormatR32Float, gltexture.FormatRGBA16Float, gltexture.FormatRGBA32Float:
		return true
	}
	return false
}

func (f *glFeatures) RequiresAlphaSwizzle(format gltexture.TextureFormat) bool {
	// GL3 core removed GL_ALPHA; alpha-only textures are stored as red.
	return format == gltexture.FormatA8Unorm && f.atLeast(3, 0)
}
