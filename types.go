package gltexture

// TextureType identifies the dimensionality of a texture resource.
type TextureType uint8

const (
	TextureTypeInvalid TextureType = iota
	TextureType1D
	TextureType1DArray
	TextureType2D
	TextureType2DArray
	TextureType3D
	TextureTypeCube

	// TextureTypeExternalImage wraps an externally supplied image whose
	// storage needs no further initialization by this package.
	TextureTypeExternalImage
)

// String returns the type's name.
func (t TextureType) String() string {
	switch t {
	case TextureType1D:
		return "1D"
	case TextureType1DArray:
		return "1DArray"
	case TextureType2D:
		return "2D"
	case TextureType2DArray:
		return "2DArray"
	case TextureType3D:
		return "3D"
	case TextureTypeCube:
		return "Cube"
	case TextureTypeExternalImage:
		return "ExternalImage"
	}
	return "Invalid"
}

// TextureUsage is a bitset declaring how a texture will be used.
type TextureUsage uint8

const (
	// UsageSampled marks the texture for shader sampling.
	UsageSampled TextureUsage = 1 << iota

	// UsageStorage marks the texture for shader image load/store. On
	// backends with immutable storage support this also selects
	// pre-reserved allocation for the full mip chain.
	UsageStorage

	// UsageAttachment marks the texture as a render target attachment.
	UsageAttachment
)

// CubeFace identifies one face of a cube texture, in the canonical
// +X, -X, +Y, -Y, +Z, -Z order.
type CubeFace uint8

const (
	CubeFacePositiveX CubeFace = iota
	CubeFaceNegativeX
	CubeFacePositiveY
	CubeFaceNegativeY
	CubeFacePositiveZ
	CubeFaceNegativeZ
)

// NumCubeFaces is the number of faces of a cube texture.
const NumCubeFaces = 6

// Dimensions holds the extent of a texture at mip level 0.
type Dimensions struct {
	Width, Height, Depth int
}

// TextureDescriptor describes a texture resource to create. It is
// immutable after creation; the backend copies the fields it needs.
type TextureDescriptor struct {
	// Type is the texture dimensionality.
	Type TextureType

	// Format is the logical pixel format.
	Format TextureFormat

	// Usage declares how the texture will be used. Leaving both
	// UsageSampled and UsageStorage unset resolves the backend format as
	// if UsageSampled were set, without altering the stored usage.
	Usage TextureUsage

	// Width, Height and Depth are the level-0 extent. Zero values for
	// Height and Depth default to 1.
	Width, Height, Depth int

	// NumLayers is the array layer count (defaults to 1).
	NumLayers int

	// NumSamples is the per-pixel sample count (defaults to 1).
	NumSamples int

	// NumMipLevels is the mip chain length (defaults to 1).
	NumMipLevels int

	// DebugName is an optional label used in log output.
	DebugName string
}

// withDefaults returns a copy of d with zero-valued extent and count
// fields resolved to 1.
func (d TextureDescriptor) withDefaults() TextureDescriptor {
	if d.Height == 0 {
		d.Height = 1
	}
	if d.Depth == 0 {
		d.Depth = 1
	}
	if d.NumLayers == 0 {
		d.NumLayers = 1
	}
	if d.NumSamples == 0 {
		d.NumSamples = 1
	}
	if d.NumMipLevels == 0 {
		d.NumMipLevels = 1
	}
	return d
}

// Normalize returns a copy of d with defaulted extent and count fields,
// the same resolution backends apply before validation.
func (d TextureDescriptor) Normalize() TextureDescriptor { return d.withDefaults() }

// CalcNumMipLevels returns the length of a full mip chain for the given
// level-0 extent, or 0 if either dimension is 0.
func CalcNumMipLevels(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	levels := 1
	for (width|height)>>levels != 0 {
		levels++
	}
	return levels
}
