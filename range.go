package gltexture

// TextureRange describes one region of a texture for upload or readback:
// an offset and extent at a single mip level, plus layer and cube-face
// spans for array and cube resources.
//
// Single-call operations require NumMipLevels == 1; batched multi-level
// upload is not supported.
type TextureRange struct {
	X, Y, Z int

	Width, Height, Depth int

	Layer     int
	NumLayers int

	Face     int
	NumFaces int

	MipLevel     int
	NumMipLevels int
}

// New1D returns a range covering width texels starting at x.
func New1D(x, width int) TextureRange {
	return New3D(x, 0, 0, width, 1, 1)
}

// New1DArray returns a 1D range spanning numLayers layers from layer.
func New1DArray(x, width, layer, numLayers int) TextureRange {
	return New2DArray(x, 0, width, 1, layer, numLayers)
}

// New2D returns a range covering a width x height region at (x, y).
func New2D(x, y, width, height int) TextureRange {
	return New3D(x, y, 0, width, height, 1)
}

// New2DArray returns a 2D range spanning numLayers layers from layer.
func New2DArray(x, y, width, height, layer, numLayers int) TextureRange {
	r := New3D(x, y, 0, width, height, 1)
	r.Layer = layer
	r.NumLayers = numLayers
	return r
}

// New3D returns a range covering a width x height x depth region at
// (x, y, z), at mip level 0.
func New3D(x, y, z, width, height, depth int) TextureRange {
	return TextureRange{
		X: x, Y: y, Z: z,
		Width: width, Height: height, Depth: depth,
		NumLayers:    1,
		NumFaces:     1,
		NumMipLevels: 1,
	}
}

// NewCube returns a range addressing the same region on all six faces.
func NewCube(x, y, width, height int) TextureRange {
	r := New3D(x, y, 0, width, height, 1)
	r.NumFaces = NumCubeFaces
	return r
}

// NewCubeFace returns a range addressing a region on a single face.
func NewCubeFace(x, y, width, height int, face CubeFace) TextureRange {
	r := New3D(x, y, 0, width, height, 1)
	r.Face = int(face)
	return r
}

// AtMipLevel returns a single-level copy of r rebased to level. Offsets
// and extents shrink by the level delta; extents clamp to 1. Rebasing to
// a level above r.MipLevel only retargets the level fields.
func (r TextureRange) AtMipLevel(level int) TextureRange {
	out := r
	out.MipLevel = level
	out.NumMipLevels = 1
	if level <= r.MipLevel {
		return out
	}
	delta := level - r.MipLevel
	out.X = r.X >> delta
	out.Y = r.Y >> delta
	out.Z = r.Z >> delta
	out.Width = max(r.Width>>delta, 1)
	out.Height = max(r.Height>>delta, 1)
	out.Depth = max(r.Depth>>delta, 1)
	return out
}

// WithNumMipLevels returns a copy of r spanning n mip levels.
func (r TextureRange) WithNumMipLevels(n int) TextureRange {
	r.NumMipLevels = n
	return r
}

// AtLayer returns a copy of r addressing the single given layer.
func (r TextureRange) AtLayer(layer int) TextureRange {
	r.Layer = layer
	r.NumLayers = 1
	return r
}

// WithNumLayers returns a copy of r spanning n layers.
func (r TextureRange) WithNumLayers(n int) TextureRange {
	r.NumLayers = n
	return r
}

// AtFace returns a copy of r addressing the single given face.
func (r TextureRange) AtFace(face CubeFace) TextureRange {
	r.Face = int(face)
	r.NumFaces = 1
	return r
}

// WithNumFaces returns a copy of r spanning n faces.
func (r TextureRange) WithNumFaces(n int) TextureRange {
	r.NumFaces = n
	return r
}
