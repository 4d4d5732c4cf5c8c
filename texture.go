package gltexture

// Texture is a GPU texture resource owned by a Device. A Texture is not
// safe for concurrent use; all methods require the owning device's
// context to be current on the calling goroutine.
type Texture interface {
	// Upload transfers data into the region described by r. The transfer
	// path follows the allocation strategy: full-extent regions of
	// mutably allocated textures replace the whole image at that level,
	// everything else updates a sub-region of existing storage.
	//
	// A nil data slice allocates storage for the region without
	// transferring bytes. bytesPerRow is a layout hint for the source
	// data; 0 means tightly packed. For compressed formats the byte
	// length is computed from the block layout and data must be at least
	// that long — the precondition is documented, not enforced.
	//
	// Ranges spanning more than one mip level fail with
	// CodeUnimplemented. On cube textures Upload addresses all six faces
	// with the same region; use UploadCube for a single face.
	Upload(r TextureRange, data []byte, bytesPerRow int) error

	// UploadCube transfers data into a region of a single cube face. It
	// fails with CodeInvalidOperation if the texture is not a cube.
	UploadCube(r TextureRange, face CubeFace, data []byte, bytesPerRow int) error

	// Dimensions returns the level-0 extent.
	Dimensions() Dimensions

	// Type returns the texture dimensionality.
	Type() TextureType

	// Format returns the logical pixel format.
	Format() TextureFormat

	// Usage returns the usage intent declared at creation.
	Usage() TextureUsage

	// NumLayers returns the array layer count.
	NumLayers() int

	// NumMipLevels returns the mip chain length.
	NumMipLevels() int

	// Samples returns the per-pixel sample count.
	Samples() int

	// GenerateMipmap regenerates levels 1..N-1 from level 0 using the
	// backend's native mip generation. It is a no-op when the texture
	// has a single level.
	GenerateMipmap() error

	// PersistentHandle resolves and returns the texture's bindless
	// handle. The handle is resolved and made resident on the first call
	// only; later calls return the cached value without touching the
	// backend.
	PersistentHandle() (uint64, error)

	// EstimatedSizeInBytes returns the storage size of the full mip
	// chain, computed from the format's block layout.
	EstimatedSizeInBytes() int

	// Destroy releases the backend object, releasing a resident
	// persistent handle first. Destroying a texture that never allocated
	// a backend object is a no-op. Destroy is idempotent.
	Destroy()
}

// NumFaces returns the face count of t: 6 for cube textures, 1 otherwise.
func NumFaces(t Texture) int {
	if t.Type() == TextureTypeCube {
		return NumCubeFaces
	}
	return 1
}

// FullRange returns the range covering the entire extent of t at
// mipLevel, spanning numMipLevels levels and all layers and faces.
func FullRange(t Texture, mipLevel, numMipLevels int) TextureRange {
	dims := t.Dimensions()

	r := New3D(0, 0, 0,
		max(dims.Width>>mipLevel, 1),
		max(dims.Height>>mipLevel, 1),
		max(dims.Depth>>mipLevel, 1))
	r.MipLevel = mipLevel
	r.NumMipLevels = numMipLevels
	r.NumLayers = t.NumLayers()
	r.NumFaces = NumFaces(t)
	return r
}

// CubeFaceRange returns the full extent of one face of a cube texture at
// the given mip level.
func CubeFaceRange(t Texture, face CubeFace, mipLevel int) TextureRange {
	return FullRange(t, mipLevel, 1).AtFace(face)
}

// LayerRange returns the full extent of one array layer at the given
// mip level.
func LayerRange(t Texture, layer, mipLevel int) TextureRange {
	return FullRange(t, mipLevel, 1).AtLayer(layer)
}

// ValidateRange checks r against the extent of t at r.MipLevel: all
// range dimensions must be at least 1, and offset plus extent must stay
// within the level's extent, layer count, face count and mip count.
func ValidateRange(t Texture, r TextureRange) error {
	if r.Width <= 0 || r.Height <= 0 || r.Depth <= 0 ||
		r.NumLayers <= 0 || r.NumMipLevels <= 0 || r.NumFaces <= 0 {
		return NewError(CodeArgumentInvalid,
			"width, height, depth, numLayers, numMipLevels, and numFaces must be at least 1")
	}
	if r.X < 0 || r.Y < 0 || r.Z < 0 || r.Layer < 0 || r.Face < 0 || r.MipLevel < 0 {
		return NewError(CodeArgumentInvalid, "range offsets must not be negative")
	}

	dims := t.Dimensions()
	levelWidth := max(dims.Width>>r.MipLevel, 1)
	levelHeight := max(dims.Height>>r.MipLevel, 1)
	levelDepth := max(dims.Depth>>r.MipLevel, 1)
	texLayers := t.NumLayers()
	texFaces := NumFaces(t)
	texMipLevels := t.NumMipLevels()

	if r.Width > levelWidth || r.Height > levelHeight || r.Depth > levelDepth ||
		r.NumLayers > texLayers || r.NumMipLevels > texMipLevels || r.NumFaces > texFaces {
		return NewError(CodeArgumentOutOfRange, "range dimensions exceed texture dimensions")
	}
	if r.X > levelWidth-r.Width || r.Y > levelHeight-r.Height || r.Z > levelDepth-r.Depth ||
		r.Layer > texLayers-r.NumLayers || r.MipLevel > texMipLevels-r.NumMipLevels ||
		r.Face > texFaces-r.NumFaces {
		return NewError(CodeArgumentOutOfRange, "range dimensions exceed texture dimensions")
	}
	return nil
}
