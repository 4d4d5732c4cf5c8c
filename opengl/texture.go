package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/gltexture"
)

// cubeFaceTargets lists the per-face GL targets in canonical
// +X, -X, +Y, -Y, +Z, -Z order, matching gltexture.CubeFace values.
var cubeFaceTargets = [gltexture.NumCubeFaces]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// toGLTarget maps a dimensionality and sample count to the GL binding
// target, or 0 when the combination has none. External images bind as
// plain 2D; their storage comes from outside this package.
func toGLTarget(t gltexture.TextureType, samples int) uint32 {
	switch t {
	case gltexture.TextureType1D:
		return gl.TEXTURE_1D
	case gltexture.TextureType1DArray:
		return gl.TEXTURE_1D_ARRAY
	case gltexture.TextureType2D:
		if samples > 1 {
			return gl.TEXTURE_2D_MULTISAMPLE
		}
		return gl.TEXTURE_2D
	case gltexture.TextureType2DArray:
		if samples > 1 {
			return gl.TEXTURE_2D_MULTISAMPLE_ARRAY
		}
		return gl.TEXTURE_2D_ARRAY
	case gltexture.TextureType3D:
		return gl.TEXTURE_3D
	case gltexture.TextureTypeCube:
		return gl.TEXTURE_CUBE_MAP
	case gltexture.TextureTypeExternalImage:
		return gl.TEXTURE_2D
	}
	return 0
}

// TextureBuffer is a texture resource backed by a GL texture object. It
// owns the object id, the resolved format encoding, the allocation
// strategy chosen at creation, and the lazily resolved bindless handle.
type TextureBuffer struct {
	ctx      Context
	features DeviceFeatures

	id     uint32
	target uint32

	typ    gltexture.TextureType
	format gltexture.TextureFormat
	usage  gltexture.TextureUsage

	width, height, depth int
	numLayers            int
	numMipLevels         int
	samples              int

	props gltexture.FormatProperties
	fd    formatDescGL

	// texStorage records the allocation strategy: true means storage
	// for the whole mip chain was reserved immutably and uploads always
	// go through the sub-image path.
	texStorage bool

	handle         uint64
	handleResident bool

	debugName string
}

var _ gltexture.Texture = (*TextureBuffer)(nil)

// newTextureBuffer creates and initializes a texture for the
// (already normalized) descriptor. When initialization of allocated
// storage fails, both the texture and the error are returned; the
// caller owns the object and must destroy it.
func newTextureBuffer(ctx Context, features DeviceFeatures, desc gltexture.TextureDescriptor) (*TextureBuffer, error) {
	t := &TextureBuffer{
		ctx:       ctx,
		features:  features,
		typ:       desc.Type,
		format:    desc.Format,
		usage:     desc.Usage,
		width:     desc.Width,
		height:    desc.Height,
		depth:     desc.Depth,
		numLayers: desc.NumLayers,
		samples:   desc.NumSamples,
		debugName: desc.DebugName,
		props:     desc.Format.Properties(),
	}

	if err := t.create(desc); err != nil {
		return t, err
	}
	return t, nil
}

func validateDescriptor(desc gltexture.TextureDescriptor) error {
	if desc.Width < 1 || desc.Height < 1 || desc.Depth < 1 {
		return gltexture.NewError(gltexture.CodeArgumentOutOfRange,
			"texture width, height and depth must be at least 1")
	}
	if desc.NumMipLevels < 1 {
		return gltexture.NewError(gltexture.CodeArgumentOutOfRange,
			"numMipLevels must be at least 1")
	}
	if maxLevels := gltexture.CalcNumMipLevels(desc.Width, desc.Height); desc.NumMipLevels > maxLevels {
		return gltexture.NewError(gltexture.CodeArgumentOutOfRange,
			"numMipLevels exceeds the full mip chain length")
	}
	if desc.NumSamples > 1 && desc.NumMipLevels > 1 {
		return gltexture.NewError(gltexture.CodeArgumentInvalid,
			"multisampled textures cannot have mip chains")
	}
	if desc.Type == gltexture.TextureTypeCube && desc.Width != desc.Height {
		return gltexture.NewError(gltexture.CodeArgumentInvalid,
			"cube textures must be square")
	}
	return nil
}

func (t *TextureBuffer) create(desc gltexture.TextureDescriptor) error {
	if err := validateDescriptor(desc); err != nil {
		return err
	}

	if desc.NumSamples > 1 {
		// Multisample storage has no upload path; only attachment-only
		// renderbuffer resources carry a sample count.
		return gltexture.NewError(gltexture.CodeUnsupported,
			"multisample textures are only supported as attachment-only resources")
	}

	t.target = toGLTarget(desc.Type, desc.NumSamples)
	if t.target == 0 {
		return gltexture.NewError(gltexture.CodeUnsupported, "unsupported texture type")
	}
	if !t.features.SupportsType(desc.Type) {
		return gltexture.Errorf(gltexture.CodeUnsupported,
			"texture type %s is not supported by this context", desc.Type)
	}

	// Resolving the backend format requires at least one of sampled or
	// storage intent; textures declared with neither resolve as sampled.
	usage := desc.Usage
	if usage&(gltexture.UsageSampled|gltexture.UsageStorage) == 0 {
		usage |= gltexture.UsageSampled
	}

	fd, ok := toFormatDescGL(desc.Format, usage)
	if !ok {
		return gltexture.NewError(gltexture.CodeArgumentInvalid, "invalid texture format")
	}
	if !t.props.IsCompressed() && fd.xtype == glNone {
		return gltexture.NewError(gltexture.CodeArgumentInvalid, "invalid texture format")
	}
	if usage&gltexture.UsageStorage != 0 && !t.features.HasTexStorage() {
		return gltexture.NewError(gltexture.CodeUnsupported,
			"storage usage requires immutable texture storage support")
	}
	t.fd = fd
	t.numMipLevels = desc.NumMipLevels

	// Immutable pre-reserved allocation applies when storage usage is
	// declared and the format qualifies; everything else allocates
	// level by level and keeps the image-replace path open.
	t.texStorage = usage&gltexture.UsageStorage != 0 &&
		t.features.FormatCapabilities(desc.Format).Has(gltexture.FormatCapabilityStorage)
	gltexture.Logger().Debug("texture allocation strategy",
		"name", t.debugName, "format", t.format, "immutable", t.texStorage)

	if t.props.IsCompressed() && !t.canInitializeCompressed() {
		return gltexture.NewError(gltexture.CodeUnsupported,
			"no supported upload path for compressed texture data")
	}

	t.id = t.ctx.GenTexture()

	if desc.Type == gltexture.TextureTypeExternalImage {
		// Externally backed storage; nothing to initialize.
		return nil
	}
	return t.initialize()
}

// canInitializeCompressed reports whether some upload path exists for
// the compressed format under the chosen allocation strategy.
func (t *TextureBuffer) canInitializeCompressed() bool {
	if t.texStorage {
		return t.features.HasCompressedTexStorage()
	}
	return t.features.HasCompressedTexImage()
}

// initialize binds the new object, pins its sampling state to the
// declared mip range, applies format workarounds, and realizes storage
// for every level of the chain. The target binding is restored to zero
// on every path out.
func (t *TextureBuffer) initialize() error {
	t.ctx.BindTexture(t.target, t.id)
	defer t.ctx.BindTexture(t.target, glNone)

	t.setMaxMipLevel()
	if t.numMipLevels == 1 {
		// The default minification filter assumes a full chain; a
		// single-level texture would sample as incomplete with it.
		t.ctx.TexParameteri(t.target, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	}
	if !t.props.IsCompressed() && t.features.RequiresAlphaSwizzle(t.format) {
		t.applyAlphaSwizzle()
	}

	if t.texStorage {
		return t.initializeWithTexStorage()
	}
	return t.initializeWithUpload()
}

func (t *TextureBuffer) setMaxMipLevel() {
	t.ctx.TexParameteri(t.target, gl.TEXTURE_BASE_LEVEL, 0)
	t.ctx.TexParameteri(t.target, gl.TEXTURE_MAX_LEVEL, int32(t.numMipLevels-1))
}

// applyAlphaSwizzle remaps sampling so the red channel the data lives in
// feeds the alpha slot, with the color channels pinned to zero.
func (t *TextureBuffer) applyAlphaSwizzle() {
	t.ctx.TexParameteri(t.target, gl.TEXTURE_SWIZZLE_R, gl.ZERO)
	t.ctx.TexParameteri(t.target, gl.TEXTURE_SWIZZLE_G, gl.ZERO)
	t.ctx.TexParameteri(t.target, gl.TEXTURE_SWIZZLE_B, gl.ZERO)
	t.ctx.TexParameteri(t.target, gl.TEXTURE_SWIZZLE_A, gl.RED)
}

// initializeWithTexStorage reserves immutable storage for the whole mip
// chain in one call. Cube storage covers all six faces implicitly.
func (t *TextureBuffer) initializeWithTexStorage() error {
	switch t.typ {
	case gltexture.TextureType2D, gltexture.TextureTypeCube:
		return t.ctx.TexStorage2D(t.target, t.numMipLevels, t.fd.internalFormat, t.width, t.height)
	case gltexture.TextureType2DArray:
		return t.ctx.TexStorage3D(t.target, t.numMipLevels, t.fd.internalFormat, t.width, t.height, t.numLayers)
	case gltexture.TextureType3D:
		return t.ctx.TexStorage3D(t.target, t.numMipLevels, t.fd.internalFormat, t.width, t.height, t.depth)
	}
	return gltexture.Errorf(gltexture.CodeInvalidOperation,
		"immutable storage is not supported for %s textures", t.typ)
}

// initializeWithUpload realizes mutable storage by walking the chain and
// allocating each level with a nil transfer.
func (t *TextureBuffer) initializeWithUpload() error {
	for level := 0; level < t.numMipLevels; level++ {
		if err := t.upload(t.target, gltexture.FullRange(t, level, 1), nil, 0); err != nil {
			return err
		}
	}
	return nil
}

// Upload transfers data into the region described by r. See
// gltexture.Texture for the full contract. A nil data slice realizes
// storage for the region without transferring bytes.
func (t *TextureBuffer) Upload(r gltexture.TextureRange, data []byte, bytesPerRow int) error {
	if t.id == 0 {
		return gltexture.NewError(gltexture.CodeInvalidOperation, "texture has no backing store")
	}
	t.ctx.BindTexture(t.target, t.id)
	defer t.ctx.BindTexture(t.target, glNone)

	return t.upload(t.target, r, data, bytesPerRow)
}

// UploadCube transfers data into a region of a single cube face.
func (t *TextureBuffer) UploadCube(r gltexture.TextureRange, face gltexture.CubeFace, data []byte, bytesPerRow int) error {
	if t.id == 0 {
		return gltexture.NewError(gltexture.CodeInvalidOperation, "texture has no backing store")
	}
	if r.NumMipLevels > 1 {
		return gltexture.NewError(gltexture.CodeUnimplemented,
			"uploading more than one mip level per call is not implemented")
	}
	if t.target != gl.TEXTURE_CUBE_MAP {
		return gltexture.NewError(gltexture.CodeInvalidOperation,
			"UploadCube requires a cube texture")
	}
	if int(face) >= gltexture.NumCubeFaces {
		return gltexture.NewError(gltexture.CodeArgumentOutOfRange, "invalid cube face")
	}
	if err := gltexture.ValidateRange(t, r.AtFace(face)); err != nil {
		return err
	}

	t.ctx.BindTexture(t.target, t.id)
	defer t.ctx.BindTexture(t.target, glNone)

	t.setUnpackAlignment(bytesPerRow, r.MipLevel)
	return t.upload2D(cubeFaceTargets[face], r.AtFace(face), data)
}

// upload routes a transfer by dimensionality. The caller holds the
// binding; target selects the image being addressed, which differs from
// the binding target only for cube faces.
func (t *TextureBuffer) upload(target uint32, r gltexture.TextureRange, data []byte, bytesPerRow int) error {
	if r.NumMipLevels > 1 {
		return gltexture.NewError(gltexture.CodeUnimplemented,
			"uploading more than one mip level per call is not implemented")
	}
	if err := gltexture.ValidateRange(t, r); err != nil {
		return err
	}

	t.setUnpackAlignment(bytesPerRow, r.MipLevel)

	switch t.typ {
	case gltexture.TextureType1D:
		return t.upload1D(target, r, data)
	case gltexture.TextureType1DArray:
		return t.upload1DArray(target, r, data)
	case gltexture.TextureType2D, gltexture.TextureTypeExternalImage:
		return t.upload2D(target, r, data)
	case gltexture.TextureType2DArray:
		return t.upload2DArray(target, r, data)
	case gltexture.TextureType3D:
		return t.upload3D(target, r, data)
	case gltexture.TextureTypeCube:
		// The generic cube upload addresses every face with the same
		// region; the range's face fields are not consulted. Single-face
		// transfers go through UploadCube.
		for face := range cubeFaceTargets {
			if err := t.upload2D(cubeFaceTargets[face], r.AtFace(gltexture.CubeFace(face)), data); err != nil {
				return err
			}
		}
		return nil
	}
	return gltexture.Errorf(gltexture.CodeInvalidOperation,
		"cannot upload to a %s texture", t.typ)
}

// setUnpackAlignment derives the source-row alignment GL must assume
// from the row stride. A zero stride means tightly packed rows at the
// level's extent.
func (t *TextureBuffer) setUnpackAlignment(bytesPerRow, mipLevel int) {
	if bytesPerRow == 0 {
		bytesPerRow = t.props.BytesPerRow(gltexture.FullRange(t, mipLevel, 1))
	}
	var alignment int32
	switch {
	case bytesPerRow%8 == 0:
		alignment = 8
	case bytesPerRow%4 == 0:
		alignment = 4
	case bytesPerRow%2 == 0:
		alignment = 2
	default:
		alignment = 1
	}
	t.ctx.PixelStorei(gl.UNPACK_ALIGNMENT, alignment)
}

// shouldReplaceImage decides between the image-replace and sub-image
// paths: replacement applies only to full-extent regions of mutably
// allocated textures. Immutable storage cannot be redefined.
func (t *TextureBuffer) shouldReplaceImage(r gltexture.TextureRange) bool {
	return !t.texStorage && t.isFullExtent(r)
}

func (t *TextureBuffer) isFullExtent(r gltexture.TextureRange) bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0 && r.Layer == 0 &&
		r.Width == max(t.width>>r.MipLevel, 1) &&
		r.Height == max(t.height>>r.MipLevel, 1) &&
		r.Depth == max(t.depth>>r.MipLevel, 1) &&
		r.NumLayers == t.numLayers
}

// compressedSize computes the block-aligned byte length of the region.
// The caller's buffer is trusted to be at least this long; only the
// computation itself is checked.
func (t *TextureBuffer) compressedSize(r gltexture.TextureRange) (int, error) {
	size := t.props.BytesPerRange(r)
	if size <= 0 {
		return 0, gltexture.NewError(gltexture.CodeInternal,
			"block size computation produced a non-positive length")
	}
	return size, nil
}

// Each routine routes nil data through the plain entry points even for
// compressed formats: a null pointer there allocates undefined storage,
// which the compressed entry points do not support portably.
func (t *TextureBuffer) upload1D(target uint32, r gltexture.TextureRange, data []byte) error {
	if t.props.IsCompressed() && data != nil {
		size, err := t.compressedSize(r)
		if err != nil {
			return err
		}
		if t.shouldReplaceImage(r) {
			return t.ctx.CompressedTexImage1D(target, r.MipLevel, t.fd.internalFormat, r.Width, size, data)
		}
		return t.ctx.CompressedTexSubImage1D(target, r.MipLevel, r.X, r.Width, t.fd.internalFormat, size, data)
	}
	if t.shouldReplaceImage(r) {
		return t.ctx.TexImage1D(target, r.MipLevel, t.fd.internalFormat, r.Width, t.fd.format, t.fd.xtype, data)
	}
	return t.ctx.TexSubImage1D(target, r.MipLevel, r.X, r.Width, t.fd.format, t.fd.xtype, data)
}

// upload1DArray transfers through the 2D entry points with the layer
// span in the height slot, which is how GL addresses 1D arrays.
func (t *TextureBuffer) upload1DArray(target uint32, r gltexture.TextureRange, data []byte) error {
	if t.props.IsCompressed() && data != nil {
		size, err := t.compressedSize(r)
		if err != nil {
			return err
		}
		if t.shouldReplaceImage(r) {
			return t.ctx.CompressedTexImage2D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.NumLayers, size, data)
		}
		return t.ctx.CompressedTexSubImage2D(target, r.MipLevel, r.X, r.Layer, r.Width, r.NumLayers, t.fd.internalFormat, size, data)
	}
	if t.shouldReplaceImage(r) {
		return t.ctx.TexImage2D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.NumLayers, t.fd.format, t.fd.xtype, data)
	}
	return t.ctx.TexSubImage2D(target, r.MipLevel, r.X, r.Layer, r.Width, r.NumLayers, t.fd.format, t.fd.xtype, data)
}

func (t *TextureBuffer) upload2D(target uint32, r gltexture.TextureRange, data []byte) error {
	if t.props.IsCompressed() && data != nil {
		size, err := t.compressedSize(r)
		if err != nil {
			return err
		}
		if t.shouldReplaceImage(r) {
			return t.ctx.CompressedTexImage2D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, size, data)
		}
		return t.ctx.CompressedTexSubImage2D(target, r.MipLevel, r.X, r.Y, r.Width, r.Height, t.fd.internalFormat, size, data)
	}
	if t.shouldReplaceImage(r) {
		return t.ctx.TexImage2D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, t.fd.format, t.fd.xtype, data)
	}
	return t.ctx.TexSubImage2D(target, r.MipLevel, r.X, r.Y, r.Width, r.Height, t.fd.format, t.fd.xtype, data)
}

// upload2DArray transfers through the 3D entry points with the layer
// span in the depth slot.
func (t *TextureBuffer) upload2DArray(target uint32, r gltexture.TextureRange, data []byte) error {
	if t.props.IsCompressed() && data != nil {
		size, err := t.compressedSize(r)
		if err != nil {
			return err
		}
		if t.shouldReplaceImage(r) {
			return t.ctx.CompressedTexImage3D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, r.NumLayers, size, data)
		}
		return t.ctx.CompressedTexSubImage3D(target, r.MipLevel, r.X, r.Y, r.Layer, r.Width, r.Height, r.NumLayers, t.fd.internalFormat, size, data)
	}
	if t.shouldReplaceImage(r) {
		return t.ctx.TexImage3D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, r.NumLayers, t.fd.format, t.fd.xtype, data)
	}
	return t.ctx.TexSubImage3D(target, r.MipLevel, r.X, r.Y, r.Layer, r.Width, r.Height, r.NumLayers, t.fd.format, t.fd.xtype, data)
}

func (t *TextureBuffer) upload3D(target uint32, r gltexture.TextureRange, data []byte) error {
	if t.props.IsCompressed() && data != nil {
		size, err := t.compressedSize(r)
		if err != nil {
			return err
		}
		if t.shouldReplaceImage(r) {
			return t.ctx.CompressedTexImage3D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, r.Depth, size, data)
		}
		return t.ctx.CompressedTexSubImage3D(target, r.MipLevel, r.X, r.Y, r.Z, r.Width, r.Height, r.Depth, t.fd.internalFormat, size, data)
	}
	if t.shouldReplaceImage(r) {
		return t.ctx.TexImage3D(target, r.MipLevel, t.fd.internalFormat, r.Width, r.Height, r.Depth, t.fd.format, t.fd.xtype, data)
	}
	return t.ctx.TexSubImage3D(target, r.MipLevel, r.X, r.Y, r.Z, r.Width, r.Height, r.Depth, t.fd.format, t.fd.xtype, data)
}

// GenerateMipmap regenerates levels 1..N-1 from level 0. Single-level
// textures have nothing to generate.
func (t *TextureBuffer) GenerateMipmap() error {
	if t.numMipLevels <= 1 {
		return nil
	}
	t.ctx.BindTexture(t.target, t.id)
	defer t.ctx.BindTexture(t.target, glNone)

	return t.ctx.GenerateMipmap(t.target)
}

// PersistentHandle resolves the bindless handle and makes it resident on
// first use; the value is cached for the texture's lifetime.
func (t *TextureBuffer) PersistentHandle() (uint64, error) {
	if t.id == 0 {
		return 0, gltexture.NewError(gltexture.CodeInvalidOperation, "texture has no backing store")
	}
	if !t.features.HasBindlessTextures() {
		return 0, gltexture.NewError(gltexture.CodeUnsupported, "bindless textures are not supported")
	}
	if t.handleResident {
		return t.handle, nil
	}
	handle, err := t.ctx.GetTextureHandle(t.id)
	if err != nil {
		return 0, err
	}
	if err := t.ctx.MakeTextureHandleResident(handle); err != nil {
		return 0, err
	}
	t.handle = handle
	t.handleResident = true
	return t.handle, nil
}

// Destroy releases the GL object. A resident bindless handle is released
// first; the object must not be deleted while its handle is resident.
func (t *TextureBuffer) Destroy() {
	if t.id == 0 {
		return
	}
	if t.handleResident {
		t.ctx.MakeTextureHandleNonResident(t.handle)
		t.handle = 0
		t.handleResident = false
	}
	t.ctx.DeleteTexture(t.id)
	t.id = 0
}

func (t *TextureBuffer) Dimensions() gltexture.Dimensions {
	return gltexture.Dimensions{Width: t.width, Height: t.height, Depth: t.depth}
}

func (t *TextureBuffer) Type() gltexture.TextureType     { return t.typ }
func (t *TextureBuffer) Format() gltexture.TextureFormat { return t.format }
func (t *TextureBuffer) Usage() gltexture.TextureUsage   { return t.usage }
func (t *TextureBuffer) NumLayers() int                  { return t.numLayers }
func (t *TextureBuffer) NumMipLevels() int               { return t.numMipLevels }
func (t *TextureBuffer) Samples() int                    { return t.samples }

// ID returns the GL object name, or 0 after Destroy.
func (t *TextureBuffer) ID() uint32 { return t.id }

// Target returns the GL binding target chosen at creation.
func (t *TextureBuffer) Target() uint32 { return t.target }

// EstimatedSizeInBytes returns the storage size of the full mip chain
// computed from the format's block layout.
func (t *TextureBuffer) EstimatedSizeInBytes() int {
	size := 0
	for level := 0; level < t.numMipLevels; level++ {
		size += t.props.BytesPerRange(gltexture.FullRange(t, level, 1))
	}
	return size
}
