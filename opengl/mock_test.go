package opengl

import (
	"github.com/gogpu/gltexture"
)

// imageCall records one allocation or transfer primitive invocation,
// regardless of dimensionality or compression.
type imageCall struct {
	fn             string
	target         uint32
	level          int
	internalFormat uint32
	x, y, z        int
	w, h, d        int
	format, xtype  uint32
	size           int
	nilData        bool
}

// storageCall records one immutable storage reservation.
type storageCall struct {
	fn             string
	target         uint32
	levels         int
	internalFormat uint32
	w, h, d        int
}

// renderbufferCall records one renderbuffer storage allocation.
type renderbufferCall struct {
	fn             string
	samples        int
	internalFormat uint32
	w, h           int
}

// fakeContext is a recording Context. Every primitive appends to the
// ordered calls list; transfer and storage primitives also capture
// their arguments in typed records. Error fields inject failures.
type fakeContext struct {
	nextTexture      uint32
	nextRenderbuffer uint32

	calls []string

	bindTargets []uint32
	bindIDs     []uint32

	texParams       map[uint32]int32
	unpackAlignment int32

	images        []imageCall
	storages      []storageCall
	renderbuffers []renderbufferCall
	mipmapTargets []uint32

	deleted             []uint32
	deletedRenderbuffer []uint32

	handle          uint64
	handleResolved  int
	residentHandles []uint64
	released        []uint64

	major, minor int
	extensions   []string

	errTexImage    error
	errTexStorage  error
	errCompressed  error
	errGetHandle   error
	errResident    error
	errRenderbuf   error
	errGenerateMip error
}

var _ Context = (*fakeContext)(nil)

func newFakeContext() *fakeContext {
	return &fakeContext{
		texParams: make(map[uint32]int32),
		handle:    0xAB00,
		major:     4, minor: 6,
	}
}

func (c *fakeContext) record(name string) { c.calls = append(c.calls, name) }

func (c *fakeContext) GenTexture() uint32 {
	c.record("GenTexture")
	c.nextTexture++
	return c.nextTexture
}

func (c *fakeContext) DeleteTexture(id uint32) {
	c.record("DeleteTexture")
	c.deleted = append(c.deleted, id)
}

func (c *fakeContext) GenRenderbuffer() uint32 {
	c.record("GenRenderbuffer")
	c.nextRenderbuffer++
	return c.nextRenderbuffer + 100
}

func (c *fakeContext) DeleteRenderbuffer(id uint32) {
	c.record("DeleteRenderbuffer")
	c.deletedRenderbuffer = append(c.deletedRenderbuffer, id)
}

func (c *fakeContext) BindTexture(target, id uint32) {
	c.record("BindTexture")
	c.bindTargets = append(c.bindTargets, target)
	c.bindIDs = append(c.bindIDs, id)
}

func (c *fakeContext) BindRenderbuffer(target, id uint32) {
	c.record("BindRenderbuffer")
	c.bindTargets = append(c.bindTargets, target)
	c.bindIDs = append(c.bindIDs, id)
}

func (c *fakeContext) TexParameteri(target, pname uint32, param int32) {
	c.record("TexParameteri")
	c.texParams[pname] = param
}

func (c *fakeContext) PixelStorei(pname uint32, param int32) {
	c.record("PixelStorei")
	c.unpackAlignment = param
}

func (c *fakeContext) image(call imageCall, err error) error {
	c.record(call.fn)
	c.images = append(c.images, call)
	return err
}

func (c *fakeContext) TexImage1D(target uint32, level int, internalFormat uint32, width int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexImage1D", target: target, level: level, internalFormat: internalFormat,
		w: width, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) TexImage2D(target uint32, level int, internalFormat uint32, width, height int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexImage2D", target: target, level: level, internalFormat: internalFormat,
		w: width, h: height, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) TexImage3D(target uint32, level int, internalFormat uint32, width, height, depth int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexImage3D", target: target, level: level, internalFormat: internalFormat,
		w: width, h: height, d: depth, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) TexSubImage1D(target uint32, level, x, width int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexSubImage1D", target: target, level: level,
		x: x, w: width, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) TexSubImage2D(target uint32, level, x, y, width, height int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexSubImage2D", target: target, level: level,
		x: x, y: y, w: width, h: height, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) TexSubImage3D(target uint32, level, x, y, z, width, height, depth int, format, xtype uint32, data []byte) error {
	return c.image(imageCall{fn: "TexSubImage3D", target: target, level: level,
		x: x, y: y, z: z, w: width, h: height, d: depth, format: format, xtype: xtype, nilData: data == nil}, c.errTexImage)
}

func (c *fakeContext) CompressedTexImage1D(target uint32, level int, internalFormat uint32, width, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexImage1D", target: target, level: level, internalFormat: internalFormat,
		w: width, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) CompressedTexImage2D(target uint32, level int, internalFormat uint32, width, height, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexImage2D", target: target, level: level, internalFormat: internalFormat,
		w: width, h: height, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) CompressedTexImage3D(target uint32, level int, internalFormat uint32, width, height, depth, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexImage3D", target: target, level: level, internalFormat: internalFormat,
		w: width, h: height, d: depth, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) CompressedTexSubImage1D(target uint32, level, x, width int, internalFormat uint32, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexSubImage1D", target: target, level: level, internalFormat: internalFormat,
		x: x, w: width, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) CompressedTexSubImage2D(target uint32, level, x, y, width, height int, internalFormat uint32, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexSubImage2D", target: target, level: level, internalFormat: internalFormat,
		x: x, y: y, w: width, h: height, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) CompressedTexSubImage3D(target uint32, level, x, y, z, width, height, depth int, internalFormat uint32, size int, data []byte) error {
	return c.image(imageCall{fn: "CompressedTexSubImage3D", target: target, level: level, internalFormat: internalFormat,
		x: x, y: y, z: z, w: width, h: height, d: depth, size: size, nilData: data == nil}, c.errCompressed)
}

func (c *fakeContext) TexStorage2D(target uint32, levels int, internalFormat uint32, width, height int) error {
	c.record("TexStorage2D")
	c.storages = append(c.storages, storageCall{fn: "TexStorage2D", target: target, levels: levels,
		internalFormat: internalFormat, w: width, h: height})
	return c.errTexStorage
}

func (c *fakeContext) TexStorage3D(target uint32, levels int, internalFormat uint32, width, height, depth int) error {
	c.record("TexStorage3D")
	c.storages = append(c.storages, storageCall{fn: "TexStorage3D", target: target, levels: levels,
		internalFormat: internalFormat, w: width, h: height, d: depth})
	return c.errTexStorage
}

func (c *fakeContext) RenderbufferStorage(target, internalFormat uint32, width, height int) error {
	c.record("RenderbufferStorage")
	c.renderbuffers = append(c.renderbuffers, renderbufferCall{fn: "RenderbufferStorage",
		internalFormat: internalFormat, w: width, h: height})
	return c.errRenderbuf
}

func (c *fakeContext) RenderbufferStorageMultisample(target uint32, samples int, internalFormat uint32, width, height int) error {
	c.record("RenderbufferStorageMultisample")
	c.renderbuffers = append(c.renderbuffers, renderbufferCall{fn: "RenderbufferStorageMultisample",
		samples: samples, internalFormat: internalFormat, w: width, h: height})
	return c.errRenderbuf
}

func (c *fakeContext) GenerateMipmap(target uint32) error {
	c.record("GenerateMipmap")
	c.mipmapTargets = append(c.mipmapTargets, target)
	return c.errGenerateMip
}

func (c *fakeContext) GetTextureHandle(id uint32) (uint64, error) {
	c.record("GetTextureHandle")
	c.handleResolved++
	if c.errGetHandle != nil {
		return 0, c.errGetHandle
	}
	return c.handle, nil
}

func (c *fakeContext) MakeTextureHandleResident(handle uint64) error {
	c.record("MakeTextureHandleResident")
	if c.errResident != nil {
		return c.errResident
	}
	c.residentHandles = append(c.residentHandles, handle)
	return nil
}

func (c *fakeContext) MakeTextureHandleNonResident(handle uint64) {
	c.record("MakeTextureHandleNonResident")
	c.released = append(c.released, handle)
}

func (c *fakeContext) Version() (major, minor int) { return c.major, c.minor }

func (c *fakeContext) Extensions() []string { return c.extensions }

// stubFeatures is a DeviceFeatures with every answer pinned by a field.
type stubFeatures struct {
	texStorage        bool
	compressedImage   bool
	compressedStorage bool
	bindless          bool
	alphaSwizzle      bool
	deniedTypes       map[gltexture.TextureType]bool
	extraStorageCaps  map[gltexture.TextureFormat]bool
}

var _ DeviceFeatures = (*stubFeatures)(nil)

// allFeatures returns a stub with every capability granted.
func allFeatures() *stubFeatures {
	return &stubFeatures{
		texStorage:        true,
		compressedImage:   true,
		compressedStorage: true,
		bindless:          true,
	}
}

func (f *stubFeatures) HasTexStorage() bool          { return f.texStorage }
func (f *stubFeatures) HasCompressedTexImage() bool  { return f.compressedImage }
func (f *stubFeatures) HasCompressedTexStorage() bool {
	return f.compressedStorage
}
func (f *stubFeatures) HasBindlessTextures() bool { return f.bindless }

func (f *stubFeatures) SupportsType(t gltexture.TextureType) bool {
	if t == gltexture.TextureTypeInvalid {
		return false
	}
	return !f.deniedTypes[t]
}

func (f *stubFeatures) FormatCapabilities(format gltexture.TextureFormat) gltexture.FormatCapabilities {
	if format == gltexture.FormatInvalid {
		return 0
	}
	caps := gltexture.FormatCapabilitySampled
	if f.texStorage && (storageImageCapable(format) || f.extraStorageCaps[format]) {
		caps |= gltexture.FormatCapabilityStorage
	}
	return caps
}

func (f *stubFeatures) RequiresAlphaSwizzle(format gltexture.TextureFormat) bool {
	return f.alphaSwizzle && format == gltexture.FormatA8Unorm
}
