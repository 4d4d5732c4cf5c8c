package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/gltexture"
)

// glNone is the GL_NONE value, used where an enum slot is intentionally
// empty (e.g. the component type of compressed formats).
const glNone uint32 = 0

// Context is the capability surface this package needs from an OpenGL
// context. It covers object lifetime, binding, pixel-store state, the
// allocation and transfer entry points, bindless residency and the
// queries used for feature probing — nothing else.
//
// Allocation and transfer primitives return the translated GL error
// state of the call; fixed-state setters (bind, parameter, pixel store)
// do not fail outside of programming errors and return nothing.
type Context interface {
	// Object lifetime.
	GenTexture() uint32
	DeleteTexture(id uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)

	// Binding and fixed state.
	BindTexture(target, id uint32)
	BindRenderbuffer(target, id uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)

	// Image allocation and transfer. A nil data slice allocates storage
	// without transferring bytes.
	TexImage1D(target uint32, level int, internalFormat uint32, width int, format, xtype uint32, data []byte) error
	TexImage2D(target uint32, level int, internalFormat uint32, width, height int, format, xtype uint32, data []byte) error
	TexImage3D(target uint32, level int, internalFormat uint32, width, height, depth int, format, xtype uint32, data []byte) error
	TexSubImage1D(target uint32, level, x, width int, format, xtype uint32, data []byte) error
	TexSubImage2D(target uint32, level, x, y, width, height int, format, xtype uint32, data []byte) error
	TexSubImage3D(target uint32, level, x, y, z, width, height, depth int, format, xtype uint32, data []byte) error

	// Compressed transfer. size is the block-computed byte length.
	CompressedTexImage1D(target uint32, level int, internalFormat uint32, width, size int, data []byte) error
	CompressedTexImage2D(target uint32, level int, internalFormat uint32, width, height, size int, data []byte) error
	CompressedTexImage3D(target uint32, level int, internalFormat uint32, width, height, depth, size int, data []byte) error
	CompressedTexSubImage1D(target uint32, level, x, width int, internalFormat uint32, size int, data []byte) error
	CompressedTexSubImage2D(target uint32, level, x, y, width, height int, internalFormat uint32, size int, data []byte) error
	CompressedTexSubImage3D(target uint32, level, x, y, z, width, height, depth int, internalFormat uint32, size int, data []byte) error

	// Immutable storage reservation.
	TexStorage2D(target uint32, levels int, internalFormat uint32, width, height int) error
	TexStorage3D(target uint32, levels int, internalFormat uint32, width, height, depth int) error

	// Renderbuffer storage.
	RenderbufferStorage(target, internalFormat uint32, width, height int) error
	RenderbufferStorageMultisample(target uint32, samples int, internalFormat uint32, width, height int) error

	// Mip generation.
	GenerateMipmap(target uint32) error

	// Bindless residency.
	GetTextureHandle(id uint32) (uint64, error)
	MakeTextureHandleResident(handle uint64) error
	MakeTextureHandleNonResident(handle uint64)

	// Probing.
	Version() (major, minor int)
	Extensions() []string
}

// glContext is the production Context backed by go-gl.
type glContext struct{}

// NewGLContext initializes the go-gl function pointers against the GL
// context current on the calling goroutine and returns the production
// Context. It fails if no context is current or the context cannot be
// loaded.
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, gltexture.Errorf(gltexture.CodeUnsupported, "opengl: loading context: %v", err)
	}
	return glContext{}, nil
}

// lastError drains the GL error state of the preceding call and
// translates it to a result code. This is the only place the poll-style
// GL error model surfaces; callers see plain error returns.
func lastError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	// Drain any additional flags so they cannot leak into an unrelated
	// later call.
	for gl.GetError() != gl.NO_ERROR {
	}
	switch code {
	case gl.INVALID_ENUM:
		return gltexture.Errorf(gltexture.CodeArgumentInvalid, "%s: GL_INVALID_ENUM", op)
	case gl.INVALID_VALUE:
		return gltexture.Errorf(gltexture.CodeArgumentOutOfRange, "%s: GL_INVALID_VALUE", op)
	case gl.INVALID_OPERATION:
		return gltexture.Errorf(gltexture.CodeInvalidOperation, "%s: GL_INVALID_OPERATION", op)
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return gltexture.Errorf(gltexture.CodeInvalidOperation, "%s: GL_INVALID_FRAMEBUFFER_OPERATION", op)
	case gl.OUT_OF_MEMORY:
		return gltexture.Errorf(gltexture.CodeInternal, "%s: GL_OUT_OF_MEMORY", op)
	}
	return gltexture.Errorf(gltexture.CodeInternal, "%s: GL error 0x%04x", op, code)
}

// dataPtr returns the GL pointer for an upload slice; nil slices map to
// a null pointer, which GL treats as allocate-only.
func dataPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (glContext) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (glContext) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (glContext) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (glContext) DeleteRenderbuffer(id uint32) {
	gl.DeleteRenderbuffers(1, &id)
}

func (glContext) BindTexture(target, id uint32) {
	gl.BindTexture(target, id)
}

func (glContext) BindRenderbuffer(target, id uint32) {
	gl.BindRenderbuffer(target, id)
}

func (glContext) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (glContext) PixelStorei(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

func (glContext) TexImage1D(target uint32, level int, internalFormat uint32, width int, format, xtype uint32, data []byte) error {
	gl.TexImage1D(target, int32(level), int32(internalFormat), int32(width), 0, format, xtype, dataPtr(data))
	return lastError("glTexImage1D")
}

func (glContext) TexImage2D(target uint32, level int, internalFormat uint32, width, height int, format, xtype uint32, data []byte) error {
	gl.TexImage2D(target, int32(level), int32(internalFormat), int32(width), int32(height), 0, format, xtype, dataPtr(data))
	return lastError("glTexImage2D")
}

func (glContext) TexImage3D(target uint32, level int, internalFormat uint32, width, height, depth int, format, xtype uint32, data []byte) error {
	gl.TexImage3D(target, int32(level), int32(internalFormat), int32(width), int32(height), int32(depth), 0, format, xtype, dataPtr(data))
	return lastError("glTexImage3D")
}

func (glContext) TexSubImage1D(target uint32, level, x, width int, format, xtype uint32, data []byte) error {
	gl.TexSubImage1D(target, int32(level), int32(x), int32(width), format, xtype, dataPtr(data))
	return lastError("glTexSubImage1D")
}

func (glContext) TexSubImage2D(target uint32, level, x, y, width, height int, format, xtype uint32, data []byte) error {
	gl.TexSubImage2D(target, int32(level), int32(x), int32(y), int32(width), int32(height), format, xtype, dataPtr(data))
	return lastError("glTexSubImage2D")
}

func (glContext) TexSubImage3D(target uint32, level, x, y, z, width, height, depth int, format, xtype uint32, data []byte) error {
	gl.TexSubImage3D(target, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), format, xtype, dataPtr(data))
	return lastError("glTexSubImage3D")
}

func (glContext) CompressedTexImage1D(target uint32, level int, internalFormat uint32, width, size int, data []byte) error {
	gl.CompressedTexImage1D(target, int32(level), internalFormat, int32(width), 0, int32(size), dataPtr(data))
	return lastError("glCompressedTexImage1D")
}

func (glContext) CompressedTexImage2D(target uint32, level int, internalFormat uint32, width, height, size int, data []byte) error {
	gl.CompressedTexImage2D(target, int32(level), internalFormat, int32(width), int32(height), 0, int32(size), dataPtr(data))
	return lastError("glCompressedTexImage2D")
}

func (glContext) CompressedTexImage3D(target uint32, level int, internalFormat uint32, width, height, depth, size int, data []byte) error {
	gl.CompressedTexImage3D(target, int32(level), internalFormat, int32(width), int32(height), int32(depth), 0, int32(size), dataPtr(data))
	return lastError("glCompressedTexImage3D")
}

func (glContext) CompressedTexSubImage1D(target uint32, level, x, width int, internalFormat uint32, size int, data []byte) error {
	gl.CompressedTexSubImage1D(target, int32(level), int32(x), int32(width), internalFormat, int32(size), dataPtr(data))
	return lastError("glCompressedTexSubImage1D")
}

func (glContext) CompressedTexSubImage2D(target uint32, level, x, y, width, height int, internalFormat uint32, size int, data []byte) error {
	gl.CompressedTexSubImage2D(target, int32(level), int32(x), int32(y), int32(width), int32(height), internalFormat, int32(size), dataPtr(data))
	return lastError("glCompressedTexSubImage2D")
}

func (glContext) CompressedTexSubImage3D(target uint32, level, x, y, z, width, height, depth int, internalFormat uint32, size int, data []byte) error {
	gl.CompressedTexSubImage3D(target, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), internalFormat, int32(size), dataPtr(data))
	return lastError("glCompressedTexSubImage3D")
}

func (glContext) TexStorage2D(target uint32, levels int, internalFormat uint32, width, height int) error {
	gl.TexStorage2D(target, int32(levels), internalFormat, int32(width), int32(height))
	return lastError("glTexStorage2D")
}

func (glContext) TexStorage3D(target uint32, levels int, internalFormat uint32, width, height, depth int) error {
	gl.TexStorage3D(target, int32(levels), internalFormat, int32(width), int32(height), int32(depth))
	return lastError("glTexStorage3D")
}

func (glContext) RenderbufferStorage(target, internalFormat uint32, width, height int) error {
	gl.RenderbufferStorage(target, internalFormat, int32(width), int32(height))
	return lastError("glRenderbufferStorage")
}

func (glContext) RenderbufferStorageMultisample(target uint32, samples int, internalFormat uint32, width, height int) error {
	gl.RenderbufferStorageMultisample(target, int32(samples), internalFormat, int32(width), int32(height))
	return lastError("glRenderbufferStorageMultisample")
}

func (glContext) GenerateMipmap(target uint32) error {
	gl.GenerateMipmap(target)
	return lastError("glGenerateMipmap")
}

func (glContext) GetTextureHandle(id uint32) (uint64, error) {
	handle := gl.GetTextureHandleARB(id)
	if err := lastError("glGetTextureHandleARB"); err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, gltexture.NewError(gltexture.CodeInternal, "glGetTextureHandleARB returned 0")
	}
	return handle, nil
}

func (glContext) MakeTextureHandleResident(handle uint64) error {
	gl.MakeTextureHandleResidentARB(handle)
	return lastError("glMakeTextureHandleResidentARB")
}

func (glContext) MakeTextureHandleNonResident(handle uint64) {
	gl.MakeTextureHandleNonResidentARB(handle)
	// Residency release happens during destruction; drain rather than
	// propagate so a stale flag cannot leak into a later call.
	if err := lastError("glMakeTextureHandleNonResidentARB"); err != nil {
		gltexture.Logger().Warn("releasing bindless handle", "error", err)
	}
}

func (glContext) Version() (major, minor int) {
	var maj, min int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &maj)
	gl.GetIntegerv(gl.MINOR_VERSION, &min)
	return int(maj), int(min)
}

func (glContext) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	out := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return out
}
