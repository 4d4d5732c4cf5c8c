package opengl

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/gltexture"
)

// RenderTarget is an attachment-only resource backed by a GL
// renderbuffer. Renderbuffers cannot be sampled or written from the CPU;
// upload and bindless operations fail with CodeInvalidOperation.
type RenderTarget struct {
	ctx Context

	id uint32

	format gltexture.TextureFormat
	usage  gltexture.TextureUsage

	width, height int
	samples       int

	props gltexture.FormatProperties

	debugName string
}

var _ gltexture.Texture = (*RenderTarget)(nil)

// newRenderTarget allocates renderbuffer storage for the (already
// normalized) descriptor. Allocation failures return both the resource
// and the error; the caller owns the object and must destroy it.
func newRenderTarget(ctx Context, desc gltexture.TextureDescriptor) (*RenderTarget, error) {
	t := &RenderTarget{
		ctx:       ctx,
		format:    desc.Format,
		usage:     desc.Usage,
		width:     desc.Width,
		height:    desc.Height,
		samples:   desc.NumSamples,
		props:     desc.Format.Properties(),
		debugName: desc.DebugName,
	}
	if err := t.create(desc); err != nil {
		return t, err
	}
	return t, nil
}

func (t *RenderTarget) create(desc gltexture.TextureDescriptor) error {
	if err := validateDescriptor(desc); err != nil {
		return err
	}
	if desc.Type != gltexture.TextureType2D {
		return gltexture.NewError(gltexture.CodeUnsupported,
			"attachment-only textures must be 2D")
	}
	if desc.NumMipLevels != 1 {
		return gltexture.NewError(gltexture.CodeUnsupported,
			"attachment-only textures cannot have mip chains")
	}

	internalFormat, ok := toRenderBufferFormatGL(desc.Format, desc.Usage)
	if !ok {
		return gltexture.NewError(gltexture.CodeArgumentInvalid, "invalid attachment format")
	}

	t.id = t.ctx.GenRenderbuffer()
	t.ctx.BindRenderbuffer(gl.RENDERBUFFER, t.id)
	defer t.ctx.BindRenderbuffer(gl.RENDERBUFFER, glNone)

	if t.samples > 1 {
		return t.ctx.RenderbufferStorageMultisample(gl.RENDERBUFFER, t.samples, internalFormat, t.width, t.height)
	}
	return t.ctx.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, t.width, t.height)
}

func (t *RenderTarget) Upload(gltexture.TextureRange, []byte, int) error {
	return gltexture.NewError(gltexture.CodeInvalidOperation,
		"attachment-only textures cannot be uploaded to")
}

func (t *RenderTarget) UploadCube(gltexture.TextureRange, gltexture.CubeFace, []byte, int) error {
	return gltexture.NewError(gltexture.CodeInvalidOperation,
		"attachment-only textures cannot be uploaded to")
}

func (t *RenderTarget) GenerateMipmap() error {
	return gltexture.NewError(gltexture.CodeInvalidOperation,
		"attachment-only textures have no mip chain")
}

func (t *RenderTarget) PersistentHandle() (uint64, error) {
	return 0, gltexture.NewError(gltexture.CodeInvalidOperation,
		"attachment-only textures cannot be made bindless")
}

func (t *RenderTarget) Destroy() {
	if t.id == 0 {
		return
	}
	t.ctx.DeleteRenderbuffer(t.id)
	t.id = 0
}

func (t *RenderTarget) Dimensions() gltexture.Dimensions {
	return gltexture.Dimensions{Width: t.width, Height: t.height, Depth: 1}
}

func (t *RenderTarget) Type() gltexture.TextureType     { return gltexture.TextureType2D }
func (t *RenderTarget) Format() gltexture.TextureFormat { return t.format }
func (t *RenderTarget) Usage() gltexture.TextureUsage   { return t.usage }
func (t *RenderTarget) NumLayers() int                  { return 1 }
func (t *RenderTarget) NumMipLevels() int               { return 1 }
func (t *RenderTarget) Samples() int                    { return t.samples }

// ID returns the GL renderbuffer name, or 0 after Destroy.
func (t *RenderTarget) ID() uint32 { return t.id }

func (t *RenderTarget) EstimatedSizeInBytes() int {
	return t.props.BytesPerRange(gltexture.New2D(0, 0, t.width, t.height)) * max(t.samples, 1)
}
