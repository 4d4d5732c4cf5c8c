package opengl

import (
	"github.com/gogpu/gltexture"
)

// Device creates texture resources against one OpenGL context. Its
// capability answers are fixed at creation from the context's version
// and extension list.
type Device struct {
	ctx      Context
	features DeviceFeatures
}

var _ gltexture.Device = (*Device)(nil)

func init() {
	gltexture.Register(gltexture.BackendOpenGL, func() (gltexture.Device, error) {
		ctx, err := NewGLContext()
		if err != nil {
			return nil, err
		}
		return NewDevice(ctx), nil
	})
}

// NewDevice returns a device for ctx, probing capabilities from the
// context's version and extension list.
func NewDevice(ctx Context) *Device {
	return NewDeviceWithFeatures(ctx, newGLFeatures(ctx))
}

// NewDeviceWithFeatures returns a device with an explicit capability
// set. Production code uses NewDevice; this entry point exists so the
// capability surface can be pinned independently of a live context.
func NewDeviceWithFeatures(ctx Context, features DeviceFeatures) *Device {
	major, minor := ctx.Version()
	gltexture.Logger().Info("opengl device created", "glVersion", major*10+minor)
	return &Device{ctx: ctx, features: features}
}

func (d *Device) Name() string { return gltexture.BackendOpenGL }

// CreateTexture allocates a texture resource for the descriptor.
// Attachment-only 2D single-level textures are backed by a
// renderbuffer; everything else gets a texture object.
//
// Validation failures return (nil, err). When the backend object was
// created but initializing its storage failed, both the resource and
// the error are returned and the caller must destroy the resource.
func (d *Device) CreateTexture(desc gltexture.TextureDescriptor) (gltexture.Texture, error) {
	desc = desc.Normalize()
	if desc.Format == gltexture.FormatInvalid {
		return nil, gltexture.NewError(gltexture.CodeArgumentInvalid, "invalid texture format")
	}

	if d.isAttachmentOnly(desc) {
		t, err := newRenderTarget(d.ctx, desc)
		return created(t, err, t.id != 0)
	}
	t, err := newTextureBuffer(d.ctx, d.features, desc)
	return created(t, err, t.id != 0)
}

// created collapses the three outcomes of resource construction: clean
// success, validation failure with nothing allocated, and allocation
// failure with a live object the caller must destroy.
func created(t gltexture.Texture, err error, allocated bool) (gltexture.Texture, error) {
	if err == nil {
		return t, nil
	}
	if !allocated {
		return nil, err
	}
	return t, err
}

// isAttachmentOnly reports whether the descriptor asks for a pure render
// target: attachment usage with neither sampling nor storage, 2D, one
// mip level. Renderbuffers trade CPU access for a cheaper allocation.
func (d *Device) isAttachmentOnly(desc gltexture.TextureDescriptor) bool {
	return desc.Usage&gltexture.UsageAttachment != 0 &&
		desc.Usage&(gltexture.UsageSampled|gltexture.UsageStorage) == 0 &&
		desc.Type == gltexture.TextureType2D &&
		desc.NumMipLevels == 1
}

func (d *Device) SupportsType(t gltexture.TextureType) bool {
	return d.features.SupportsType(t)
}

func (d *Device) FormatCapabilities(f gltexture.TextureFormat) gltexture.FormatCapabilities {
	return d.features.FormatCapabilities(f)
}
