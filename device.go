package gltexture

// FormatCapabilities is a bitset of operations a backend supports for a
// specific pixel format.
type FormatCapabilities uint8

const (
	// FormatCapabilitySampled: the format can be sampled in shaders.
	FormatCapabilitySampled FormatCapabilities = 1 << iota

	// FormatCapabilityFiltered: the format supports linear filtering.
	FormatCapabilityFiltered

	// FormatCapabilityStorage: the format can back a shader storage
	// image, and qualifies for immutable pre-reserved allocation.
	FormatCapabilityStorage

	// FormatCapabilityAttachment: the format can back a render target
	// attachment.
	FormatCapabilityAttachment
)

// Has reports whether all bits of want are present.
func (c FormatCapabilities) Has(want FormatCapabilities) bool { return c&want == want }

// Device creates texture resources for one backend. A Device is bound to
// the context that was current when it was created; all methods require
// that context to be current on the calling goroutine.
type Device interface {
	// Name returns the backend identifier (e.g. "opengl").
	Name() string

	// CreateTexture allocates a texture for the descriptor.
	//
	// Validation failures return (nil, err) with nothing allocated. A
	// failure during mip-chain initialization returns both a usable
	// handle and an error: the backend object exists and must be
	// destroyed by the caller, but its content is undefined.
	CreateTexture(desc TextureDescriptor) (Texture, error)

	// SupportsType reports whether the backend supports the
	// dimensionality.
	SupportsType(t TextureType) bool

	// FormatCapabilities returns the backend's capability bitset for
	// the format.
	FormatCapabilities(f TextureFormat) FormatCapabilities
}
