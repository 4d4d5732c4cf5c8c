// Package gltexture provides GPU texture resource management for OpenGL.
//
// The package defines a backend-agnostic texture contract — pixel formats
// with block-layout arithmetic, texture descriptors, upload ranges, usage
// and capability bitsets, and the Texture and Device interfaces — and the
// opengl subpackage implements it against a narrow OpenGL capability
// surface. The split mirrors how a device abstraction supports several
// backends: the concrete backend is selected once, at device creation,
// never per call.
//
// # Creating a device
//
// Backends register themselves at init time. With an OpenGL context
// current on the calling goroutine:
//
//	import _ "github.com/gogpu/gltexture/opengl"
//
//	dev, err := gltexture.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Creating and uploading a texture
//
//	tex, err := dev.CreateTexture(gltexture.TextureDescriptor{
//		Type:   gltexture.TextureType2D,
//		Format: gltexture.FormatRGBA8Unorm,
//		Usage:  gltexture.UsageSampled,
//		Width:  256,
//		Height: 256,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tex.Destroy()
//
//	err = tex.Upload(gltexture.New2D(0, 0, 256, 256), pixels, 0)
//
// Uploads select their transfer path from the allocation strategy: a
// full-extent upload to a mutably allocated texture replaces the whole
// image, anything else updates a sub-region of existing storage. A nil
// data slice allocates storage without transferring bytes.
//
// # Threading model
//
// All operations assume the relevant GL context is current on the calling
// goroutine. The package performs no internal synchronization on the
// resource path; callers serialize access to a resource and its context
// externally. The registry and logger are safe for concurrent use.
//
// # Errors
//
// Operations report failure through error values carrying a result code
// (see [Code]). No GPU call is retried internally; any non-nil error
// means GPU-side content must not be assumed valid, while the resource
// itself stays safely destructible.
package gltexture
