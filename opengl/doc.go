// Package opengl implements the gltexture contract on OpenGL.
//
// The package talks to the GPU through [Context], a narrow capability
// interface over the texture-related GL entry points. [NewGLContext]
// returns the production implementation backed by go-gl; tests and
// embedders may substitute their own. The OpenGL error-polling model
// (glGetError after each call) is an internal translation detail of that
// implementation: every Context primitive returns an error directly.
//
// Importing the package registers the "opengl" backend with the
// gltexture registry:
//
//	import _ "github.com/gogpu/gltexture/opengl"
//
// All calls assume the GL context that was current at device creation is
// current on the calling goroutine. The package performs no internal
// synchronization.
package opengl
