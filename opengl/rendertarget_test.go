package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/gltexture"
)

func newTestRenderTarget(t *testing.T, ctx *fakeContext, desc gltexture.TextureDescriptor) *RenderTarget {
	t.Helper()
	rt, err := newRenderTarget(ctx, desc.Normalize())
	if err != nil {
		t.Fatalf("creating render target: %v", err)
	}
	return rt
}

func depthTargetDesc() gltexture.TextureDescriptor {
	return gltexture.TextureDescriptor{
		Type:   gltexture.TextureType2D,
		Format: gltexture.FormatDepth24UnormStencil8,
		Usage:  gltexture.UsageAttachment,
		Width:  64, Height: 64,
	}
}

func TestRenderTargetCreate(t *testing.T) {
	ctx := newFakeContext()
	rt := newTestRenderTarget(t, ctx, depthTargetDesc())

	if rt.ID() == 0 {
		t.Error("expected a non-zero renderbuffer id")
	}
	if len(ctx.renderbuffers) != 1 {
		t.Fatalf("expected one storage allocation, got %d", len(ctx.renderbuffers))
	}
	rb := ctx.renderbuffers[0]
	if rb.fn != "RenderbufferStorage" || rb.internalFormat != gl.DEPTH24_STENCIL8 || rb.w != 64 {
		t.Errorf("unexpected allocation: %+v", rb)
	}
	if last := ctx.bindIDs[len(ctx.bindIDs)-1]; last != 0 {
		t.Errorf("expected trailing unbind, last bound id = %d", last)
	}
}

func TestRenderTargetMultisample(t *testing.T) {
	ctx := newFakeContext()
	desc := depthTargetDesc()
	desc.NumSamples = 4
	rt := newTestRenderTarget(t, ctx, desc)

	rb := ctx.renderbuffers[0]
	if rb.fn != "RenderbufferStorageMultisample" || rb.samples != 4 {
		t.Errorf("unexpected allocation: %+v", rb)
	}
	if rt.Samples() != 4 {
		t.Errorf("Samples() = %d", rt.Samples())
	}
}

func TestRenderTargetRejectsNon2D(t *testing.T) {
	ctx := newFakeContext()
	desc := depthTargetDesc()
	desc.Type = gltexture.TextureTypeCube
	_, err := newRenderTarget(ctx, desc.Normalize())
	wantCode(t, err, gltexture.CodeUnsupported)
}

func TestRenderTargetRejectsCompressedFormat(t *testing.T) {
	ctx := newFakeContext()
	desc := depthTargetDesc()
	desc.Format = gltexture.FormatETC2RGB8Unorm
	_, err := newRenderTarget(ctx, desc.Normalize())
	wantCode(t, err, gltexture.CodeArgumentInvalid)
}

func TestRenderTargetUploadInvalid(t *testing.T) {
	ctx := newFakeContext()
	rt := newTestRenderTarget(t, ctx, depthTargetDesc())

	err := rt.Upload(gltexture.New2D(0, 0, 64, 64), nil, 0)
	wantCode(t, err, gltexture.CodeInvalidOperation)

	err = rt.UploadCube(gltexture.New2D(0, 0, 64, 64), gltexture.CubeFacePositiveX, nil, 0)
	wantCode(t, err, gltexture.CodeInvalidOperation)

	err = rt.GenerateMipmap()
	wantCode(t, err, gltexture.CodeInvalidOperation)

	_, err = rt.PersistentHandle()
	wantCode(t, err, gltexture.CodeInvalidOperation)
}

func TestRenderTargetDestroyIdempotent(t *testing.T) {
	ctx := newFakeContext()
	rt := newTestRenderTarget(t, ctx, depthTargetDesc())

	rt.Destroy()
	rt.Destroy()
	if len(ctx.deletedRenderbuffer) != 1 {
		t.Errorf("expected one deletion, got %d", len(ctx.deletedRenderbuffer))
	}
	if rt.ID() != 0 {
		t.Error("id must read as zero after destruction")
	}
}
