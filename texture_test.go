package gltexture

import "testing"

// stubTexture implements Texture with fixed geometry and records the
// last upload it received.
type stubTexture struct {
	typ    TextureType
	format TextureFormat
	dims   Dimensions
	layers int
	mips   int

	uploads     int
	lastRange   TextureRange
	lastData    []byte
	lastStride  int
	uploadErr   error
}

func (s *stubTexture) Upload(r TextureRange, data []byte, bytesPerRow int) error {
	s.uploads++
	s.lastRange = r
	s.lastData = data
	s.lastStride = bytesPerRow
	return s.uploadErr
}

func (s *stubTexture) UploadCube(r TextureRange, face CubeFace, data []byte, bytesPerRow int) error {
	return s.Upload(r.AtFace(face), data, bytesPerRow)
}

func (s *stubTexture) Dimensions() Dimensions          { return s.dims }
func (s *stubTexture) Type() TextureType               { return s.typ }
func (s *stubTexture) Format() TextureFormat           { return s.format }
func (s *stubTexture) Usage() TextureUsage             { return UsageSampled }
func (s *stubTexture) NumLayers() int                  { return s.layers }
func (s *stubTexture) NumMipLevels() int               { return s.mips }
func (s *stubTexture) Samples() int                    { return 1 }
func (s *stubTexture) GenerateMipmap() error           { return nil }
func (s *stubTexture) PersistentHandle() (uint64, error) { return 0, nil }
func (s *stubTexture) EstimatedSizeInBytes() int       { return 0 }
func (s *stubTexture) Destroy()                        {}

func newStub2D(w, h, mips int) *stubTexture {
	return &stubTexture{
		typ:    TextureType2D,
		format: FormatRGBA8Unorm,
		dims:   Dimensions{Width: w, Height: h, Depth: 1},
		layers: 1,
		mips:   mips,
	}
}

func TestNumFaces(t *testing.T) {
	if NumFaces(newStub2D(4, 4, 1)) != 1 {
		t.Error("non-cube textures have one face")
	}
	cube := &stubTexture{typ: TextureTypeCube, dims: Dimensions{Width: 4, Height: 4, Depth: 1}, layers: 1, mips: 1}
	if NumFaces(cube) != NumCubeFaces {
		t.Error("cube textures have six faces")
	}
}

func TestFullRange(t *testing.T) {
	tex := newStub2D(16, 8, 5)

	r := FullRange(tex, 0, 1)
	if r.Width != 16 || r.Height != 8 || r.Depth != 1 || r.NumLayers != 1 || r.NumFaces != 1 {
		t.Errorf("FullRange level 0: %+v", r)
	}

	r = FullRange(tex, 2, 1)
	if r.Width != 4 || r.Height != 2 || r.MipLevel != 2 {
		t.Errorf("FullRange level 2: %+v", r)
	}

	// Past the smaller axis the extent clamps at 1.
	r = FullRange(tex, 4, 1)
	if r.Width != 1 || r.Height != 1 {
		t.Errorf("FullRange level 4: %+v", r)
	}
}

func TestCubeFaceRangeAndLayerRange(t *testing.T) {
	cube := &stubTexture{typ: TextureTypeCube, dims: Dimensions{Width: 8, Height: 8, Depth: 1}, layers: 1, mips: 1}
	r := CubeFaceRange(cube, CubeFacePositiveZ, 0)
	if r.Face != int(CubeFacePositiveZ) || r.NumFaces != 1 || r.Width != 8 {
		t.Errorf("CubeFaceRange: %+v", r)
	}

	arr := &stubTexture{typ: TextureType2DArray, dims: Dimensions{Width: 4, Height: 4, Depth: 1}, layers: 8, mips: 1}
	r = LayerRange(arr, 5, 0)
	if r.Layer != 5 || r.NumLayers != 1 {
		t.Errorf("LayerRange: %+v", r)
	}
}

func TestValidateRange(t *testing.T) {
	tex := newStub2D(16, 16, 3)

	cases := []struct {
		name string
		r    TextureRange
		code Code
	}{
		{"full extent", New2D(0, 0, 16, 16), CodeOk},
		{"interior", New2D(4, 4, 8, 8), CodeOk},
		{"touching the edge", New2D(8, 8, 8, 8), CodeOk},
		{"full extent at level 2", FullRange(newStub2D(16, 16, 3), 2, 1), CodeOk},
		{"zero width", New2D(0, 0, 0, 16), CodeArgumentInvalid},
		{"negative offset", New2D(-1, 0, 4, 4), CodeArgumentInvalid},
		{"zero mip span", New2D(0, 0, 4, 4).WithNumMipLevels(0), CodeArgumentInvalid},
		{"wider than the level", New2D(0, 0, 32, 4), CodeArgumentOutOfRange},
		{"offset pushes past the edge", New2D(12, 0, 8, 4), CodeArgumentOutOfRange},
		{"mip level past the chain", New2D(0, 0, 1, 1).AtMipLevel(3), CodeArgumentOutOfRange},
		{"too many layers", New2DArray(0, 0, 4, 4, 0, 2), CodeArgumentOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRange(tex, tc.r)
			if got := CodeOf(err); got != tc.code {
				t.Errorf("got %v (%v), want %v", got, err, tc.code)
			}
		})
	}
}

func TestValidateRangeCubeFaces(t *testing.T) {
	cube := &stubTexture{typ: TextureTypeCube, dims: Dimensions{Width: 8, Height: 8, Depth: 1}, layers: 1, mips: 1}

	if err := ValidateRange(cube, NewCube(0, 0, 8, 8)); err != nil {
		t.Errorf("all-face range: %v", err)
	}
	err := ValidateRange(cube, NewCubeFace(0, 0, 8, 8, CubeFaceNegativeZ).WithNumFaces(2))
	if CodeOf(err) != CodeArgumentOutOfRange {
		t.Errorf("face span past -Z must fail, got %v", err)
	}
}
