package gltexture

// TextureFormat is a logical pixel format. The backend resolves it,
// together with the usage intent, to a concrete storage encoding and
// transfer layout.
type TextureFormat uint8

const (
	FormatInvalid TextureFormat = iota

	// 8-bit single and dual channel.
	FormatA8Unorm
	FormatL8Unorm
	FormatR8Unorm
	FormatRG8Unorm

	// 16-bit single channel.
	FormatR16Float
	FormatR16Uint
	FormatR16Unorm

	// 32-bit packed color.
	FormatRGBA8Unorm
	FormatBGRA8Unorm
	FormatRGBA8UnormSrgb
	FormatBGRA8UnormSrgb
	FormatRGB10A2Unorm
	FormatRG16Float

	// Wide color.
	FormatR32Float
	FormatRGBA16Float
	FormatRGBA32Float

	// Block compressed.
	FormatETC2RGB8Unorm
	FormatETC2RGB8UnormSrgb
	FormatETC2RGBA8Unorm
	FormatEACR11Unorm
	FormatEACRG11Unorm
	FormatASTC4x4Unorm
	FormatASTC4x4UnormSrgb
	FormatBC7Unorm

	// Depth and stencil.
	FormatDepth16Unorm
	FormatDepth24Unorm
	FormatDepth32Unorm
	FormatDepth24UnormStencil8
	FormatStencil8

	formatCount
)

// FormatFlags classify properties of a pixel format.
type FormatFlags uint8

const (
	// FormatFlagCompressed marks a block-compressed format.
	FormatFlagCompressed FormatFlags = 1 << iota

	// FormatFlagDepth marks a format with a depth aspect.
	FormatFlagDepth

	// FormatFlagStencil marks a format with a stencil aspect.
	FormatFlagStencil

	// FormatFlagSRGB marks a format with sRGB-encoded color channels.
	FormatFlagSRGB
)

// FormatProperties describes the memory layout of a pixel format. For
// uncompressed formats the block is a single texel; for compressed
// formats it covers BlockWidth x BlockHeight x BlockDepth texels and
// regions round up to whole blocks, clamped to the minimum block counts.
type FormatProperties struct {
	Name               string
	Format             TextureFormat
	ComponentsPerPixel uint8
	BytesPerBlock      uint8
	BlockWidth         uint8
	BlockHeight        uint8
	BlockDepth         uint8
	MinBlocksX         uint8
	MinBlocksY         uint8
	MinBlocksZ         uint8
	Flags              FormatFlags
}

// color returns properties for an uncompressed color format.
func color(name string, f TextureFormat, cpp, bpb uint8, flags FormatFlags) FormatProperties {
	return FormatProperties{
		Name: name, Format: f,
		ComponentsPerPixel: cpp, BytesPerBlock: bpb,
		BlockWidth: 1, BlockHeight: 1, BlockDepth: 1,
		MinBlocksX: 1, MinBlocksY: 1, MinBlocksZ: 1,
		Flags: flags,
	}
}

// compressed returns properties for a block-compressed format.
func compressed(name string, f TextureFormat, cpp, bpb, bw, bh uint8, flags FormatFlags) FormatProperties {
	return FormatProperties{
		Name: name, Format: f,
		ComponentsPerPixel: cpp, BytesPerBlock: bpb,
		BlockWidth: bw, BlockHeight: bh, BlockDepth: 1,
		MinBlocksX: 1, MinBlocksY: 1, MinBlocksZ: 1,
		Flags: flags | FormatFlagCompressed,
	}
}

var formatProperties = [formatCount]FormatProperties{
	FormatInvalid: color("Invalid", FormatInvalid, 1, 1, 0),

	FormatA8Unorm:  color("A8Unorm", FormatA8Unorm, 1, 1, 0),
	FormatL8Unorm:  color("L8Unorm", FormatL8Unorm, 1, 1, 0),
	FormatR8Unorm:  color("R8Unorm", FormatR8Unorm, 1, 1, 0),
	FormatRG8Unorm: color("RG8Unorm", FormatRG8Unorm, 2, 2, 0),

	FormatR16Float: color("R16Float", FormatR16Float, 1, 2, 0),
	FormatR16Uint:  color("R16Uint", FormatR16Uint, 1, 2, 0),
	FormatR16Unorm: color("R16Unorm", FormatR16Unorm, 1, 2, 0),

	FormatRGBA8Unorm:     color("RGBA8Unorm", FormatRGBA8Unorm, 4, 4, 0),
	FormatBGRA8Unorm:     color("BGRA8Unorm", FormatBGRA8Unorm, 4, 4, 0),
	FormatRGBA8UnormSrgb: color("RGBA8UnormSrgb", FormatRGBA8UnormSrgb, 4, 4, FormatFlagSRGB),
	FormatBGRA8UnormSrgb: color("BGRA8UnormSrgb", FormatBGRA8UnormSrgb, 4, 4, FormatFlagSRGB),
	FormatRGB10A2Unorm:   color("RGB10A2Unorm", FormatRGB10A2Unorm, 4, 4, 0),
	FormatRG16Float:      color("RG16Float", FormatRG16Float, 2, 4, 0),

	FormatR32Float:    color("R32Float", FormatR32Float, 1, 4, 0),
	FormatRGBA16Float: color("RGBA16Float", FormatRGBA16Float, 4, 8, 0),
	FormatRGBA32Float: color("RGBA32Float", FormatRGBA32Float, 4, 16, 0),

	FormatETC2RGB8Unorm:     compressed("ETC2RGB8Unorm", FormatETC2RGB8Unorm, 3, 8, 4, 4, 0),
	FormatETC2RGB8UnormSrgb: compressed("ETC2RGB8UnormSrgb", FormatETC2RGB8UnormSrgb, 3, 8, 4, 4, FormatFlagSRGB),
	FormatETC2RGBA8Unorm:    compressed("ETC2RGBA8Unorm", FormatETC2RGBA8Unorm, 4, 16, 4, 4, 0),
	FormatEACR11Unorm:       compressed("EACR11Unorm", FormatEACR11Unorm, 1, 8, 4, 4, 0),
	FormatEACRG11Unorm:      compressed("EACRG11Unorm", FormatEACRG11Unorm, 2, 16, 4, 4, 0),
	FormatASTC4x4Unorm:      compressed("ASTC4x4Unorm", FormatASTC4x4Unorm, 4, 16, 4, 4, 0),
	FormatASTC4x4UnormSrgb:  compressed("ASTC4x4UnormSrgb", FormatASTC4x4UnormSrgb, 4, 16, 4, 4, FormatFlagSRGB),
	FormatBC7Unorm:          compressed("BC7Unorm", FormatBC7Unorm, 4, 16, 4, 4, 0),

	FormatDepth16Unorm: color("Depth16Unorm", FormatDepth16Unorm, 1, 2, FormatFlagDepth),
	FormatDepth24Unorm: color("Depth24Unorm", FormatDepth24Unorm, 1, 3, FormatFlagDepth),
	FormatDepth32Unorm: color("Depth32Unorm", FormatDepth32Unorm, 1, 4, FormatFlagDepth),
	FormatDepth24UnormStencil8: color("Depth24UnormStencil8", FormatDepth24UnormStencil8, 2, 4,
		FormatFlagDepth|FormatFlagStencil),
	FormatStencil8: color("Stencil8", FormatStencil8, 1, 1, FormatFlagStencil),
}

// Properties returns the memory-layout properties of f. Unknown values
// yield the FormatInvalid entry.
func (f TextureFormat) Properties() FormatProperties {
	if f >= formatCount {
		return formatProperties[FormatInvalid]
	}
	return formatProperties[f]
}

// String returns the format's name.
func (f TextureFormat) String() string { return f.Properties().Name }

// IsCompressed reports whether the format is block compressed.
func (p FormatProperties) IsCompressed() bool { return p.Flags&FormatFlagCompressed != 0 }

// IsDepthOrStencil reports whether the format has a depth or stencil aspect.
func (p FormatProperties) IsDepthOrStencil() bool {
	return p.Flags&(FormatFlagDepth|FormatFlagStencil) != 0
}

// IsSRGB reports whether the format stores sRGB-encoded color.
func (p FormatProperties) IsSRGB() bool { return p.Flags&FormatFlagSRGB != 0 }

// blocks rounds a texel count up to whole blocks, clamped below by min.
func blocks(texels int, blockSize, minBlocks uint8) int {
	return max((texels+int(blockSize)-1)/int(blockSize), int(minBlocks))
}

// BytesPerRow returns the byte length of one row of the range. For
// compressed formats a row is one row of blocks.
func (p FormatProperties) BytesPerRow(r TextureRange) int {
	width := max(r.Width, 1)
	if p.IsCompressed() {
		return blocks(width, p.BlockWidth, p.MinBlocksX) * int(p.BytesPerBlock)
	}
	return width * int(p.BytesPerBlock)
}

// BytesPerRowForWidth returns the byte length of one row of width texels.
func (p FormatProperties) BytesPerRowForWidth(width int) int {
	return p.BytesPerRow(New1D(0, width))
}

// Rows returns the number of rows spanned by the range, across depth,
// faces and layers. For compressed formats rows are counted in blocks.
func (p FormatProperties) Rows(r TextureRange) int {
	if r.NumMipLevels == 1 {
		rows := max(r.Height, 1)
		if p.IsCompressed() {
			rows = blocks(rows, p.BlockHeight, p.MinBlocksY)
		}
		return rows * max(r.Depth, 1) * max(r.NumFaces, 1) * max(r.NumLayers, 1)
	}
	rows := 0
	for level := r.MipLevel; level < r.MipLevel+r.NumMipLevels; level++ {
		rows += p.Rows(r.AtMipLevel(level))
	}
	return rows
}

// BytesPerLayer returns the byte length of one layer of the range,
// including all faces.
func (p FormatProperties) BytesPerLayer(r TextureRange) int {
	width := max(r.Width, 1)
	height := max(r.Height, 1)
	depth := max(r.Depth, 1)
	faces := max(r.NumFaces, 1)
	if p.IsCompressed() {
		return faces *
			blocks(width, p.BlockWidth, p.MinBlocksX) *
			blocks(height, p.BlockHeight, p.MinBlocksY) *
			blocks(depth, p.BlockDepth, p.MinBlocksZ) *
			int(p.BytesPerBlock)
	}
	return faces * width * height * depth * int(p.BytesPerBlock)
}

// BytesPerRange returns the total byte length of the range across its
// mip levels and layers. Offsets into compressed resources must be
// block aligned; the caller is responsible for that precondition.
func (p FormatProperties) BytesPerRange(r TextureRange) int {
	bytes := 0
	for i := 0; i < r.NumMipLevels; i++ {
		bytes += p.BytesPerLayer(r.AtMipLevel(r.MipLevel+i)) * max(r.NumLayers, 1)
	}
	return bytes
}
