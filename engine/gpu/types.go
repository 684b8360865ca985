package gpu

// AttribType identifies the scalar type backing one vertex attribute.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota
	AttribInt32
	AttribUint32
)

// AttribLayout describes one vertex attribute binding: its name (matched
// against the shader's reflected attribute table), component count
// ("packing", 1-4), scalar type, whether integer data should be
// normalized to [0,1]/[-1,1], and its byte stride/offset within the
// interleaved vertex buffer.
type AttribLayout struct {
	Name       string
	Packing    int
	Type       AttribType
	Normalized bool
	Stride     int
	Offset     int
}

// BufferUsage mirrors the GL_STATIC_DRAW family of usage hints.
type BufferUsage uint8

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
)

// TextureFormat enumerates the pixel formats the backend must support
// (spec §4.4/§6): RGBA8 and RGB8 color, RG8 for 2-channel sources, R8,
// and RedInteger32 for the entity-picking attachment.
type TextureFormat uint8

const (
	FormatR8 TextureFormat = iota
	FormatRG8
	FormatRGB8
	FormatRGBA8
	FormatRedInteger32
	FormatDepth24Stencil8
)

// IsInteger reports whether the format holds integer (not normalized
// float) texel data — only these may be read back as int (spec §4.4).
func (f TextureFormat) IsInteger() bool {
	return f == FormatRedInteger32
}

// Channels reports the pixel's component count, used to validate raw byte
// buffers passed to Backend.NewTexture.
func (f TextureFormat) Channels() int {
	switch f {
	case FormatR8:
		return 1
	case FormatRG8:
		return 2
	case FormatRGB8:
		return 3
	case FormatRGBA8:
		return 4
	default:
		return 0
	}
}

// AttachmentSpec describes one framebuffer attachment in construction
// order; the first RGBA8/RGB8/RG8/R8 spec becomes a color attachment, the
// first RedInteger32 spec becomes the pickable integer attachment, and a
// Depth24Stencil8 spec becomes the depth-stencil attachment.
type AttachmentSpec struct {
	Format TextureFormat
}

// FramebufferSpec is the construction contract for a Framebuffer (spec
// §4.4): dimensions, sample count, and an ordered attachment list.
type FramebufferSpec struct {
	Width       int
	Height      int
	Samples     int
	Attachments []AttachmentSpec
}

// RequiredAttribute is one bit of a mesh/program compatibility bitset
// (spec §4.3): a mesh is compatible with a program iff the mesh's
// provided-attribute bitset is a superset of the program's required set.
type RequiredAttribute uint8

const (
	AttrPosition RequiredAttribute = 1 << iota
	AttrNormal
	AttrTangent
	AttrBitangent
	AttrUV0
	AttrLightmapUV
)

// AttributeMask is a bitset of RequiredAttribute values.
type AttributeMask uint8

func (m AttributeMask) Has(a RequiredAttribute) bool { return m&AttributeMask(a) != 0 }

// Set returns m with a added.
func (m AttributeMask) Set(a RequiredAttribute) AttributeMask { return m | AttributeMask(a) }

// Contains reports whether m is a superset of required — the mesh/program
// compatibility check of spec §4.3.
func (m AttributeMask) Contains(required AttributeMask) bool { return m&required == required }

// AttributeInfo describes one reflected vertex attribute.
type AttributeInfo struct {
	Name     string
	Location int32
}

// UniformKind tags the scalar/vector/matrix/array shape of a reflected
// uniform, used to validate values passed to ShaderProgram.SetUniform.
type UniformKind uint8

const (
	UniformFloat UniformKind = iota
	UniformInt
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
	UniformSampler2D
)

// UniformInfo describes one reflected uniform: name, kind, GPU location,
// and array size (1 for a scalar uniform). Array uniforms bypass the
// upload cache (spec §4.3).
type UniformInfo struct {
	Name     string
	Kind     UniformKind
	Location int32
	Count    int32
}
