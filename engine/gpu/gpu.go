package gpu

import "github.com/spaghettifunk/animacore/engine/core"

// Buffer is a GPU-resident byte range, either a vertex buffer or an index
// buffer depending on how it was created.
type Buffer interface {
	Bind()
	Unbind()
	Delete()
	Count() int
}

// VertexArray binds a set of vertex attribute layouts to one or more
// vertex buffers (spec §4.3/§4.7).
type VertexArray interface {
	Bind()
	Unbind()
	Delete()
	// AddAttribute binds vbo's data to the attribute named in layout,
	// looked up against program's reflected attribute table.
	AddAttribute(vbo Buffer, program ShaderProgram, layout AttribLayout) error
	SetIndexBuffer(ibo Buffer)
	IndexCount() int
	// Draw binds the array and issues an indexed draw call over its full
	// index range.
	Draw()
}

// Texture is a 2D GPU image. Backend.NewTexture builds one from dimensions
// and optional raw bytes, Backend.NewTextureFromImage from an encoded image
// held in memory; no constructor reads a filesystem path.
type Texture interface {
	Bind(unit int)
	Delete()
	Width() int
	Height() int
	Format() TextureFormat
}

// Framebuffer is an off-screen render target with an ordered attachment
// list (spec §4.4).
type Framebuffer interface {
	Bind()
	Unbind()
	Delete()
	Resize(width, height int) error
	// GetPixel reads one pixel of the attachment at index into out, which
	// must be *int32 for integer attachments.
	GetPixel(attachmentIndex, x, y int, out interface{}) error
	// ClearAttachment clears the attachment at index to value, which must
	// be int32 for integer attachments or [4]float32 for color attachments.
	ClearAttachment(attachmentIndex int, value interface{}) error
	ColorAttachmentTexture(attachmentIndex int) Texture
	Width() int
	Height() int
}

// ShaderProgram is a linked vertex+fragment program plus its reflected
// uniform/attribute tables and per-name upload cache (spec §4.3).
type ShaderProgram interface {
	Use()
	Delete()
	// SetUniform writes value under name. Returns true if an upload
	// occurred; false if the cache already held an equal value (a
	// no-op) or if name is not a reflected uniform (a logged no-op).
	SetUniform(name string, value interface{}) bool
	Uniforms() []UniformInfo
	Attributes() []AttributeInfo
	RequiredAttributes() AttributeMask
	AttributeLocation(name string) (int32, bool)
	// BindStorageBuffer binds buf as the shader storage buffer at the
	// given ordinal index in the program's declared SSBO list.
	BindStorageBuffer(index int, buf Buffer) error
	BindStorageBufferBase(index int, bindingPoint uint32) error
}

// BackendConfig carries backend-agnostic init parameters; concrete
// backends may ignore fields they do not need.
type BackendConfig struct {
	WindowWidth  int
	WindowHeight int
}

// Backend is the resource factory contract every graphics API
// implementation satisfies (spec §6): one registered implementation,
// `gl45`, is selected at build time via configuration.
type Backend interface {
	Name() string
	Init(cfg BackendConfig) error
	NewVertexBuffer(usage BufferUsage, data []float32) (Buffer, error)
	NewIndexBuffer(data []uint32) (Buffer, error)
	NewVertexArray() VertexArray
	NewShaderProgram(vertexSrc, fragmentSrc string) (ShaderProgram, error)
	NewTexture(width, height int, format TextureFormat, data []byte) (Texture, error)
	NewTextureFromImage(data []byte) (Texture, error)
	NewFramebuffer(spec FramebufferSpec) (Framebuffer, error)
	MaxViewportSize() (width, height int)
}

var registry = map[string]func() Backend{}

// RegisterBackend makes a backend factory available under name. Backend
// implementations call this from an init() function.
func RegisterBackend(name string, factory func() Backend) {
	registry[name] = factory
}

// NewBackend constructs the backend registered under name, failing with
// core.KindUnknownAPI if none is registered (spec §6).
func NewBackend(name string) (Backend, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, core.NewError(core.KindUnknownAPI, "no graphics backend registered under %q", name)
	}
	return factory(), nil
}
