package gl45

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.5-core/gl"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

type framebuffer struct {
	id      uint32
	width   int
	height  int
	samples int

	specs            []gpu.AttachmentSpec
	colorTextures    []*texture // nil for the depth-stencil slot
	depthStencilID   uint32
	maxViewportW     int
	maxViewportH     int
}

// NewFramebuffer constructs a framebuffer with the given ordered
// attachment list, allocating a texture per color/integer attachment and a
// renderbuffer for the depth-stencil attachment (spec §4.4).
func (b *Backend) NewFramebuffer(spec gpu.FramebufferSpec) (gpu.Framebuffer, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, core.NewError(core.KindFramebufferResizeFailed, "zero or negative dimension %dx%d", spec.Width, spec.Height)
	}

	fb := &framebuffer{
		width: spec.Width, height: spec.Height, samples: spec.Samples,
		specs: spec.Attachments, maxViewportW: b.maxViewportWidth, maxViewportH: b.maxViewportHeight,
	}
	gl.GenFramebuffers(1, &fb.id)
	fb.Bind()

	if err := fb.allocateAttachments(); err != nil {
		return nil, err
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return nil, core.NewError(core.KindFramebufferCreationFailed, "incomplete framebuffer, status=0x%x", status)
	}
	fb.Unbind()
	return fb, glErr()
}

func (fb *framebuffer) allocateAttachments() error {
	fb.colorTextures = make([]*texture, len(fb.specs))
	colorIndex := uint32(0)
	for i, spec := range fb.specs {
		if spec.Format == gpu.FormatDepth24Stencil8 {
			gl.GenRenderbuffers(1, &fb.depthStencilID)
			gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthStencilID)
			gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(fb.width), int32(fb.height))
			gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.depthStencilID)
			continue
		}

		internal, glFormat, xtype := glFormats(spec.Format)
		var texID uint32
		gl.GenTextures(1, &texID)
		gl.BindTexture(gl.TEXTURE_2D, texID)
		gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(fb.width), int32(fb.height), 0, glFormat, xtype, nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+colorIndex, gl.TEXTURE_2D, texID, 0)

		fb.colorTextures[i] = &texture{id: texID, width: fb.width, height: fb.height, format: spec.Format}
		colorIndex++
	}
	return glErr()
}

func (fb *framebuffer) Bind()   { gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id) }
func (fb *framebuffer) Unbind() { gl.BindFramebuffer(gl.FRAMEBUFFER, 0) }
func (fb *framebuffer) Width() int  { return fb.width }
func (fb *framebuffer) Height() int { return fb.height }

func (fb *framebuffer) Delete() {
	for _, t := range fb.colorTextures {
		if t != nil {
			gl.DeleteTextures(1, &t.id)
		}
	}
	if fb.depthStencilID != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthStencilID)
	}
	gl.DeleteFramebuffers(1, &fb.id)
}

// Resize fails with core.KindFramebufferResizeFailed if either dimension
// is zero/negative or exceeds the backend's maximum viewport size (spec
// §4.4); existing attachment contents are discarded.
func (fb *framebuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return core.NewError(core.KindFramebufferResizeFailed, "zero or negative dimension %dx%d", width, height)
	}
	if (fb.maxViewportW > 0 && width > fb.maxViewportW) || (fb.maxViewportH > 0 && height > fb.maxViewportH) {
		return core.NewError(core.KindFramebufferResizeFailed, "%dx%d exceeds max viewport %dx%d", width, height, fb.maxViewportW, fb.maxViewportH)
	}

	fb.Delete()
	fb.width, fb.height = width, height
	gl.GenFramebuffers(1, &fb.id)
	fb.Bind()
	if err := fb.allocateAttachments(); err != nil {
		return err
	}
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return core.NewError(core.KindFramebufferCreationFailed, "incomplete framebuffer after resize, status=0x%x", status)
	}
	fb.Unbind()
	return glErr()
}

func (fb *framebuffer) attachmentAt(index int) (*texture, error) {
	if index < 0 || index >= len(fb.specs) {
		return nil, core.NewError(core.KindFramebufferInvalidIndex, "attachment index %d out of range [0,%d)", index, len(fb.specs))
	}
	if fb.specs[index].Format == gpu.FormatDepth24Stencil8 {
		return nil, core.NewError(core.KindFramebufferUnsupportedColorFormat, "attachment %d is depth-stencil, not readable as a pixel", index)
	}
	return fb.colorTextures[index], nil
}

// GetPixel reads one pixel of the attachment at index. Only integer
// attachments (FormatRedInteger32) may be read as int; anything else
// fails with core.KindFramebufferUnsupportedColorFormat (spec §4.4).
func (fb *framebuffer) GetPixel(attachmentIndex, x, y int, out interface{}) error {
	tex, err := fb.attachmentAt(attachmentIndex)
	if err != nil {
		return err
	}
	outPtr, ok := out.(*int32)
	if !ok || !tex.format.IsInteger() {
		return core.NewError(core.KindFramebufferUnsupportedColorFormat, "attachment %d format %v cannot be read as int", attachmentIndex, tex.format)
	}

	fb.Bind()
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + colorAttachmentOrdinal(fb.specs, attachmentIndex))
	var pixel int32
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RED_INTEGER, gl.INT, unsafe.Pointer(&pixel))
	fb.Unbind()
	if err := glErr(); err != nil {
		return core.NewError(core.KindFramebufferReadFailed, "%v", err)
	}
	*outPtr = pixel
	return nil
}

// ClearAttachment clears the attachment at index to value: int32 for
// integer attachments, [4]float32 for color attachments (spec §4.4).
func (fb *framebuffer) ClearAttachment(attachmentIndex int, value interface{}) error {
	tex, err := fb.attachmentAt(attachmentIndex)
	if err != nil {
		return err
	}
	ordinal := colorAttachmentOrdinal(fb.specs, attachmentIndex)
	fb.Bind()
	defer fb.Unbind()

	if tex.format.IsInteger() {
		v, ok := value.(int32)
		if !ok {
			return core.NewError(core.KindFramebufferUnsupportedColorFormat, "attachment %d expects an int32 clear value", attachmentIndex)
		}
		gl.ClearBufferiv(gl.COLOR, ordinal, &v)
		return glErr()
	}
	v, ok := value.([4]float32)
	if !ok {
		return core.NewError(core.KindFramebufferUnsupportedColorFormat, "attachment %d expects a [4]float32 clear value", attachmentIndex)
	}
	gl.ClearBufferfv(gl.COLOR, ordinal, &v[0])
	return glErr()
}

func (fb *framebuffer) ColorAttachmentTexture(attachmentIndex int) gpu.Texture {
	tex, err := fb.attachmentAt(attachmentIndex)
	if err != nil {
		return nil
	}
	return tex
}

// colorAttachmentOrdinal converts a spec-list index into the GL
// COLOR_ATTACHMENTn ordinal, skipping any depth-stencil slots that precede it.
func colorAttachmentOrdinal(specs []gpu.AttachmentSpec, index int) int32 {
	ordinal := int32(0)
	for i := 0; i < index; i++ {
		if specs[i].Format != gpu.FormatDepth24Stencil8 {
			ordinal++
		}
	}
	return ordinal
}
