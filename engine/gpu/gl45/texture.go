package gl45

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"unsafe"

	gl "github.com/go-gl/gl/v4.5-core/gl"
	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

type texture struct {
	id     uint32
	width  int
	height int
	format gpu.TextureFormat
}

func (t *texture) Bind(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}
func (t *texture) Delete()               { gl.DeleteTextures(1, &t.id) }
func (t *texture) Width() int            { return t.width }
func (t *texture) Height() int           { return t.height }
func (t *texture) Format() gpu.TextureFormat { return t.format }

func glFormats(f gpu.TextureFormat) (internal int32, format uint32, xtype uint32) {
	switch f {
	case gpu.FormatR8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	case gpu.FormatRG8:
		return gl.RG8, gl.RG, gl.UNSIGNED_BYTE
	case gpu.FormatRGB8:
		return gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE
	case gpu.FormatRedInteger32:
		return gl.R32I, gl.RED_INTEGER, gl.INT
	case gpu.FormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8
	default:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

// NewTexture creates a texture of the given size/format, optionally
// uploading data (a nil data produces an uninitialized RGBA8 texture when
// format is FormatRGBA8, per spec §6).
func (b *Backend) NewTexture(width, height int, format gpu.TextureFormat, data []byte) (gpu.Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, core.NewError(core.KindTextureInvalidSize, "texture dimensions must be positive, got %dx%d", width, height)
	}
	if data != nil && format.Channels() > 0 && len(data) != width*height*format.Channels() {
		return nil, core.NewError(core.KindTextureSizeMismatch, "expected %d bytes for %dx%d at %d channels, got %d",
			width*height*format.Channels(), width, height, format.Channels(), len(data))
	}

	internal, glFormat, xtype := glFormats(format)
	tex := &texture{width: width, height: height, format: format}
	gl.GenTextures(1, &tex.id)
	tex.Bind(0)

	var ptr unsafe.Pointer
	if data != nil {
		ptr = unsafe.Pointer(&data[0])
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, glFormat, xtype, ptr)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return tex, glErr()
}

// NewTextureFromImage decodes a PNG, JPEG, or BMP image from memory and
// uploads it: single-channel (grayscale) sources load as R8, everything
// else is normalized to RGBA8 (spec §6).
func (b *Backend) NewTextureFromImage(data []byte) (gpu.Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, core.NewError(core.KindStbiLoadFailed, "image.Decode: %v", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		return b.NewTexture(width, height, gpu.FormatR8, src.Pix)
	case *image.NRGBA:
		return b.NewTexture(width, height, gpu.FormatRGBA8, rgbaToPacked(src, width, height))
	case *image.RGBA:
		return b.NewTexture(width, height, gpu.FormatRGBA8, packTight(src.Pix, src.Stride, width, height, 4))
	default:
		rgba := image.NewNRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
		return b.NewTexture(width, height, gpu.FormatRGBA8, rgbaToPacked(rgba, width, height))
	}
}

func rgbaToPacked(src *image.NRGBA, width, height int) []byte {
	return packTight(src.Pix, src.Stride, width, height, 4)
}

// packTight removes any decoder row padding (Stride > width*channels),
// producing a tightly packed buffer suitable for glTexImage2D's default
// GL_UNPACK_ALIGNMENT of 4 only when rows are already aligned; this copy
// guarantees correctness regardless of the source's row stride.
func packTight(pix []byte, stride, width, height, channels int) []byte {
	rowBytes := width * channels
	if stride == rowBytes {
		return pix
	}
	out := make([]byte, rowBytes*height)
	for y := 0; y < height; y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], pix[y*stride:y*stride+rowBytes])
	}
	return out
}
