package gl45

import (
	"strings"

	gl "github.com/go-gl/gl/v4.5-core/gl"

	"github.com/spaghettifunk/animacore/engine/core"
	"github.com/spaghettifunk/animacore/engine/gpu"
)

// requiredAttributeNames maps the reflected vertex-attribute name to the
// required-attribute bit it contributes (spec §4.3).
var requiredAttributeNames = map[string]gpu.RequiredAttribute{
	"position":   gpu.AttrPosition,
	"normal":     gpu.AttrNormal,
	"tangent":    gpu.AttrTangent,
	"bitangent":  gpu.AttrBitangent,
	"uv0":        gpu.AttrUV0,
	"lightmapUV": gpu.AttrLightmapUV,
}

type shaderProgram struct {
	id uint32

	uniforms        []gpu.UniformInfo
	uniformsByName  map[string]gpu.UniformInfo
	attributes      []gpu.AttributeInfo
	attrLocByName   map[string]int32
	requiredAttrs   gpu.AttributeMask

	cache map[string]interface{}

	storageBuffers []gpu.Buffer
}

// NewShaderProgram compiles, links, and reflects a vertex+fragment program.
func (b *Backend) NewShaderProgram(vertexSrc, fragmentSrc string) (gpu.ShaderProgram, error) {
	vs, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		logLen := int32(0)
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, core.NewError(core.KindShaderCreationFailed, "link failed: %s", log)
	}

	p := &shaderProgram{
		id:             id,
		uniformsByName: make(map[string]gpu.UniformInfo),
		attrLocByName:  make(map[string]int32),
		cache:          make(map[string]interface{}),
	}
	p.reflect()
	return p, glErr()
}

func compileStage(stage uint32, src string) (uint32, error) {
	id := gl.CreateShader(stage)
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		logLen := int32(0)
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(id, logLen, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, core.NewError(core.KindShaderCreationFailed, "compile failed: %s", log)
	}
	return id, nil
}

// reflect queries the linked program for every active uniform and vertex
// attribute, populating the reflection tables and the required-attribute
// bitset (spec §4.3).
func (p *shaderProgram) reflect() {
	var uniformCount int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &uniformCount)
	for i := int32(0); i < uniformCount; i++ {
		var size int32
		var xtype uint32
		nameBuf := make([]byte, 256)
		var length int32
		gl.GetActiveUniform(p.id, uint32(i), int32(len(nameBuf)), &length, &size, &xtype, &nameBuf[0])
		name := string(nameBuf[:length])
		location := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		info := gpu.UniformInfo{
			Name:     name,
			Kind:     uniformKindFromGLType(xtype),
			Location: location,
			Count:    size,
		}
		p.uniforms = append(p.uniforms, info)
		p.uniformsByName[name] = info
	}

	var attrCount int32
	gl.GetProgramiv(p.id, gl.ACTIVE_ATTRIBUTES, &attrCount)
	for i := int32(0); i < attrCount; i++ {
		var size int32
		var xtype uint32
		nameBuf := make([]byte, 256)
		var length int32
		gl.GetActiveAttrib(p.id, uint32(i), int32(len(nameBuf)), &length, &size, &xtype, &nameBuf[0])
		name := string(nameBuf[:length])
		location := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
		p.attributes = append(p.attributes, gpu.AttributeInfo{Name: name, Location: location})
		p.attrLocByName[name] = location
		if bit, ok := requiredAttributeNames[name]; ok {
			p.requiredAttrs = p.requiredAttrs.Set(bit)
		}
	}

	var ssboCount int32
	gl.GetProgramInterfaceiv(p.id, gl.SHADER_STORAGE_BLOCK, gl.ACTIVE_RESOURCES, &ssboCount)
	p.storageBuffers = make([]gpu.Buffer, ssboCount)
}

func uniformKindFromGLType(xtype uint32) gpu.UniformKind {
	switch xtype {
	case gl.INT, gl.BOOL:
		return gpu.UniformInt
	case gl.FLOAT_VEC2:
		return gpu.UniformVec2
	case gl.FLOAT_VEC3:
		return gpu.UniformVec3
	case gl.FLOAT_VEC4:
		return gpu.UniformVec4
	case gl.FLOAT_MAT4:
		return gpu.UniformMat4
	case gl.SAMPLER_2D:
		return gpu.UniformSampler2D
	default:
		return gpu.UniformFloat
	}
}

func (p *shaderProgram) Use()    { gl.UseProgram(p.id) }
func (p *shaderProgram) Delete() { gl.DeleteProgram(p.id) }

func (p *shaderProgram) Uniforms() []gpu.UniformInfo     { return p.uniforms }
func (p *shaderProgram) Attributes() []gpu.AttributeInfo { return p.attributes }
func (p *shaderProgram) RequiredAttributes() gpu.AttributeMask { return p.requiredAttrs }

func (p *shaderProgram) AttributeLocation(name string) (int32, bool) {
	loc, ok := p.attrLocByName[name]
	return loc, ok
}

// SetUniform uploads value under name if it is not already cached as an
// equal value. Array uniforms (Count > 1) always bypass the cache (spec
// §4.3). Unknown names log a warning and are otherwise ignored, returning
// false.
func (p *shaderProgram) SetUniform(name string, value interface{}) bool {
	info, ok := p.uniformsByName[name]
	if !ok {
		core.LogWarn("gl45: set of unknown uniform %q ignored", name)
		return false
	}
	if info.Count <= 1 {
		if cached, ok := p.cache[name]; ok && cached == value {
			return false
		}
	}
	if !p.upload(info, value) {
		return false
	}
	if info.Count <= 1 {
		p.cache[name] = value
	}
	return true
}

func (p *shaderProgram) upload(info gpu.UniformInfo, value interface{}) bool {
	switch info.Kind {
	case gpu.UniformFloat:
		v, ok := value.(float32)
		if !ok {
			return false
		}
		gl.Uniform1f(info.Location, v)
	case gpu.UniformInt, gpu.UniformSampler2D:
		v, ok := value.(int32)
		if !ok {
			return false
		}
		gl.Uniform1i(info.Location, v)
	case gpu.UniformVec2:
		v, ok := value.([2]float32)
		if !ok {
			return false
		}
		gl.Uniform2f(info.Location, v[0], v[1])
	case gpu.UniformVec3:
		v, ok := value.([3]float32)
		if !ok {
			return false
		}
		gl.Uniform3f(info.Location, v[0], v[1], v[2])
	case gpu.UniformVec4:
		v, ok := value.([4]float32)
		if !ok {
			return false
		}
		gl.Uniform4f(info.Location, v[0], v[1], v[2], v[3])
	case gpu.UniformMat4:
		v, ok := value.([16]float32)
		if !ok {
			return false
		}
		gl.UniformMatrix4fv(info.Location, 1, false, &v[0])
	default:
		return false
	}
	return true
}

// BindStorageBuffer binds buf as the SSBO at the program's declared
// ordinal index; out-of-range fails with core.KindOutOfRange (spec §4.3).
func (p *shaderProgram) BindStorageBuffer(index int, buf gpu.Buffer) error {
	if index < 0 || index >= len(p.storageBuffers) {
		return core.NewError(core.KindOutOfRange, "storage buffer index %d out of range [0,%d)", index, len(p.storageBuffers))
	}
	p.storageBuffers[index] = buf
	buf.Bind()
	return glErr()
}

func (p *shaderProgram) BindStorageBufferBase(index int, bindingPoint uint32) error {
	if index < 0 || index >= len(p.storageBuffers) {
		return core.NewError(core.KindOutOfRange, "storage buffer index %d out of range [0,%d)", index, len(p.storageBuffers))
	}
	buf, ok := p.storageBuffers[index].(*buffer)
	if !ok {
		return core.NewError(core.KindOutOfRange, "storage buffer slot %d has no bound buffer", index)
	}
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, bindingPoint, buf.id)
	return glErr()
}
