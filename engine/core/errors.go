package core

import "fmt"

// Kind enumerates the flat error taxonomy every engine subsystem reports
// against, so callers can switch on failure class without string matching.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUnknownAPI
	KindAPINotInitialized
	KindAPIInitFailed
	KindWindowInitFailed
	KindShaderCreationFailed
	KindShaderInvalidUniform
	KindBufferLayoutEmpty
	KindFramebufferCreationFailed
	KindFramebufferUnsupportedColorFormat
	KindFramebufferUnsupportedDepthFormat
	KindFramebufferResizeFailed
	KindFramebufferInvalidIndex
	KindFramebufferReadFailed
	KindTextureUnsupportedFormat
	KindTextureSizeMismatch
	KindTextureInvalidSize
	KindRendererNotInitialized
	KindRendererSceneLifecycleFailure
	KindPipelineNoRenderTarget
	KindPipelineCycle
	KindOutOfRange
	KindInvalidValue
	KindFileNotFound
	KindStbiLoadFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnknownAPI:
		return "unknown-api"
	case KindAPINotInitialized:
		return "api-not-initialized"
	case KindAPIInitFailed:
		return "api-init-failed"
	case KindWindowInitFailed:
		return "window-init-failed"
	case KindShaderCreationFailed:
		return "shader-creation-failed"
	case KindShaderInvalidUniform:
		return "shader-invalid-uniform"
	case KindBufferLayoutEmpty:
		return "buffer-layout-empty"
	case KindFramebufferCreationFailed:
		return "framebuffer-creation-failed"
	case KindFramebufferUnsupportedColorFormat:
		return "framebuffer-unsupported-color-format"
	case KindFramebufferUnsupportedDepthFormat:
		return "framebuffer-unsupported-depth-format"
	case KindFramebufferResizeFailed:
		return "framebuffer-resize-failed"
	case KindFramebufferInvalidIndex:
		return "framebuffer-invalid-index"
	case KindFramebufferReadFailed:
		return "framebuffer-read-failed"
	case KindTextureUnsupportedFormat:
		return "texture-unsupported-format"
	case KindTextureSizeMismatch:
		return "texture-size-mismatch"
	case KindTextureInvalidSize:
		return "texture-invalid-size"
	case KindRendererNotInitialized:
		return "renderer-not-initialized"
	case KindRendererSceneLifecycleFailure:
		return "renderer-scene-lifecycle-failure"
	case KindPipelineNoRenderTarget:
		return "pipeline-no-render-target"
	case KindPipelineCycle:
		return "cycle"
	case KindOutOfRange:
		return "out-of-range"
	case KindInvalidValue:
		return "invalid-value"
	case KindFileNotFound:
		return "file-not-found"
	case KindStbiLoadFailed:
		return "stbi-load-failed"
	default:
		return "unknown"
	}
}

// EngineError carries a Kind plus a formatted message and, where the caller
// supplied one, the file/line of the condition that triggered it. The core,
// gpu and pipeline packages return these. The ecs package returns plain
// fmt errors instead, and ecs.NewGroup2 panics when either of its
// component types is unregistered.
type EngineError struct {
	Kind    Kind
	Message string
	File    string
	Line    int
}

func (e *EngineError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s (%s:%d)", e.Kind, e.Message, e.File, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds an EngineError with no location context.
func NewError(kind Kind, format string, args ...interface{}) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewErrorAt builds an EngineError carrying the file/line of the condition
// that triggered it, for errors worth tracing back to a specific call site.
func NewErrorAt(kind Kind, file string, line int, format string, args ...interface{}) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...), File: file, Line: line}
}

// Is lets errors.Is match on Kind across wrapped EngineErrors.
func (e *EngineError) Is(target error) bool {
	other, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
