package assets

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/animacore/engine/ecs"
)

// NewUuid mints a fresh stable identifier for an ecs.Uuid component,
// backed by google/uuid (already a teacher dependency) rather than a
// hand-rolled 128-bit type.
func NewUuid() ecs.Uuid {
	return ecs.Uuid{Value: [16]byte(uuid.New())}
}

// ParseUuid decodes s (a canonical UUID string) into an ecs.Uuid.
func ParseUuid(s string) (ecs.Uuid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ecs.Uuid{}, err
	}
	return ecs.Uuid{Value: [16]byte(id)}, nil
}

// String renders u in canonical UUID form.
func String(u ecs.Uuid) string {
	return uuid.UUID(u.Value).String()
}
