package validator

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	TagUUID        Tag = "format:uuid"
	TagUUIDNotNil  Tag = "format:uuid_not_nil"
	TagUUIDVersion Tag = "format:uuid_version"
)

// UUID validates the canonical 36-character UUID form.
func UUID[D any]() Validator[string, D] {
	return Check[string, D](TagUUID, "must be a valid UUID", func(s string) bool {
		// Fast rejection before parsing: uuid.Parse also accepts urn and braced forms.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}

// UUIDNotNil validates that a parsed UUID is not the nil UUID.
func UUIDNotNil[D any]() Validator[uuid.UUID, D] {
	return Check[uuid.UUID, D](TagUUIDNotNil, "must not be the nil UUID", func(id uuid.UUID) bool {
		return id != uuid.Nil
	})
}

// UUIDVersion validates that a parsed UUID has the given version.
func UUIDVersion[D any](version uuid.Version) Validator[uuid.UUID, D] {
	return Check[uuid.UUID, D](TagUUIDVersion, fmt.Sprintf("must be a version %d UUID", version), func(id uuid.UUID) bool {
		return id.Version() == version
	}, int(version))
}
