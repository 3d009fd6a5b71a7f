package containerconst

const (
	// MaxNameLength is the maximum length of a human-readable container name.
	MaxNameLength = 64

	// NotFoundError is returned if container is missing.
	NotFoundError = "container does not exist"

	// InvalidNameError is returned on empty or too long container name.
	InvalidNameError = "invalid container name"

	// NameCollisionError is returned on attempt to create a container with
	// a name already taken by the same owner.
	NameCollisionError = "container name already in use"
)
