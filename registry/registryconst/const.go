package registryconst

const (
	// MaxKeyLength is the maximum length of a content item key.
	MaxKeyLength = 255

	// NotFoundError is returned if content item is missing.
	NotFoundError = "content item does not exist"

	// InvalidKeyError is returned on empty or too long content item key.
	InvalidKeyError = "invalid content item key"

	// InvalidSizeError is returned on zero content size.
	InvalidSizeError = "invalid content size"

	// InvalidHashError is returned on empty or zero content hash.
	InvalidHashError = "invalid content hash"

	// WriteDeniedError is returned when the principal has no write access
	// to the parent container.
	WriteDeniedError = "write access denied"
)
