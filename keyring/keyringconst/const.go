package keyringconst

const (
	// NotRegisteredError is returned when the principal has no registered
	// public key.
	NotRegisteredError = "principal key not registered"

	// InvalidKeyFormatError is returned on a public key that is not a
	// 33-byte compressed point with a 0x02/0x03 tag.
	InvalidKeyFormatError = "invalid public key format"
)
