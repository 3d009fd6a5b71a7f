package custodyconst

const (
	// CoordScale is the fixed-point scale of attestation coordinates:
	// degrees (altitude: meters) multiplied by 1e6 and truncated.
	CoordScale = 1_000_000

	// NotFoundError is returned if attestation is missing.
	NotFoundError = "attestation does not exist"

	// NoAttestationsError is returned when an item has no attestations yet.
	NoAttestationsError = "no attestations for item"

	// MalformedSignatureError is returned on a signature blob of unexpected
	// length.
	MalformedSignatureError = "malformed signature"

	// UntrustedSignerError is returned when the signature does not verify
	// against the configured custodian identity.
	UntrustedSignerError = "untrusted signer"

	// NotAuthorizedError is returned when custodian identity rotation is
	// invoked by anyone but the configured administrator.
	NotAuthorizedError = "not custody administrator"
)
