package accessconst

// Level is an ordered enumeration of container permission levels. Higher
// levels include all capabilities of lower ones: Write implies Read, Admin
// implies both and additionally allows managing grants.
type Level int

// Various permission levels.
const (
	// None is the absence of access. It is never stored: a principal
	// without a grant simply has no record, and granting None is rejected.
	None Level = iota

	// Read allows fetching the wrapped container key and content metadata.
	Read

	// Write additionally allows registering and removing content items.
	Write

	// Admin additionally allows granting, revoking and re-wrapping access.
	Admin
)

const (
	// AlreadyInitializedError is returned on repeated owner access seeding.
	AlreadyInitializedError = "owner access already initialized"

	// AdminRequiredError is returned when a mutating method is invoked by
	// a principal without admin rights on the container.
	AdminRequiredError = "admin access required"

	// LevelRequiredError is returned on attempt to grant the None level.
	// Revoke is the only way to remove access.
	LevelRequiredError = "grant requires a permission level"

	// InvalidLevelError is returned on a level outside of the enumeration.
	InvalidLevelError = "invalid permission level"

	// InvalidPrincipalError is returned on a malformed or self-referential
	// grantee.
	InvalidPrincipalError = "invalid principal"

	// DuplicateGrantError is returned when the grantee already has a grant
	// of any level.
	DuplicateGrantError = "grant already exists"

	// CannotRevokeOwnerError is returned on attempt to revoke the
	// container owner's access.
	CannotRevokeOwnerError = "cannot revoke container owner"

	// NoGrantError is returned when the principal has no grant.
	NoGrantError = "no grant for principal"
)
