package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/orbitvault/custody-contract/access/accessconst"
	"github.com/orbitvault/custody-contract/common"
	"github.com/orbitvault/custody-contract/container/containerconst"
	"github.com/stretchr/testify/require"
)

func TestAccessInitialize(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")
	ownerKey := randomBytes(48)

	acl.WithSigners(owner).InvokeFail(t, containerconst.NotFoundError,
		"initializeOwnerAccess", randomBytes(32), ownerKey)

	stranger := cnr.NewAccount(t)
	acl.WithSigners(stranger).InvokeFail(t, common.ErrOwnerWitnessFailed,
		"initializeOwnerAccess", cid, ownerKey)

	// The owner is an implicit admin even before initialization.
	require.True(t, testInvokeBool(t, acl, "canAdmin", cid, owner.ScriptHash()))

	acl.WithSigners(owner).Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, ownerKey)

	require.True(t, testInvokeBool(t, acl, "canAdmin", cid, owner.ScriptHash()))
	require.Equal(t, ownerKey, testInvokeBytes(t, acl, "getWrappedKey", cid, owner.ScriptHash()))

	acl.WithSigners(owner).InvokeFail(t, accessconst.AlreadyInitializedError,
		"initializeOwnerAccess", cid, randomBytes(48))
}

func TestAccessGrant(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	grantee := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")
	granteeKey := randomBytes(48)

	aclOwner := acl.WithSigners(owner)
	aclOwner.Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))

	stranger := cnr.NewAccount(t)
	acl.WithSigners(stranger).InvokeFail(t, accessconst.AdminRequiredError,
		"grant", cid, grantee.ScriptHash(), granteeKey, 1, stranger.ScriptHash())

	aclOwner.InvokeFail(t, accessconst.LevelRequiredError,
		"grant", cid, grantee.ScriptHash(), granteeKey, 0, owner.ScriptHash())
	aclOwner.InvokeFail(t, accessconst.InvalidLevelError,
		"grant", cid, grantee.ScriptHash(), granteeKey, 7, owner.ScriptHash())
	aclOwner.InvokeFail(t, accessconst.InvalidPrincipalError,
		"grant", cid, owner.ScriptHash(), granteeKey, 1, owner.ScriptHash())
	aclOwner.InvokeFail(t, containerconst.NotFoundError,
		"grant", randomBytes(32), grantee.ScriptHash(), granteeKey, 1, owner.ScriptHash())

	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, grantee.ScriptHash(), granteeKey, 1, owner.ScriptHash())

	require.True(t, testInvokeBool(t, acl, "canRead", cid, grantee.ScriptHash()))
	require.False(t, testInvokeBool(t, acl, "canWrite", cid, grantee.ScriptHash()))
	require.Equal(t, granteeKey, testInvokeBytes(t, acl, "getWrappedKey", cid, grantee.ScriptHash()))

	aclOwner.InvokeFail(t, accessconst.DuplicateGrantError,
		"grant", cid, grantee.ScriptHash(), granteeKey, 2, owner.ScriptHash())

	// A read-level grantee has no admin rights to delegate.
	other := cnr.NewAccount(t)
	acl.WithSigners(grantee).InvokeFail(t, accessconst.AdminRequiredError,
		"grant", cid, other.ScriptHash(), randomBytes(48), 1, grantee.ScriptHash())

	// An admin-level grantee can delegate.
	admin := cnr.NewAccount(t)
	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, admin.ScriptHash(), randomBytes(48), 3, owner.ScriptHash())
	acl.WithSigners(admin).Invoke(t, stackitem.Null{},
		"grant", cid, other.ScriptHash(), randomBytes(48), 2, admin.ScriptHash())
	require.True(t, testInvokeBool(t, acl, "canWrite", cid, other.ScriptHash()))
}

func TestAccessOwnerGrantTarget(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	delegate := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")

	// Before initializeOwnerAccess the owner can already delegate admin
	// rights as an implicit admin.
	acl.WithSigners(owner).Invoke(t, stackitem.Null{},
		"grant", cid, delegate.ScriptHash(), randomBytes(48), 3, owner.ScriptHash())

	// A delegated admin cannot issue a grant for the owner: the owner's
	// record comes from initializeOwnerAccess only, a Read-level row here
	// would otherwise demote the owner for good.
	acl.WithSigners(delegate).InvokeFail(t, accessconst.InvalidPrincipalError,
		"grant", cid, owner.ScriptHash(), randomBytes(48), 1, delegate.ScriptHash())

	require.True(t, testInvokeBool(t, acl, "canWrite", cid, owner.ScriptHash()))
	require.True(t, testInvokeBool(t, acl, "canAdmin", cid, owner.ScriptHash()))

	acl.WithSigners(owner).Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))
	require.True(t, testInvokeBool(t, acl, "canAdmin", cid, owner.ScriptHash()))
}

func TestAccessRevoke(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	grantee := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")

	aclOwner := acl.WithSigners(owner)
	aclOwner.Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))
	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, grantee.ScriptHash(), randomBytes(48), 1, owner.ScriptHash())

	aclOwner.InvokeFail(t, accessconst.CannotRevokeOwnerError,
		"revoke", cid, owner.ScriptHash(), owner.ScriptHash())
	aclOwner.InvokeFail(t, accessconst.NoGrantError,
		"revoke", cid, cnr.NewAccount(t).ScriptHash(), owner.ScriptHash())

	aclOwner.Invoke(t, stackitem.Null{}, "revoke", cid, grantee.ScriptHash(), owner.ScriptHash())

	require.False(t, testInvokeBool(t, acl, "canRead", cid, grantee.ScriptHash()))
	require.False(t, testInvokeBool(t, acl, "canWrite", cid, grantee.ScriptHash()))
	require.False(t, testInvokeBool(t, acl, "canAdmin", cid, grantee.ScriptHash()))
	_, err := acl.TestInvoke(t, "getWrappedKey", cid, grantee.ScriptHash())
	require.ErrorContains(t, err, accessconst.NoGrantError)

	aclOwner.InvokeFail(t, accessconst.NoGrantError,
		"revoke", cid, grantee.ScriptHash(), owner.ScriptHash())

	// The grantee index is append-only, revoked principals stay listed.
	s, err := acl.TestInvoke(t, "listGrantees", cid)
	require.NoError(t, err)
	require.ElementsMatch(t,
		[][]byte{owner.ScriptHash().BytesBE(), grantee.ScriptHash().BytesBE()},
		arrayOfBytes(t, s.Pop().Array()))
}

func TestAccessRewrap(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	grantee := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")

	aclOwner := acl.WithSigners(owner)
	aclOwner.Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))

	aclOwner.InvokeFail(t, accessconst.NoGrantError,
		"rewrap", cid, grantee.ScriptHash(), randomBytes(48), owner.ScriptHash())

	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, grantee.ScriptHash(), randomBytes(48), 2, owner.ScriptHash())

	s, err := acl.TestInvoke(t, "grantOf", cid, grantee.ScriptHash())
	require.NoError(t, err)
	before := s.Pop().Array()

	rewrapped := randomBytes(48)
	aclOwner.Invoke(t, stackitem.Null{}, "rewrap", cid, grantee.ScriptHash(), rewrapped, owner.ScriptHash())
	aclOwner.Invoke(t, stackitem.Null{}, "rewrap", cid, grantee.ScriptHash(), rewrapped, owner.ScriptHash())

	require.Equal(t, rewrapped, testInvokeBytes(t, acl, "getWrappedKey", cid, grantee.ScriptHash()))

	// Only the wrapped key changes, the grant metadata survives re-keying.
	s, err = acl.TestInvoke(t, "grantOf", cid, grantee.ScriptHash())
	require.NoError(t, err)
	after := s.Pop().Array()
	require.Equal(t, before[1], after[1])
	require.Equal(t, before[2], after[2])
	require.Equal(t, before[3], after[3])
	require.True(t, testInvokeBool(t, acl, "canWrite", cid, grantee.ScriptHash()))
}

func TestAccessLevels(t *testing.T) {
	cnr, acl := newAccessInvoker(t)

	owner := cnr.NewAccount(t)
	cid := createContainer(t, cnr, owner, "docs")

	aclOwner := acl.WithSigners(owner)
	aclOwner.Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))

	reader := cnr.NewAccount(t)
	writer := cnr.NewAccount(t)
	admin := cnr.NewAccount(t)
	nobody := cnr.NewAccount(t)

	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, reader.ScriptHash(), randomBytes(48), 1, owner.ScriptHash())
	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, writer.ScriptHash(), randomBytes(48), 2, owner.ScriptHash())
	aclOwner.Invoke(t, stackitem.Null{}, "grant", cid, admin.ScriptHash(), randomBytes(48), 3, owner.ScriptHash())

	for _, tc := range []struct {
		principal neotest.Signer
		canRead   bool
		canWrite  bool
		canAdmin  bool
	}{
		{reader, true, false, false},
		{writer, true, true, false},
		{admin, true, true, true},
		{owner, true, true, true},
		{nobody, false, false, false},
	} {
		h := tc.principal.ScriptHash()
		require.Equal(t, tc.canRead, testInvokeBool(t, acl, "canRead", cid, h))
		require.Equal(t, tc.canWrite, testInvokeBool(t, acl, "canWrite", cid, h))
		require.Equal(t, tc.canAdmin, testInvokeBool(t, acl, "canAdmin", cid, h))
	}

	// Unknown containers yield false, not an error.
	require.False(t, testInvokeBool(t, acl, "canRead", randomBytes(32), owner.ScriptHash()))
}
