package access

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	acl "github.com/orbitvault/custody-contract/access/accessconst"
	"github.com/orbitvault/custody-contract/common"
)

type (
	// Record is a single access grant: the container's master key wrapped
	// for the grantee plus the permission level. WrappedKey is an opaque
	// ciphertext produced off-chain, the contract never sees key material
	// in plaintext.
	Record struct {
		WrappedKey []byte
		Level      acl.Level
		GrantedAt  int
		GrantedBy  interop.Hash160
	}
)

const (
	containerContractKey = "containerScriptHash"

	grantKeyPrefix   = 'g'
	granteeKeyPrefix = 'l'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	addrContainer := args[0].(interop.Hash160)
	if len(addrContainer) != interop.Hash160Len {
		panic("incorrect length of container contract script hash")
	}

	storage.Put(ctx, containerContractKey, addrContainer)

	runtime.Log("access contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("access contract updated")
}

// InitializeOwnerAccess method seeds the container owner's own grant: an
// Admin-level record holding the master key wrapped for the owner. It can
// be invoked only with the owner's witness and only once per container;
// a repeated call panics with AlreadyInitializedError.
//
// If the container doesn't exist, it panics with the container contract's
// NotFoundError.
func InitializeOwnerAccess(cid interop.Hash256, wrappedKey []byte) {
	ctx := storage.GetContext()

	owner := containerOwner(ctx, cid)
	common.CheckOwnerWitness(owner)

	if len(getRecord(ctx, cid, owner).GrantedBy) != 0 {
		panic(acl.AlreadyInitializedError)
	}

	putRecord(ctx, cid, owner, Record{
		WrappedKey: wrappedKey,
		Level:      acl.Admin,
		GrantedAt:  runtime.GetTime(),
		GrantedBy:  owner,
	})

	runtime.Log("owner access initialized")
	runtime.Notify("AccessInitialized", cid, owner)
}

// Grant method gives the principal a permission level on the container
// together with the container's master key wrapped for that principal. The
// granter must hold admin rights (be the owner or have an Admin grant) and
// the method must be invoked with the granter's witness.
//
// Level must be Read, Write or Admin; granting None panics with
// LevelRequiredError, access is removed through Revoke only. A principal
// can hold at most one grant, a repeated one panics with
// DuplicateGrantError. The container owner cannot be a grant target: the
// owner's record is seeded by InitializeOwnerAccess only, so no delegated
// admin can record a level below the owner's implicit Admin.
func Grant(cid interop.Hash256, principal interop.Hash160, wrappedKey []byte, level int, granter interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckWitness(granter)
	requireAdmin(ctx, cid, granter)

	if level == int(acl.None) {
		panic(acl.LevelRequiredError)
	}
	if level < int(acl.None) || level > int(acl.Admin) {
		panic(acl.InvalidLevelError)
	}
	if len(principal) != interop.Hash160Len || common.BytesEqual(principal, granter) {
		panic(acl.InvalidPrincipalError)
	}
	if common.BytesEqual(principal, containerOwner(ctx, cid)) {
		panic(acl.InvalidPrincipalError)
	}
	if len(getRecord(ctx, cid, principal).GrantedBy) != 0 {
		panic(acl.DuplicateGrantError)
	}

	putRecord(ctx, cid, principal, Record{
		WrappedKey: wrappedKey,
		Level:      acl.Level(level),
		GrantedAt:  runtime.GetTime(),
		GrantedBy:  granter,
	})

	runtime.Log("access granted")
	runtime.Notify("AccessGranted", cid, principal, level)
}

// Revoke method removes the principal's grant. The remover must hold admin
// rights and the method must be invoked with the remover's witness. The
// container owner's grant cannot be revoked.
//
// Revocation is a ledger-side delete only: a wrapped key fetched by the
// grantee before revocation is in the grantee's possession off-chain and is
// not retracted. Cryptographic revocation requires the owner to rotate the
// container's master key and Rewrap it for every remaining grantee.
func Revoke(cid interop.Hash256, principal interop.Hash160, remover interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckWitness(remover)
	requireAdmin(ctx, cid, remover)

	if common.BytesEqual(principal, containerOwner(ctx, cid)) {
		panic(acl.CannotRevokeOwnerError)
	}
	if len(getRecord(ctx, cid, principal).GrantedBy) == 0 {
		panic(acl.NoGrantError)
	}

	storage.Delete(ctx, grantKey(cid, principal))

	runtime.Log("access revoked")
	runtime.Notify("AccessRevoked", cid, principal)
}

// Rewrap method replaces the wrapped key blob of an existing grant, keeping
// the permission level and the original grant metadata intact. It is the
// per-grantee step of the re-keying protocol and is idempotent: re-issuing
// it with the same blob leaves the state unchanged. The caller must hold
// admin rights and the method must be invoked with the caller's witness.
//
// If the principal has no grant, it panics with NoGrantError.
func Rewrap(cid interop.Hash256, principal interop.Hash160, newWrappedKey []byte, caller interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckWitness(caller)
	requireAdmin(ctx, cid, caller)

	rec := getRecord(ctx, cid, principal)
	if len(rec.GrantedBy) == 0 {
		panic(acl.NoGrantError)
	}

	rec.WrappedKey = newWrappedKey
	putRecord(ctx, cid, principal, rec)

	runtime.Log("access re-wrapped")
	runtime.Notify("AccessRewrapped", cid, principal)
}

// CanRead method returns true if the principal holds a grant of Read level
// or higher, or is the container's owner. It never panics: unknown
// containers and principals yield false.
func CanRead(cid interop.Hash256, principal interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return hasLevel(ctx, cid, principal, acl.Read)
}

// CanWrite method returns true if the principal holds a grant of Write
// level or higher, or is the container's owner.
func CanWrite(cid interop.Hash256, principal interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return hasLevel(ctx, cid, principal, acl.Write)
}

// CanAdmin method returns true if the principal holds an Admin grant or is
// the container's owner.
func CanAdmin(cid interop.Hash256, principal interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return hasLevel(ctx, cid, principal, acl.Admin)
}

// GetWrappedKey method returns the container's master key wrapped for the
// specified principal.
//
// If the principal has no grant, it panics with NoGrantError.
func GetWrappedKey(cid interop.Hash256, principal interop.Hash160) []byte {
	ctx := storage.GetReadOnlyContext()
	rec := getRecord(ctx, cid, principal)
	if len(rec.GrantedBy) == 0 {
		panic(acl.NoGrantError)
	}
	return rec.WrappedKey
}

// GrantOf method returns the principal's full grant record.
//
// If the principal has no grant, it panics with NoGrantError.
func GrantOf(cid interop.Hash256, principal interop.Hash160) Record {
	ctx := storage.GetReadOnlyContext()
	rec := getRecord(ctx, cid, principal)
	if len(rec.GrantedBy) == 0 {
		panic(acl.NoGrantError)
	}
	return rec
}

// ListGrantees method returns the principals ever granted access to the
// container, the owner included. The index is append-only: revoked
// principals stay listed, their grant records must be treated as absent on
// lookup.
func ListGrantees(cid interop.Hash256) [][]byte {
	ctx := storage.GetReadOnlyContext()

	var list [][]byte

	it := storage.Find(ctx, append([]byte{granteeKeyPrefix}, cid...), storage.ValuesOnly)
	for iterator.Next(it) {
		list = append(list, iterator.Value(it).([]byte))
	}

	return list
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// requireAdmin panics unless the principal is the container's owner or
// holds an Admin grant. Missing and deleted containers panic with the
// container contract's NotFoundError, so every mutating method implicitly
// requires a live container.
func requireAdmin(ctx storage.Context, cid interop.Hash256, principal interop.Hash160) {
	owner := containerOwner(ctx, cid)
	if common.BytesEqual(principal, owner) {
		return
	}

	rec := getRecord(ctx, cid, principal)
	if len(rec.GrantedBy) != 0 && rec.Level == acl.Admin {
		return
	}

	panic(acl.AdminRequiredError)
}

func hasLevel(ctx storage.Context, cid interop.Hash256, principal interop.Hash160, min acl.Level) bool {
	// The owner is an implicit admin from container creation on, even
	// before InitializeOwnerAccess seeds the explicit record; a stored
	// record never lowers the owner's status.
	if containerExists(ctx, cid) && common.BytesEqual(principal, containerOwner(ctx, cid)) {
		return true
	}

	rec := getRecord(ctx, cid, principal)
	return len(rec.GrantedBy) != 0 && rec.Level >= min
}

func grantKey(cid interop.Hash256, principal interop.Hash160) []byte {
	key := append([]byte{grantKeyPrefix}, cid...)
	return append(key, principal...)
}

func getRecord(ctx storage.Context, cid interop.Hash256, principal interop.Hash160) Record {
	data := storage.Get(ctx, grantKey(cid, principal))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Record)
	}

	return Record{WrappedKey: []byte{}, Level: acl.None, GrantedAt: 0, GrantedBy: interop.Hash160([]byte{})}
}

func putRecord(ctx storage.Context, cid interop.Hash256, principal interop.Hash160, rec Record) {
	granteeListKey := append([]byte{granteeKeyPrefix}, cid...)
	granteeListKey = append(granteeListKey, principal...)
	storage.Put(ctx, granteeListKey, principal)

	common.SetSerialized(ctx, grantKey(cid, principal), rec)
}

func containerOwner(ctx storage.Context, cid interop.Hash256) interop.Hash160 {
	addr := storage.Get(ctx, containerContractKey).(interop.Hash160)
	return contract.Call(addr, "owner", contract.ReadOnly, cid).(interop.Hash160)
}

func containerExists(ctx storage.Context, cid interop.Hash256) bool {
	addr := storage.Get(ctx, containerContractKey).(interop.Hash160)
	return contract.Call(addr, "exists", contract.ReadOnly, cid).(bool)
}
