package keyring

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/orbitvault/custody-contract/common"
	cst "github.com/orbitvault/custody-contract/keyring/keyringconst"
)

type (
	// KeyRecord is the principal's current key-exchange public key. Clients
	// read it before granting access to wrap the container's master key for
	// the new grantee.
	KeyRecord struct {
		Key          interop.PublicKey
		RegisteredAt int
	}
)

const recordKeyPrefix = 'k'

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("keyring contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("keyring contract updated")
}

// Register method binds a key-exchange public key to the principal. It can
// be invoked only with the principal's witness: a principal publishes its
// own key. A key must be a 33-byte compressed point with a 0x02/0x03 tag
// byte, anything else panics with InvalidKeyFormatError.
//
// Re-registration overwrites the previous key and produces a KeyUpdated
// notification instead of KeyRegistered; the ledger keeps exactly one
// current key per principal.
func Register(principal interop.Hash160, publicKey interop.PublicKey) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(principal)

	if len(publicKey) != interop.PublicKeyCompressedLen ||
		(publicKey[0] != 0x02 && publicKey[0] != 0x03) {
		panic(cst.InvalidKeyFormatError)
	}

	recordKey := append([]byte{recordKeyPrefix}, principal...)
	isUpdate := storage.Get(ctx, recordKey) != nil

	common.SetSerialized(ctx, recordKey, KeyRecord{
		Key:          publicKey,
		RegisteredAt: runtime.GetTime(),
	})

	if isUpdate {
		runtime.Log("key-exchange key updated")
		runtime.Notify("KeyUpdated", principal, publicKey)
	} else {
		runtime.Log("key-exchange key registered")
		runtime.Notify("KeyRegistered", principal, publicKey)
	}
}

// Get method returns the principal's current key-exchange public key.
//
// If the principal never registered one, it panics with NotRegisteredError.
func Get(principal interop.Hash160) interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	rec := getRecord(ctx, principal)
	if len(rec.Key) == 0 {
		panic(cst.NotRegisteredError)
	}
	return rec.Key
}

// Has method returns true if the principal has a registered key.
func Has(principal interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{recordKeyPrefix}, principal...)) != nil
}

// GetBatch method resolves several principals at once. The result keeps a
// 1:1 index correspondence with the input; principals without a registered
// key are represented by empty entries, the method never fails per entry.
func GetBatch(principals []interop.Hash160) [][]byte {
	ctx := storage.GetReadOnlyContext()

	result := [][]byte{}
	for i := 0; i < len(principals); i++ {
		rec := getRecord(ctx, principals[i])
		result = append(result, rec.Key)
	}

	return result
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getRecord(ctx storage.Context, principal interop.Hash160) KeyRecord {
	data := storage.Get(ctx, append([]byte{recordKeyPrefix}, principal...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(KeyRecord)
	}

	return KeyRecord{Key: interop.PublicKey{}, RegisteredAt: 0}
}
