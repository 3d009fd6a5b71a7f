package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/orbitvault/custody-contract/common"
	cnrcst "github.com/orbitvault/custody-contract/container/containerconst"
	cst "github.com/orbitvault/custody-contract/registry/registryconst"
)

type (
	// Item is a tracked file reference inside a container: a path-like key
	// plus the integrity hash and size of the encrypted content. The bytes
	// themselves never touch the ledger.
	Item struct {
		ContainerID interop.Hash256
		Key         string
		Hash        []byte
		Size        int
		UpdatedAt   int
		UpdatedBy   interop.Hash160
	}
)

const (
	containerContractKey = "containerScriptHash"
	accessContractKey    = "accessScriptHash"

	itemKeyPrefix    = 'i'
	lookupKeyPrefix  = 'k'
	listKeyPrefix    = 'e'
	countKeyPrefix   = 'c'
	deletedKeyPrefix = 'd'

	sequenceKey = "itemSeq"

	// lookupPostfixSize bounds hashed postfixes of index keys: full 32-byte
	// hashes don't fit, storage keys are limited to 64 bytes.
	lookupPostfixSize = 24
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
	addrAccess := args[1].(interop.Hash160)
	if len(addrContainer) != interop.Hash160Len || len(addrAccess) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, containerContractKey, addrContainer)
	storage.Put(ctx, accessContractKey, addrAccess)

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Put method registers a content item under the specified key of the
// container and returns the item ID. The uploader must hold Write or Admin
// access to the container and the method must be invoked with the
// uploader's witness.
//
// Put is an upsert: if the key already resolves to a live item, that item's
// hash, size, upload time and uploader are overwritten in place and the ID
// is preserved (an ItemUpdated notification); otherwise a fresh ID is
// derived from the container, the key and an internal counter, and the
// container's item count grows by one (an ItemCreated notification).
func Put(cid interop.Hash256, key string, contentHash []byte, size int, uploader interop.Hash160) interop.Hash256 {
	ctx := storage.GetContext()

	common.CheckWitness(uploader)
	requireWriteAccess(ctx, cid, uploader)

	if len(key) == 0 || len(key) > cst.MaxKeyLength {
		panic(cst.InvalidKeyError)
	}
	if size <= 0 {
		panic(cst.InvalidSizeError)
	}
	if isZeroHash(contentHash) {
		panic(cst.InvalidHashError)
	}

	lookupKey := itemLookupKey(cid, key)
	now := runtime.GetTime()

	data := storage.Get(ctx, lookupKey)
	if data != nil {
		id := data.(interop.Hash256)

		item := getItem(ctx, id)
		item.Hash = contentHash
		item.Size = size
		item.UpdatedAt = now
		item.UpdatedBy = uploader
		common.SetSerialized(ctx, append([]byte{itemKeyPrefix}, id...), item)

		runtime.Log("content item updated")
		runtime.Notify("ItemUpdated", cid, id, key)

		return id
	}

	seq := nextSequence(ctx)
	idSrc := append([]byte{}, cid...)
	idSrc = append(idSrc, []byte(key)...)
	idSrc = append(idSrc, convert.ToBytes(seq)...)
	id := crypto.Sha256(idSrc)

	item := Item{
		ContainerID: cid,
		Key:         key,
		Hash:        contentHash,
		Size:        size,
		UpdatedAt:   now,
		UpdatedBy:   uploader,
	}

	common.SetSerialized(ctx, append([]byte{itemKeyPrefix}, id...), item)
	storage.Put(ctx, lookupKey, id)

	listKey := append([]byte{listKeyPrefix}, cid...)
	listKey = append(listKey, id[:lookupPostfixSize]...)
	storage.Put(ctx, listKey, id)

	countKey := append([]byte{countKeyPrefix}, cid...)
	storage.Put(ctx, countKey, getCount(ctx, cid)+1)

	runtime.Log("content item added")
	runtime.Notify("ItemCreated", cid, id, key)

	return id
}

// Delete method removes the live item under the specified key of the
// container. The remover must hold Write or Admin access to the container
// and the method must be invoked with the remover's witness.
//
// Removal clears the key index and decrements the container's item count,
// but keeps the item's record retrievable by ID and does not touch custody
// attestations already filed against it.
//
// If the key has no live item, it panics with NotFoundError.
func Delete(cid interop.Hash256, key string, remover interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckWitness(remover)
	requireWriteAccess(ctx, cid, remover)

	lookupKey := itemLookupKey(cid, key)
	data := storage.Get(ctx, lookupKey)
	if data == nil {
		panic(cst.NotFoundError)
	}
	id := data.(interop.Hash256)

	storage.Delete(ctx, lookupKey)
	storage.Put(ctx, append([]byte{deletedKeyPrefix}, id...), []byte{})

	countKey := append([]byte{countKeyPrefix}, cid...)
	storage.Put(ctx, countKey, getCount(ctx, cid)-1)

	runtime.Log("content item removed")
	runtime.Notify("ItemDeleted", cid, id, key)
}

// Get method returns the stored Item structure. It works for deleted items
// as well: the historical record stays addressable by ID after the key
// index entry is gone.
//
// If the item was never registered, it panics with NotFoundError.
func Get(id interop.Hash256) Item {
	ctx := storage.GetReadOnlyContext()
	item := getItem(ctx, id)
	if len(item.ContainerID) == 0 {
		panic(cst.NotFoundError)
	}
	return item
}

// Exists method returns true if the item is live: registered and not
// deleted.
func Exists(id interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()
	if storage.Get(ctx, append([]byte{itemKeyPrefix}, id...)) == nil {
		return false
	}
	return storage.Get(ctx, append([]byte{deletedKeyPrefix}, id...)) == nil
}

// GetByKey method resolves the (container, key) pair to the live Item
// structure.
//
// If the key has no live item, it panics with NotFoundError.
func GetByKey(cid interop.Hash256, key string) Item {
	return Get(ItemIDByKey(cid, key))
}

// ItemIDByKey method resolves the (container, key) pair to the live item ID.
//
// If the key has no live item, it panics with NotFoundError.
func ItemIDByKey(cid interop.Hash256, key string) interop.Hash256 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, itemLookupKey(cid, key))
	if data == nil {
		panic(cst.NotFoundError)
	}
	return data.(interop.Hash256)
}

// List method returns the IDs of all items ever registered in the
// container. The index is append-only: IDs of deleted items are included,
// Exists tells them apart.
func List(cid interop.Hash256) [][]byte {
	ctx := storage.GetReadOnlyContext()

	var list [][]byte

	it := storage.Find(ctx, append([]byte{listKeyPrefix}, cid...), storage.ValuesOnly)
	for iterator.Next(it) {
		list = append(list, iterator.Value(it).([]byte))
	}

	return list
}

// Count method returns the number of live items in the container.
func Count(cid interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	return getCount(ctx, cid)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// requireWriteAccess panics unless the container is live and the principal
// holds Write access or better on it.
func requireWriteAccess(ctx storage.Context, cid interop.Hash256, principal interop.Hash160) {
	containerAddr := storage.Get(ctx, containerContractKey).(interop.Hash160)
	if !contract.Call(containerAddr, "exists", contract.ReadOnly, cid).(bool) {
		panic(cnrcst.NotFoundError)
	}

	accessAddr := storage.Get(ctx, accessContractKey).(interop.Hash160)
	if !contract.Call(accessAddr, "canWrite", contract.ReadOnly, cid, principal).(bool) {
		panic(cst.WriteDeniedError)
	}
}

func getItem(ctx storage.Context, id []byte) Item {
	data := storage.Get(ctx, append([]byte{itemKeyPrefix}, id...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Item)
	}

	return Item{ContainerID: interop.Hash256([]byte{}), Key: "", Hash: []byte{}, Size: 0, UpdatedAt: 0, UpdatedBy: interop.Hash160([]byte{})}
}

// itemLookupKey hashes the key part: storage keys are limited to 64 bytes,
// a prefix + cid + raw item key wouldn't fit.
func itemLookupKey(cid interop.Hash256, key string) []byte {
	hashedKey := crypto.Sha256([]byte(key))

	result := append([]byte{lookupKeyPrefix}, cid...)
	return append(result, hashedKey[:lookupPostfixSize]...)
}

func nextSequence(ctx storage.Context) int {
	seq := 1
	data := storage.Get(ctx, sequenceKey)
	if data != nil {
		seq = data.(int) + 1
	}
	storage.Put(ctx, sequenceKey, seq)
	return seq
}

func getCount(ctx storage.Context, cid interop.Hash256) int {
	data := storage.Get(ctx, append([]byte{countKeyPrefix}, cid...))
	if data != nil {
		return data.(int)
	}
	return 0
}

func isZeroHash(h []byte) bool {
	for i := range h {
		if h[i] != 0 {
			return false
		}
	}
	return true
}
