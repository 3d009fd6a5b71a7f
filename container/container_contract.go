package container

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
	cst "github.com/orbitvault/custody-contract/container/containerconst"
)

type (
	// Container groups content items under a single owner and master key.
	// KeyCommitment is a hash of the container's symmetric master key, put
	// here by the owner so that key material distributed off-chain can be
	// checked against the ledger later.
	Container struct {
		Owner         interop.Hash160
		Name          string
		CreatedAt     int
		KeyCommitment []byte
	}
)

const (
	containerIDSize = interop.Hash256Len // SHA256 size

	containerKeyPrefix = 'x'
	ownerKeyPrefix     = 'o'
	nameKeyPrefix      = 'n'

	sequenceKey = "containerSeq"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	runtime.Log("container contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("container contract updated")
}

// Create method registers a new container for the specified owner and
// returns its ID. The method must be invoked with the owner's witness.
//
// Name must be non-empty and at most MaxNameLength bytes; it must not be
// taken by another live container of the same owner. The same name is free
// to use by different owners. KeyCommitment is a hash of the container's
// master key, stored as is.
//
// The ID is a hash over the owner, the name and the value of an internal
// creation counter, so two containers never share an ID even when created
// with identical arguments within one block.
func Create(owner interop.Hash160, name string, keyCommitment []byte) interop.Hash256 {
	ctx := storage.GetContext()

	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	common.CheckOwnerWitness(owner)

	if len(name) == 0 || len(name) > cst.MaxNameLength {
		panic(cst.InvalidNameError)
	}

	nameKey := nameIndexKey(owner, name)
	if storage.Get(ctx, nameKey) != nil {
		panic(cst.NameCollisionError)
	}

	seq := nextSequence(ctx)
	idSrc := append([]byte{}, owner...)
	idSrc = append(idSrc, []byte(name)...)
	idSrc = append(idSrc, convert.ToBytes(seq)...)
	id := crypto.Sha256(idSrc)

	cnr := Container{
		Owner:         owner,
		Name:          name,
		CreatedAt:     runtime.GetTime(),
		KeyCommitment: keyCommitment,
	}

	addContainer(ctx, id, owner, cnr)
	storage.Put(ctx, nameKey, id)

	runtime.Log("added new container")
	runtime.Notify("ContainerCreated", id, owner, name)

	return id
}

// Delete method removes a container from the contract storage. It can be
// invoked only with the container owner's witness and is irreversible: IDs
// derive from a strictly increasing creation counter, so a deleted ID can
// never exist again.
//
// Deletion drops the primary record and the name index entry, so the name
// becomes available for reuse by the same owner. The owner index entry is
// intentionally kept, as are grants and content items recorded for this
// container by the other custody contracts; they stay addressable by ID
// for audit purposes.
//
// If the container doesn't exist, it panics with NotFoundError.
func Delete(id interop.Hash256) {
	ctx := storage.GetContext()

	cnr := getContainer(ctx, id)
	if len(cnr.Owner) == 0 {
		panic(cst.NotFoundError)
	}

	common.CheckOwnerWitness(cnr.Owner)

	storage.Delete(ctx, append([]byte{containerKeyPrefix}, id...))
	storage.Delete(ctx, nameIndexKey(cnr.Owner, cnr.Name))

	runtime.Log("remove container")
	runtime.Notify("ContainerDeleted", id)
}

// Get method returns the stored Container structure.
//
// If the container doesn't exist or has been deleted, it panics with
// NotFoundError.
func Get(id interop.Hash256) Container {
	ctx := storage.GetReadOnlyContext()
	cnr := getContainer(ctx, id)
	if len(cnr.Owner) == 0 {
		panic(cst.NotFoundError)
	}
	return cnr
}

// Owner method returns the owner of the container.
//
// If the container doesn't exist, it panics with NotFoundError.
func Owner(id interop.Hash256) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	cnr := getContainer(ctx, id)
	if len(cnr.Owner) == 0 {
		panic(cst.NotFoundError)
	}
	return cnr.Owner
}

// KeyCommitment method returns the hash of the container's master key
// recorded at creation time.
//
// If the container doesn't exist, it panics with NotFoundError.
func KeyCommitment(id interop.Hash256) []byte {
	ctx := storage.GetReadOnlyContext()
	cnr := getContainer(ctx, id)
	if len(cnr.Owner) == 0 {
		panic(cst.NotFoundError)
	}
	return cnr.KeyCommitment
}

// Exists method returns true if the container is live: created and not
// deleted.
func Exists(id interop.Hash256) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{containerKeyPrefix}, id...)) != nil
}

// LookupByName method resolves the (owner, name) pair to a container ID.
//
// If no live container of the owner carries the name, it panics with
// NotFoundError.
func LookupByName(owner interop.Hash160, name string) interop.Hash256 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, nameIndexKey(owner, name))
	if data == nil {
		panic(cst.NotFoundError)
	}
	return data.(interop.Hash256)
}

// List method returns a list of all container IDs ever created by the
// specified owner. The index is append-only: IDs of deleted containers are
// included, and their primary records must be treated as absent on lookup.
// An unknown owner yields an empty list.
func List(owner interop.Hash160) [][]byte {
	ctx := storage.GetReadOnlyContext()

	var list [][]byte

	it := storage.Find(ctx, append([]byte{ownerKeyPrefix}, owner...), storage.ValuesOnly)
	for iterator.Next(it) {
		id := iterator.Value(it).([]byte)
		list = append(list, id)
	}

	return list
}

// ContainersOf iterates over all container IDs ever created by the
// specified owner. If owner is nil, it iterates over all containers.
// Same as List, IDs of deleted containers are included.
func ContainersOf(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := []byte{ownerKeyPrefix}
	if len(owner) != 0 {
		key = append(key, owner...)
	}
	return storage.Find(ctx, key, storage.ValuesOnly)
}

// Count method returns the number of live containers.
func Count() int {
	count := 0
	ctx := storage.GetReadOnlyContext()
	it := storage.Find(ctx, []byte{containerKeyPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		count++
	}
	return count
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func addContainer(ctx storage.Context, id, owner []byte, cnr Container) {
	containerListKey := append([]byte{ownerKeyPrefix}, owner...)
	containerListKey = append(containerListKey, id...)
	storage.Put(ctx, containerListKey, id)

	idKey := append([]byte{containerKeyPrefix}, id...)
	common.SetSerialized(ctx, idKey, cnr)
}

func getContainer(ctx storage.Context, id []byte) Container {
	data := storage.Get(ctx, append([]byte{containerKeyPrefix}, id...))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Container)
	}

	return Container{Owner: interop.Hash160([]byte{}), Name: "", CreatedAt: 0, KeyCommitment: []byte{}}
}

// nameIndexKey hashes the name part: storage keys are limited to 64 bytes,
// a prefix + owner + raw name wouldn't fit.
func nameIndexKey(owner interop.Hash160, name string) []byte {
	key := append([]byte{nameKeyPrefix}, owner...)
	return append(key, crypto.Sha256([]byte(name))...)
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
