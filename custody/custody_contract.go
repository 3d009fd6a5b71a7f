package custody

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
	cst "github.com/orbitvault/custody-contract/custody/custodyconst"
	regcst "github.com/orbitvault/custody-contract/registry/registryconst"
)

type (
	// Attestation is a signed proof that the custodian held content
	// matching Hash at the claimed time and position. ClaimedAt and the
	// coordinates are taken from the custodian's telemetry as is; the
	// ledger authenticates the signature, not the telemetry. RecordedAt is
	// the ledger commit time.
	Attestation struct {
		ItemID      interop.Hash256
		ContainerID interop.Hash256
		ClaimedAt   int
		Lat         int
		Lon         int
		Alt         int
		Hash        []byte
		Sig         interop.Signature
		RecordedAt  int
	}

	// ContentItem mirrors the Registry contract's Item structure for
	// cross-contract calls.
	ContentItem struct {
		ContainerID interop.Hash256
		Key         string
		Hash        []byte
		Size        int
		UpdatedAt   int
		UpdatedBy   interop.Hash160
	}
)

const (
	registryContractKey  = "registryScriptHash"
	custodianIdentityKey = "custodianIdentity"
	adminKey             = "custodyAdmin"

	attestationKeyPrefix = 'a'
	sequenceKeyPrefix    = 's'
	listKeyPrefix        = 'q'
	latestKeyPrefix      = 'p'
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

	addrRegistry := args[0].(interop.Hash160)
	custodian := args[1].(interop.PublicKey)
	admin := args[2].(interop.Hash160)
	if len(addrRegistry) != interop.Hash160Len {
		panic("incorrect length of registry contract script hash")
	}
	if len(custodian) != interop.PublicKeyCompressedLen {
		panic("incorrect length of custodian public key")
	}
	if len(admin) != interop.Hash160Len {
		panic("incorrect length of administrator script hash")
	}

	storage.Put(ctx, registryContractKey, addrRegistry)
	storage.Put(ctx, custodianIdentityKey, custodian)
	storage.Put(ctx, adminKey, admin)

	runtime.Log("custody contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("custody contract updated")
}

// Submit method appends a custody attestation for a live content item and
// returns the attestation ID. Anyone may relay the call: the ledger trusts
// only the signature, which must be produced by the configured custodian
// identity over
//
//	itemID || claimedAt || lat || lon || alt || contentHash
//
// with integers in their VM byte encoding. A signature of wrong length
// panics with MalformedSignatureError, a signature by any other key with
// UntrustedSignerError.
//
// Attestations are append-only and never deduplicated: re-submitting an
// identical payload yields a distinct record, re-attestation over time is
// expected. The item's "latest" pointer always moves to the new record,
// submission order is authoritative even when claimed timestamps run
// backwards.
func Submit(itemID interop.Hash256, claimedAt, lat, lon, alt int, contentHash []byte, signature interop.Signature) interop.Hash256 {
	ctx := storage.GetContext()

	addrRegistry := storage.Get(ctx, registryContractKey).(interop.Hash160)
	if !contract.Call(addrRegistry, "exists", contract.ReadOnly, itemID).(bool) {
		panic(regcst.NotFoundError)
	}

	if len(signature) != interop.SignatureLen {
		panic(cst.MalformedSignatureError)
	}

	custodian := storage.Get(ctx, custodianIdentityKey).(interop.PublicKey)
	msg := attestationMessage(itemID, claimedAt, lat, lon, alt, contentHash)
	if !crypto.VerifyWithECDsa(msg, custodian, signature, crypto.Secp256r1) {
		panic(cst.UntrustedSignerError)
	}

	item := contract.Call(addrRegistry, "get", contract.ReadOnly, itemID).(ContentItem)

	seq := nextSequence(ctx, itemID)
	id := crypto.Sha256(append(append([]byte{}, itemID...), convert.ToBytes(seq)...))

	att := Attestation{
		ItemID:      itemID,
		ContainerID: item.ContainerID,
		ClaimedAt:   claimedAt,
		Lat:         lat,
		Lon:         lon,
		Alt:         alt,
		Hash:        contentHash,
		Sig:         signature,
		RecordedAt:  runtime.GetTime(),
	}

	common.SetSerialized(ctx, append([]byte{attestationKeyPrefix}, id...), att)

	listKey := append([]byte{listKeyPrefix}, itemID...)
	listKey = append(listKey, common.ToFixedWidth(seq)...)
	storage.Put(ctx, listKey, id)

	storage.Put(ctx, append([]byte{latestKeyPrefix}, itemID...), id)

	runtime.Log("custody attestation saved")
	runtime.Notify("AttestationSubmitted", itemID, id)

	return id
}

// Get method returns the stored Attestation structure.
//
// If the attestation doesn't exist, it panics with NotFoundError.
func Get(id interop.Hash256) Attestation {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{attestationKeyPrefix}, id...))
	if data == nil {
		panic(cst.NotFoundError)
	}
	return std.Deserialize(data.([]byte)).(Attestation)
}

// Latest method returns the most recently submitted attestation of the
// item. Submission order governs, not claimed timestamps.
//
// If the item has no attestations, it panics with NoAttestationsError.
func Latest(itemID interop.Hash256) Attestation {
	return Get(LatestID(itemID))
}

// LatestID method returns the ID of the most recently submitted
// attestation of the item.
//
// If the item has no attestations, it panics with NoAttestationsError.
func LatestID(itemID interop.Hash256) interop.Hash256 {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{latestKeyPrefix}, itemID...))
	if data == nil {
		panic(cst.NoAttestationsError)
	}
	return data.(interop.Hash256)
}

// VerifyHash method compares the expected hash against the hash captured by
// the item's latest attestation. It returns false, not an error, when the
// item has no attestations.
func VerifyHash(itemID interop.Hash256, expected []byte) bool {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{latestKeyPrefix}, itemID...))
	if data == nil {
		return false
	}
	att := Get(data.(interop.Hash256))
	return common.BytesEqual(att.Hash, expected)
}

// Count method returns the number of attestations submitted for the item.
func Count(itemID interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	return getSequence(ctx, itemID)
}

// List method returns the IDs of all attestations of the item in
// submission order.
func List(itemID interop.Hash256) [][]byte {
	ctx := storage.GetReadOnlyContext()

	var list [][]byte

	it := storage.Find(ctx, append([]byte{listKeyPrefix}, itemID...), storage.ValuesOnly)
	for iterator.Next(it) {
		list = append(list, iterator.Value(it).([]byte))
	}

	return list
}

// Custodian method returns the expected custodian signing identity.
func Custodian() interop.PublicKey {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, custodianIdentityKey).(interop.PublicKey)
}

// RotateCustodianIdentity method replaces the expected custodian signing
// identity. It can be invoked only with the configured administrator's
// witness and takes effect immediately: there is no grace window, in-flight
// submissions signed under the old identity will be rejected.
func RotateCustodianIdentity(newIdentity interop.PublicKey) {
	ctx := storage.GetContext()

	if len(newIdentity) != interop.PublicKeyCompressedLen {
		panic("incorrect length of custodian public key")
	}

	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	if !runtime.CheckWitness(admin) {
		panic(cst.NotAuthorizedError)
	}

	storage.Put(ctx, custodianIdentityKey, newIdentity)

	runtime.Log("custodian identity rotated")
	runtime.Notify("CustodianRotated", newIdentity)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func attestationMessage(itemID interop.Hash256, claimedAt, lat, lon, alt int, contentHash []byte) []byte {
	msg := append([]byte{}, itemID...)
	msg = append(msg, convert.ToBytes(claimedAt)...)
	msg = append(msg, convert.ToBytes(lat)...)
	msg = append(msg, convert.ToBytes(lon)...)
	msg = append(msg, convert.ToBytes(alt)...)
	return append(msg, contentHash...)
}

func getSequence(ctx storage.Context, itemID interop.Hash256) int {
	data := storage.Get(ctx, append([]byte{sequenceKeyPrefix}, itemID...))
	if data != nil {
		return data.(int)
	}
	return 0
}

func nextSequence(ctx storage.Context, itemID interop.Hash256) int {
	seq := getSequence(ctx, itemID) + 1
	storage.Put(ctx, append([]byte{sequenceKeyPrefix}, itemID...), seq)
	return seq
}
