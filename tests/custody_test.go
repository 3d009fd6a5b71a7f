package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/orbitvault/custody-contract/custody/custodyconst"
	"github.com/orbitvault/custody-contract/registry/registryconst"
	"github.com/stretchr/testify/require"
)

// newAttestedItem prepares a container with one registered content item and
// returns the fixture together with the item ID and content hash.
func newAttestedItem(t *testing.T) (*custodyFixture, neotest.Signer, []byte, []byte, []byte) {
	f := newCustodyFixture(t)

	owner := f.cnr.NewAccount(t)
	cid := createContainer(t, f.cnr, owner, "docs")
	f.acl.WithSigners(owner).Invoke(t, stackitem.Null{}, "initializeOwnerAccess", cid, randomBytes(48))

	hash := randomBytes(32)
	itemID := invokeReturnBytes(t, f.reg.WithSigners(owner),
		"put", cid, "backup/a.bin", hash, 42, owner.ScriptHash())

	return f, owner, cid, itemID, hash
}

func TestCustodySubmit(t *testing.T) {
	f, _, _, itemID, hash := newAttestedItem(t)

	var claimedAt int64 = 1700000000
	var lat, lon, alt int64 = 55 * custodyconst.CoordScale, 37 * custodyconst.CoordScale, 417

	sig := signAttestation(f.custodian, itemID, claimedAt, lat, lon, alt, hash)

	f.cst.InvokeFail(t, registryconst.NotFoundError,
		"submit", randomBytes(32), claimedAt, lat, lon, alt, hash, sig)
	f.cst.InvokeFail(t, custodyconst.MalformedSignatureError,
		"submit", itemID, claimedAt, lat, lon, alt, hash, randomBytes(10))

	// A valid signature by a key other than the custodian's is rejected.
	impostor, err := keys.NewPrivateKey()
	require.NoError(t, err)
	badSig := signAttestation(impostor, itemID, claimedAt, lat, lon, alt, hash)
	f.cst.InvokeFail(t, custodyconst.UntrustedSignerError,
		"submit", itemID, claimedAt, lat, lon, alt, hash, badSig)

	// So is a custodian signature over different telemetry.
	f.cst.InvokeFail(t, custodyconst.UntrustedSignerError,
		"submit", itemID, claimedAt+1, lat, lon, alt, hash, sig)

	attID := invokeReturnBytes(t, f.cst, "submit", itemID, claimedAt, lat, lon, alt, hash, sig)
	require.Equal(t, attestationID(itemID, 1), attID)

	require.EqualValues(t, 1, testInvokeInt(t, f.cst, "count", itemID))
	require.Equal(t, attID, testInvokeBytes(t, f.cst, "latestID", itemID))
	require.True(t, testInvokeBool(t, f.cst, "verifyHash", itemID, hash))
	require.False(t, testInvokeBool(t, f.cst, "verifyHash", itemID, randomBytes(32)))

	s, err := f.cst.TestInvoke(t, "get", attID)
	require.NoError(t, err)
	att := s.Pop().Array()
	require.Equal(t, itemID, mustBytes(t, att[0]))
	require.EqualValues(t, claimedAt, mustInt(t, att[2]))
	require.EqualValues(t, lat, mustInt(t, att[3]))
	require.EqualValues(t, lon, mustInt(t, att[4]))
	require.EqualValues(t, alt, mustInt(t, att[5]))
	require.Equal(t, hash, mustBytes(t, att[6]))

	_, err = f.cst.TestInvoke(t, "get", randomBytes(32))
	require.ErrorContains(t, err, custodyconst.NotFoundError)
}

func TestCustodySubmissionOrder(t *testing.T) {
	f, _, _, itemID, hash := newAttestedItem(t)

	// The second attestation claims an earlier time than the first. The
	// latest pointer follows submission order regardless.
	first := invokeReturnBytes(t, f.cst, "submit", itemID, 100, 1, 2, 3, hash,
		signAttestation(f.custodian, itemID, 100, 1, 2, 3, hash))
	second := invokeReturnBytes(t, f.cst, "submit", itemID, 50, 1, 2, 3, hash,
		signAttestation(f.custodian, itemID, 50, 1, 2, 3, hash))

	require.NotEqual(t, first, second)
	require.EqualValues(t, 2, testInvokeInt(t, f.cst, "count", itemID))
	require.Equal(t, second, testInvokeBytes(t, f.cst, "latestID", itemID))

	s, err := f.cst.TestInvoke(t, "latest", itemID)
	require.NoError(t, err)
	att := s.Pop().Array()
	require.EqualValues(t, 50, mustInt(t, att[2]))

	s, err = f.cst.TestInvoke(t, "list", itemID)
	require.NoError(t, err)
	require.Equal(t, [][]byte{first, second}, arrayOfBytes(t, s.Pop().Array()))
}

func TestCustodyResubmission(t *testing.T) {
	f, _, _, itemID, hash := newAttestedItem(t)

	sig := signAttestation(f.custodian, itemID, 100, 1, 2, 3, hash)

	// Identical payloads still produce distinct records.
	first := invokeReturnBytes(t, f.cst, "submit", itemID, 100, 1, 2, 3, hash, sig)
	second := invokeReturnBytes(t, f.cst, "submit", itemID, 100, 1, 2, 3, hash, sig)

	require.NotEqual(t, first, second)
	require.EqualValues(t, 2, testInvokeInt(t, f.cst, "count", itemID))
}

func TestCustodyDeletedItem(t *testing.T) {
	f, owner, cid, itemID, hash := newAttestedItem(t)

	attID := invokeReturnBytes(t, f.cst, "submit", itemID, 100, 1, 2, 3, hash,
		signAttestation(f.custodian, itemID, 100, 1, 2, 3, hash))

	f.reg.WithSigners(owner).Invoke(t, stackitem.Null{}, "delete", cid, "backup/a.bin", owner.ScriptHash())

	// No new attestations for a deleted item, but the filed ones stay.
	f.cst.InvokeFail(t, registryconst.NotFoundError,
		"submit", itemID, 200, 1, 2, 3, hash,
		signAttestation(f.custodian, itemID, 200, 1, 2, 3, hash))

	require.Equal(t, attID, testInvokeBytes(t, f.cst, "latestID", itemID))
	require.True(t, testInvokeBool(t, f.cst, "verifyHash", itemID, hash))
}

func TestCustodyNoAttestations(t *testing.T) {
	f, _, _, itemID, hash := newAttestedItem(t)

	require.False(t, testInvokeBool(t, f.cst, "verifyHash", itemID, hash))
	require.EqualValues(t, 0, testInvokeInt(t, f.cst, "count", itemID))
	_, err := f.cst.TestInvoke(t, "latestID", itemID)
	require.ErrorContains(t, err, custodyconst.NoAttestationsError)
}

func TestCustodyRotation(t *testing.T) {
	f, _, _, itemID, hash := newAttestedItem(t)

	next, err := keys.NewPrivateKey()
	require.NoError(t, err)

	require.Equal(t, f.custodian.PublicKey().Bytes(), testInvokeBytes(t, f.cst, "custodian"))

	stranger := f.cst.NewAccount(t)
	f.cst.WithSigners(stranger).InvokeFail(t, custodyconst.NotAuthorizedError,
		"rotateCustodianIdentity", next.PublicKey().Bytes())
	f.cst.WithSigners(f.admin).InvokeFail(t, "incorrect length of custodian public key",
		"rotateCustodianIdentity", randomBytes(16))

	f.cst.WithSigners(f.admin).Invoke(t, stackitem.Null{},
		"rotateCustodianIdentity", next.PublicKey().Bytes())

	require.Equal(t, next.PublicKey().Bytes(), testInvokeBytes(t, f.cst, "custodian"))

	// Rotation takes effect immediately, old-identity signatures are out.
	f.cst.InvokeFail(t, custodyconst.UntrustedSignerError,
		"submit", itemID, 100, 1, 2, 3, hash,
		signAttestation(f.custodian, itemID, 100, 1, 2, 3, hash))

	attID := invokeReturnBytes(t, f.cst, "submit", itemID, 100, 1, 2, 3, hash,
		signAttestation(next, itemID, 100, 1, 2, 3, hash))
	require.Equal(t, attestationID(itemID, 1), attID)
}
