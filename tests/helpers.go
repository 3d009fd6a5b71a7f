package tests

import (
	"crypto/sha256"
	"math/big"
	"math/rand"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func mustBytes(t *testing.T, item stackitem.Item) []byte {
	v, err := item.TryBytes()
	require.NoError(t, err)
	return v
}

func mustInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func arrayOfBytes(t *testing.T, items []stackitem.Item) [][]byte {
	res := make([][]byte, 0, len(items))
	for _, item := range items {
		res = append(res, mustBytes(t, item))
	}
	return res
}

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// invokeReturnBytes commits an invocation and returns the byte-slice result
// left on the stack.
func invokeReturnBytes(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) []byte {
	tx := c.PrepareInvoke(t, method, args...)
	c.AddNewBlock(t, tx)
	res := c.CheckHalt(t, tx.Hash())
	require.Len(t, res.Stack, 1)

	v, err := res.Stack[0].TryBytes()
	require.NoError(t, err)
	return v
}

// testInvokeBytes performs a test invocation (without persisting) and
// returns the byte-slice result.
func testInvokeBytes(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) []byte {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().Bytes()
}

func testInvokeBool(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) bool {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().Bool()
}

func testInvokeInt(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) int64 {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	return s.Pop().BigInt().Int64()
}

// attestationMessage reproduces the canonical byte encoding signed by the
// custodian: integers use the VM integer encoding.
func attestationMessage(itemID []byte, claimedAt, lat, lon, alt int64, contentHash []byte) []byte {
	msg := append([]byte{}, itemID...)
	msg = append(msg, bigint.ToBytes(big.NewInt(claimedAt))...)
	msg = append(msg, bigint.ToBytes(big.NewInt(lat))...)
	msg = append(msg, bigint.ToBytes(big.NewInt(lon))...)
	msg = append(msg, bigint.ToBytes(big.NewInt(alt))...)
	return append(msg, contentHash...)
}

func signAttestation(priv *keys.PrivateKey, itemID []byte, claimedAt, lat, lon, alt int64, contentHash []byte) []byte {
	return priv.Sign(attestationMessage(itemID, claimedAt, lat, lon, alt, contentHash))
}

// attestationID reproduces the contract-side derivation: SHA-256 over the
// item ID and the item's submission sequence number.
func attestationID(itemID []byte, seq int64) []byte {
	id := sha256.Sum256(append(append([]byte{}, itemID...), bigint.ToBytes(big.NewInt(seq))...))
	return id[:]
}
