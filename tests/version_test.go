package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/orbitvault/custody-contract/common"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	e := newExecutor(t)

	custodian, err := keys.NewPrivateKey()
	require.NoError(t, err)
	admin := e.NewAccount(t)

	hCnr := deployContainerContract(t, e)
	hAcl := deployAccessContract(t, e, hCnr)
	hReg := deployRegistryContract(t, e, hCnr, hAcl)
	hCst := deployCustodyContract(t, e, hReg, custodian.PublicKey(), admin.ScriptHash())
	hKey := deployKeyringContract(t, e)

	for _, h := range []util.Uint160{hCnr, hAcl, hReg, hCst, hKey} {
		require.EqualValues(t, common.Version, testInvokeInt(t, e.CommitteeInvoker(h), "version"))
	}
}

func TestUpdateAccess(t *testing.T) {
	c := newContainerInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, "only committee can update contract",
		"update", []byte{}, []byte{}, nil)
}
