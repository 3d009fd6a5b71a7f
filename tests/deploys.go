package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

const (
	containerPath = "../container"
	accessPath    = "../access"
	registryPath  = "../registry"
	custodyPath   = "../custody"
	keyringPath   = "../keyring"
)

func deployContainerContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, containerPath, path.Join(containerPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

func deployAccessContract(t *testing.T, e *neotest.Executor, addrContainer util.Uint160) util.Uint160 {
	args := make([]any, 1)
	args[0] = addrContainer

	c := neotest.CompileFile(t, e.CommitteeHash, accessPath, path.Join(accessPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func deployRegistryContract(t *testing.T, e *neotest.Executor, addrContainer, addrAccess util.Uint160) util.Uint160 {
	args := make([]any, 2)
	args[0] = addrContainer
	args[1] = addrAccess

	c := neotest.CompileFile(t, e.CommitteeHash, registryPath, path.Join(registryPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func deployCustodyContract(t *testing.T, e *neotest.Executor, addrRegistry util.Uint160, custodian *keys.PublicKey, admin util.Uint160) util.Uint160 {
	args := make([]any, 3)
	args[0] = addrRegistry
	args[1] = custodian.Bytes()
	args[2] = admin

	c := neotest.CompileFile(t, e.CommitteeHash, custodyPath, path.Join(custodyPath, "config.yml"))
	e.DeployContract(t, c, args)
	return c.Hash
}

func deployKeyringContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, keyringPath, path.Join(keyringPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

// newContainerInvoker deploys the container contract on a fresh chain.
func newContainerInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployContainerContract(t, e)
	return e.CommitteeInvoker(h)
}

// newAccessInvoker deploys the container and access contracts on a fresh
// chain and returns invokers for both.
func newAccessInvoker(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)
	hCnr := deployContainerContract(t, e)
	hAcl := deployAccessContract(t, e, hCnr)
	return e.CommitteeInvoker(hCnr), e.CommitteeInvoker(hAcl)
}

// newRegistryInvoker deploys the container, access and registry contracts on
// a fresh chain and returns invokers for all three.
func newRegistryInvoker(t *testing.T) (*neotest.ContractInvoker, *neotest.ContractInvoker, *neotest.ContractInvoker) {
	e := newExecutor(t)
	hCnr := deployContainerContract(t, e)
	hAcl := deployAccessContract(t, e, hCnr)
	hReg := deployRegistryContract(t, e, hCnr, hAcl)
	return e.CommitteeInvoker(hCnr), e.CommitteeInvoker(hAcl), e.CommitteeInvoker(hReg)
}

type custodyFixture struct {
	cnr *neotest.ContractInvoker
	acl *neotest.ContractInvoker
	reg *neotest.ContractInvoker
	cst *neotest.ContractInvoker

	custodian *keys.PrivateKey
	admin     neotest.Signer
}

// newCustodyFixture deploys the full contract set with a fresh custodian
// key pair and a dedicated rotation administrator account.
func newCustodyFixture(t *testing.T) *custodyFixture {
	e := newExecutor(t)

	custodian, err := keys.NewPrivateKey()
	require.NoError(t, err)
	admin := e.NewAccount(t)

	hCnr := deployContainerContract(t, e)
	hAcl := deployAccessContract(t, e, hCnr)
	hReg := deployRegistryContract(t, e, hCnr, hAcl)
	hCst := deployCustodyContract(t, e, hReg, custodian.PublicKey(), admin.ScriptHash())

	return &custodyFixture{
		cnr:       e.CommitteeInvoker(hCnr),
		acl:       e.CommitteeInvoker(hAcl),
		reg:       e.CommitteeInvoker(hReg),
		cst:       e.CommitteeInvoker(hCst),
		custodian: custodian,
		admin:     admin,
	}
}

// createContainer creates a container on behalf of owner and resolves the
// new container ID through the name index.
func createContainer(t *testing.T, cnr *neotest.ContractInvoker, owner neotest.Signer, name string) []byte {
	commitment := randomBytes(32)
	return invokeReturnBytes(t, cnr.WithSigners(owner), "create", owner.ScriptHash(), name, commitment)
}
