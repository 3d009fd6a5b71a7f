/*
Package keyring implements Keyring contract which is deployed to the
custody chain.

Keyring contract is the key-exchange directory of the OrbitVault custody
system: a public lookup of per-principal key-exchange public keys. Before
granting container access, a client fetches the prospective grantee's key
from here and wraps the container's master key under it off-chain; the
wrapped blob then goes into the Access contract. The directory stores
exactly one current key per principal, published and overwritten by the
principal itself.

# Contract notifications

KeyRegistered notification. This notification is produced on the
principal's first registration.

	KeyRegistered:
	  - name: principal
	    type: Hash160
	  - name: publicKey
	    type: PublicKey

KeyUpdated notification. This notification is produced when an existing
key is overwritten.

	KeyUpdated:
	  - name: principal
	    type: Hash160
	  - name: publicKey
	    type: PublicKey
*/
package keyring

/*
Contract storage model.

# Summary
Key-value storage format:
 - k<principal> -> std.Serialize(KeyRecord)
   Current key-exchange public key of the principal with its registration
   time

# Keys
Contract stores the current key-exchange public key of every principal that
ever published one; keys are never deleted, only overwritten.
*/
