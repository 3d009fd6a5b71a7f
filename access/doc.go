/*
Package access implements Access contract which is deployed to the custody
chain.

Access contract is the permission ledger of the OrbitVault custody system.
For every container it keeps the set of grants: which principal holds which
permission level together with the container's symmetric master key wrapped
(asymmetrically encrypted) for that principal. Envelope encryption itself
happens off-chain; the contract stores and serves opaque wrapped-key blobs
only, so storage access can be delegated without ever exposing a plaintext
key to the ledger.

Permission levels form an ordered set None < Read < Write < Admin. The
container owner is an implicit admin from the moment of container creation
and additionally seeds an explicit Admin grant with its own wrapped key via
InitializeOwnerAccess; that is the only way an owner record appears, the
owner is never a valid Grant target and its access can be neither revoked
nor downgraded. A revoked grant disappears from lookups immediately,
but a wrapped key fetched before revocation stays usable by its holder
off-chain; truly locking a departed principal out requires the re-keying
protocol: rotate the master key, Rewrap it for every remaining grantee,
then Revoke. The contract guarantees atomicity of each individual step, not
of the whole sequence; Rewrap is idempotent per grantee so the sequence can
be retried.

# Contract notifications

AccessInitialized notification. This notification is produced when a
container owner seeds its own grant.

	AccessInitialized:
	  - name: containerID
	    type: Hash256
	  - name: owner
	    type: Hash160

AccessGranted notification. This notification is produced when a principal
is given access to a container.

	AccessGranted:
	  - name: containerID
	    type: Hash256
	  - name: principal
	    type: Hash160
	  - name: level
	    type: Integer

AccessRevoked notification. This notification is produced when a
principal's grant is removed.

	AccessRevoked:
	  - name: containerID
	    type: Hash256
	  - name: principal
	    type: Hash160

AccessRewrapped notification. This notification is produced when the
wrapped key blob of an existing grant is replaced.

	AccessRewrapped:
	  - name: containerID
	    type: Hash256
	  - name: principal
	    type: Hash160
*/
package access

/*
Contract storage model.

# Summary
Key-value storage format:
 - g<cid><principal> -> std.Serialize(Record)
   Grant records; removed on revocation
 - l<cid><principal> -> <principal>
   Grantee index. Append-only: revoked principals stay listed, their grant
   records must be treated as absent on lookup
 - containerScriptHash -> interop.Hash160
   Container contract reference used for ownership and existence checks

# Grants
Contract stores every live grant of every container tracked by the
OrbitVault custody network, and the full historical grantee set.
*/
