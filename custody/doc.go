/*
Package custody implements Custody contract which is deployed to the
custody chain.

Custody contract is the attestation ledger of the OrbitVault system: an
append-only log of signed proofs that the remote custodian (a satellite)
actually held specific content at specific times and positions. The
custodian hashes the content it stores, signs the hash together with its
telemetry and ships the proof through the relay; anyone may submit it, the
ledger accepts only proofs verifiably signed by the configured custodian
identity. Telemetry values themselves (claimed timestamp, coordinates) are
recorded as given and are not checked against orbital data; consistency
with the outside world is an off-chain concern.

Attestations are permanent: they are never deleted, survive removal of the
attested item, and duplicates are kept as distinct records since repeated
attestation of the same content over time is the expected mode of
operation. Each item's "latest" pointer follows submission order, not the
claimed timestamps, so the most recently relayed proof wins even when its
claimed time is older.

The expected signing identity can be rotated by the configured
administrator, with immediate effect for all subsequent submissions.

# Contract notifications

AttestationSubmitted notification. This notification is produced when a
custody proof is accepted.

	AttestationSubmitted:
	  - name: itemID
	    type: Hash256
	  - name: attestationID
	    type: Hash256

CustodianRotated notification. This notification is produced when the
expected custodian signing identity is replaced.

	CustodianRotated:
	  - name: identity
	    type: PublicKey
*/
package custody

/*
Contract storage model.

# Summary
Key-value storage format:
 - a<attestationID> -> std.Serialize(Attestation)
   Attestations, id is a 32-byte SHA-256 over the item id and the item's
   submission counter value. Never deleted
 - s<itemID> -> int
   Per-item submission counter
 - q<itemID><seq BE8> -> <attestationID>
   Per-item attestation index in submission order; the sequence number is
   encoded as 8 fixed big-endian bytes so lexicographic iteration follows
   numeric order
 - p<itemID> -> <attestationID>
   Latest-attestation pointer, moved unconditionally on every accepted
   submission
 - registryScriptHash -> interop.Hash160
   Registry contract reference used for item existence checks
 - custodianIdentity -> interop.PublicKey
   Expected custodian signing identity
 - custodyAdmin -> interop.Hash160
   Administrator allowed to rotate the custodian identity

# Custody history
Contract stores all custody proofs ever accepted by the OrbitVault
network.
*/
