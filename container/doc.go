/*
Package container implements Container contract which is deployed to the
custody chain.

Container contract is the entity directory of the OrbitVault custody
ledger: it owns container identity and existence. A container is a named,
owned grouping of content items, roughly a bucket. Content items themselves
are tracked by the Registry contract, per-grantee access by the Access
contract; both resolve ownership and existence through this one.

Names are unique per owner, not globally: two principals can each hold a
container named "docs". Container IDs are derived from the owner, the name
and a strictly increasing creation counter, so a deleted ID can never exist
again. Deletion is shallow on purpose: grants and content items recorded
for the container in the other contracts stay addressable by ID, preserving
the audit trail.

# Contract notifications

ContainerCreated notification. This notification is produced when a new
container is registered.

	ContainerCreated:
	  - name: containerID
	    type: Hash256
	  - name: owner
	    type: Hash160
	  - name: name
	    type: String

ContainerDeleted notification. This notification is produced when a
container owner removes the container.

	ContainerDeleted:
	  - name: containerID
	    type: Hash256
*/
package container

/*
Contract storage model.

# Summary
Key-value storage format:
 - x<id> -> std.Serialize(Container)
   Containers themselves, id is a 32-byte SHA-256 over owner, name and the
   creation counter value
 - o<owner><id> -> <id>
   Owner index. Append-only: entries of deleted containers are kept, their
   primary records must be treated as absent on lookup
 - n<owner><SHA-256(name)> -> <id>
   Name uniqueness index, scoped to the owner. Removed on deletion, which
   frees the name for reuse
 - containerSeq -> int
   Monotonically increasing creation counter

# Containers
Contract stores information about all containers ever created in the
OrbitVault custody network.
*/
