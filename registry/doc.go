/*
Package registry implements Registry contract which is deployed to the
custody chain.

Registry contract is the content registry of the OrbitVault custody
ledger: it maps containers to the content items stored under them and keeps
each item's integrity hash and size. File bytes never pass through the
ledger; clients encrypt and hash content off-chain, ship it through the
relay, and register the reference here. Every mutation is gated by the
Access contract: only principals with Write or Admin level on the parent
container may register or remove items.

Item keys behave like paths and are unique within a container. Writing to
an existing key updates the same item in place, preserving its ID; removal
clears the key index but keeps the historical record addressable by ID and
leaves custody attestations already filed against the item untouched.

# Contract notifications

ItemCreated notification. This notification is produced when a fresh
content item is registered.

	ItemCreated:
	  - name: containerID
	    type: Hash256
	  - name: itemID
	    type: Hash256
	  - name: key
	    type: String

ItemUpdated notification. This notification is produced when a live item is
overwritten in place.

	ItemUpdated:
	  - name: containerID
	    type: Hash256
	  - name: itemID
	    type: Hash256
	  - name: key
	    type: String

ItemDeleted notification. This notification is produced when a live item is
removed.

	ItemDeleted:
	  - name: containerID
	    type: Hash256
	  - name: itemID
	    type: Hash256
	  - name: key
	    type: String
*/
package registry

/*
Contract storage model.

# Summary
Key-value storage format:
 - i<itemID> -> std.Serialize(Item)
   Content items, kept after deletion as historical records
 - k<cid><SHA-256(key)[:24]> -> <itemID>
   Live path-key index; removed on deletion
 - e<cid><itemID[:24]> -> <itemID>
   Per-container item index. Append-only: entries of deleted items are kept
 - c<cid> -> int
   Live item count per container
 - d<itemID> -> []
   Markers of deleted items
 - itemSeq -> int
   Monotonically increasing registration counter
 - containerScriptHash, accessScriptHash -> interop.Hash160
   Contract references used for existence and write-permission checks

# Content items
Contract stores references (key, hash, size) of all content ever registered
in the OrbitVault custody network.
*/
