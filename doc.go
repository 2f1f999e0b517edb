/*
Package ledger defines all common interfaces that tie together the token
accounting engine: messages and transactions, handlers, the storage adapter
contract, and the context helpers.

The packages under x/ implement the business logic on top of these
interfaces. The execution host that provides atomic commit-or-abort for each
transaction, the signature verification layer, and the persistent storage
engine are external collaborators; this module only consumes their
interfaces.
*/
package ledger
