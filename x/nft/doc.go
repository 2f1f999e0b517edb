/*
Package nft implements the mint/burn engine and the transfer state machine
for non-fungible tokens.

Every minted unit is one Token row with its own id, owner, descriptive
metadata and a value of exactly one currency unit. The currency registry
supply and the per-account balances are kept in lock-step with the token
table: every handler mutates all affected tables within the same atomic
unit, so the sum of live token values always equals the recorded supply
and every account balance equals the sum of values of the tokens it owns.
*/
package nft
