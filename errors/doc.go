/*
Package errors implements the error kinds used across the ledger.

Error declarations are generic and cover a broad range of cases. Each
returned error instance wraps a registered root error to provide details
while staying testable.

Do not declare custom instances of the Error class unless you cannot express
the issue using an already existing error kind. Always try to reuse already
registered kinds first.

When returning an error, wrap it to provide the failure context:

	errors.Wrap(errors.ErrNotFound, "token")

Use the Is method to test a returned error against a kind, regardless of how
many times it was wrapped:

	if errors.ErrNotFound.Is(err) {
*/
package errors
