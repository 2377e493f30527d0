// Package services contains the server-side business logic: the account,
// case and message directories, sessions, and the batch analysis
// orchestrator. Services sit on top of a repomanager.RepositoryManager and
// never talk to a database directly.
//
// The directories follow a degrade-on-storage-failure policy: unexpected
// store errors are logged and turned into an empty result or a no-op, while
// validation, not-found and auth errors are returned to the caller.
package services
