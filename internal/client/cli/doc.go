// Package cli provides the interactive DermaSight command-line client.
//
// Patients upload skin images for analysis, browse their history and talk
// to clinicians about a case. Doctors browse every case with portal
// filters, flag cases for follow-up and answer patient messages.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The access token survives restarts in the configured session file.
package cli
