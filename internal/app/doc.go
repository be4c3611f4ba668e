// Package app provides the interactive healthtrack command-line client.
//
// It wires configuration, the local store, and the application services into
// a REPL. Typical flow: register or log in, then add measurements, review
// them, ask for averages, and export to CSV.
//
// Commands while logged out: register, login, help, exit.
// Commands while logged in: add, list, avg, stats, export, logout, exit.
//
// The REPL is started via App.Run, which blocks until the user exits. Input
// validation happens here, at the presentation boundary: the services below
// assume weight/glucose parse as numbers and blood pressure contains the
// systolic/diastolic separator.
package app
