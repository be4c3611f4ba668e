// Package users provides the persistence layer for user accounts.
//
// The Repository interface is implemented by SQLiteRepository over a
// dbx.DBTX, so the same code runs inside and outside a transaction.
// Usernames are unique case-insensitively (COLLATE NOCASE column plus
// LOWER() lookups), matching the on-disk format of health_app.db.
package users
