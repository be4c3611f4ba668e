// Package records provides the persistence layer for health measurements.
//
// The Repository interface is implemented by SQLiteRepository over a
// dbx.DBTX. Besides plain insert/list it exposes Average, which pushes the
// arithmetic mean into SQLite itself; for blood pressure the systolic
// component is extracted in SQL with SUBSTR/INSTR before averaging.
package records
