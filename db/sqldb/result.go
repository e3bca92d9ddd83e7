package sqldb

// Row is one result row, column name to driver value.
type Row map[string]any

// Result is the normalized outcome of one statement, identical in shape
// for every engine.
//
// Rows is always non-nil (empty for writes without RETURNING).
// LastInsertID and RowsAffected are zero for SELECT statements; for writes
// they carry whatever the engine reports. Engines without auto-increment
// reporting (pgsql) leave LastInsertID at zero since the native RETURNING
// path already supplies rows.
type Result struct {
	Rows         []Row
	LastInsertID int64
	RowsAffected int64
}
