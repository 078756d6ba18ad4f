// Package observ times the phases of a dump run (reading a record file,
// rendering it) and reports them as a table or as JSON.
package observ
