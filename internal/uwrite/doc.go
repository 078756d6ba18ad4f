// Package uwrite renders format strings such as "{:>8.2} {:^20}" through the
// render engine.
//
// Grammar of a placeholder:
//
//	{ [ ':' [[fill] align] [width] ['.' places] ['?'] ] }
//
// align is '<', '>' or '^'. A width without an alignment right-aligns.
// "{{" and "}}" write literal braces. '?' selects the debug rendering.
//
// Nothing here allocates on the success path once a Printer exists; errors
// carry the offending placeholder and do allocate.
package uwrite
