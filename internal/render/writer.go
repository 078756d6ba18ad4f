package render

// Writer is the output port a Formatter renders into.
//
// The string passed to WriteStr may alias the Formatter's scratch buffer and
// is valid only until WriteStr returns. Implementations that keep the text
// must copy it.
type Writer interface {
	WriteStr(s string) error
	WriteChar(c rune) error
}
