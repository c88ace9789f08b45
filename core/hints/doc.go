// Package hints provides the completion suggestions offered while a line is
// being typed.
//
// A Registry is built once at startup and never changes afterwards. When
// several entries match the typed text the one registered first wins.
package hints
