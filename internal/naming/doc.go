// Package naming provides filename sanitizing, extension splitting, and the
// collision-safe renamer that turns a proposed base name into a concrete
// sibling path and applies (or simulates) the rename.
package naming
