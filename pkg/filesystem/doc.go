// Package filesystem provides the filesystem seam used by the course, template
// and render packages.
//
// NewOS backs the FS with the real operating system; NewAferoFS backs it with
// any afero.Fs, which the tests use with an in-memory MemMapFs.
package filesystem
