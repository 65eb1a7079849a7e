// Package filesystem provides the filesystem used by dotsync.
//
// All file I/O goes through an afero.Fs so that production code runs on the
// OS filesystem while unit tests run against an in-memory one. The helpers in
// this package implement the few primitives the sync engine needs: existence
// checks, parent directory creation, whole-file byte copies, atomic
// replacement and whole-file comparison.
package filesystem
