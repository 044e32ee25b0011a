// Package dom defines the platform boundary for Verdant.
//
// The runtime never touches real UI nodes directly; it speaks to the
// platform through the Document and Node interfaces declared here. Two
// implementations ship with the module:
//
//   - memdom: a complete in-memory DOM used by tests and headless hosts.
//   - browser: a syscall/js driver used when compiling for js/wasm.
//
// A Node handle is owned by the description node that realized it. The
// reconciler transfers handles between description trees during a patch;
// host code should treat handles as opaque.
package dom
