// Package persist defines the versioned on-disk layout format.
//
// A [Document] is a plain data snapshot of every container in a docking
// session: window geometry, floating flags, the splitter/area tree, active
// tab indices, and the IDs of closed widgets. Documents serialize to JSON
// and carry a format version so old snapshots keep loading as the format
// evolves.
//
// The package is deliberately dumb about live state. Capturing a document
// from containers ([Snapshot]) is a pure read, and turning a document back
// into trees goes through [Node.Spec] so the caller can build and validate
// complete trees before swapping anything in. [Prune] drops widget IDs the
// caller no longer knows, repairing the structure as it goes, which makes
// restoring a stale document equivalent to restoring one that never
// mentioned those widgets.
package persist
