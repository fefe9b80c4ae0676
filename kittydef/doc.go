// Package kittydef models the kitty configuration descriptor tree consumed
// by the documentation compiler.
//
// The tree is produced out-of-band as a YAML dump of kitty's live option
// definition (options, actions, the shortcut table, the settings group tree,
// the launch flag spec, remote-command descriptions, and the key-mapping
// flag fields). [Load] decodes and validates a dump; structural problems are
// fatal, reported as [ErrInvalidDefinition].
//
// Options arrive as a tagged variant over single-value and multi-value
// kinds. The discriminant is resolved here at the boundary; downstream code
// only ever sees the two distinct record shapes.
package kittydef
