// Package docgen compiles kitty's configuration descriptor tree into a flat,
// plain-text documentation artifact for editor tooling (completion and hover
// text).
//
// [Generator.Generate] walks a [kittydef.Definition] through a one-way
// pipeline:
//
//  1. Every documentation blob is stripped of RST markup with [rst.Strip].
//
//  2. Single-value options get a best-effort choices list: the descriptor's
//     explicit choices, else values extracted from the doc's trigger
//     sentence by [ExtractValues], else yes/no inferred from the default.
//     A "none" choice is appended when the option's parser is
//     to_color_or_none or when [NoneIsSpecial] finds "none" documented as a
//     settable value for this option specifically.
//
//  3. Actions from the primary action list are supplemented with aliases
//     from the shortcut table, then [EnrichStubActions] backfills
//     low-content forwarding docs ("See X for details") from the launch
//     flag spec, the shortcut table's own long texts, and remote-command
//     descriptions. Each secondary source is optional: a lookup either
//     answers or it does not, and a silent miss leaves the record as it
//     was.
//
// The pipeline is heuristic by design. Extraction that finds nothing is a
// normal empty result, never an error; the failure mode is imperfectly
// cleaned text, not a crash. Structural problems in the descriptor tree
// (duplicate or colliding names) are fatal and reported as
// [ErrInvalidDefinition] before any output is produced.
//
// The resulting [Document] serializes to indented JSON with a stable field
// order per record type. [BuildSchema] additionally derives a JSON Schema
// from the document, turning each option's choices into an enum for editor
// validation.
package docgen
