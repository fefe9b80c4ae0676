// Package flagspec parses kitty's line-oriented options_spec mini-language
// into flag summaries suitable for hover documentation.
//
// A spec is a sequence of flag blocks. A line starting with "--" opens a new
// block and lists the flag's synonyms separated by whitespace. The lines
// that follow, until the next flag line, are either key=value metadata
// (type, default, choices, completion) or free-form description text in the
// RST dialect. The formatting placeholder line
// "#placeholder_for_formatting#" is ignored wherever it appears.
//
// [Parse] produces one [Entry] per flag; [Format] lays entries out as
// indented two-line blocks.
package flagspec
