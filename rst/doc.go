// Package rst strips the restricted reStructuredText dialect used in kitty's
// option and action documentation down to plain text.
//
// [Strip] applies an ordered cascade of pattern rewrites. The order is part
// of the contract: later rules assume earlier ones already fired (for
// example, the generic inline-role rule only sees roles that the verbatim
// and cross-reference rules left behind). Plain text is a fixed point of
// [Strip].
//
// The cascade is a best-effort compiler, not a parser. A pattern that does
// not match simply leaves the text unchanged; there is no error path. One
// known interaction is pinned by the test suite: verbatim content that ends
// in an angle-bracketed, non-URL suffix loses that suffix to the dangling
// target rule.
//
// The package also provides the small text helpers shared by the heuristic
// extractors: [FirstParagraph], [SplitSentences], and [CollapseSpace].
package rst
