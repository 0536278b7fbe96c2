// Package frontend declares circuit geometry and drives witness synthesis.
//
// A circuit is described in two phases. Configure allocates columns and
// selectors on a ConstraintSystem and registers polynomial gates over them.
// Synthesize then lays out concrete rows through a Layouter, region by
// region, wiring cells together with copy constraints and binding result
// cells to public instance rows.
//
// Synthesis is pass-based: the same circuit runs once with all witness
// values unknown (shape and key material) and once with real values
// (proving). Both passes must produce the same Shape; the Assignment
// interface is the sink a pass writes into.
package frontend
