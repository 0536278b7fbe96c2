// Package dev provides development tooling for circuits: a mock prover
// that synthesizes a witness trace and checks it against every gate and
// copy constraint without any cryptography, and renderers that visualize
// the circuit layout.
//
// Failures are reported with row, region and constraint context, which is
// what makes the mock prover the first stop when a circuit misbehaves; a
// real proving backend would only say the proof is invalid.
package dev
