// Package samples is a catalogue of matrices with known determinants: eight
// literal integer cases, Hilbert matrices with their closed-form asymptotic
// determinant, and seeded generators for diagonal, upper-triangular and
// random matrices.
//
// Every function returns fresh matrices; callers may mutate them freely.
package samples
