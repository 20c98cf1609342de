// Package series approximates the natural exponential e^x by summing the
// first nmax+1 terms of its Taylor series. Each term is derived from the
// previous one by a single multiply and divide, so x^n and n! are never
// formed separately. The truncation order is a hard cutoff: callers choose
// how many terms to sum, the package never adapts it to a tolerance.
package series
