// Package dsp implements the numeric stages of the vowel pipeline:
// windowing, peak normalization, autocorrelation, Levinson-Durbin LPC,
// a radix-2 FFT and the LPC spectral envelope.
//
// Everything here is a pure function over caller-owned slices. Functions
// that take a dst argument write into it so per-frame work can reuse
// buffers; passing nil allocates.
package dsp
