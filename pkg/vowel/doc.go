// Package vowel estimates the vowel being spoken from a live audio signal
// so a robot's mouth can follow the speaker.
//
// Each fixed-size frame goes through an adaptive energy gate, an LPC
// spectral envelope, formant peak picking and a five-cluster vowel
// classifier. A Tracker then turns the noisy per-frame guesses into a
// stable stream of vowel labels and speak start/stop transitions.
//
// An Estimator is owned by a single audio session and is not safe for
// concurrent use. All timing (speak-stop timeout, vowel lock) is driven by
// the timestamp passed to Process, so the pipeline has no goroutines or
// timers of its own.
package vowel
