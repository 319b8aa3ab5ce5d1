// Package app drives the interactive guessing loop: prompts, input, feedback
// and the closing message, over injectable input, output and randomness.
package app
