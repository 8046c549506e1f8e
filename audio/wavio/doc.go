// Package wavio reads and writes PCM WAV files as normalized interleaved
// buffers for the audio-util engine.
//
// Supported input is integer PCM at 8 (unsigned), 16, 24 or 32 bits with
// 1 to 16 channels. Samples are scaled into [-1, 1) on read; on write they
// are clamped to [-1, 1] and scaled back to the target bit depth.
package wavio
