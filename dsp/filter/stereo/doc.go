// Package stereo couples a designed filter shape with two biquad lanes and
// routes interleaved sample buffers through them.
//
// Routing depends only on the channel count:
//
//   - 1 channel: every sample goes through the left lane.
//   - 2 channels: even sample indices go through the left lane, odd indices
//     through the right lane. A trailing partial frame is left unprocessed.
//   - N > 2 channels: channel i mod N goes through the left lane when even
//     and the right lane when odd. Channels 0, 2, 4, ... therefore share one
//     delay line, as do 1, 3, 5, ...; they are not filtered independently.
//
// Every output sample is the lane's raw output mixed with its input,
// y*C0 + x*D0.
package stereo
