// Package profiler implements the Profiling Driver (C4): for each
// wire-segment type, it chooses a representative set of source nodes by
// scanning a diagonal neighbourhood of the device grid around a fixed
// reference coordinate, running the Dijkstra Explorer from each, and
// stopping under an adaptive rule once enough coverage has been seen.
package profiler
