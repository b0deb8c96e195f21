// Package hardware is the base package for the C64 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and holds references to
// every sub-system: the 6510 CPU, VIC-II, SID and the two CIAs, all wired
// together over the shared Memory bus. From here the emulation can either
// run continuously frame by frame, or be stepped CPU cycle by cycle.
package hardware

