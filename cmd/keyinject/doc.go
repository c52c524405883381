// Command keyinject taps a single key on a Linux input device.
//
// It writes a key press and a key release to the device node, each followed
// by a synchronisation report, so programs reading the device see one
// complete keystroke. Writing to /dev/input nodes normally needs root or
// membership of the input group.
//
// Usage:
//
//	keyinject [-device /dev/input/event0] [-key a]
//
// Keys are given by name ("a", "space", "nextsong") or by decimal code.
//
// Exit status is 0 when the keystroke was written and 1 otherwise, with the
// cause on stderr.
package main
