// Package evdev writes synthetic events to Linux input device nodes.
//
// Events are encoded as the kernel's struct input_event (a timeval followed
// by type, code and value) in native byte order. A key tap is a press and a
// release, each closed by a SYN_REPORT so readers see two complete frames.
//
//	dev, err := evdev.Open("/dev/input/event0")
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//	return dev.TapKey(evdev.KeyA)
package evdev
