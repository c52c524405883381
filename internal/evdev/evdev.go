package evdev

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// Event types and codes from linux/input-event-codes.h.
const (
	EvSyn     uint16 = 0x00
	EvKey     uint16 = 0x01
	SynReport uint16 = 0

	KeyRelease int32 = 0
	KeyPress   int32 = 1
)

// KeyA is the default key tapped by keyinject.
const KeyA uint16 = 30

var (
	ErrUnknownKey  = errors.New("unknown key")
	ErrOpenDevice  = errors.New("cannot open input device")
	ErrWriteDevice = errors.New("cannot write input event")
)

var keyCodes = map[string]uint16{
	"esc": 1, "1": 2, "2": 3, "3": 4, "4": 5, "5": 6, "6": 7, "7": 8, "8": 9, "9": 10, "0": 11,
	"q": 16, "w": 17, "e": 18, "r": 19, "t": 20, "y": 21, "u": 22, "i": 23, "o": 24, "p": 25,
	"enter": 28,
	"a": 30, "s": 31, "d": 32, "f": 33, "g": 34, "h": 35, "j": 36, "k": 37, "l": 38,
	"z": 44, "x": 45, "c": 46, "v": 47, "b": 48, "n": 49, "m": 50,
	"space": 57,
	"up": 103, "left": 105, "right": 106, "down": 108,
	"nextsong": 163, "playpause": 164, "previoussong": 165,
}

// KeyCode resolves a key name such as "a", "space" or "nextsong". A
// decimal number is accepted as a raw code.
func KeyCode(name string) (uint16, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "key_")
	if code, ok := keyCodes[name]; ok {
		return code, nil
	}
	if code, err := strconv.ParseUint(name, 10, 16); err == nil {
		return uint16(code), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// InputEvent mirrors struct input_event.
type InputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// NewEvent stamps an event with t.
func NewEvent(t time.Time, typ, code uint16, value int32) InputEvent {
	return InputEvent{
		Time:  unix.NsecToTimeval(t.UnixNano()),
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

// Size is the encoded length of one event on this platform.
func Size() int {
	return binary.Size(InputEvent{})
}

// Encode writes events in native byte order.
func Encode(w io.Writer, events ...InputEvent) error {
	var buf bytes.Buffer
	for _, ev := range events {
		if err := binary.Write(&buf, binary.NativeEndian, ev); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// TapEvents returns the press/sync/release/sync sequence for code.
func TapEvents(now time.Time, code uint16) []InputEvent {
	return []InputEvent{
		NewEvent(now, EvKey, code, KeyPress),
		NewEvent(now, EvSyn, SynReport, 0),
		NewEvent(now, EvKey, code, KeyRelease),
		NewEvent(now, EvSyn, SynReport, 0),
	}
}

// Device is an input node opened for writing.
type Device struct {
	path string
	fd   int
	now  func() time.Time
}

// Open opens path write-only.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenDevice, path, err)
	}
	return &Device{path: path, fd: fd, now: time.Now}, nil
}

// Path returns the device node path.
func (d *Device) Path() string {
	return d.path
}

// Write implements io.Writer over the raw descriptor.
func (d *Device) Write(p []byte) (int, error) {
	n, err := unix.Write(d.fd, p)
	if err != nil {
		return n, fmt.Errorf("%w: %s: %w", ErrWriteDevice, d.path, err)
	}
	if n < len(p) {
		return n, fmt.Errorf("%w: %s: %w", ErrWriteDevice, d.path, io.ErrShortWrite)
	}
	return n, nil
}

// TapKey presses and releases code.
func (d *Device) TapKey(code uint16) error {
	return Encode(d, TapEvents(d.now(), code)...)
}

// Close releases the descriptor.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}
