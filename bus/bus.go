// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package bus implements the flat 64KiB memory space a 6502 CPU drives.
package bus

import "fmt"

// Size is the number of bytes addressable by a 16-bit bus.
const Size = 65536

// Bus is a flat byte array standing in for RAM, ROM and any memory-mapped
// device a real system might place on the address bus. This emulator maps
// nothing but RAM onto it.
type Bus struct {
	ram [Size]byte
}

// New returns a Bus reset to its power-on fill value.
func New() *Bus {
	b := &Bus{}
	b.Reset()
	return b
}

// Reset fills every address with 0xFF, matching unprogrammed memory.
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0xFF
	}
}

// Read returns the byte stored at addr. readOnly has no effect on plain RAM;
// the parameter exists so the disassembler can signal its read should never
// trigger a side-effectful device were one ever mapped onto this bus.
func (b *Bus) Read(addr uint16, readOnly bool) uint8 {
	_ = readOnly
	return b.ram[addr]
}

// Write stores data at addr. Always succeeds; the full 16-bit space is RAM.
func (b *Bus) Write(addr uint16, data uint8) {
	b.ram[addr] = data
}

// ImageError reports a host-programmer mistake when loading a memory image,
// as distinct from an *os.PathError passed straight through from disk I/O.
type ImageError struct {
	Reason string
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("bus: %s", e.Reason)
}

// LoadImage copies image into the bus starting at origin, returning an
// *ImageError if it would run past the end of the address space. This is a
// host convenience for standing up a program before calling Reset; it is not
// part of the CPU's own contract.
func (b *Bus) LoadImage(origin uint16, image []byte) error {
	if int(origin)+len(image) > Size {
		return &ImageError{Reason: fmt.Sprintf(
			"image of %d bytes at origin 0x%04X overflows the %d-byte address space",
			len(image), origin, Size)}
	}
	copy(b.ram[origin:], image)
	return nil
}
