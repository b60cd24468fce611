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

package cpu

import "fmt"

// Disassembly is a window of decoded instructions keyed by the address of
// their first byte. Index preserves program order; Lines holds the text.
type Disassembly struct {
	Index []uint16
	Lines map[uint16]string
}

// Stringify renders the window in address order, one instruction per line.
func (d *Disassembly) Stringify() string {
	s := ""
	for _, addr := range d.Index {
		s += d.Lines[addr] + "\n"
	}
	return s
}

func hex(v uint32, width int) string {
	return fmt.Sprintf("%0*X", width, v)
}

// Disassemble decodes every instruction whose first byte falls in
// [start, end], reading through the bus with readOnly set so the walk has
// no side effects even across memory-mapped addresses. An instruction that
// extends past end is still fully decoded; the walk then stops.
func (cpu *CPU) Disassemble(start, end uint16) *Disassembly {
	addr := uint32(start)
	d := &Disassembly{Lines: make(map[uint16]string)}

	readByte := func() uint8 {
		v := cpu.bus.Read(uint16(addr), true)
		addr++
		return v
	}
	readWord := func() uint16 {
		lo := uint16(readByte())
		hi := uint16(readByte())
		return hi<<8 | lo
	}

	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := readByte()
		instr := cpu.lookup[opcode]

		line := "$" + hex(uint32(lineAddr), 4) + ": " + instr.name + " "

		switch instr.addrMode {
		case AddrModeIMP:
			line += "{IMP}"
		case AddrModeIMM:
			v := readByte()
			line += "#$" + hex(uint32(v), 2) + " {IMM}"
		case AddrModeZP0:
			v := readByte()
			line += "$" + hex(uint32(v), 2) + " {ZP0}"
		case AddrModeZPX:
			v := readByte()
			line += "$" + hex(uint32(v), 2) + ", X {ZPX}"
		case AddrModeZPY:
			v := readByte()
			line += "$" + hex(uint32(v), 2) + ", Y {ZPY}"
		case AddrModeIZX:
			v := readByte()
			line += "($" + hex(uint32(v), 2) + ", X) {IZX}"
		case AddrModeIZY:
			v := readByte()
			line += "($" + hex(uint32(v), 2) + "), Y {IZY}"
		case AddrModeABS:
			v := readWord()
			line += "$" + hex(uint32(v), 4) + " {ABS}"
		case AddrModeABX:
			v := readWord()
			line += "$" + hex(uint32(v), 4) + ", X {ABX}"
		case AddrModeABY:
			v := readWord()
			line += "$" + hex(uint32(v), 4) + ", Y {ABY}"
		case AddrModeIND:
			v := readWord()
			line += "($" + hex(uint32(v), 4) + ") {IND}"
		case AddrModeREL:
			v := readByte()
			rel := uint32(v)
			if rel&0x80 != 0 {
				rel |= 0xFFFFFF00
			}
			line += "$" + hex(uint32(v), 2) + " [$" + hex((addr+rel)&0xFFFF, 4) + "] {REL}"
		}

		d.Index = append(d.Index, lineAddr)
		d.Lines[lineAddr] = line
	}

	return d
}
