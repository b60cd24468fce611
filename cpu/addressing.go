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

// Each addressing mode decodes the operand of the instruction in flight,
// advances PC past whatever bytes it consumed, and resolves addrAbs (or,
// for REL, addrRel). The returned value is the *possible* extra cycle the
// mode contributes; Tick ANDs it with the operation's own possible extra
// cycle, so a page-crossing penalty is only charged when both agree.

// amIMP targets the accumulator directly; used by PHA and the shift/rotate
// family when they operate on A rather than memory.
func amIMP(cpu *CPU) uint8 {
	cpu.fetched = cpu.A
	return 0
}

// amIMM points addrAbs at the byte immediately following the opcode.
func amIMM(cpu *CPU) uint8 {
	cpu.addrAbs = cpu.PC
	cpu.PC++
	return 0
}

// amZP0 addresses the first 256 bytes with a single operand byte.
func amZP0(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC))
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amZPX is amZP0 offset by X, still wrapped into the zero page.
func amZPX(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.X)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amZPY is amZP0 offset by Y, still wrapped into the zero page.
func amZPY(cpu *CPU) uint8 {
	cpu.addrAbs = uint16(cpu.read(cpu.PC) + cpu.Y)
	cpu.PC++
	cpu.addrAbs &= 0x00FF
	return 0
}

// amREL reads a signed 8-bit displacement used only by branch instructions.
func amREL(cpu *CPU) uint8 {
	cpu.addrRel = uint16(cpu.read(cpu.PC))
	cpu.PC++
	if cpu.addrRel&0x80 > 0 {
		cpu.addrRel |= 0xFF00
	}
	return 0
}

// amABS loads a full 16-bit address, low byte first.
func amABS(cpu *CPU) uint8 {
	cpu.addrAbs = cpu.read16(cpu.PC)
	cpu.PC += 2
	return 0
}

// amABX is amABS offset by X; charges an extra cycle when the offset
// carries into a new page.
func amABX(cpu *CPU) uint8 {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr + uint16(cpu.X)

	if cpu.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amABY is amABS offset by Y; charges an extra cycle when the offset
// carries into a new page.
func amABY(cpu *CPU) uint8 {
	addr := cpu.read16(cpu.PC)
	cpu.PC += 2
	cpu.addrAbs = addr + uint16(cpu.Y)

	if cpu.addrAbs&0xFF00 != addr&0xFF00 {
		return 1
	}
	return 0
}

// amIND reads a pointer and dereferences it to get the effective address.
// Reproduces the hardware bug where a pointer whose low byte is 0xFF wraps
// its high-byte fetch back to the start of the same page instead of
// crossing into the next one.
func amIND(cpu *CPU) uint8 {
	ptrLo := uint16(cpu.read(cpu.PC))
	cpu.PC++
	ptrHi := uint16(cpu.read(cpu.PC))
	cpu.PC++

	ptr := (ptrHi << 8) | ptrLo

	if ptrLo == 0x00FF {
		cpu.addrAbs = uint16(cpu.read(ptr&0xFF00))<<8 | uint16(cpu.read(ptr))
	} else {
		cpu.addrAbs = uint16(cpu.read(ptr+1))<<8 | uint16(cpu.read(ptr))
	}
	return 0
}

// amIZX forms a zero-page pointer offset by X, then reads the effective
// address from it.
func amIZX(cpu *CPU) uint8 {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read((t + uint16(cpu.X)) & 0x00FF))
	hi := uint16(cpu.read((t + uint16(cpu.X) + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo
	return 0
}

// amIZY reads a zero-page pointer, then offsets the address it names by Y;
// charges an extra cycle when that offset crosses a page.
func amIZY(cpu *CPU) uint8 {
	t := uint16(cpu.read(cpu.PC))
	cpu.PC++

	lo := uint16(cpu.read(t & 0x00FF))
	hi := uint16(cpu.read((t + 1) & 0x00FF))

	cpu.addrAbs = (hi << 8) | lo
	cpu.addrAbs += uint16(cpu.Y)

	if cpu.addrAbs&0xFF00 != (hi << 8) {
		return 1
	}
	return 0
}
