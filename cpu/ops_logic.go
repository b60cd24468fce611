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

// opAND: A = A & M.
func opAND(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A &= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// opORA: A = A | M.
func opORA(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A |= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// opEOR: A = A ^ M.
func opEOR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A ^= cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// opBIT tests A & M without storing the result; N and V come from M itself,
// not from the masked result.
func opBIT(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.A & cpu.fetched)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.fetched&(1<<7) != 0)
	cpu.SetFlag(FlagOverflow, cpu.fetched&(1<<6) != 0)
	return 0
}

// opASL shifts left, feeding 0 into bit 0 and the old bit 7 into carry.
// Operates on A when the addressing mode is implied, otherwise on memory.
func opASL(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched) << 1
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 > 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.temp&0x80 != 0)
	cpu.storeShiftResult()
	return 0
}

// opLSR shifts right, feeding 0 into bit 7 and the old bit 0 into carry.
func opLSR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	cpu.temp = uint16(cpu.fetched >> 1)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	cpu.storeShiftResult()
	return 0
}

// opROL shifts left, feeding the old carry into bit 0 and the old bit 7
// into carry — the canonical rotate, not the shared ROL/ROR formula some
// ports mistakenly copy-paste between the two.
func opROL(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched)<<1 | uint16(cpu.GetFlag(FlagCarry))
	cpu.SetFlag(FlagCarry, cpu.temp&0xFF00 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	cpu.storeShiftResult()
	return 0
}

// opROR shifts right, feeding the old carry into bit 7 and the old bit 0
// into carry.
func opROR(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched>>1) | uint16(cpu.GetFlag(FlagCarry)<<7)
	cpu.SetFlag(FlagCarry, cpu.fetched&0x01 != 0)
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x00)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	cpu.storeShiftResult()
	return 0
}

// storeShiftResult writes cpu.temp's low byte back to A or to addrAbs,
// depending on whether the instruction in flight addresses the accumulator.
func (cpu *CPU) storeShiftResult() {
	if cpu.lookup[cpu.opcode].addrMode == AddrModeIMP {
		cpu.A = uint8(cpu.temp & 0x00FF)
	} else {
		cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	}
}
