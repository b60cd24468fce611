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

// opCLC: C = 0.
func opCLC(cpu *CPU) uint8 {
	cpu.SetFlag(FlagCarry, false)
	return 0
}

// opSEC: C = 1.
func opSEC(cpu *CPU) uint8 {
	cpu.SetFlag(FlagCarry, true)
	return 0
}

// opCLD: D = 0. Has no effect on ADC/SBC in this emulator.
func opCLD(cpu *CPU) uint8 {
	cpu.SetFlag(FlagDecimal, false)
	return 0
}

// opSED: D = 1. Has no effect on ADC/SBC in this emulator.
func opSED(cpu *CPU) uint8 {
	cpu.SetFlag(FlagDecimal, true)
	return 0
}

// opCLI: I = 0.
func opCLI(cpu *CPU) uint8 {
	cpu.SetFlag(FlagInterrupt, false)
	return 0
}

// opSEI: I = 1.
func opSEI(cpu *CPU) uint8 {
	cpu.SetFlag(FlagInterrupt, true)
	return 0
}

// opCLV: V = 0.
func opCLV(cpu *CPU) uint8 {
	cpu.SetFlag(FlagOverflow, false)
	return 0
}

// opJMP: PC = addrAbs.
func opJMP(cpu *CPU) uint8 {
	cpu.PC = cpu.addrAbs
	return 0
}

// opNOP does nothing. For the illegal opcodes 0x1C, 0x3C, 0x5C, 0x7C, 0xDC
// and 0xFC (ABX-addressed NOPs on real hardware) it reports a possible extra
// cycle; their table slots use implied addressing, whose amIMP returns 0, so
// Tick never actually charges that cycle.
func opNOP(cpu *CPU) uint8 {
	switch cpu.opcode {
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	}
	return 0
}

// opXXX stands in for every undocumented opcode this table does not alias
// to a defined operation. Functionally identical to opNOP's default case.
func opXXX(cpu *CPU) uint8 {
	_ = cpu
	return 0
}
