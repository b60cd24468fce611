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

// branch adds addrRel to PC and charges the taken-branch cycle (plus a
// second if the jump lands on a different page), shared by all eight
// conditional branches.
func (cpu *CPU) branch() {
	cpu.cycles++
	cpu.addrAbs = cpu.PC + cpu.addrRel

	if cpu.addrAbs&0xFF00 != cpu.PC&0xFF00 {
		cpu.cycles++
	}

	cpu.PC = cpu.addrAbs
}

// opBCC branches if C == 0.
func opBCC(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagCarry) == 0 {
		cpu.branch()
	}
	return 0
}

// opBCS branches if C == 1.
func opBCS(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagCarry) == 1 {
		cpu.branch()
	}
	return 0
}

// opBEQ branches if Z == 1.
func opBEQ(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagZero) == 1 {
		cpu.branch()
	}
	return 0
}

// opBNE branches if Z == 0.
func opBNE(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagZero) == 0 {
		cpu.branch()
	}
	return 0
}

// opBMI branches if N == 1.
func opBMI(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagNegative) == 1 {
		cpu.branch()
	}
	return 0
}

// opBPL branches if N == 0.
func opBPL(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagNegative) == 0 {
		cpu.branch()
	}
	return 0
}

// opBVC branches if V == 0.
func opBVC(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagOverflow) == 0 {
		cpu.branch()
	}
	return 0
}

// opBVS branches if V == 1.
func opBVS(cpu *CPU) uint8 {
	if cpu.GetFlag(FlagOverflow) == 1 {
		cpu.branch()
	}
	return 0
}
