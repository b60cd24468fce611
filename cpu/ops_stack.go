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

// opPHA pushes A.
func opPHA(cpu *CPU) uint8 {
	cpu.push(cpu.A)
	return 0
}

// opPLA pops into A.
func opPLA(cpu *CPU) uint8 {
	cpu.A = cpu.pop()
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// opPHP pushes status with B and U both set, then clears both again in the
// live FLAG register — only the pushed copy carries B=U=1.
func opPHP(cpu *CPU) uint8 {
	cpu.SetFlag(FlagBreak, true)
	cpu.SetFlag(FlagUnused, true)
	cpu.push(cpu.FLAG)
	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, false)
	return 0
}

// opPLP pops into FLAG, clears the B bit PHP pushed, and forces U back to 1.
func opPLP(cpu *CPU) uint8 {
	cpu.FLAG = cpu.pop()
	cpu.SetFlag(FlagBreak, false)
	cpu.SetFlag(FlagUnused, true)
	return 0
}

// opJSR pushes the address of the last byte of this instruction, then jumps.
func opJSR(cpu *CPU) uint8 {
	cpu.PC--
	cpu.pushPC()
	cpu.PC = cpu.addrAbs
	return 0
}

// opRTS pops PC and advances past the JSR's operand.
func opRTS(cpu *CPU) uint8 {
	cpu.popPC()
	cpu.PC++
	return 0
}

// opRTI pops status (discarding B and U from the popped value) then PC.
func opRTI(cpu *CPU) uint8 {
	cpu.FLAG = cpu.pop()
	cpu.FLAG &= ^FlagBreak
	cpu.FLAG &= ^FlagUnused

	cpu.popPC()
	return 0
}

// opBRK is a software interrupt: PC skips a padding byte, I is set, PC and
// status (with B set) are pushed, B is cleared again in the live FLAG, and
// PC is loaded from the IRQ/BRK vector.
func opBRK(cpu *CPU) uint8 {
	cpu.PC++

	cpu.SetFlag(FlagInterrupt, true)
	cpu.pushPC()

	cpu.SetFlag(FlagBreak, true)
	cpu.push(cpu.FLAG)
	cpu.SetFlag(FlagBreak, false)

	cpu.PC = cpu.read16(0xFFFE)
	return 0
}
