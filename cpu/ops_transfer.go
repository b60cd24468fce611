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

// opTAX: X = A.
func opTAX(cpu *CPU) uint8 {
	cpu.X = cpu.A
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// opTAY: Y = A.
func opTAY(cpu *CPU) uint8 {
	cpu.Y = cpu.A
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}

// opTSX: X = SP.
func opTSX(cpu *CPU) uint8 {
	cpu.X = cpu.SP
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// opTXA: A = X.
func opTXA(cpu *CPU) uint8 {
	cpu.A = cpu.X
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// opTXS: SP = X. Unlike the other transfers, this leaves N and Z alone.
func opTXS(cpu *CPU) uint8 {
	cpu.SP = cpu.X
	return 0
}

// opTYA: A = Y.
func opTYA(cpu *CPU) uint8 {
	cpu.A = cpu.Y
	cpu.SetFlag(FlagZero, cpu.A == 0x00)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 0
}

// opINC: M = M + 1.
func opINC(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched + 1)
	cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// opINX: X = X + 1.
func opINX(cpu *CPU) uint8 {
	cpu.X++
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// opINY: Y = Y + 1.
func opINY(cpu *CPU) uint8 {
	cpu.Y++
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}

// opDEC: M = M - 1.
func opDEC(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.temp = uint16(cpu.fetched - 1)
	cpu.write(cpu.addrAbs, uint8(cpu.temp&0x00FF))
	cpu.SetFlag(FlagZero, cpu.temp&0x00FF == 0x0000)
	cpu.SetFlag(FlagNegative, cpu.temp&0x0080 != 0)
	return 0
}

// opDEX: X = X - 1.
func opDEX(cpu *CPU) uint8 {
	cpu.X--
	cpu.SetFlag(FlagZero, cpu.X == 0x00)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 0
}

// opDEY: Y = Y - 1.
func opDEY(cpu *CPU) uint8 {
	cpu.Y--
	cpu.SetFlag(FlagZero, cpu.Y == 0x00)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 0
}
