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

// opLDA: A = M.
func opLDA(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.A = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.A == 0)
	cpu.SetFlag(FlagNegative, cpu.A&0x80 != 0)
	return 1
}

// opLDX: X = M.
func opLDX(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.X = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.X == 0)
	cpu.SetFlag(FlagNegative, cpu.X&0x80 != 0)
	return 1
}

// opLDY: Y = M.
func opLDY(cpu *CPU) uint8 {
	cpu.fetch()
	cpu.Y = cpu.fetched
	cpu.SetFlag(FlagZero, cpu.Y == 0)
	cpu.SetFlag(FlagNegative, cpu.Y&0x80 != 0)
	return 1
}

// opSTA: M = A.
func opSTA(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.A)
	return 0
}

// opSTX: M = X.
func opSTX(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.X)
	return 0
}

// opSTY: M = Y.
func opSTY(cpu *CPU) uint8 {
	cpu.write(cpu.addrAbs, cpu.Y)
	return 0
}
