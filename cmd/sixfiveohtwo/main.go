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

package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"sixfiveohtwo/bus"
	"sixfiveohtwo/cpu"
)

var (
	theCPU      *cpu.CPU
	theBus      *bus.Bus
	disassembly *cpu.Disassembly
	traceFile   *os.File
)

type fileLogger struct{ f *os.File }

func (l fileLogger) Log(msg string) {
	fmt.Fprintln(l.f, msg)
}

func loadSystem(imagePath string, origin uint16, resetVector uint16, trace string) error {
	theBus = bus.New()
	theCPU = cpu.New()
	theCPU.Attach(theBus)

	if imagePath != "" {
		image, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		if err := theBus.LoadImage(origin, image); err != nil {
			return err
		}
	}

	theBus.Write(0xFFFC, uint8(resetVector&0x00FF))
	theBus.Write(0xFFFD, uint8(resetVector>>8))

	if trace != "" {
		f, err := os.Create(trace)
		if err != nil {
			return fmt.Errorf("opening trace file: %w", err)
		}
		traceFile = f
		cpu.SetLogger(fileLogger{f: f})
		cpu.SetLogEnable(true)
	}

	disassembly = theCPU.Disassemble(0x0000, 0xFFFF)
	theCPU.Reset()
	return nil
}

func main() {
	app := &cli.App{
		Name:    "sixfiveohtwo",
		Usage:   "a cycle-accurate MOS 6502 CPU debugger",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "image",
				Aliases: []string{"i"},
				Usage:   "raw binary memory image to load",
			},
			&cli.UintFlag{
				Name:    "origin",
				Aliases: []string{"o"},
				Usage:   "address the image is loaded at",
				Value:   0x8000,
			},
			&cli.UintFlag{
				Name:    "reset-vector",
				Aliases: []string{"r"},
				Usage:   "PC value the reset vector points at",
				Value:   0x8000,
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "write one instruction trace line per retired opcode to this file",
			},
			&cli.BoolFlag{
				Name:    "headless",
				Aliases: []string{"H"},
				Usage:   "run without the interactive debugger, ticking until halted by a BRK loop",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadSystem(c.String("image"), uint16(c.Uint("origin")), uint16(c.Uint("reset-vector")), c.String("trace")); err != nil {
				return err
			}
			defer func() {
				if traceFile != nil {
					traceFile.Close()
				}
			}()

			if c.Bool("headless") {
				return runHeadless()
			}
			return runDebugger()
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// runHeadless ticks the CPU until it traps in a single-instruction infinite
// loop (PC stops advancing across a full instruction), the idiom a hand
// assembled program uses to signal it is done.
func runHeadless() error {
	for !theCPU.Complete() {
		theCPU.Tick()
	}
	for i := 0; i < 10_000_000; i++ {
		pcBefore := theCPU.PC
		theCPU.Tick()
		for !theCPU.Complete() {
			theCPU.Tick()
		}
		if theCPU.PC == pcBefore {
			break
		}
	}
	fmt.Printf("A:%02X X:%02X Y:%02X SP:%02X PC:%04X FLAG:%02X\n",
		theCPU.A, theCPU.X, theCPU.Y, theCPU.SP, theCPU.PC, theCPU.FLAG)
	return nil
}
