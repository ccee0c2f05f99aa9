// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-lanedot/hwy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the compiled lane tier and the CPU features detected at runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printInfo(cmd.OutOrStdout(), runtime.GOARCH)
			return nil
		},
	}
}

type feature struct {
	name string
	has  bool
	note string
}

func printInfo(w io.Writer, goarch string) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", goarch)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Lane target: %s\n", hwy.LaneTarget)
	fmt.Fprintf(w, "Lane width: %d float32 (%d bytes)\n", hwy.LaneWidth, hwy.LaneBytes())
	fmt.Fprintf(w, "Fused MulReduce: %v\n", hwy.HasFusedMulReduce())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Dispatch name: %s\n", hwy.CurrentName())
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "HWY_NO_SIMD is set")
	}
	if hwy.LaneMismatch() {
		fmt.Fprintf(w, "WARNING: lane target %s needs more than the detected CPU level %s\n",
			hwy.LaneTarget, hwy.CurrentName())
	}

	switch goarch {
	case "arm64":
		fmt.Fprintln(w)
		printFeatures(w, "golang.org/x/sys/cpu.ARM64", arm64Features())
	case "amd64":
		fmt.Fprintln(w)
		printFeatures(w, "golang.org/x/sys/cpu.X86", amd64Features())
	}
}

func printFeatures(w io.Writer, title string, features []feature) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for _, f := range features {
		if f.note == "" {
			fmt.Fprintf(w, "  %-12s %v\n", f.name+":", f.has)
			continue
		}
		fmt.Fprintf(w, "  %-12s %v (%s)\n", f.name+":", f.has, f.note)
	}
}

func arm64Features() []feature {
	return []feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, ""},
	}
}

func amd64Features() []feature {
	return []feature{
		{"HasSSE2", cpu.X86.HasSSE2, "4-wide lanes"},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasAVX", cpu.X86.HasAVX, "VEX encoding"},
		{"HasAVX2", cpu.X86.HasAVX2, "8-wide lanes"},
		{"HasFMA", cpu.X86.HasFMA, ""},
		{"HasAVX512F", cpu.X86.HasAVX512F, ""},
	}
}
