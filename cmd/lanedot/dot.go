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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanedot/hwy"
	"github.com/ajroetker/go-lanedot/hwy/contrib/dot"
)

// ErrBadOperands marks operand lists that cannot form lane vectors.
var ErrBadOperands = errors.New("bad operands")

func newDotCmd() *cobra.Command {
	var (
		left      []float32
		right     []float32
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Compute one dot product from two comma-separated lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := dot.FromSlice(left)
			if err != nil {
				return fmt.Errorf("%w: --left: %w", ErrBadOperands, err)
			}
			r, err := dot.FromSlice(right)
			if err != nil {
				return fmt.Errorf("%w: --right: %w", ErrBadOperands, err)
			}

			algos := dot.Algorithms()
			if algorithm != "" {
				a, err := dot.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algos = []dot.Algorithm{a}
			}

			logger.WithField("lanes", l.NumLanes()).Debugf("dot product over %s lanes", hwy.LaneTarget)

			out := cmd.OutOrStdout()
			for _, a := range algos {
				got, err := a.Func()(l, r)
				if err != nil {
					return fmt.Errorf("%s: %w", a, err)
				}
				fmt.Fprintf(out, "%s: %g\n", a, got)
			}
			return nil
		},
	}

	cmd.Flags().Float32SliceVar(&left, "left", nil, "Left operand, e.g. 1,2,3,4")
	cmd.Flags().Float32SliceVar(&right, "right", nil, "Right operand, e.g. 4,3,2,1")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "Algorithm to run (default: all)")

	return cmd
}
