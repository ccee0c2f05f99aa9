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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanedot/hwy"
	"github.com/ajroetker/go-lanedot/internal/bench"
)

// newBenchCmd reads its settings from the persistent --bench-* flags, the
// LANEDOT_BENCH_* environment and the config file.
func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time the lane dot-product algorithms on the sample vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg
			if err := cfg.Validate(); err != nil {
				return err
			}
			algos, err := cfg.Algorithms()
			if err != nil {
				return err
			}

			if hwy.LaneMismatch() {
				logger.WithFields(logrus.Fields{
					"target":   hwy.LaneTarget,
					"dispatch": hwy.CurrentName(),
				}).Warn("lane target needs more than the detected CPU level")
			}

			report, err := bench.Run(cmd.Context(), bench.Options{
				Size:       cfg.Bench.Size,
				Runs:       cfg.Bench.Runs,
				Algorithms: algos,
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			if err := bench.Format(cfg.Bench.Format, report, cmd.OutOrStdout()); err != nil {
				return err
			}
			return bench.CheckTolerance(report, cfg.Bench.Tolerance)
		},
	}
}
