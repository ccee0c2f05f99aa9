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

//go:build hwy_scalar || (!amd64 && !arm64)

package hwy

// Scalar fallback: one float per lane. Selected on architectures without a
// vector tier, or explicitly with -tags hwy_scalar.
const (
	LaneWidth  = 1
	LaneTarget = "scalar"
)
