// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package analyze computes basic statistics over price series fetched by the
// market package.
package analyze

import (
	"math"

	"github.com/stockparfait/fmp/market"

	"gonum.org/v1/gonum/stat"
)

// Returns computes log-profits log(close[t+1]) - log(close[t]) of a daily
// price series, oldest first. The API returns bars newest first, so the
// series is traversed from the end. Bars with a non-positive adjusted close
// are skipped, as the logarithm is undefined there.
func Returns(bars []market.Bar) []float64 {
	res := []float64{}
	prev := math.NaN()
	for i := len(bars) - 1; i >= 0; i-- {
		c := bars[i].AdjClose
		if c <= 0 {
			continue
		}
		l := math.Log(c)
		if !math.IsNaN(prev) {
			res = append(res, l-prev)
		}
		prev = l
	}
	return res
}

// Summary holds sample statistics of a series.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the sample statistics of xs. An empty sample yields the
// zero Summary; a single-point sample has zero standard deviation.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{N: len(xs), Min: xs[0], Max: xs[0]}
	for _, x := range xs {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	s.Mean = mean
	if len(xs) > 1 {
		s.StdDev = std
	}
	return s
}
