// seehuhn.de/go/chart - raster charts for run analytics
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dashboard

import (
	"errors"
	"fmt"
)

// ErrPanic is wrapped by the ChartError of a chart whose renderer panicked.
var ErrPanic = errors.New("renderer panicked")

// ChartError reports a failure for one chart of the dashboard.
type ChartError struct {
	Surface string
	Chart   Kind
	Err     error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %q (%s): %v", e.Surface, e.Chart, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError.
func NewChartError(surface string, chart Kind, err error) *ChartError {
	return &ChartError{
		Surface: surface,
		Chart:   chart,
		Err:     err,
	}
}
