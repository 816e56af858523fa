// This file is part of gputrace.
//
// gputrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gputrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gputrace.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview serves runtime statistics over HTTP while a trace is
// being processed. The server is only built with the statsview build tag:
//
//	go build -tags statsview ./cmd/gputrace
//
// Without the tag, Available() returns false and Launch() returns
// ErrUnavailable.
//
// Graphs are served by github.com/go-echarts/statsview at
// localhost:12600/debug/statsview and the pprof endpoints at
// localhost:12600/debug/pprof/
package statsview

import "errors"

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// ErrUnavailable is returned by Launch() when the package has been built
// without the statsview tag.
var ErrUnavailable = errors.New("statsview: not available in this build")
