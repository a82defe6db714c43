// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging builds the stderr diagnostics logger. Stdout is
// reserved for the informational result lines, so everything here
// stays on the other stream: a non-debug run logs warnings and errors
// only, a debug run adds the per-file and per-page diagnostics.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to out. With debug enabled the
// level drops to debug, otherwise only warnings and errors pass.
func New(out io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: out, NoColor: true}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
