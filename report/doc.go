// Copyright 2025 Poiesic Systems
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


// Package report renders already-decided search matches for display.
//
// Rendering is purely a presentation transform: it groups matches by source
// file, wraps matched spans in terminal color, and yields output lines as a
// lazy, restartable sequence. Nothing here influences which nodes matched.
// A JSON writer is also provided for machine-readable output, one record
// per match.
package report
