// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package report

import (
	"embed"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
)

//go:embed templates/report.html.tmpl
var templates embed.FS

var htmlTemplate = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"kind":    kind,
	"at":      at,
	"percent": percent,
	"bytes":   func(n int64) string { return humanize.Bytes(uint64(max(0, n))) },
	"inc":     func(i int) int { return i + 1 },
}).ParseFS(templates, "templates/report.html.tmpl"))

// HTML writes a self-contained HTML page with the file information, statistics and all
// differences.
func HTML(w io.Writer, in Input) error {
	return htmlTemplate.Execute(w, in)
}
