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


package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jeredhiggins/keyintent/core"
)

// ResultColumns holds the column headers of a rendered result table, in
// output order.
var ResultColumns = []string{"Keywords", "Intent", "NER Entities", "Google Content Topics"}

// ResultTable accumulates enriched keyword records and renders them as a
// four-column table. Rows are kept in append order, which the pipeline
// guarantees is input order.
type ResultTable struct {
	records []core.KeywordRecord
}

// NewResultTable creates an empty table with capacity for n rows.
func NewResultTable(n int) *ResultTable {
	return &ResultTable{records: make([]core.KeywordRecord, 0, n)}
}

// Append adds a record to the table.
func (t *ResultTable) Append(record core.KeywordRecord) {
	t.records = append(t.records, record)
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.records)
}

// Records returns the accumulated records in append order. The returned
// slice is the table's backing store; callers must not modify it.
func (t *ResultTable) Records() []core.KeywordRecord {
	return t.records
}

// Row renders row i as display strings, one per column.
func (t *ResultTable) Row(i int) []string {
	r := t.records[i]
	return []string{r.Keyword, string(r.Intent), r.Entities.String(), r.Topic.String()}
}

// FilterByIntent returns the records carrying the given intent label,
// preserving order.
func (t *ResultTable) FilterByIntent(label core.IntentLabel) []core.KeywordRecord {
	var matched []core.KeywordRecord
	for _, r := range t.records {
		if r.Intent == label {
			matched = append(matched, r)
		}
	}
	return matched
}

// IntentCounts tallies rows per intent label.
func (t *ResultTable) IntentCounts() map[core.IntentLabel]int {
	counts := make(map[core.IntentLabel]int)
	for _, r := range t.records {
		counts[r.Intent]++
	}
	return counts
}

// WriteCSV writes the table, header row first, to w.
func (t *ResultTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ResultColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range t.records {
		if err := cw.Write(t.Row(i)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
