package dfa

import "github.com/coregx/automata/internal/table"

// ToTable serializes the automaton back to its textual transition table.
// Columns are padded for alignment, the initial state carries "→" and
// accepting states "*". The output reparses to a structurally equal DFA:
// FromTable(d.ToTable()) preserves state order, alphabet order and naming.
func (d *DFA) ToTable() string {
	var w table.Writer
	header := append(make([]string, 3, len(d.alphabet)+3), d.alphabet...)
	w.AddRow(header...)
	for i := range d.states {
		s := &d.states[i]
		arrow := ""
		if StateID(i) == d.initial {
			arrow = "→"
		}
		star := ""
		if s.accepting {
			star = "*"
		}
		row := make([]string, 0, len(s.transitions)+3)
		row = append(row, arrow, star, s.name)
		for _, t := range s.transitions {
			row = append(row, d.states[t].name)
		}
		w.AddRow(row...)
	}
	return w.String()
}
