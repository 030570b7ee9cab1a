package nfa

import (
	"strings"

	"github.com/coregx/automata/internal/table"
)

// ToTable serializes the automaton back to its textual transition table.
// Transition sets print as "{s0 s2}" with targets in their original
// declaration order, and the ε column (if any) reappears at its original
// header position with its original spelling. The output reparses to a
// structurally equal NFA: FromTable(n.ToTable()) preserves state order,
// alphabet order, target order and naming.
func (n *NFA) ToTable() string {
	header := make([]string, 0, len(n.alphabet)+4)
	header = append(header, "", "", "")
	for col, i := 0, 0; col < n.headerWidth(); col++ {
		if col == n.epsilonCol {
			header = append(header, n.epsilonSym)
			continue
		}
		header = append(header, n.alphabet[i])
		i++
	}

	var w table.Writer
	w.AddRow(header...)
	for i := range n.states {
		s := &n.states[i]
		arrow := ""
		if StateID(i) == n.initial {
			arrow = "→"
		}
		star := ""
		if s.accepting {
			star = "*"
		}
		row := make([]string, 0, len(header))
		row = append(row, arrow, star, s.name)
		for col, j := 0, 0; col < n.headerWidth(); col++ {
			if col == n.epsilonCol {
				row = append(row, n.renderSet(s.epsilon))
				continue
			}
			row = append(row, n.renderSet(s.transitions[j]))
			j++
		}
		w.AddRow(row...)
	}
	return w.String()
}

// headerWidth returns the number of columns in the table header, including
// the ε column when present.
func (n *NFA) headerWidth() int {
	if n.epsilonCol >= 0 {
		return len(n.alphabet) + 1
	}
	return len(n.alphabet)
}

func (n *NFA) renderSet(targets []StateID) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range targets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.states[t].name)
	}
	sb.WriteByte('}')
	return sb.String()
}
