package mealy

// MergeEffects attaches effects to existing transitions, so one topology can
// be authored once and reused with different effect configurations.
//
// For each connection, the transitions of connection.From that lead to
// connection.To receive the listed effects in declared order: the first such
// transition gets effects[0], the second effects[1] and so on. Transitions
// left over when the list runs out keep their current effect.
//
// The merge is all or nothing: on error the table is left untouched. Errors:
//   - *StateError if connection.To or connection.From is not in the table
//   - *ConnectionError wrapping ErrTransitionDoesNotExist if no transition
//     of connection.From leads to connection.To
//   - *ConnectionError wrapping ErrTooManyEffects if more effects are listed
//     than there are matching transitions
//   - ErrFrozen after Freeze
//
// MergeEffects must not run concurrently with Run on the same machine.
func (m *Machine[S, E]) MergeEffects(effects map[StatesConnection[S]][]E) error {
	if m.frozen {
		return ErrFrozen
	}

	staged, err := stageEffects(m.table, effects)
	if err != nil {
		return err
	}

	for state, transitions := range staged {
		m.table[state] = transitions
	}

	m.logger.Debug("effects merged", "connections", len(effects), "states", len(staged))
	return nil
}

// WithEffects is the non-mutating form of MergeEffects: it merges effects
// into a copy of the table and returns a new, unfrozen machine sharing the
// initial state, post effect and logger. m itself is never modified, so it
// may be frozen or in concurrent use.
func (m *Machine[S, E]) WithEffects(effects map[StatesConnection[S]][]E) (*Machine[S, E], error) {
	table := m.table.Clone()

	staged, err := stageEffects(table, effects)
	if err != nil {
		return nil, err
	}
	for state, transitions := range staged {
		table[state] = transitions
	}

	return &Machine[S, E]{
		initial: m.initial,
		table:   table,
		post:    m.post,
		hasPost: m.hasPost,
		logger:  m.logger,
	}, nil
}

// stageEffects computes the transition lists that change when effects are
// merged into table, without modifying table. Each touched list is copied
// once, so several connections sharing a source state compose.
func stageEffects[S comparable, E any](table Table[S, E], effects map[StatesConnection[S]][]E) (map[S][]Transition[S, E], error) {
	staged := make(map[S][]Transition[S, E])

	for conn, list := range effects {
		if !table.Has(conn.To) {
			return nil, &StateError[S]{State: conn.To}
		}

		transitions, ok := staged[conn.From]
		if !ok {
			source, ok := table[conn.From]
			if !ok {
				return nil, &StateError[S]{State: conn.From}
			}
			transitions = make([]Transition[S, E], len(source))
			copy(transitions, source)
		}

		matched := 0
		for i := range transitions {
			if transitions[i].To != conn.To {
				continue
			}
			if matched < len(list) {
				transitions[i] = transitions[i].With(list[matched])
			}
			matched++
		}

		if matched == 0 {
			return nil, &ConnectionError[S]{Connection: conn, Err: ErrTransitionDoesNotExist}
		}
		if len(list) > matched {
			return nil, &ConnectionError[S]{Connection: conn, Err: ErrTooManyEffects}
		}

		staged[conn.From] = transitions
	}

	return staged, nil
}
