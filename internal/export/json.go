// Package export renders an automaton to its two external forms: a
// JSON persistence format and a Graphviz-style DOT description. Both
// are pure, read-only functions over the automaton — neither ever
// mutates the NFA/DFA it is given.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AbdoWise-z/regex-compiler/internal/automaton"
	"github.com/AbdoWise-z/regex-compiler/internal/regexerr"
)

const epsilonKey = "ε"

// stateRecord is the generic per-state shape shared by the NFA and DFA
// JSON forms: a terminating flag plus a label -> target-name(s) map.
// Epsilon transitions, when present, live under epsilonKey.
type stateRecord struct {
	name        string
	terminating bool
	labels      map[string]targetSet
}

// targetSet is one or more target state names for a single label. It
// marshals to a bare string when there is exactly one target and to a
// list otherwise, and its unmarshaler tolerates both forms on the way
// back in.
type targetSet []string

func (t targetSet) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

func (t *targetSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = targetSet{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = targetSet(list)
	return nil
}

// document is the full JSON object: one key per state plus the
// top-level "startingState" key.
type document struct {
	start  string
	states []stateRecord
}

func (d *document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.states)+1)
	out["startingState"] = d.start

	for _, s := range d.states {
		obj := make(map[string]interface{}, len(s.labels)+1)
		obj["isTerminatingState"] = s.terminating
		for label, targets := range s.labels {
			obj[label] = targets
		}
		out[s.name] = obj
	}

	return json.Marshal(out)
}

func unmarshalDocument(data []byte) (*document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	doc := &document{}

	startRaw, ok := raw["startingState"]
	if !ok {
		return nil, fmt.Errorf("missing startingState key")
	}
	if err := json.Unmarshal(startRaw, &doc.start); err != nil {
		return nil, err
	}
	delete(raw, "startingState")

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var stateObj map[string]json.RawMessage
		if err := json.Unmarshal(raw[name], &stateObj); err != nil {
			return nil, err
		}

		rec := stateRecord{name: name, labels: map[string]targetSet{}}

		if termRaw, ok := stateObj["isTerminatingState"]; ok {
			if err := json.Unmarshal(termRaw, &rec.terminating); err != nil {
				return nil, err
			}
			delete(stateObj, "isTerminatingState")
		}

		for label, rawTargets := range stateObj {
			var ts targetSet
			if err := json.Unmarshal(rawTargets, &ts); err != nil {
				return nil, err
			}
			rec.labels[label] = ts
		}

		doc.states = append(doc.states, rec)
	}

	return doc, nil
}

func nfaStateName(id int) string {
	return fmt.Sprintf("S%d", id)
}

// NFAToDocument builds the JSON document for an NFA: one "S<id>"
// record per state, an "ε" entry for epsilon targets, and one entry
// per label for its (possibly multi-valued) targets.
func NFAToDocument(nfa *automaton.NFA) *document {
	doc := &document{start: nfaStateName(nfa.Start)}

	for _, st := range nfa.States {
		rec := stateRecord{
			name:        nfaStateName(st.ID),
			terminating: st.Final,
			labels:      map[string]targetSet{},
		}

		if len(st.Eps) > 0 {
			eps := make([]string, len(st.Eps))
			for i, t := range st.Eps {
				eps[i] = nfaStateName(t)
			}
			sort.Strings(eps)
			rec.labels[epsilonKey] = targetSet(eps)
		}

		for lbl, targets := range st.Out {
			names := make([]string, len(targets))
			for i, t := range targets {
				names[i] = nfaStateName(t)
			}
			sort.Strings(names)
			rec.labels[lbl.String()] = targetSet(names)
		}

		doc.states = append(doc.states, rec)
	}

	return doc
}

// MarshalNFA renders nfa as JSON.
func MarshalNFA(nfa *automaton.NFA) ([]byte, error) {
	b, err := json.MarshalIndent(NFAToDocument(nfa), "", "  ")
	if err != nil {
		return nil, regexerr.IO("marshal", "<nfa>", err)
	}
	return b, nil
}

// UnmarshalNFA parses the JSON form back into an NFA. State names are
// expected to be of the form "S<id>" (the convention this package's own
// marshaler uses and the one original_source/DFA.py's loader assumes),
// but any name is accepted for round-tripping as long as it's used
// consistently — the loader assigns dense IDs by position in sorted
// name order. The number in an "S<id>" name is not used, so the
// original numbering is not preserved (e.g. "S10" sorts before "S2").
func UnmarshalNFA(data []byte) (*automaton.NFA, error) {
	doc, err := unmarshalDocument(data)
	if err != nil {
		return nil, regexerr.IO("unmarshal", "<nfa>", err)
	}

	ids := map[string]int{}
	for i, rec := range doc.states {
		ids[rec.name] = i
	}
	idFor := func(name string) (int, error) {
		id, ok := ids[name]
		if !ok {
			return 0, fmt.Errorf("unknown state %q", name)
		}
		return id, nil
	}

	nfa := &automaton.NFA{States: make([]*automaton.State, len(doc.states))}
	for _, rec := range doc.states {
		id := ids[rec.name]
		nfa.States[id] = &automaton.State{
			ID:    id,
			Out:   map[automaton.Label][]int{},
			Final: rec.terminating,
		}
	}

	for _, rec := range doc.states {
		id := ids[rec.name]
		for label, targets := range rec.labels {
			for _, targetName := range targets {
				tid, err := idFor(targetName)
				if err != nil {
					return nil, regexerr.IO("unmarshal", "<nfa>", err)
				}
				if label == epsilonKey {
					nfa.States[id].Eps = append(nfa.States[id].Eps, tid)
				} else {
					lbl := parseLabel(label)
					nfa.States[id].Out[lbl] = append(nfa.States[id].Out[lbl], tid)
				}
			}
		}
	}

	startID, err := idFor(doc.start)
	if err != nil {
		return nil, regexerr.IO("unmarshal", "<nfa>", err)
	}
	nfa.Start = startID

	for _, st := range nfa.States {
		if st.Final {
			nfa.Accept = st.ID
		}
	}

	return nfa, nil
}

func dfaStateName(nfaIDs []int) string {
	parts := make([]string, len(nfaIDs))
	for i, id := range nfaIDs {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// DFAToDocument builds the JSON document for a DFA (or minimized DFA):
// state names are the space-joined underlying NFA-state IDs.
func DFAToDocument(dfa *automaton.DFA) *document {
	doc := &document{start: dfaStateName(dfa.States[dfa.Start].NFAIDs)}

	for _, st := range dfa.States {
		rec := stateRecord{
			name:        dfaStateName(st.NFAIDs),
			terminating: st.Final,
			labels:      map[string]targetSet{},
		}
		doc.states = append(doc.states, rec)
	}

	bySrc := map[int][]automaton.Transition{}
	for _, t := range dfa.Transitions {
		bySrc[t.Src] = append(bySrc[t.Src], t)
	}

	for i, st := range dfa.States {
		for _, t := range bySrc[st.ID] {
			name := dfaStateName(dfa.States[t.Dst].NFAIDs)
			doc.states[i].labels[t.Label.String()] = targetSet{name}
		}
	}

	return doc
}

// MarshalDFA renders dfa as JSON.
func MarshalDFA(dfa *automaton.DFA) ([]byte, error) {
	b, err := json.MarshalIndent(DFAToDocument(dfa), "", "  ")
	if err != nil {
		return nil, regexerr.IO("marshal", "<dfa>", err)
	}
	return b, nil
}

// UnmarshalDFA parses the JSON form produced by this package's own DFA
// naming convention back into a DFA: the NFA-ID set a DFA state
// subsumes is recovered directly from its space-joined name.
func UnmarshalDFA(data []byte) (*automaton.DFA, error) {
	doc, err := unmarshalDocument(data)
	if err != nil {
		return nil, regexerr.IO("unmarshal", "<dfa>", err)
	}

	ids := map[string]int{}
	dfa := &automaton.DFA{}
	for i, rec := range doc.states {
		ids[rec.name] = i
		nfaIDs, err := parseDFAStateName(rec.name)
		if err != nil {
			return nil, regexerr.IO("unmarshal", "<dfa>", err)
		}
		dfa.States = append(dfa.States, &automaton.DFAState{
			ID:     i,
			NFAIDs: nfaIDs,
			Final:  rec.terminating,
		})
	}

	for _, rec := range doc.states {
		src := ids[rec.name]
		for label, targets := range rec.labels {
			for _, targetName := range targets {
				dst, ok := ids[targetName]
				if !ok {
					return nil, regexerr.IO("unmarshal", "<dfa>", fmt.Errorf("unknown state %q", targetName))
				}
				dfa.Transitions = append(dfa.Transitions, automaton.Transition{
					Src:   src,
					Label: parseLabel(label),
					Dst:   dst,
				})
			}
		}
	}

	startID, ok := ids[doc.start]
	if !ok {
		return nil, regexerr.IO("unmarshal", "<dfa>", fmt.Errorf("unknown start state %q", doc.start))
	}
	dfa.Start = startID

	return dfa, nil
}

func parseDFAStateName(name string) ([]int, error) {
	if name == "" {
		return nil, nil
	}
	fields := strings.Fields(name)
	ids := make([]int, len(fields))
	for i, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid DFA state name %q: %w", name, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// parseLabel recovers a Label from the string form produced by
// Label.String — the inverse needed so a marshaled automaton can be
// loaded back with an identical transition multigraph.
func parseLabel(s string) automaton.Label {
	switch {
	case s == ".":
		return automaton.AnyLabel()
	case s == "\\.":
		return automaton.CharLabel('.') // reconstructs the escaped-dot kind
	default:
		runes := []rune(s)
		if len(runes) == 3 && runes[1] == '-' {
			return automaton.RangeLabel(runes[0], runes[2])
		}
		if len(runes) >= 1 {
			return automaton.CharLabel(runes[0])
		}
		return automaton.Label{}
	}
}
