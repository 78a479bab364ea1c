package analyzer

import (
	"math/rand"
	"sort"
	"time"
)

// Analyzer computes statistics and derived tables over one message dataset.
// All methods are read-only; the input tables are never mutated.
type Analyzer struct {
	messages []Message
	contacts map[string]Contact
	groups   map[string]Group
	media    []MediaInfo
	aliases  map[string]string // lid jid -> canonical jid

	nameCache map[string]string
	rng       *rand.Rand
}

// New creates an Analyzer over the given dataset.
func New(ds Dataset) *Analyzer {
	a := &Analyzer{
		messages:  ds.Messages,
		contacts:  make(map[string]Contact, len(ds.Contacts)),
		groups:    make(map[string]Group, len(ds.Groups)),
		media:     ds.Media,
		aliases:   make(map[string]string, len(ds.AliasMap)),
		nameCache: make(map[string]string),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, c := range ds.Contacts {
		if _, ok := a.contacts[c.JID]; !ok {
			a.contacts[c.JID] = c
		}
	}
	for _, g := range ds.Groups {
		if _, ok := a.groups[g.JID]; !ok {
			a.groups[g.JID] = g
		}
	}
	for _, p := range ds.AliasMap {
		if _, ok := a.aliases[p.LID]; !ok {
			a.aliases[p.LID] = p.JID
		}
	}
	return a
}

// SeedRandom makes random sampling deterministic. Everything else already is.
func (a *Analyzer) SeedRandom(seed int64) {
	a.rng = rand.New(rand.NewSource(seed))
}

// MessageCount returns the number of messages in the dataset.
func (a *Analyzer) MessageCount() int {
	return len(a.messages)
}

// chatOrder returns the distinct chat JIDs in first-encounter order,
// so every grouped result is deterministic across runs.
func (a *Analyzer) chatOrder() []string {
	seen := make(map[string]struct{})
	var order []string
	for i := range a.messages {
		jid := a.messages[i].ChatJID
		if jid == "" {
			continue
		}
		if _, ok := seen[jid]; !ok {
			seen[jid] = struct{}{}
			order = append(order, jid)
		}
	}
	return order
}

// messagesByChat groups message indexes by chat JID.
func (a *Analyzer) messagesByChat() map[string][]int {
	byChat := make(map[string][]int)
	for i := range a.messages {
		jid := a.messages[i].ChatJID
		if jid == "" {
			continue
		}
		byChat[jid] = append(byChat[jid], i)
	}
	return byChat
}

// sortedByTime returns the given message indexes ordered by ascending
// timestamp. Messages without a timestamp sort after everything else.
func (a *Analyzer) sortedByTime(idx []int) []int {
	out := make([]int, len(idx))
	copy(out, idx)
	sort.SliceStable(out, func(i, j int) bool {
		mi, mj := &a.messages[out[i]], &a.messages[out[j]]
		if !mi.HasTimestamp() {
			return false
		}
		if !mj.HasTimestamp() {
			return true
		}
		return mi.Timestamp.Before(mj.Timestamp)
	})
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
