// Package session owns the live state of one document-viewing session: the
// current text, tree, query, snapshot, and search result.
//
// A single owner goroutine (the UI loop, or a test) calls all exported
// methods and applies every Update it receives from Updates. Background
// units are pure functions over immutable inputs; their results carry the
// query text and tree generation they were computed for, and Apply drops
// any result that no longer matches the live state. Only the last-issued
// unit's result is ever applied.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fgoni/json-assistant/doctree"
	"github.com/fgoni/json-assistant/encode"
	"github.com/fgoni/json-assistant/ir"
	"github.com/fgoni/json-assistant/parse"
	"github.com/fgoni/json-assistant/sched"
	"github.com/fgoni/json-assistant/search"
	"github.com/fgoni/json-assistant/store"
	"go.uber.org/zap"
)

var ErrNoDocument = errors.New("no document")

type Status int

const (
	StatusIdle Status = iota
	StatusSnapshotLoading
	StatusSearching
)

func (s Status) String() string {
	switch s {
	case StatusSnapshotLoading:
		return "loading snapshot"
	case StatusSearching:
		return "searching"
	default:
		return "idle"
	}
}

type UpdateKind int

const (
	KindParse UpdateKind = iota
	KindQueryDue
	KindSnapshot
	KindSearch
)

// Update is a background completion delivered to the owner, which passes it
// to Apply. Each kind carries the inputs it was computed for so Apply can
// re-validate against live state.
type Update struct {
	Kind UpdateKind

	Text string // KindParse: the text that was parsed
	Node *ir.Node
	Err  error

	Gen      uint64 // KindSnapshot, KindSearch
	Query    string // KindQueryDue, KindSearch
	Snapshot *search.Snapshot
	Result   *search.Result
}

type Options struct {
	Store          store.Store
	Logger         *zap.SugaredLogger
	ParseDebounce  time.Duration
	SearchDebounce time.Duration
}

type Session struct {
	log *zap.SugaredLogger
	st  store.Store

	text     string
	parseErr error
	tree     *doctree.Tree
	query    string
	snapshot *search.Snapshot
	result   *search.Result
	status   Status

	parseDeb   *sched.Debouncer
	searchDeb  *sched.Debouncer
	snapSlot   sched.Slot
	searchSlot sched.Slot

	updates chan Update
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{
		log:       logger,
		st:        opts.Store,
		parseDeb:  sched.NewDebouncer(opts.ParseDebounce),
		searchDeb: sched.NewDebouncer(opts.SearchDebounce),
		updates:   make(chan Update, 32),
	}
}

// Updates delivers background completions. The owner must pass each one to
// Apply.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

func (s *Session) Text() string           { return s.text }
func (s *Session) ParseError() error      { return s.parseErr }
func (s *Session) Tree() *doctree.Tree    { return s.tree }
func (s *Session) Query() string          { return s.query }
func (s *Session) Result() *search.Result { return s.result }
func (s *Session) Status() Status         { return s.status }

// Edit records interactively typed text and schedules a debounced reparse.
// The text is not reformatted.
func (s *Session) Edit(text string) {
	s.text = text
	s.parseDeb.Trigger(func() {
		node, err := parse.ParseString(text)
		s.updates <- Update{Kind: KindParse, Text: text, Node: node, Err: err}
	})
}

// Load parses text synchronously and reformats it in place, returning the
// formatted text. On parse failure the old tree is cleared, never left
// mismatched with the new text.
func (s *Session) Load(text string) (string, error) {
	s.parseDeb.Stop()
	node, err := parse.ParseString(text)
	if err != nil {
		s.text = text
		s.clearTree()
		s.parseErr = err
		return "", err
	}
	formatted := encode.MustString(node)
	s.text = formatted
	s.parseErr = nil
	s.installTree(node)
	return formatted, nil
}

// Clear drops the document and all derived state.
func (s *Session) Clear() {
	s.parseDeb.Stop()
	s.searchDeb.Stop()
	s.text = ""
	s.query = ""
	s.clearTree()
	s.parseErr = nil
}

func (s *Session) clearTree() {
	s.snapSlot.Cancel()
	s.searchSlot.Cancel()
	s.tree = nil
	s.snapshot = nil
	s.result = nil
	s.status = StatusIdle
}

func (s *Session) installTree(node *ir.Node) {
	s.snapSlot.Cancel()
	s.searchSlot.Cancel()
	s.tree = doctree.Build(node)
	s.snapshot = nil
	s.result = nil
	s.status = StatusIdle
	if queryActive(s.query) {
		s.startSearch()
	}
}

// SetQuery records the query text. Queries below the minimum length clear
// the search outputs immediately, without any traversal; others are
// debounced before evaluation.
func (s *Session) SetQuery(q string) {
	s.query = q
	if !queryActive(q) {
		s.searchDeb.Stop()
		s.searchSlot.Cancel()
		s.result = nil
		if s.status == StatusSearching {
			s.status = StatusIdle
		}
		return
	}
	s.searchDeb.Trigger(func() {
		s.updates <- Update{Kind: KindQueryDue, Query: q}
	})
}

func queryActive(q string) bool {
	return len([]rune(strings.ToLower(strings.TrimSpace(q)))) >= search.MinQueryLen
}

// Apply folds a background completion into the session, dropping it when
// the text, query, or tree generation it was computed for is stale.
func (s *Session) Apply(u Update) {
	switch u.Kind {
	case KindParse:
		if u.Text != s.text {
			s.log.Debugw("dropping stale parse")
			return
		}
		if u.Err != nil {
			s.clearTree()
			s.parseErr = u.Err
			return
		}
		s.parseErr = nil
		s.installTree(u.Node)

	case KindQueryDue:
		if u.Query != s.query {
			s.log.Debugw("dropping stale query", "query", u.Query)
			return
		}
		s.startSearch()

	case KindSnapshot:
		if s.tree == nil || u.Gen != s.tree.Gen {
			s.log.Debugw("dropping stale snapshot", "gen", u.Gen)
			return
		}
		s.snapshot = u.Snapshot
		s.startEval()

	case KindSearch:
		if s.tree == nil || u.Gen != s.tree.Gen || u.Query != s.query {
			s.log.Debugw("dropping stale search result", "query", u.Query)
			return
		}
		s.result = u.Result
		s.status = StatusIdle
		// auto-expand every ancestor of a match on the live tree
		s.tree.Expand(u.Result.Expand)
	}
}

// startSearch evaluates the current query, building the generation's
// snapshot first if it does not exist yet.
func (s *Session) startSearch() {
	if s.tree == nil {
		return
	}
	if s.snapshot != nil && s.snapshot.Gen == s.tree.Gen {
		s.startEval()
		return
	}
	tree := s.tree
	s.status = StatusSnapshotLoading
	s.snapSlot.Go(func(ctx context.Context) {
		snap, err := search.Build(ctx, tree)
		if err != nil {
			return // cancelled; produce nothing
		}
		s.updates <- Update{Kind: KindSnapshot, Gen: tree.Gen, Snapshot: snap}
	})
}

func (s *Session) startEval() {
	snap, q := s.snapshot, s.query
	s.status = StatusSearching
	s.searchSlot.Go(func(ctx context.Context) {
		r, err := search.Eval(ctx, snap, q)
		if err != nil {
			return // cancelled; produce nothing
		}
		s.updates <- Update{Kind: KindSearch, Gen: snap.Gen, Query: q, Result: r}
	})
}

// Toggle flips one node's expansion state.
func (s *Session) Toggle(id doctree.NodeID) {
	if s.tree != nil {
		s.tree.Toggle(id)
	}
}

func (s *Session) ExpandAll() {
	if s.tree != nil {
		s.tree.ExpandAll()
	}
}

func (s *Session) CollapseAll() {
	if s.tree != nil {
		s.tree.CollapseAll()
	}
}

// FocusNext moves the match cursor forward, wrapping from the last match to
// the first. Ancestors of matches are already expanded when the result is
// applied, so the focused node is visible.
func (s *Session) FocusNext() (doctree.NodeID, bool) {
	if s.result == nil {
		return 0, false
	}
	id, ok := s.result.FocusNext()
	return id, ok
}

func (s *Session) FocusPrev() (doctree.NodeID, bool) {
	if s.result == nil {
		return 0, false
	}
	id, ok := s.result.FocusPrev()
	return id, ok
}

// SaveCurrent persists the current text under name, skipping the write when
// an entry with exactly equal text already exists.
func (s *Session) SaveCurrent(name string) error {
	if s.tree == nil || s.text == "" {
		return ErrNoDocument
	}
	entries, err := s.st.Load()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Text == s.text {
			return nil
		}
	}
	entries = append(entries, store.NewEntry(name, s.text))
	return s.st.Save(entries)
}
