// Package tui is the interactive terminal frontend: a bubbletea model
// navigating cache snapshots. It never talks to the node directly;
// data arrives through snapshots and leaves as non-blocking requests
// to the sync loop.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soonscan/soonscan/internal/cache"
	"github.com/soonscan/soonscan/internal/model"
)

type view int

const (
	viewBlockList view = iota
	viewBlockDetail
	viewTxDetail
)

// dataChangedMsg reports that the cache holds something new since the
// last snapshot.
type dataChangedMsg struct{}

// Model is the navigation state machine. Selection is keyed by block
// height and transaction signature, never by row index, so eviction
// and fresh blocks cannot make it point at the wrong entry.
type Model struct {
	logger  *zap.Logger
	network model.Network
	store   SnapshotStore
	control SyncControl

	snap cache.Snapshot
	view view
	spin spinner.Model

	width  int
	height int

	// focusHeight keys the block selection. tracking keeps the
	// selection glued to the newest block until the user walks away
	// from the top row.
	focusHeight uint64
	hasFocus    bool
	tracking    bool
	scroll      int

	txIndex  int
	txScroll int
	focusTx  string
}

// New builds the terminal model over a snapshot store and the sync
// loop's request surface.
func New(store SnapshotStore, control SyncControl, network model.Network, logger *zap.Logger) (Model, error) {
	if store == nil {
		return Model{}, errors.New("snapshot store is required")
	}
	if control == nil {
		return Model{}, errors.New("sync control is required")
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		logger:   logger.Named("tui"),
		network:  network,
		store:    store,
		control:  control,
		snap:     store.Snapshot(),
		spin:     sp,
		tracking: true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, listenChanges(m.store.Changed()))
}

// listenChanges bridges the cache's coalescing signal into the message
// loop. Re-armed after every delivery.
func listenChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return dataChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampScroll()
		m.ensureVisible()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case dataChangedMsg:
		m.snap = m.store.Snapshot()
		m.resolveFocus()
		return m, listenChanges(m.store.Changed())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.control.RequestRefresh()
		return m, nil
	}

	switch m.view {
	case viewBlockDetail:
		return m.handleBlockDetailKey(msg)
	case viewTxDetail:
		return m.handleTxDetailKey(msg)
	default:
		return m.handleBlockListKey(msg)
	}
}

func (m Model) handleBlockListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "g":
		m.moveSelection(-len(m.snap.Blocks))
	case "G":
		m.moveSelection(len(m.snap.Blocks))
	case "enter":
		if _, ok := m.snap.Block(m.focusHeight); ok && m.hasFocus {
			m.view = viewBlockDetail
			m.txIndex, m.txScroll = 0, 0
			m.tracking = false
			m.logger.Debug("open block detail", zap.Uint64("height", m.focusHeight))
		}
	case "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBlockDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, ok := m.snap.Block(m.focusHeight)

	switch msg.String() {
	case "up", "k":
		m.moveTxSelection(-1, b)
	case "down", "j":
		m.moveTxSelection(1, b)
	case "g":
		m.moveTxSelection(-len(b.Transactions), b)
	case "G":
		m.moveTxSelection(len(b.Transactions), b)
	case "enter":
		if !ok || len(b.Transactions) == 0 {
			return m, nil
		}
		hash := b.Transactions[m.txIndex].Hash
		m.focusTx = hash
		m.view = viewTxDetail
		if _, state := m.snap.Transaction(m.focusHeight, hash); state == cache.TxUnknown {
			m.control.RequestTransaction(hash)
		}
		m.logger.Debug("open transaction detail", zap.String("hash", hash))
	case "esc":
		m.view = viewBlockList
		m.ensureVisible()
	}
	return m, nil
}

func (m Model) handleTxDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewBlockDetail
		m.focusTx = ""
	}
	return m, nil
}

// moveSelection shifts the block selection by delta display rows,
// clamped at both ends. Landing on the top row resumes tip tracking.
func (m *Model) moveSelection(delta int) {
	n := len(m.snap.Blocks)
	if n == 0 {
		return
	}
	d := m.displayIndex() + delta
	if d < 0 {
		d = 0
	}
	if d > n-1 {
		d = n - 1
	}
	m.focusOn(m.snap.Blocks[n-1-d].Height)
	m.tracking = d == 0
	m.ensureVisible()
}

func (m *Model) moveTxSelection(delta int, b model.BlockSummary) {
	n := len(b.Transactions)
	if n == 0 {
		return
	}
	i := m.txIndex + delta
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	m.txIndex = i
	m.ensureVisible()
}

// resolveFocus reconciles the selection with a fresh snapshot: a
// tracked selection follows the newest block, an evicted focus snaps
// to the nearest retained height, and the pin follows along.
func (m *Model) resolveFocus() {
	n := len(m.snap.Blocks)
	if n == 0 {
		m.hasFocus = false
		m.scroll = 0
		m.store.Unpin()
		if m.view == viewBlockDetail {
			m.view = viewBlockList
		}
		return
	}

	switch {
	case !m.hasFocus, m.tracking && m.view == viewBlockList:
		m.focusOn(m.snap.Blocks[n-1].Height)
	default:
		if _, ok := m.snap.IndexOf(m.focusHeight); !ok {
			if h, ok := m.snap.Nearest(m.focusHeight); ok {
				m.logger.Debug("selection evicted, snapping to nearest",
					zap.Uint64("from", m.focusHeight), zap.Uint64("to", h))
				m.focusOn(h)
			}
		}
	}

	if b, ok := m.snap.Block(m.focusHeight); ok {
		if max := len(b.Transactions) - 1; m.txIndex > max {
			if max < 0 {
				max = 0
			}
			m.txIndex = max
		}
	}

	if m.view == viewTxDetail && m.focusTx != "" {
		if _, state := m.snap.Transaction(m.focusHeight, m.focusTx); state == cache.TxUnknown {
			m.control.RequestTransaction(m.focusTx)
		}
	}

	m.clampScroll()
	m.ensureVisible()
}

func (m *Model) focusOn(h uint64) {
	m.focusHeight = h
	m.hasFocus = true
	m.store.Pin(h)
}

// displayIndex converts the focused height into a row index of the
// newest-first list.
func (m Model) displayIndex() int {
	n := len(m.snap.Blocks)
	if n == 0 || !m.hasFocus {
		return 0
	}
	if i, ok := m.snap.IndexOf(m.focusHeight); ok {
		return n - 1 - i
	}
	return 0
}

func (m *Model) ensureVisible() {
	page := m.listPageSize()
	d := m.displayIndex()
	if d < m.scroll {
		m.scroll = d
	} else if d >= m.scroll+page {
		m.scroll = d - page + 1
	}

	txPage := m.txPageSize()
	if m.txIndex < m.txScroll {
		m.txScroll = m.txIndex
	} else if m.txIndex >= m.txScroll+txPage {
		m.txScroll = m.txIndex - txPage + 1
	}
}

func (m *Model) clampScroll() {
	max := len(m.snap.Blocks) - m.listPageSize()
	if max < 0 {
		max = 0
	}
	if m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m Model) listPageSize() int {
	if m.height == 0 {
		return 20
	}
	page := m.height - 6
	if page < 1 {
		page = 1
	}
	return page
}

func (m Model) txPageSize() int {
	if m.height == 0 {
		return 10
	}
	page := m.height - 13
	if page < 1 {
		page = 1
	}
	return page
}
