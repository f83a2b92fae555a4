package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/soonscan/soonscan/internal/cache"
	"github.com/soonscan/soonscan/internal/format"
	"github.com/soonscan/soonscan/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	panelStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// View renders the whole screen from the captured snapshot and
// navigation state. No I/O, no locks.
func (m Model) View() string {
	var body string
	switch m.view {
	case viewBlockDetail:
		body = m.renderBlockDetail()
	case viewTxDetail:
		body = m.renderTxDetail()
	default:
		body = m.renderBlockList()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar(), m.renderFooter())
}

func (m Model) renderBlockList() string {
	title := titleStyle.Render(fmt.Sprintf("soonscan — %s", m.network))
	n := len(m.snap.Blocks)
	if n == 0 {
		return title + "\n\n" + m.spin.View() + subtleStyle.Render(" waiting for blocks…") + "\n"
	}

	header := headerStyle.Render(fmt.Sprintf("  %-12s %-26s %6s %5s", "SLOT", "BLOCKHASH", "AGE", "TXS"))
	now := time.Now()
	selected := m.displayIndex()

	var rows []string
	end := m.scroll + m.listPageSize()
	if end > n {
		end = n
	}
	for d := m.scroll; d < end; d++ {
		b := m.snap.Blocks[n-1-d]
		cursor := "  "
		if d == selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12d %-26s %6s %5d",
			cursor, b.Height, format.TruncateMiddle(b.Hash, 24), format.Age(now, b.Timestamp), b.TxCount())
		if d == selected {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)
	}

	return title + "\n\n" + header + "\n" + strings.Join(rows, "\n")
}

func (m Model) renderBlockDetail() string {
	title := titleStyle.Render(fmt.Sprintf("soonscan — %s — block", m.network))

	b, ok := m.snap.Block(m.focusHeight)
	if !ok {
		return title + "\n\n" + subtleStyle.Render(fmt.Sprintf("block %d is no longer retained", m.focusHeight)) + "\n"
	}

	fields := []string{
		fmt.Sprintf("%-13s %d", "Slot", b.Height),
		fmt.Sprintf("%-13s %s", "Blockhash", b.Hash),
		fmt.Sprintf("%-13s %s", "Parent", b.ParentHash),
		fmt.Sprintf("%-13s %s", "Time", format.Timestamp(b.Timestamp)),
		fmt.Sprintf("%-13s %d", "Transactions", b.TxCount()),
	}
	panel := panelStyle.Render(strings.Join(fields, "\n"))

	if len(b.Transactions) == 0 {
		return title + "\n\n" + panel + "\n\n" + subtleStyle.Render("no transactions in this block")
	}

	header := headerStyle.Render(fmt.Sprintf("  %-30s %-16s %s", "SIGNATURE", "FEE", "STATUS"))
	var rows []string
	end := m.txScroll + m.txPageSize()
	if end > len(b.Transactions) {
		end = len(b.Transactions)
	}
	for i := m.txScroll; i < end; i++ {
		tx := b.Transactions[i]
		hash := format.TruncateMiddle(tx.Hash, 28)
		fee := format.Lamports(tx.Fee)
		var line string
		if i == m.txIndex {
			line = selectedStyle.Render(fmt.Sprintf("> %-30s %-16s %s", hash, fee, tx.Status))
		} else {
			line = fmt.Sprintf("  %-30s %-16s %s", hash, fee, renderStatus(tx.Status))
		}
		rows = append(rows, line)
	}

	return title + "\n\n" + panel + "\n\n" + header + "\n" + strings.Join(rows, "\n")
}

func (m Model) renderTxDetail() string {
	title := titleStyle.Render(fmt.Sprintf("soonscan — %s — transaction", m.network))

	tx, state := m.snap.Transaction(m.focusHeight, m.focusTx)
	switch state {
	case cache.TxMissing:
		body := warnStyle.Render("transaction not found") + "\n\n" +
			m.focusTx + "\n\n" +
			subtleStyle.Render("the node does not know this signature")
		return title + "\n\n" + panelStyle.Render(body)
	case cache.TxUnknown:
		return title + "\n\n" + m.spin.View() +
			subtleStyle.Render(" looking up "+format.TruncateMiddle(m.focusTx, 28)+"…") + "\n"
	}

	fields := []string{
		fmt.Sprintf("%-14s %s", "Signature", tx.Hash),
		fmt.Sprintf("%-14s %d", "Slot", tx.Height),
		fmt.Sprintf("%-14s %s", "Status", renderStatus(tx.Status)),
		fmt.Sprintf("%-14s %s", "Signer", tx.Signer),
		fmt.Sprintf("%-14s %s", "Fee", format.Lamports(tx.Fee)),
		fmt.Sprintf("%-14s %d", "Compute units", tx.ComputeUnits),
	}
	panel := panelStyle.Render(strings.Join(fields, "\n"))

	if len(tx.BalanceChanges) == 0 {
		return title + "\n\n" + panel
	}

	var rows []string
	rows = append(rows, headerStyle.Render("BALANCE CHANGES"))
	for _, c := range tx.BalanceChanges {
		rows = append(rows, fmt.Sprintf("  %-44s %s → %s  (%s)",
			format.TruncateMiddle(c.Account, 42),
			format.Lamports(c.PreLamports),
			format.Lamports(c.PostLamports),
			format.LamportsDelta(c.Delta())))
	}

	return title + "\n\n" + panel + "\n\n" + strings.Join(rows, "\n")
}

func (m Model) renderStatusBar() string {
	h := m.snap.Health

	var left string
	if n := len(m.snap.Blocks); n > 0 {
		left = fmt.Sprintf("slot %d • blocks %d–%d",
			h.Latest, m.snap.Blocks[0].Height, m.snap.Blocks[n-1].Height)
	} else {
		left = "no blocks yet"
	}

	var state string
	switch {
	case h.Degraded:
		state = warnStyle.Render("degraded: " + h.Message)
	case h.LastSync.IsZero():
		state = m.spin.View() + " connecting"
	default:
		state = okStyle.Render("ok") + subtleStyle.Render(
			fmt.Sprintf(" synced %s ago", format.Age(time.Now(), h.LastSync)))
	}

	bar := subtleStyle.Render(left+" • ") + state
	if gap := m.width - lipgloss.Width(bar); gap > 0 {
		bar += strings.Repeat(" ", gap)
	}
	return bar
}

func (m Model) renderFooter() string {
	var hints string
	switch m.view {
	case viewBlockDetail:
		hints = "k/j move • enter transaction • esc back • r refresh • q quit"
	case viewTxDetail:
		hints = "esc back • r refresh • q quit"
	default:
		hints = "k/j move • enter open • g/G newest/oldest • r refresh • q quit"
	}
	return subtleStyle.Render(hints)
}

func renderStatus(s model.TxStatus) string {
	switch s {
	case model.TxSuccess:
		return okStyle.Render(string(s))
	case model.TxFailed:
		return failStyle.Render(string(s))
	default:
		return subtleStyle.Render(string(s))
	}
}
