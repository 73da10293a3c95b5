package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/steadfast/pkg/api/payment"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// PaymentListModel - Interactive payment selection
// =============================================================================

// PaymentListModel is the bubbletea model for picking a payment.
type PaymentListModel struct {
	Payments []payment.Payment
	Cursor   int
	Selected *payment.Payment
	Height   int
	Offset   int
}

// NewPaymentListModel creates a new payment list model.
func NewPaymentListModel(ps []payment.Payment) PaymentListModel {
	return PaymentListModel{Payments: ps, Height: 15}
}

func (m PaymentListModel) Init() tea.Cmd {
	return nil
}

func (m PaymentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Payments)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Payments) == 0 {
				return m, tea.Quit
			}
			p := m.Payments[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PaymentListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Payment"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Payments) {
		end = len(m.Payments)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Payments[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, formatID(int64(p.ID)), formatAmount(p.Amount.Float64()), orDash(p.CreatedAt)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Amount", "Created").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Payments))))

	return b.String()
}
