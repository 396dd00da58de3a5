package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"auxroom/internal/formatter"
	"auxroom/internal/models"
	"auxroom/internal/repositories"
	"auxroom/internal/services"
)

// roomCheckInterval is how often guests poll the backend for room existence.
const roomCheckInterval = 15 * time.Second

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	ReceiptView
	ClosedView
)

// Model represents the TUI application state for an active room.
type Model struct {
	ctx     context.Context
	queue   *services.QueueClient
	rooms   *services.RoomSession
	history *repositories.SubmissionRepository

	room      models.Room
	view      ViewState
	width     int
	height    int
	input     textinput.Model
	trackList list.Model
	top       []models.Track
	receipt   models.QueueSubmission
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model for the given room. The history repository
// may be nil when submissions should not be persisted.
func NewModel(ctx context.Context, room models.Room, queue *services.QueueClient, rooms *services.RoomSession, history *repositories.SubmissionRepository) *Model {
	input := textinput.New()
	input.Placeholder = "Search for a track..."
	input.Focus()

	trackList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	trackList.Title = fmt.Sprintf("%s's room", formatter.TruncateName(room.OwnerName))
	trackList.SetShowHelp(false)

	return &Model{
		ctx:       ctx,
		queue:     queue,
		rooms:     rooms,
		history:   history,
		room:      room,
		view:      BrowseView,
		input:     input,
		trackList: trackList,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init fetches the host's top tracks and starts the existence poll for guests.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.fetchTop()}
	if m.room.Role == models.RoleGuest {
		cmds = append(cmds, m.scheduleCheck())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case ReceiptView:
			return m.handleReceiptKeys(msg)
		case ClosedView:
			return m, tea.Quit
		}

	case topFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.top = msg.tracks
		if m.input.Value() == "" {
			m.trackList.SetItems(toItems(msg.tracks))
		}
		return m, nil

	case searchResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.result.Seq != m.queue.Latest() {
			return m, nil
		}
		m.err = nil
		if m.input.Value() == "" {
			m.trackList.SetItems(toItems(m.top))
		} else {
			m.trackList.SetItems(toItems(msg.result.Tracks))
		}
		return m, nil

	case enqueuedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.receipt = msg.submission
		m.view = ReceiptView
		m.record(msg.submission)
		return m, nil

	case roomCheckMsg:
		if msg.err == nil && !msg.exists {
			m.view = ClosedView
			m.rooms.Leave()
			return m, nil
		}
		return m, m.scheduleCheck()

	case checkTickMsg:
		return m, m.checkRoom()
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case BrowseView:
		return m.renderBrowse()
	case ReceiptView:
		return m.renderReceipt()
	case ClosedView:
		return styles.warn.Render("This room has been closed by its host.\n\nPress any key to exit.")
	default:
		return ""
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.input.SetValue("")
		m.trackList.SetItems(toItems(m.top))
		return m, nil
	case "enter":
		selected := m.trackList.SelectedItem()
		if item, ok := selected.(trackItem); ok {
			return m, m.enqueue(item.track)
		}
		return m, nil
	case "up", "ctrl+k", "down", "ctrl+j":
		var cmd tea.Cmd
		m.trackList, cmd = m.trackList.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.search(m.input.Value()))
	}
	return m, cmd
}

func (m *Model) handleReceiptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.view = BrowseView
	return m, nil
}

func (m *Model) fetchTop() tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.queue.TopTracks(m.ctx, m.room.ID)
		return topFetchedMsg{tracks: tracks, err: err}
	}
}

func (m *Model) search(text string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.queue.Search(m.ctx, m.room.ID, text)
		return searchResultMsg{result: result, err: err}
	}
}

func (m *Model) enqueue(track models.Track) tea.Cmd {
	return func() tea.Msg {
		sub, err := m.queue.AddToQueue(m.ctx, m.room.ID, track)
		return enqueuedMsg{submission: sub, err: err}
	}
}

func (m *Model) checkRoom() tea.Cmd {
	return func() tea.Msg {
		exists, err := m.rooms.StillExists(m.ctx)
		return roomCheckMsg{exists: exists, err: err}
	}
}

func (m *Model) scheduleCheck() tea.Cmd {
	return tea.Tick(roomCheckInterval, func(time.Time) tea.Msg {
		return checkTickMsg{}
	})
}

func (m *Model) record(sub models.QueueSubmission) {
	if m.history == nil {
		return
	}
	// Sequence is assigned by the repository on insert.
	_ = m.history.Create(models.NewSubmission(0, m.room.ID, sub))
}

func (m *Model) renderBrowse() string {
	title := styles.title.Render(formatter.RoomSummary(m.room))

	listTitle := "Top tracks"
	if m.input.Value() != "" {
		listTitle = "Results"
	}
	m.trackList.Title = listTitle

	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s", title, m.input.View(), m.trackList.View(), errLine, helpView)
}

func (m *Model) renderReceipt() string {
	var body string
	if m.receipt.Outcome == models.OutcomeEnqueued {
		body = styles.ok.Render(formatter.Receipt(m.receipt))
	} else {
		body = styles.warn.Render(formatter.Receipt(m.receipt))
	}

	helpView := styles.help.Render("press any key to continue")
	return fmt.Sprintf("%s\n\n%s", body, helpView)
}
