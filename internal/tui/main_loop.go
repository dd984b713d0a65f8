package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	todos   []models.Todo
	idx     int
	loading bool
	offline bool
	status  string
	errMsg  string

	adding    bool
	addInput  textinput.Model
	addSaving bool

	confirmingDelete bool

	logout bool
}

type listLoadedMsg struct {
	todos     []models.Todo
	fromCache bool
	err       error
}

type todoToggledMsg struct {
	err error
}

type todoDeletedMsg struct {
	err error
}

type todoCreatedMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session) mainLoopModel {
	input := textinput.New()
	input.Placeholder = "что нужно сделать?"
	input.CharLimit = 500
	input.Width = 46

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
		addInput: input,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadTodos()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.offline = msg.fromCache
		m.todos = msg.todos
		if m.idx >= len(m.todos) {
			m.idx = len(m.todos) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case todoToggledMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка изменения: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadTodos()

	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadTodos(), m.cmdClearStatusLater())

	case todoCreatedMsg:
		m.addSaving = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка создания: %v", msg.err)
			return m, nil
		}
		m.adding = false
		m.addInput.SetValue("")
		m.status = "Запись добавлена"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadTodos(), m.cmdClearStatusLater())

	case logoutDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка выхода: %v", msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		m.status = "Текст скопирован в буфер обмена"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation overlay eats every key.
	if m.confirmingDelete {
		switch msg.String() {
		case "y":
			m.confirmingDelete = false
			if todo, ok := m.current(); ok {
				return m, m.cmdDeleteTodo(todo.TodoID)
			}
		case "n", "esc":
			m.confirmingDelete = false
		}
		return m, nil
	}

	// New-item form.
	if m.adding {
		switch msg.String() {
		case "esc":
			m.adding = false
			m.addInput.SetValue("")
			return m, nil
		case "enter":
			if m.addSaving {
				return m, nil
			}
			text := strings.TrimSpace(m.addInput.Value())
			if text == "" {
				m.errMsg = "Текст записи не может быть пустым"
				return m, nil
			}
			m.errMsg = ""
			m.addSaving = true
			return m, m.cmdCreateTodo(text)
		}

		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.todos)-1 {
			m.idx++
		}
	case " ", "enter":
		if todo, ok := m.current(); ok {
			return m, m.cmdToggleTodo(todo)
		}
	case "n":
		m.adding = true
		m.errMsg = ""
		m.addInput.Focus()
		return m, textinput.Blink
	case "d":
		if _, ok := m.current(); ok {
			m.confirmingDelete = true
		}
	case "c":
		if todo, ok := m.current(); ok {
			return m, cmdCopyToClipboard(todo.Text)
		}
	case "r":
		m.loading = true
		return m, m.cmdLoadTodos()
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.confirmingDelete {
		todo, _ := m.current()
		content := "Удалить \"" + fitText(todo.Text, 40) + "\"?\n\n"
		content += "y да    n нет"
		return overlayBoxStyle.Render(content)
	}

	if m.adding {
		var b strings.Builder
		b.WriteString("Текст │ [")
		b.WriteString(m.addInput.View())
		b.WriteString("]\n")
		if m.addSaving {
			b.WriteString("\n[Сохранить...]\n")
		} else {
			b.WriteString("\n[Сохранить]\n")
		}
		if m.errMsg != "" {
			b.WriteString("\nОшибка: " + m.errMsg + "\n")
		}
		return renderPage("НОВАЯ ЗАПИСЬ", strings.TrimRight(b.String(), "\n"), "esc: отмена │ enter: сохранить")
	}

	title := "СПИСОК ДЕЛ — " + m.session.Email
	if m.offline {
		title += "  [офлайн]"
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.todos) == 0:
		b.WriteString("Нет записей — нажмите n, чтобы добавить")
	default:
		for i, todo := range m.todos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			mark := "[ ]"
			line := fitText(todo.Text, 46)
			if todo.Completed {
				mark = "[x]"
				line = doneStyle.Render(line)
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, line))
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	hotKeys := "space: готово/не готово │ n: новая │ d: удалить │ c: копировать │ r: обновить │ l: выйти из аккаунта │ q: выход"
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) current() (models.Todo, bool) {
	if len(m.todos) == 0 || m.idx < 0 || m.idx >= len(m.todos) {
		return models.Todo{}, false
	}
	return m.todos[m.idx], true
}

func (m mainLoopModel) cmdLoadTodos() tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService
	userID := m.session.UserID

	return func() tea.Msg {
		todos, fromCache, err := todoSvc.GetAll(ctx, userID)
		return listLoadedMsg{todos: todos, fromCache: fromCache, err: err}
	}
}

func (m mainLoopModel) cmdToggleTodo(todo models.Todo) tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService
	completed := !todo.Completed

	return func() tea.Msg {
		_, err := todoSvc.Update(ctx, todo.TodoID, models.TodoUpdate{Completed: &completed})
		return todoToggledMsg{err: err}
	}
}

func (m mainLoopModel) cmdCreateTodo(text string) tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService

	return func() tea.Msg {
		_, err := todoSvc.Create(ctx, text)
		return todoCreatedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteTodo(todoID string) tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService

	return func() tea.Msg {
		_, err := todoSvc.Delete(ctx, todoID)
		return todoDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	authSvc := m.services.AuthService

	return func() tea.Msg {
		return logoutDoneMsg{err: authSvc.Logout(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return todoToggledMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
