package taskform

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/gorev-takip/internal/datefmt"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/theme"
)

// TaskCreatedMsg is dispatched when the create form is submitted.
type TaskCreatedMsg struct {
	Task model.NewTask
}

// TaskUpdatedMsg is dispatched when the edit form is submitted.
type TaskUpdatedMsg struct {
	ID    string
	Patch model.TaskPatch
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	assignee    string
	category    model.Category
	location    string
	team        string
	priority    model.Priority
	status      model.TaskStatus
	dueDate     string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form      *huh.Form
	fb        *formBindings
	editMode  bool
	editID    string
	employees []string
	styles    theme.Styles
	width     int
	height    int
}

// New creates a new task form model. Employees are the assignee choices.
func New(employees []string, styles theme.Styles, width, height int) Model {
	return Model{
		fb:        &formBindings{},
		employees: employees,
		styles:    styles,
		width:     width,
		height:    height,
	}
}

// StartCreate initializes the form for creating a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{
		priority: model.PriorityMedium,
		status:   model.StatusPending,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing task.
func (m *Model) StartEdit(t model.Task) tea.Cmd {
	m.editMode = true
	m.editID = t.ID
	*m.fb = formBindings{
		title:       t.Title,
		description: t.Description,
		assignee:    t.PersonFullName,
		category:    t.Category,
		location:    t.Location,
		team:        t.Team,
		priority:    t.Priority,
		status:      t.Status,
		dueDate:     t.DueISO,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Editing reports whether the form edits an existing task.
func (m Model) Editing() bool {
	return m.editMode
}

// Update handles messages for the task form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m, m.handleSubmit()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "Yeni Görev"
	if m.editMode {
		titleText = "Görevi Düzenle"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.styles.Palette.Text).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetStyles switches the palette.
func (m *Model) SetStyles(s theme.Styles) {
	m.styles = s
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth()).WithHeight(m.formHeight())
	}
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Görev Başlığı").
			Placeholder("Örn: Depo sayımı").
			Value(&m.fb.title).
			Validate(validateRequired("Başlık")),
		huh.NewText().
			Title("Açıklama").
			Placeholder("Görevin detayları").
			Value(&m.fb.description).
			Validate(validateRequired("Açıklama")),
		huh.NewSelect[string]().
			Title("Atanan Kişi").
			Options(huh.NewOptions(m.assigneeChoices()...)...).
			Value(&m.fb.assignee).
			Validate(validateRequired("Atanan kişi")),
		huh.NewSelect[model.Category]().
			Title("Kategori").
			Options(categoryOptions()...).
			Value(&m.fb.category).
			Validate(func(c model.Category) error {
				if c == "" {
					return errors.New("kategori zorunlu")
				}
				return nil
			}),
		huh.NewInput().
			Title("Lokasyon").
			Value(&m.fb.location).
			Validate(validateRequired("Lokasyon")),
		huh.NewInput().
			Title("Ekip").
			Value(&m.fb.team).
			Validate(validateRequired("Ekip")),
		huh.NewSelect[model.Priority]().
			Title("Öncelik").
			Options(priorityOptions()...).
			Value(&m.fb.priority),
	}

	if m.editMode {
		fields = append(fields,
			huh.NewSelect[model.TaskStatus]().
				Title("Durum").
				Options(statusOptions()...).
				Value(&m.fb.status),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Bitiş Tarihi").
			Placeholder("YYYY-AA-GG").
			Value(&m.fb.dueDate).
			Validate(validateDate),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// assigneeChoices lists the employees, plus the current assignee when
// editing a task assigned to someone outside that list.
func (m *Model) assigneeChoices() []string {
	choices := append([]string(nil), m.employees...)
	if m.fb.assignee == "" {
		return choices
	}
	for _, e := range choices {
		if e == m.fb.assignee {
			return choices
		}
	}
	return append(choices, m.fb.assignee)
}

func categoryOptions() []huh.Option[model.Category] {
	var opts []huh.Option[model.Category]
	for _, c := range model.Categories() {
		opts = append(opts, huh.NewOption(c.Label(), c))
	}
	return opts
}

func priorityOptions() []huh.Option[model.Priority] {
	var opts []huh.Option[model.Priority]
	for _, p := range model.Priorities() {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	return opts
}

func statusOptions() []huh.Option[model.TaskStatus] {
	var opts []huh.Option[model.TaskStatus]
	for _, s := range model.Statuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	return opts
}

func (m Model) handleSubmit() tea.Cmd {
	if m.editMode {
		id, patch := m.editID, m.fb.patch()
		return func() tea.Msg { return TaskUpdatedMsg{ID: id, Patch: patch} }
	}

	task, err := m.fb.newTask()
	if err != nil {
		return func() tea.Msg { return CancelMsg{} }
	}
	return func() tea.Msg { return TaskCreatedMsg{Task: task} }
}

// newTask builds a pending task from the form. The date is required.
func (fb formBindings) newTask() (model.NewTask, error) {
	due, err := datefmt.ParseISODate(strings.TrimSpace(fb.dueDate))
	if err != nil {
		return model.NewTask{}, err
	}

	return model.NewTask{
		Title:          strings.TrimSpace(fb.title),
		Description:    strings.TrimSpace(fb.description),
		PersonFullName: strings.TrimSpace(fb.assignee),
		Status:         model.StatusPending,
		Priority:       fb.priority,
		DateText:       datefmt.FormatShortTR(due),
		DueISO:         datefmt.ToISODate(due),
		Location:       strings.TrimSpace(fb.location),
		Team:           strings.TrimSpace(fb.team),
		Category:       fb.category,
	}, nil
}

// patch builds the edit patch. The date fields are only patched when a
// valid date was entered, and then always together.
func (fb formBindings) patch() model.TaskPatch {
	p := model.TaskPatch{
		Title:          model.Ptr(strings.TrimSpace(fb.title)),
		Description:    model.Ptr(strings.TrimSpace(fb.description)),
		PersonFullName: model.Ptr(strings.TrimSpace(fb.assignee)),
		Status:         model.Ptr(fb.status),
		Priority:       model.Ptr(fb.priority),
		Location:       model.Ptr(strings.TrimSpace(fb.location)),
		Team:           model.Ptr(strings.TrimSpace(fb.team)),
	}
	if fb.category != "" {
		p.Category = model.Ptr(fb.category)
	}
	if due, err := datefmt.ParseISODate(strings.TrimSpace(fb.dueDate)); err == nil {
		p.SetDueDate(due)
	}
	return p
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s zorunlu", fieldName)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := datefmt.ParseISODate(strings.TrimSpace(s)); err != nil {
		return errors.New("tarih YYYY-AA-GG biçiminde olmalı")
	}
	return nil
}
