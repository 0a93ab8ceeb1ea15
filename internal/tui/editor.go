// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal pieces of the notebook front end: a
// full-screen note editor built on bubbletea and the lipgloss renderers used
// for command output.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrEditorClosed is returned when the editor program ends without a result.
var ErrEditorClosed = errors.New("editor closed unexpectedly")

// NoteEditor edits note content in a full-screen textarea.
type NoteEditor struct {
	options []tea.ProgramOption
}

func NewNoteEditor(options ...tea.ProgramOption) *NoteEditor {
	return &NoteEditor{options: options}
}

// Edit shows initial under title and blocks until the user saves (ctrl+s)
// or quits (esc). saved reports whether content should be written.
func (e *NoteEditor) Edit(ctx context.Context, title, initial string) (content string, saved bool, err error) {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, e.options...)

	finalModel, err := tea.NewProgram(newEditorModel(title, initial), opts...).Run()
	if err != nil {
		return "", false, fmt.Errorf("run editor: %w", err)
	}

	result, ok := finalModel.(editorModel)
	if !ok {
		return "", false, ErrEditorClosed
	}
	if !result.saved {
		return "", false, nil
	}
	return result.area.Value(), true, nil
}

type editorModel struct {
	title   string
	initial string
	area    textarea.Model

	confirmDiscard bool
	saved          bool
	quit           bool
}

func newEditorModel(title, initial string) editorModel {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Placeholder = "Start typing..."
	area.SetWidth(80)
	area.SetHeight(20)
	area.SetValue(initial)
	area.Focus()

	return editorModel{title: title, initial: initial, area: area}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// frame: padding, title, two dividers and the help line
		m.area.SetWidth(max(msg.Width-4, 10))
		m.area.SetHeight(max(msg.Height-7, 3))
		return m, nil

	case tea.KeyMsg:
		if m.confirmDiscard {
			switch {
			case key.Matches(msg, keys.yes):
				m.quit = true
				return m, tea.Quit
			case key.Matches(msg, keys.no):
				m.confirmDiscard = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.save):
			m.saved = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			if m.dirty() {
				m.confirmDiscard = true
				return m, nil
			}
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) dirty() bool {
	return m.area.Value() != m.initial
}

func (m editorModel) View() string {
	if m.confirmDiscard {
		return appStyle.Render(overlayBoxStyle.Render("Discard unsaved changes?\n\ny yes    n no"))
	}

	title := m.title
	if m.dirty() {
		title += " *"
	}
	return appStyle.Render(renderPage(title, m.area.View(), "ctrl+s save    esc quit"))
}
