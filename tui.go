// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea state of the playground.
type Model struct {
	ready bool

	input  textinput.Model
	output viewport.Model

	interp *Interpreter

	// transcript is everything shown in the output pane, oldest first.
	transcript []string
	lastOutput string
	history    []string
	historyPos int

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// clipboardMsg reports the result of a ctrl+y copy.
type clipboardMsg struct {
	err error
}

// NewModel builds the playground. renderer may be nil, in which case help is
// shown as raw markdown.
func NewModel(interp *Interpreter, styles *Styles, renderer *glamour.TermRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "new avl t   (help lists commands)"
	ti.Prompt = "treekit> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	vp := viewport.New(0, 0)

	m := Model{
		input:           ti,
		output:          vp,
		interp:          interp,
		styles:          styles,
		glamourRenderer: renderer,
	}
	m.appendOutput("Type help to list commands. ctrl+y copies the last output, esc quits.")
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		case "ctrl+l":
			m.transcript = nil
			m.output.SetContent("")
			return m, nil
		case "ctrl+y":
			text := m.lastOutput
			return m, func() tea.Msg {
				return clipboardMsg{err: clipboard.WriteAll(text)}
			}
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 copied last output to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line through the interpreter.
func (m *Model) submit() {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	out, err := m.interp.Exec(line)
	if strings.EqualFold(line, "help") && m.glamourRenderer != nil {
		if rendered, rerr := m.glamourRenderer.Render(out); rerr == nil {
			out = strings.TrimRight(rendered, "\n")
		}
	}
	m.lastOutput = out

	entry := m.styles.InputPrompt.Render("> " + line)
	if out != "" {
		entry += "\n" + m.styles.Tree.Render(out)
	}
	if err != nil {
		entry += "\n" + m.styles.ErrorMessage.Render("error: "+err.Error())
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus("", false)
	}
	m.appendOutput(entry)
}

func (m *Model) appendOutput(entry string) {
	m.transcript = append(m.transcript, entry)
	m.output.SetContent(strings.Join(m.transcript, "\n\n"))
	m.output.GotoBottom()
}

// recall steps through previously submitted lines.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + step
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) updateLayout() {
	inputHeight := 3
	m.input.Width = m.width - 6
	m.output.Width = m.width - 4
	m.output.Height = m.height - inputHeight - 8
	if m.output.Height < 1 {
		m.output.Height = 1
	}
	m.output.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	outputBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Height(m.output.Height + 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 Trees "),
			m.output.View(),
		))

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Padding(0, 1).
		Render(m.input.View())

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(m.status)
		} else {
			status = m.styles.SuccessMessage.Render(m.status)
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		outputBox,
		inputBox,
		status,
		m.renderKeyHelp(),
	)
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdown", "ctrl+y", "ctrl+l", "esc"}
	descs := []string{"run", "history", "scroll", "copy output", "clear", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func runBubbleTeaApp(interp *Interpreter, styles *Styles) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		clog.Warn("help renderer unavailable", "err", err)
		renderer = nil
	}

	program := tea.NewProgram(
		NewModel(interp, styles, renderer),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

// runLineRepl is the playground without a full screen UI, for pipes and
// dumb terminals. It reads commands from r until EOF.
func runLineRepl(r io.Reader, w io.Writer, interp *Interpreter, prompt bool) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(w, "treekit> ")
		}
		if !scanner.Scan() {
			break
		}
		out, err := interp.Exec(scanner.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if err != nil {
			fmt.Fprintf(w, "%serror:%s %v\n", Error, Reset, err)
		}
	}
	return scanner.Err()
}
