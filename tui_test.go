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
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	return NewModel(newTestInterpreter(0), NewStyles(TerminalModeDark), nil)
}

func submitLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelSubmitRunsCommand(t *testing.T) {
	m := newTestModel()
	m = submitLine(t, m, "new avl t")
	assert.Equal(t, `created avl "t"`, m.lastOutput)
	assert.Equal(t, "", m.input.Value())
	assert.False(t, m.statusErr)

	m = submitLine(t, m, "insert t 1 2 3")
	m = submitLine(t, m, "show t")
	assert.Equal(t, "  .--(002)--.\n(001)     (003)", m.lastOutput)
	assert.Len(t, m.history, 3)
	assert.Len(t, m.transcript, 4)
}

func TestModelSubmitReportsErrors(t *testing.T) {
	m := newTestModel()
	m = submitLine(t, m, "show missing")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no tree with that name")

	m = submitLine(t, m, "   ")
	assert.Len(t, m.history, 1)
}

func TestModelHistoryRecall(t *testing.T) {
	m := newTestModel()
	m = submitLine(t, m, "new heap h")
	m = submitLine(t, m, "insert h 4")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, "insert h 4", m.input.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, "new heap h", m.input.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, "", m.input.Value())
}

func TestModelClipboardAndQuit(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.NotNil(t, cmd)

	updated, _ := m.Update(clipboardMsg{err: errors.New("no clipboard")})
	m = updated.(Model)
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "no clipboard")

	updated, _ = m.Update(clipboardMsg{})
	m = updated.(Model)
	assert.False(t, m.statusErr)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, "Initializing...", m.View())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	m = submitLine(t, m, "new avl t")
	view := m.View()
	assert.Contains(t, view, "Trees")
	assert.Contains(t, view, "copy output")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = updated.(Model)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestLineRepl(t *testing.T) {
	InitializeColors(false)
	input := strings.NewReader("new heap h\ninsert h 5 3 8 1\nextract h\nbogus\nsort h\n")
	var out bytes.Buffer

	require.NoError(t, runLineRepl(input, &out, newTestInterpreter(0), false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `created heap "h"`, lines[0])
	assert.Equal(t, "8", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "error: unknown command"))
	assert.Equal(t, "5 3 1", lines[4])
}
