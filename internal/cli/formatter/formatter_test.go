package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/projboard/internal/dom"
	"github.com/alexanderramin/projboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

const boardMarkup = `<html><body><div id="app">
<form id="user-input"><input id="title"></form>
<section id="active-projects"><header><h2>ACTIVE PROJECTS</h2></header>
<ul id="active-projects-list">
<li id="p1"><h2>Build API</h2><h3>3 persons assigned</h3><p>Design and implement</p></li>
<li id="p2">Bare item</li>
</ul></section>
<section id="finished-projects"><header><h2>FINISHED PROJECTS</h2></header><ul id="finished-projects-list"></ul></section>
</div></body></html>`

func TestRenderDocument(t *testing.T) {
	doc, err := dom.ParseString(boardMarkup)
	require.NoError(t, err)

	out := stripANSI(RenderDocument(doc.ElementByID("app"), 80))

	assert.NotContains(t, out, "title", "the form is not rendered")
	assert.Contains(t, out, "ACTIVE PROJECTS")
	assert.Contains(t, out, "▸ Build API  3 persons assigned")
	assert.Contains(t, out, "    Design and implement")
	assert.Contains(t, out, "▸ Bare item")
	assert.Contains(t, out, "FINISHED PROJECTS")
	assert.Contains(t, out, "No projects yet.")
	assert.Less(t, strings.Index(out, "ACTIVE"), strings.Index(out, "FINISHED"))
}

func TestRenderDocument_NilHost(t *testing.T) {
	assert.Equal(t, "", RenderDocument(nil, 80))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "1,204 active · 3 finished", Summary(1204, 3))
}

func TestFormatProjectTable(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	out := stripANSI(FormatProjectTable([]domain.Project{
		{ID: "550e8400-e29b-41d4-a716-446655440000", Title: "Build API", People: 3, Status: domain.ProjectActive, CreatedAt: now.Add(-5 * time.Minute)},
	}, now))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[2], "550e8400")
	assert.Contains(t, lines[2], "Build API")
	assert.Contains(t, lines[2], "● Active")
	assert.Contains(t, lines[2], "5m ago")
}

func TestFormatProjectTable_Empty(t *testing.T) {
	assert.Equal(t, "No projects.\n", stripANSI(FormatProjectTable(nil, time.Now())))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", HumanTimestampFrom(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Oct 1, 2026", HumanTimestampFrom(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestStatusPill(t *testing.T) {
	assert.Equal(t, "● Active", stripANSI(StatusPill(domain.ProjectActive)))
	assert.Equal(t, "● Finished", stripANSI(StatusPill(domain.ProjectFinished)))
}

func TestHeaderAndHelpers(t *testing.T) {
	assert.Equal(t, "ACTIVE\n──────", stripANSI(Header("active")))
	assert.Equal(t, "✔ done", stripANSI(Success("done")))
	assert.Equal(t, "Error: boom", stripANSI(Error(errors.New("boom"))))
}
