package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arena/gotofix/internal/adapters/outbound/tui"
	"github.com/arena/gotofix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFix() domain.FileFix {
	return domain.FileFix{
		Path:    "/suite/login.spec.js",
		Name:    "login.spec.js",
		Matches: 1,
		Written: true,
		Before:  "    await installHeadlessWallet(page, { accounts: 1 });\n    await page.goto('/');\n",
		After:   "    await page.goto('/');\n\n    await installHeadlessWallet(page, { accounts: 1 });\n",
	}
}

func TestPrinter_FixedLine(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf, false, false)

	require.NoError(t, p.FileFixed(sampleFix()))
	assert.Equal(t, "Fixed: login.spec.js\n", buf.String())
}

func TestPrinter_DryRunLine(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf, true, false)

	require.NoError(t, p.FileFixed(sampleFix()))
	assert.Equal(t, "Would fix: login.spec.js\n", buf.String())
}

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf, false, false)

	require.NoError(t, p.Summary(&domain.FixReport{Fixed: 2}))
	assert.Equal(t, "\nFixed 2 files\n", buf.String())
}

func TestPrinter_WithDiff(t *testing.T) {
	var buf bytes.Buffer
	p := tui.NewPrinter(&buf, false, true)

	require.NoError(t, p.FileFixed(sampleFix()))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Fixed: login.spec.js\n"))
	assert.Contains(t, out, "--- a/login.spec.js")
	assert.Contains(t, out, "+++ b/login.spec.js")
	assert.Contains(t, out, "@@ ")
}

func TestRenderSummary(t *testing.T) {
	assert.Equal(t, "Fixed 0 files", tui.RenderSummary(&domain.FixReport{}))
	assert.Equal(t, "Would fix 3 files", tui.RenderSummary(&domain.FixReport{DryRun: true, Fixed: 3}))
}

func TestUnifiedDiff_NoContent(t *testing.T) {
	assert.Empty(t, tui.UnifiedDiff(domain.FileFix{Name: "a.spec.js"}))
}

func TestUnifiedDiff_Hunk(t *testing.T) {
	diff := tui.UnifiedDiff(sampleFix())
	assert.Contains(t, diff, "@@")
	assert.Contains(t, diff, "\n+\n", "blank separator line is added")
	assert.Contains(t, diff, "+    await page.goto('/');")
}
