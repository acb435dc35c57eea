// Copyright 2026 The Civica Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// render strips ANSI styling so assertions see plain text.
func render(t *testing.T, input string, width int) string {
	t.Helper()
	return ansi.Strip(renderMarkdown(input, DefaultTheme, width))
}

func TestMarkdownEmptyInput(t *testing.T) {
	if got := renderMarkdown("", DefaultTheme, 60); got != "" {
		t.Errorf("empty input should render empty, got %q", got)
	}
}

func TestMarkdownSoftBreakReflows(t *testing.T) {
	input := "La Constitution de 1958\nfonde la Cinquième République."
	output := render(t, input, 80)

	if strings.Count(output, "\n") != 0 {
		t.Errorf("soft-broken source should reflow to one line at width 80, got %q", output)
	}
	if !strings.Contains(output, "1958 fonde") {
		t.Errorf("the soft break should become a space, got %q", output)
	}
}

func TestMarkdownWrapsAtWidth(t *testing.T) {
	input := "Le suffrage universel direct est utilisé pour élire le président de la République depuis 1962."
	output := render(t, input, 30)

	for _, line := range strings.Split(output, "\n") {
		if len([]rune(line)) > 30 {
			t.Errorf("line exceeds width 30: %q", line)
		}
	}
}

func TestMarkdownHeadingAndParagraph(t *testing.T) {
	input := "## Contexte\n\nLa séparation des pouvoirs."
	output := render(t, input, 60)

	if !strings.Contains(output, "Contexte") {
		t.Errorf("heading text missing: %q", output)
	}
	if !strings.Contains(output, "La séparation des pouvoirs.") {
		t.Errorf("paragraph text missing: %q", output)
	}
	if !strings.Contains(output, "Contexte\n") {
		t.Errorf("heading should end its line: %q", output)
	}
}

func TestMarkdownBulletList(t *testing.T) {
	input := "- pouvoir exécutif\n- pouvoir législatif\n- pouvoir judiciaire"
	output := render(t, input, 60)

	for _, item := range []string{"- pouvoir exécutif", "- pouvoir législatif", "- pouvoir judiciaire"} {
		if !strings.Contains(output, item) {
			t.Errorf("missing list item %q in %q", item, output)
		}
	}
}

func TestMarkdownOrderedListNumbers(t *testing.T) {
	input := "1. premier tour\n2. second tour"
	output := render(t, input, 60)

	if !strings.Contains(output, "1. premier tour") {
		t.Errorf("missing numbered item in %q", output)
	}
	if !strings.Contains(output, "2. second tour") {
		t.Errorf("numbering should continue in %q", output)
	}
}

func TestMarkdownFencedCodeBlockPreservesLines(t *testing.T) {
	input := "```\narticle 49\nalinéa 3\n```"
	output := render(t, input, 60)

	if !strings.Contains(output, "article 49\n") {
		t.Errorf("code lines should not reflow: %q", output)
	}
	if !strings.Contains(output, "alinéa 3") {
		t.Errorf("missing second code line: %q", output)
	}
}

func TestMarkdownBlockquotePrefix(t *testing.T) {
	input := "> La loi est l'expression de la volonté générale."
	output := render(t, input, 60)

	if !strings.Contains(output, "│ ") {
		t.Errorf("blockquote lines should carry the bar prefix: %q", output)
	}
}

func TestMarkdownNestedEmphasisBalances(t *testing.T) {
	input := "Un **point *très* important** ici."
	output := render(t, input, 60)

	if !strings.Contains(output, "point") || !strings.Contains(output, "important") {
		t.Errorf("emphasis content missing: %q", output)
	}
	// Plain text after the emphasis must not inherit styling; with
	// ANSI stripped the sentence should read continuously.
	if !strings.Contains(output, "important ici.") {
		t.Errorf("text after emphasis lost: %q", output)
	}
}
