package diagnostic

import (
	"strings"
)

// Line markers used by MarkLines. Offending lines get the arrow, the
// rest get matching whitespace so the snippet stays aligned.
const (
	badLineMark = "> "
	okLineMark  = "  "
)

// Issue describes the problem half of a diagnostic: a human description
// plus an optional generated code snippet with the offending lines.
type Issue struct {
	Desc  string
	Code  string
	Lines LineSet
}

// Fix describes a suggested fix. If gates the section at render time;
// a nil If always shows the fix. A panicking predicate is not caught.
type Fix struct {
	Desc string
	Code string
	If   func() bool
}

// Renderer produces developer-facing diagnostic text for one internal
// framework failure. It is a pure formatter: construct it with the slots
// filled in and call Render.
type Renderer struct {
	Title string
	Issue Issue
	Fix   *Fix
}

// MarkLines splits code into lines and prefixes each with a marker:
// an arrow for indices in bad, whitespace otherwise. An empty set marks
// nothing; that is not an error.
func MarkLines(code string, bad LineSet) string {
	lines := strings.Split(code, "\n")
	marked := make([]string, len(lines))
	for i, line := range lines {
		if bad.Contains(i) {
			marked[i] = badLineMark + line
		} else {
			marked[i] = okLineMark + line
		}
	}
	return strings.Join(marked, "\n")
}

// Render builds the final display text. The Fix section is omitted when
// no fix is set or its predicate reports false; the code block and its
// generated-code note are omitted when the issue has no code. The result
// is trimmed and wrapped with one blank line on each side.
func (r *Renderer) Render() string {
	var b strings.Builder

	b.WriteString("## Issue\n\n")
	b.WriteString(strings.TrimSpace(dedent(r.Issue.Desc)))
	if r.Issue.Code != "" {
		b.WriteString("\n\n")
		b.WriteString(MarkLines(strings.TrimRight(dedent(r.Issue.Code), "\n"), r.Issue.Lines))
		b.WriteString("\n\n(The code above is generated and may not be identical to yours.)")
	}

	if r.Fix != nil && (r.Fix.If == nil || r.Fix.If()) {
		b.WriteString("\n\n## Fix\n\n")
		b.WriteString(strings.TrimSpace(dedent(r.Fix.Desc)))
		if r.Fix.Code != "" {
			b.WriteString("\n\n")
			b.WriteString(MarkLines(strings.TrimRight(dedent(r.Fix.Code), "\n"), Lines()))
		}
	}

	return "\n" + strings.TrimSpace(b.String()) + "\n"
}

// dedent strips the common leading indentation of all non-blank lines,
// so slot text can be written indented in source without the indentation
// leaking into output. Leading blank lines are dropped.
func dedent(s string) string {
	lines := strings.Split(s, "\n")

	margin := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return strings.TrimLeft(s, "\n")
	}

	for i, line := range lines {
		if len(line) >= margin {
			lines[i] = line[margin:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimLeft(strings.Join(lines, "\n"), "\n")
}
