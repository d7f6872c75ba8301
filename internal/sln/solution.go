// Package sln reads Visual Studio solution files and rewrites their startup
// project designation without disturbing any other byte of the file.
package sln

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// headerPrefix starts the first non-blank line of every solution file.
const headerPrefix = "Microsoft Visual Studio Solution File, Format Version"

// startupSection is the GlobalSection that holds an explicit designation.
const (
	startupSection = "StartupProject"
	startupKey     = "StartupProject"
)

// folderType is the project type GUID Visual Studio uses for solution folders.
var folderType = uuid.MustParse("2150E333-8FDC-42A3-9474-1A3956D46DE8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	projectLine = regexp.MustCompile(`^Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"$`)
	sectionLine = regexp.MustCompile(`^GlobalSection\(([^)]*)\)\s*=\s*(\S+)$`)
	keyValue    = regexp.MustCompile(`^([^=]+?)\s*=\s*(.*)$`)
)

// Project is one Project ... EndProject entry of a solution.
type Project struct {
	Type uuid.UUID
	Name string
	Path string
	GUID uuid.UUID

	start int // index of the Project( line
	end   int // index of the EndProject line
}

// IsFolder reports whether the entry is a solution folder rather than a
// buildable project.
func (p *Project) IsFolder() bool {
	return p.Type == folderType
}

// GUIDString formats the project GUID the way solution files write it.
func (p *Project) GUIDString() string {
	return formatGUID(p.GUID)
}

// Solution is a parsed solution file. It keeps the original lines, including
// their terminators, so unchanged content serializes byte-for-byte.
type Solution struct {
	bom   bool
	lines []string

	Projects []*Project

	globalStart int       // index of Global, -1 when absent
	globalEnd   int       // index of EndGlobal, -1 when absent
	sectionIdx  int       // index of GlobalSection(StartupProject), -1 when absent
	sectionEnd  int       // index of its EndGlobalSection
	valueIdx    int       // index of the StartupProject = {...} line, -1 when absent
	startupGUID uuid.UUID // value of the StartupProject line
	firstIndent string    // indentation of the first GlobalSection line
}

// Parse parses the contents of a solution file.
func Parse(data []byte) (*Solution, error) {
	s := &Solution{}
	if bytes.HasPrefix(data, utf8BOM) {
		s.bom = true
		data = data[len(utf8BOM):]
	}
	s.lines = splitLines(string(data))
	if err := s.index(); err != nil {
		return nil, err
	}
	return s, nil
}

// Bytes serializes the solution.
func (s *Solution) Bytes() []byte {
	var buf bytes.Buffer
	if s.bom {
		buf.Write(utf8BOM)
	}
	for _, line := range s.lines {
		buf.WriteString(line)
	}
	return buf.Bytes()
}

// splitLines splits text after every "\n", keeping the terminators.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// content returns a line without its terminator or surrounding whitespace.
func content(line string) string {
	return strings.TrimSpace(line)
}

// terminator returns the line ending of a line, or "" for an unterminated
// final line.
func terminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	}
	return ""
}

// indentation returns the leading whitespace of a line.
func indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// newline returns the line ending used by the file, defaulting to CRLF.
func (s *Solution) newline() string {
	for _, line := range s.lines {
		if nl := terminator(line); nl != "" {
			return nl
		}
	}
	return "\r\n"
}

// parse states
const (
	stateTop = iota
	stateProject
	stateProjectSection
	stateGlobal
	stateGlobalSection
)

// index scans the lines and records projects, the Global block, and the
// startup section. It is re-run after every edit.
func (s *Solution) index() error {
	s.Projects = nil
	s.globalStart, s.globalEnd = -1, -1
	s.sectionIdx, s.sectionEnd, s.valueIdx = -1, -1, -1
	s.startupGUID = uuid.Nil
	s.firstIndent = ""

	fail := func(i int, format string, args ...any) error {
		return &ParseError{Line: i + 1, Message: fmt.Sprintf(format, args...)}
	}

	header := false
	state := stateTop
	seen := make(map[uuid.UUID]string)
	var current *Project
	var section string

	for i, raw := range s.lines {
		line := content(raw)

		if !header {
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, headerPrefix) {
				return fail(i, "missing solution file header")
			}
			header = true
			continue
		}

		switch state {
		case stateTop:
			switch {
			case strings.HasPrefix(line, "Project("):
				p, err := parseProject(line)
				if err != nil {
					return fail(i, "%v", err)
				}
				if name, dup := seen[p.GUID]; dup {
					return fail(i, "project %q reuses GUID of %q", p.Name, name)
				}
				seen[p.GUID] = p.Name
				p.start = i
				current = p
				state = stateProject
			case line == "Global":
				if s.globalStart >= 0 {
					return fail(i, "duplicate Global block")
				}
				s.globalStart = i
				state = stateGlobal
			case line == "EndProject", line == "EndGlobal",
				line == "EndProjectSection", line == "EndGlobalSection":
				return fail(i, "unexpected %s", line)
			}

		case stateProject:
			switch {
			case line == "EndProject":
				current.end = i
				s.Projects = append(s.Projects, current)
				current = nil
				state = stateTop
			case strings.HasPrefix(line, "ProjectSection("):
				state = stateProjectSection
			case strings.HasPrefix(line, "Project("), line == "Global":
				return fail(i, "missing EndProject for project %q", current.Name)
			}

		case stateProjectSection:
			switch {
			case line == "EndProjectSection":
				state = stateProject
			case line == "EndProject", strings.HasPrefix(line, "Project("), line == "Global":
				return fail(i, "missing EndProjectSection in project %q", current.Name)
			}

		case stateGlobal:
			switch {
			case line == "EndGlobal":
				s.globalEnd = i
				state = stateTop
			case strings.HasPrefix(line, "GlobalSection("):
				m := sectionLine.FindStringSubmatch(line)
				if m == nil {
					return fail(i, "malformed GlobalSection line")
				}
				if s.firstIndent == "" {
					s.firstIndent = indentation(raw)
				}
				section = m[1]
				if section == startupSection {
					if s.sectionIdx >= 0 {
						return fail(i, "duplicate %s section", startupSection)
					}
					s.sectionIdx = i
				}
				state = stateGlobalSection
			case line == "EndGlobalSection":
				return fail(i, "unexpected EndGlobalSection")
			}

		case stateGlobalSection:
			switch {
			case line == "EndGlobalSection":
				if section == startupSection {
					s.sectionEnd = i
				}
				state = stateGlobal
			case line == "EndGlobal", strings.HasPrefix(line, "GlobalSection("):
				return fail(i, "missing EndGlobalSection for section %q", section)
			case section == startupSection && line != "":
				m := keyValue.FindStringSubmatch(line)
				if m == nil || m[1] != startupKey {
					continue
				}
				if s.valueIdx >= 0 {
					return fail(i, "duplicate %s entry", startupKey)
				}
				id, err := parseGUID(m[2])
				if err != nil {
					return fail(i, "invalid %s value: %v", startupKey, err)
				}
				s.valueIdx = i
				s.startupGUID = id
			}
		}
	}

	if !header {
		return &ParseError{Message: "missing solution file header"}
	}

	last := len(s.lines) - 1
	switch state {
	case stateProject:
		return fail(last, "unexpected end of file: missing EndProject for project %q", current.Name)
	case stateProjectSection:
		return fail(last, "unexpected end of file: missing EndProjectSection in project %q", current.Name)
	case stateGlobal:
		return fail(last, "unexpected end of file: missing EndGlobal")
	case stateGlobalSection:
		return fail(last, "unexpected end of file: missing EndGlobalSection for section %q", section)
	}

	return nil
}

// parseProject parses a Project("{type}") = "Name", "Path", "{guid}" line.
func parseProject(line string) (*Project, error) {
	m := projectLine.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("malformed Project line")
	}
	typ, err := parseGUID(m[1])
	if err != nil {
		return nil, fmt.Errorf("invalid project type GUID: %w", err)
	}
	id, err := parseGUID(m[4])
	if err != nil {
		return nil, fmt.Errorf("invalid project GUID: %w", err)
	}
	if m[2] == "" {
		return nil, fmt.Errorf("project has an empty name")
	}
	return &Project{Type: typ, Name: m[2], Path: m[3], GUID: id}, nil
}

// parseGUID accepts the braced form solution files use.
func parseGUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return uuid.Nil, fmt.Errorf("%q is not a braced GUID", s)
	}
	return uuid.Parse(s)
}

// formatGUID writes a GUID in upper case with braces.
func formatGUID(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// buildable returns the projects that can be designated as startup project.
func (s *Solution) buildable() []*Project {
	var out []*Project
	for _, p := range s.Projects {
		if !p.IsFolder() {
			out = append(out, p)
		}
	}
	return out
}

// FindProject resolves an identifier to a project. The identifier may be a
// braced project GUID or a project name. Exact name matches win; otherwise
// a single case-insensitive match is accepted.
func (s *Solution) FindProject(id string) (*Project, error) {
	candidates := s.buildable()

	if g, err := parseGUID(id); err == nil {
		for _, p := range candidates {
			if p.GUID == g {
				return p, nil
			}
		}
		return nil, &UnknownProjectError{Project: id}
	}

	var exact, folded []*Project
	for _, p := range candidates {
		switch {
		case p.Name == id:
			exact = append(exact, p)
		case strings.EqualFold(p.Name, id):
			folded = append(folded, p)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = folded
	}
	switch len(matches) {
	case 0:
		return nil, &UnknownProjectError{Project: id}
	case 1:
		return matches[0], nil
	}

	names := make([]string, 0, len(matches))
	for _, p := range matches {
		names = append(names, p.Name+" "+p.GUIDString())
	}
	return nil, &UnknownProjectError{Project: id, Ambiguous: names}
}

// StartupProject returns the designated startup project under the given
// strategy, or nil when the solution has no buildable project. With
// StrategySection an explicit StartupProject section wins; otherwise the
// first buildable project is the startup project, which is also what
// Visual Studio falls back to.
func (s *Solution) StartupProject(strategy Strategy) *Project {
	if strategy == StrategySection && s.valueIdx >= 0 {
		for _, p := range s.buildable() {
			if p.GUID == s.startupGUID {
				return p
			}
		}
		return nil
	}
	if b := s.buildable(); len(b) > 0 {
		return b[0]
	}
	return nil
}

// SetStartup makes target the startup project and reports whether the
// file content changed. Setting the current startup project is a no-op.
func (s *Solution) SetStartup(target *Project, strategy Strategy) (bool, error) {
	if cur := s.StartupProject(strategy); cur != nil && cur.GUID == target.GUID {
		return false, nil
	}

	switch strategy {
	case StrategySection:
		s.writeSection(target)
	case StrategyFirstProject:
		s.moveFirst(target)
	default:
		return false, fmt.Errorf("unknown strategy %q", strategy)
	}

	if err := s.index(); err != nil {
		return false, fmt.Errorf("rewritten solution no longer parses: %w", err)
	}
	return true, nil
}

// writeSection rewrites or inserts the StartupProject section.
func (s *Solution) writeSection(target *Project) {
	nl := s.newline()
	value := startupKey + " = " + target.GUIDString()

	if s.valueIdx >= 0 {
		old := s.lines[s.valueIdx]
		s.lines[s.valueIdx] = indentation(old) + value + terminator(old)
		return
	}

	indent := s.firstIndent
	if indent == "" {
		indent = "\t"
	}

	if s.sectionIdx >= 0 {
		s.insert(s.sectionEnd, indent+"\t"+value+nl)
		return
	}

	block := []string{
		indent + "GlobalSection(" + startupSection + ") = preSolution" + nl,
		indent + "\t" + value + nl,
		indent + "EndGlobalSection" + nl,
	}

	if s.globalEnd >= 0 {
		s.insert(s.globalEnd, block...)
		return
	}

	s.terminateLast(nl)
	s.lines = append(s.lines, "Global"+nl)
	s.lines = append(s.lines, block...)
	s.lines = append(s.lines, "EndGlobal"+nl)
}

// moveFirst moves the target's Project ... EndProject block ahead of every
// other project entry.
func (s *Solution) moveFirst(target *Project) {
	slot := s.Projects[0].start
	block := append([]string(nil), s.lines[target.start:target.end+1]...)

	// An unterminated block ends the file; the new final line takes over
	// the missing newline once the block has moved.
	last := len(block) - 1
	unterminated := terminator(block[last]) == ""
	if unterminated {
		block[last] += s.newline()
	}

	rest := make([]string, 0, len(s.lines))
	rest = append(rest, s.lines[:slot]...)
	rest = append(rest, block...)
	rest = append(rest, s.lines[slot:target.start]...)
	rest = append(rest, s.lines[target.end+1:]...)
	s.lines = rest

	if unterminated {
		end := len(s.lines) - 1
		s.lines[end] = strings.TrimRight(s.lines[end], "\r\n")
	}
}

// insert places lines before index i.
func (s *Solution) insert(i int, lines ...string) {
	out := make([]string, 0, len(s.lines)+len(lines))
	out = append(out, s.lines[:i]...)
	out = append(out, lines...)
	out = append(out, s.lines[i:]...)
	s.lines = out
}

// terminateLast makes sure the final line ends with a newline before
// appending after it.
func (s *Solution) terminateLast(nl string) {
	if n := len(s.lines); n > 0 && terminator(s.lines[n-1]) == "" {
		s.lines[n-1] += nl
	}
}
