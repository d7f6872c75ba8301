package sln

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	guidA = "{11111111-1111-1111-1111-111111111111}"
	guidB = "{22222222-2222-2222-2222-222222222222}"
	guidC = "{33333333-3333-3333-3333-333333333333}"
	guidF = "{44444444-4444-4444-4444-444444444444}"
)

// Pieces of a typical solution file, LF-terminated. sampleSolution joins
// them in order: projects A, B and C after a solution folder, so A is the
// implicit startup project.
var (
	solutionHeader = `
Microsoft Visual Studio Solution File, Format Version 12.00
# Visual Studio Version 17
VisualStudioVersion = 17.8.34330.188
MinimumVisualStudioVersion = 10.0.40219.1
`
	folderBlock = `Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Solution Items", "Solution Items", "` + guidF + `"
	ProjectSection(SolutionItems) = preProject
		README.md = README.md
	EndProjectSection
EndProject
`
	blockA = `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "A", "src\A\A.csproj", "` + guidA + `"
EndProject
`
	blockB = `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "B", "src\B\B.csproj", "` + guidB + `"
	ProjectSection(ProjectDependencies) = postProject
		` + guidA + ` = ` + guidA + `
	EndProjectSection
EndProject
`
	blockC = `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "C", "src\C\C.csproj", "` + guidC + `"
EndProject
`
	globalSections = `	GlobalSection(SolutionConfigurationPlatforms) = preSolution
		Debug|Any CPU = Debug|Any CPU
		Release|Any CPU = Release|Any CPU
	EndGlobalSection
	GlobalSection(ProjectConfigurationPlatforms) = postSolution
		` + guidA + `.Debug|Any CPU.ActiveCfg = Debug|Any CPU
		` + guidB + `.Debug|Any CPU.ActiveCfg = Debug|Any CPU
		` + guidC + `.Debug|Any CPU.ActiveCfg = Debug|Any CPU
	EndGlobalSection
	GlobalSection(SolutionProperties) = preSolution
		HideSolutionNode = FALSE
	EndGlobalSection
`
	sampleSolution = crlf(solutionHeader + folderBlock + blockA + blockB + blockC +
		"Global\n" + globalSections + "EndGlobal\n")
)

// startupSectionFor returns the LF-terminated section designating guid.
func startupSectionFor(guid string) string {
	return "\tGlobalSection(StartupProject) = preSolution\n" +
		"\t\tStartupProject = " + guid + "\n" +
		"\tEndGlobalSection\n"
}

// crlf converts LF line endings to CRLF, the way Visual Studio writes files.
func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// writeSolution writes content to a temp solution file and returns its path.
func writeSolution(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "App.sln")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readFile returns the content of path as a string.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
