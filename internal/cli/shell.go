package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chintanlad10/cubesolver"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive solver shell",
	Long: `Start an interactive shell: type a scramble (or a 54-character
state string) and get the staged and optimized solutions, with the
scrambled cube rendered alongside.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newShellModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}

var (
	shellTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	shellPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	shellSolutionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	shellErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	shellHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// shellModel is the bubbletea model for the interactive shell.
type shellModel struct {
	input     string
	cubeView  string
	solution  string
	optimized string
	errText   string
	quitting  bool
}

func newShellModel() *shellModel {
	return &shellModel{}
}

func (m *shellModel) Init() tea.Cmd {
	return nil
}

func (m *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

// submit solves the scramble or state currently in the input line.
func (m *shellModel) submit() {
	input := strings.TrimSpace(m.input)
	m.input = ""
	m.solution = ""
	m.optimized = ""
	m.errText = ""

	cube := cubesolver.NewCube()
	if len(input) == 54 && !strings.ContainsRune(input, ' ') {
		cube.CopyState(input)
	} else if len(cube.ReadMoves(input)) == 0 {
		m.errText = "no moves recognised"
		m.cubeView = ""
		return
	}

	scrambled := cubesolver.NewCube()
	scrambled.CopyState(cube.StateString())
	m.cubeView = renderCube(scrambled)

	solution := cubesolver.Solve(cube)
	if !cube.IsSolved() {
		m.errText = "state is not solvable"
		return
	}

	m.solution = cubesolver.FormatSolution(solution)
	m.optimized = cubesolver.SolutionToString(cubesolver.CleanSolution(solution, true))
}

func (m *shellModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(shellTitleStyle.Render("cubesolver shell"))
	sb.WriteString("\n\n")
	sb.WriteString(shellPromptStyle.Render("scramble> "))
	sb.WriteString(m.input)
	sb.WriteString("\n\n")

	if m.errText != "" {
		sb.WriteString(shellErrorStyle.Render(m.errText))
		sb.WriteString("\n")
	} else if m.solution != "" {
		sb.WriteString(m.cubeView)
		sb.WriteString("\n")
		sb.WriteString(shellSolutionStyle.Render(strings.TrimRight(m.solution, "\n")))
		sb.WriteString("\n\n")
		sb.WriteString(shellSolutionStyle.Render("optimized: " + m.optimized))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(shellHelpStyle.Render("enter: solve | esc: quit"))
	sb.WriteString("\n")
	return sb.String()
}
