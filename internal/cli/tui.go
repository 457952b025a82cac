package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/porcus/pkg/piglatin"
)

// =============================================================================
// previewModel - Live Transform Preview
// =============================================================================

// previewModel is the bubbletea model for the interactive mode: a single
// line of input with its pig latin rendered underneath on every keystroke.
type previewModel struct {
	transformer *piglatin.Transformer
	input       []rune
}

// newPreviewModel creates a preview model bound to a transformer.
func newPreviewModel(t *piglatin.Transformer) previewModel {
	return previewModel{transformer: t}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyTab:
		m.input = append(m.input, '\t')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Porcus Live Preview"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("type to transform  ⏎ clear  esc quit"))
	b.WriteString("\n\n")

	if len(m.input) == 0 {
		b.WriteString(styleDim.Render("…"))
		b.WriteString("\n")
		b.WriteString(styleDim.Render("…"))
		b.WriteString("\n")
		return b.String()
	}

	line := string(m.input)
	b.WriteString(styleInput.Render(line))
	b.WriteString("\n")
	b.WriteString(styleOutput.Render(m.transformer.Transform(line)))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the interactive live-preview command. It takes the
// same suffix flags as the root command.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		consonantSuffix string
		vowelSuffix     string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Preview transformations interactively",
		Long: `Opens a terminal UI that shows the pig latin equivalent of a line of
text as you type it. Press enter to clear the line and escape to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := piglatin.New(consonantSuffix, vowelSuffix)
			c.Logger.Debug("starting interactive preview")
			p := tea.NewProgram(newPreviewModel(t), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&consonantSuffix, "consonant", "c", piglatin.DefaultConsonantSuffix,
		"suffix for words starting with a consonant")
	cmd.Flags().StringVarP(&vowelSuffix, "vowel", "v", piglatin.DefaultVowelSuffix,
		"suffix for words starting with a vowel")

	return cmd
}
