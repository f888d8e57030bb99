package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pharmakit/icontint/internal/icons"
	"github.com/pharmakit/icontint/internal/manifest"
)

var (
	iconNameStyle = lipgloss.NewStyle().Bold(true).Width(12)
	roleStyle     = lipgloss.NewStyle().Faint(true)
)

func newIconsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List available icons and their color slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := icons.New()
			m, err := loadManifest(root, store)
			if err != nil {
				return err
			}

			for _, key := range store.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), iconLine(key, m))
			}
			return nil
		},
	}

	return cmd
}

func iconLine(key string, m *manifest.Manifest) string {
	var parts []string
	parts = append(parts, iconNameStyle.Render(key))

	icon, ok := m.Icon(key)
	if !ok {
		parts = append(parts, roleStyle.Render("(not in manifest)"))
		return strings.Join(parts, " ")
	}

	for _, role := range manifest.RoleOrder {
		slot, has := icon.Slot(role)
		if !has {
			continue
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(slot.DefaultColor)).
			Render("  ")
		parts = append(parts, fmt.Sprintf("%s %s %s",
			roleStyle.Render(role), swatch, slot.DefaultColor))
	}

	return strings.Join(parts, " ")
}
