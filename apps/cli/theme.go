package main

import (
	"github.com/spf13/cobra"

	"github.com/prachishaw/ClassCapsule/apps"
	"github.com/prachishaw/ClassCapsule/core/theme"
)

func (cli *commandLine) addThemeCommand(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [toggle|dark|light]",
		Short: "Print or change the theme",
		Example: `
classcapsule theme
classcapsule theme toggle
classcapsule theme dark
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"toggle", theme.Dark, theme.Light},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				switch arg := args[0]; arg {
				case "toggle":
					cli.theme.Toggle()
				default:
					dark, ok := theme.Parse(arg)
					if !ok {
						return apps.NewArgumentErrorf("invalid theme %q, expected toggle, dark or light", arg)
					}
					cli.theme.Set(dark)
				}
			}
			cli.printf("Theme: %s\n", cli.theme.Name())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
