package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata a controller exposes for its subcommand.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI entry point bound to one subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}

// FlagBinder is implemented by controllers that register subcommand-specific flags.
type FlagBinder interface {
	AddFlags(cmd *cobra.Command)
}
