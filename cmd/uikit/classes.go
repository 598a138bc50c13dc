package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vangoframework/uikit/app/components/ui"
)

func newClassesCmd() *cobra.Command {
	var variant, size, className string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the class string for a button variant and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.ButtonVariants(ui.ButtonVariantsConfig{
				Variant:   ui.ButtonVariant(variant),
				Size:      ui.ButtonSize(size),
				ClassName: className,
			}))
			return err
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "button variant (default, destructive, outline, secondary, ghost, link)")
	cmd.Flags().StringVar(&size, "size", "", "button size (default, sm, lg, icon)")
	cmd.Flags().StringVar(&className, "class", "", "extra classes appended verbatim")
	return cmd
}

func newCNCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cn [class...]",
		Short: "Join class arguments, skipping empty ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.CN(args...))
			return err
		},
	}
}
