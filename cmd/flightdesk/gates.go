package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/flightdesk/internal/application/handlers"
	"github.com/ersonp/flightdesk/internal/domain/entities"
)

type gateFlags struct {
	code    string
	airport string
}

func newGatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gates",
		Short: "Manage gates",
	}

	cmd.AddCommand(
		newGatesListCmd(),
		newGatesCreateCmd(),
		newGatesUpdateCmd(),
		newGatesDeleteCmd(),
	)

	return cmd
}

func newGatesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all gates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(func(d *Deps) error {
				gates, err := d.Gates.HandleList(cmd.Context())
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				if len(gates) == 0 {
					fmt.Fprintln(w, "No gates found.")
					return nil
				}

				writeGateTable(w, gates)
				return nil
			})
		},
	}
}

func addGateFlags(cmd *cobra.Command, flags *gateFlags) {
	cmd.Flags().StringVar(&flags.code, "code", "", "Gate code")
	cmd.Flags().StringVar(&flags.airport, "airport", "", "Airport id the gate belongs to")
}

func newGatesCreateCmd() *cobra.Command {
	var flags gateFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a gate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := entities.GateInput{
				Code:    flags.code,
				Airport: entities.Ref{ID: entities.ParseID(flags.airport)},
			}

			return withDeps(func(d *Deps) error {
				id, err := d.Gates.HandleCreate(cmd.Context(), in)
				if err != nil {
					return err
				}
				printCreated(cmd, "gate", id)
				return nil
			})
		},
	}

	addGateFlags(cmd, &flags)

	return cmd
}

func newGatesUpdateCmd() *cobra.Command {
	var flags gateFlags

	cmd := &cobra.Command{
		Use:   "update <gate-id>",
		Short: "Update a gate",
		Long:  "Updates a gate. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := entities.ParseID(args[0])

			var patch handlers.GatePatch
			if cmd.Flags().Changed("code") {
				patch.Code = &flags.code
			}
			if cmd.Flags().Changed("airport") {
				patch.AirportID = idPtr(flags.airport)
			}

			return withDeps(func(d *Deps) error {
				if err := d.Gates.HandleUpdate(cmd.Context(), id, patch); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated gate %s\n", id)
				return nil
			})
		},
	}

	addGateFlags(cmd, &flags)

	return cmd
}

func newGatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <gate-id>",
		Short: "Delete a gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := entities.ParseID(args[0])

			return withDeps(func(d *Deps) error {
				if err := d.Gates.HandleDelete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted gate %s\n", id)
				return nil
			})
		},
	}
}
