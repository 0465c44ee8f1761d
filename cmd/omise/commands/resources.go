package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/omise-client/internal/constants"
	"github.com/fivetwenty-io/omise-client/pkg/omise"
)

// resourceCommand describes a command group built from a resource kind.
// Subcommands follow the operations and actions the kind declares.
type resourceCommand struct {
	use     string
	aliases []string
	short   string
	long    string
	kind    *omise.Kind
	columns []string
	// updatable and deletable add instance commands beyond the kind's
	// class operations.
	updatable bool
	deletable bool
	// resources returns the handle for the kind, e.g. scoped to a customer.
	resources func(client *omise.Client) *omise.Resources
	// beforeCreate may check configuration or complete params.
	beforeCreate func(cmd *cobra.Command, params omise.Params) error
}

func (r *resourceCommand) handle(client *omise.Client) *omise.Resources {
	if r.resources != nil {
		return r.resources(client)
	}

	return client.Resources(r.kind, nil)
}

// build creates the command group. A singleton kind becomes a single command
// that retrieves the resource.
func (r *resourceCommand) build() *cobra.Command {
	cmd := &cobra.Command{
		Use:     r.use,
		Aliases: r.aliases,
		Short:   r.short,
		Long:    r.long,
	}

	if r.kind.Singleton {
		cmd.Args = cobra.NoArgs
		cmd.RunE = func(cmd *cobra.Command, _ []string) error {
			return r.runGet(cmd, "")
		}

		return cmd
	}

	if r.kind.Supports(omise.OpList) {
		cmd.AddCommand(r.newListCommand())
	}

	if r.kind.Supports(omise.OpRetrieve) {
		cmd.AddCommand(r.newGetCommand())
	}

	if r.kind.Supports(omise.OpCreate) {
		cmd.AddCommand(r.newCreateCommand())
	}

	if r.updatable {
		cmd.AddCommand(r.newUpdateCommand())
	}

	if r.deletable {
		cmd.AddCommand(r.newDeleteCommand())
	}

	for _, name := range sortedKeys(r.kind.Actions) {
		cmd.AddCommand(r.newActionCommand(name))
	}

	return cmd
}

func (r *resourceCommand) newListCommand() *cobra.Command {
	var (
		flags    listFlags
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + r.use,
		Long:  "List " + r.use + " one page at a time, newest pages last unless --order says otherwise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}

			return r.runList(cmd, opts, allPages)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func (r *resourceCommand) runList(cmd *cobra.Command, opts *omise.ListOptions, allPages bool) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	page, err := r.handle(client).List(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", r.use, err)
	}

	for {
		if err := renderCollection(cmd, page, r.columns); err != nil {
			return err
		}

		if !allPages || !page.HasMore() {
			return nil
		}

		page, err = page.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch next page of %s: %w", r.use, err)
		}
	}
}

func (r *resourceCommand) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get " + r.kind.Object + " details",
		Long:  "Display every attribute of a " + r.kind.Object,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runGet(cmd, args[0])
		},
	}
}

func (r *resourceCommand) runGet(cmd *cobra.Command, id string) error {
	if err := validateOutputFormat(); err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	result, err := r.handle(client).RetrieveAny(commandContext(cmd), id)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", r.kind.Object, err)
	}

	switch res := result.(type) {
	case *omise.Object:
		return renderObject(cmd, res)
	case *omise.Collection:
		return renderCollection(cmd, res, r.columns)
	default:
		return fmt.Errorf("%w: %T", constants.ErrUnexpectedResult, result)
	}
}

func (r *resourceCommand) newCreateCommand() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a " + r.kind.Object,
		Long:  "Create a " + r.kind.Object + " from --param key=value pairs. Dotted keys build groups.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := parseParams(pairs)
			if err != nil {
				return err
			}

			if r.beforeCreate != nil {
				if err := r.beforeCreate(cmd, params); err != nil {
					return err
				}
			}

			if err := validateOutputFormat(); err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			obj, err := r.handle(client).Create(commandContext(cmd), params)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", r.kind.Object, err)
			}

			return renderObject(cmd, obj)
		},
	}

	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "request parameter as key=value (repeatable)")

	return cmd
}

func (r *resourceCommand) newUpdateCommand() *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a " + r.kind.Object,
		Long:  "Change attributes of a " + r.kind.Object + ". Only the given parameters are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(pairs)
			if err != nil {
				return err
			}

			if len(params) == 0 {
				return constants.ErrNothingToUpdate
			}

			obj, err := r.retrieve(cmd, args[0])
			if err != nil {
				return err
			}

			for _, name := range sortedKeys(params) {
				obj.Set(name, params[name])
			}

			if err := obj.Update(commandContext(cmd)); err != nil {
				return fmt.Errorf("failed to update %s: %w", r.kind.Object, err)
			}

			return renderObject(cmd, obj)
		},
	}

	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "attribute to change as key=value (repeatable)")

	return cmd
}

func (r *resourceCommand) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a " + r.kind.Object,
		Long:  "Delete a " + r.kind.Object + " and display the server's confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := r.retrieve(cmd, args[0])
			if err != nil {
				return err
			}

			if err := obj.Destroy(commandContext(cmd)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", r.kind.Object, err)
			}

			return renderObject(cmd, obj)
		},
	}
}

func (r *resourceCommand) newActionCommand(name string) *cobra.Command {
	var pairs []string

	cmd := &cobra.Command{
		Use:   name + " ID",
		Short: "Run " + name + " on a " + r.kind.Object,
		Long:  "Run the " + name + " action on a " + r.kind.Object + " and display the updated resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(pairs)
			if err != nil {
				return err
			}

			obj, err := r.retrieve(cmd, args[0])
			if err != nil {
				return err
			}

			if err := obj.Perform(commandContext(cmd), name, params); err != nil {
				return fmt.Errorf("failed to %s %s: %w", name, r.kind.Object, err)
			}

			return renderObject(cmd, obj)
		},
	}

	cmd.Flags().StringArrayVarP(&pairs, "param", "p", nil, "action parameter as key=value (repeatable)")

	return cmd
}

func (r *resourceCommand) retrieve(cmd *cobra.Command, id string) (*omise.Object, error) {
	if err := validateOutputFormat(); err != nil {
		return nil, err
	}

	client, err := createClient()
	if err != nil {
		return nil, err
	}

	obj, err := r.handle(client).Retrieve(commandContext(cmd), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.kind.Object, err)
	}

	return obj, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
