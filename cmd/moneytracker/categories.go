package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"moneytracker/internal/cli"
	"moneytracker/internal/model"
	"moneytracker/internal/rules"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, inspect, add, update, and delete income and expense categories.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(getCategoryCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchCategories(ctx); err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}

			snap := st.Categories().Snapshot()
			if len(snap.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma categoria cadastrada. Use 'moneytracker categories add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Nome"),
				cli.HeaderStyle.Render("Tipo"),
				cli.HeaderStyle.Render("Descrição"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 40))

			for _, c := range snap.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					c.ID, c.Name, typeLabel(c.Type), c.Description)
			}
			return nil
		},
	}
}

func getCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchCategoryByID(ctx, args[0]); err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}

			c := st.Categories().Snapshot().Selected
			if c == nil {
				return fmt.Errorf("category %q not loaded", args[0])
			}

			fmt.Println(cli.TitleStyle.Render(c.Name))
			fmt.Printf("ID:         %s\n", c.ID)
			fmt.Printf("Tipo:       %s\n", c.Type.Label())
			fmt.Printf("Descrição:  %s\n", c.Description)
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		name        string
		description string
		typeFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new category",
		Long:  `Create a category. The description is limited to 400 characters and the type must be income or expense.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			errs := rules.FieldErrors{}
			if strings.TrimSpace(name) == "" {
				errs.Check("name", rules.Invalid("Nome é obrigatório"))
			}
			errs.Check("description", rules.ValidateCategoryDescription(description))

			catType, parseErr := model.ParseTransactionType(typeFlag)
			if parseErr != nil {
				errs.Check("type", rules.Invalid("Tipo deve ser \"income\" ou \"expense\""))
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			st, err := newStore()
			if err != nil {
				return err
			}
			dto := model.CreateCategoryDTO{Name: name, Description: description, Type: catType}
			if err := st.CreateCategory(ctx, dto); err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}

			printSuccess(st.Categories().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&description, "description", "", "category description (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "category type: income or expense (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name        string
		description string
		typeFlag    string
		partial     bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long:  `Update a category. With --partial only the given flags are sent (PATCH); otherwise a full replace (PUT) is issued.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var dto model.UpdateCategoryDTO
			errs := rules.FieldErrors{}

			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					errs.Check("name", rules.Invalid("Nome é obrigatório"))
				}
				dto.Name = &name
			}
			if cmd.Flags().Changed("description") {
				errs.Check("description", rules.ValidateCategoryDescription(description))
				dto.Description = &description
			}
			if cmd.Flags().Changed("type") {
				catType, parseErr := model.ParseTransactionType(typeFlag)
				if parseErr != nil {
					errs.Check("type", rules.Invalid("Tipo deve ser \"income\" ou \"expense\""))
				} else {
					dto.Type = &catType
				}
			}
			if dto.Name == nil && dto.Description == nil && dto.Type == nil && errs.OK() {
				return fmt.Errorf("nothing to update: pass --name, --description and/or --type")
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			st, err := newStore()
			if err != nil {
				return err
			}

			if partial {
				err = st.PartialUpdateCategory(ctx, args[0], dto)
			} else {
				err = st.UpdateCategory(ctx, args[0], dto)
			}
			if err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}

			printSuccess(st.Categories().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&typeFlag, "type", "", "new type: income or expense")
	cmd.Flags().BoolVar(&partial, "partial", false, "send a PATCH with only the given fields")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long:  `Delete a category. Existing transactions keep their category reference; reports simply skip it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.DeleteCategory(ctx, args[0]); err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}

			printSuccess(st.Categories().Snapshot().Success)
			return nil
		},
	}
}

// typeLabel renders a colored Receita/Despesa tag.
func typeLabel(t model.TransactionType) string {
	if t == model.TypeIncome {
		return cli.IncomeStyle.Render(t.Label())
	}
	return cli.ExpenseStyle.Render(t.Label())
}
