package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"moneytracker/internal/cli"
	"moneytracker/internal/model"
	"moneytracker/internal/rules"
	"moneytracker/internal/store"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, inspect, add, update, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(getTransactionCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(updateTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchTransactions(ctx); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}
			// Best effort: names stay blank if these fetches fail.
			_ = st.FetchPeople(ctx)
			_ = st.FetchCategories(ctx)
			st.PopulateDisplayNames()

			snap := st.Transactions().Snapshot()
			if len(snap.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma transação cadastrada. Use 'moneytracker transactions add'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Data"),
				cli.HeaderStyle.Render("Pessoa"),
				cli.HeaderStyle.Render("Categoria"),
				cli.HeaderStyle.Render("Tipo"),
				cli.HeaderStyle.Render("Valor"),
				cli.HeaderStyle.Render("Descrição"))

			for _, tx := range snap.Items {
				personName := tx.PersonName
				if personName == "" {
					personName = cli.SubtleStyle.Render(tx.PersonID)
				}
				categoryName := tx.CategoryName
				if categoryName == "" {
					categoryName = cli.SubtleStyle.Render(tx.CategoryID)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID,
					cli.FormatDate(tx.Date.Time),
					personName,
					categoryName,
					typeLabel(tx.Type),
					amountLabel(tx.Type, tx.Amount),
					tx.Description)
			}
			return nil
		},
	}
}

func getTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchTransactionByID(ctx, args[0]); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			tx := st.Transactions().Snapshot().Selected
			if tx == nil {
				return fmt.Errorf("transaction %q not loaded", args[0])
			}

			fmt.Println(cli.TitleStyle.Render(tx.Description))
			fmt.Printf("ID:         %s\n", tx.ID)
			fmt.Printf("Data:       %s\n", cli.FormatDate(tx.Date.Time))
			fmt.Printf("Pessoa:     %s\n", tx.PersonID)
			fmt.Printf("Categoria:  %s\n", tx.CategoryID)
			fmt.Printf("Tipo:       %s\n", tx.Type.Label())
			fmt.Printf("Valor:      %s\n", cli.FormatCurrency(tx.Amount))
			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		personID    string
		categoryID  string
		description string
		dateFlag    string
		typeFlag    string
		amount      float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Create a transaction. The amount must be positive, the category type
must match the transaction type, and a person under 18 may only
register expenses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			errs := rules.FieldErrors{}
			errs.Check("amount", rules.ValidateTransactionAmount(amount))
			if strings.TrimSpace(description) == "" {
				errs.Check("description", rules.Invalid("Descrição é obrigatória"))
			}

			txType, parseErr := model.ParseTransactionType(typeFlag)
			if parseErr != nil {
				errs.Check("type", rules.Invalid("Tipo deve ser \"income\" ou \"expense\""))
			}

			date := model.DateOf(now)
			if dateFlag != "" {
				parsed, dateErr := model.ParseDate(dateFlag)
				if dateErr != nil {
					errs.Check("date", rules.Invalid("Data inválida (use YYYY-MM-DD)"))
				} else {
					date = parsed
				}
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			st, err := newStore()
			if err != nil {
				return err
			}

			// Business rules against the referenced entities.
			if err := checkTransactionRules(ctx, st, personID, categoryID, txType, now, errs); err != nil {
				return err
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			dto := model.CreateTransactionDTO{
				PersonID:    personID,
				CategoryID:  categoryID,
				Description: description,
				Date:        date,
				Type:        txType,
				Amount:      amount,
			}
			if err := st.CreateTransaction(ctx, dto); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			printSuccess(st.Transactions().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&personID, "person-id", "", "owning person id (required)")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "category id (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount, must be positive (required)")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "transaction type: income or expense (required)")
	_ = cmd.MarkFlagRequired("person-id")
	_ = cmd.MarkFlagRequired("category-id")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func updateTransactionCmd() *cobra.Command {
	var (
		personID    string
		categoryID  string
		description string
		dateFlag    string
		typeFlag    string
		amount      float64
		partial     bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Long: `Update a transaction. With --partial only the given flags are sent
(PATCH); otherwise a full replace (PUT) is issued. Type, category and
minor rules are re-checked against the resulting state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			var dto model.UpdateTransactionDTO
			errs := rules.FieldErrors{}

			if cmd.Flags().Changed("amount") {
				errs.Check("amount", rules.ValidateTransactionAmount(amount))
				dto.Amount = &amount
			}
			if cmd.Flags().Changed("description") {
				if strings.TrimSpace(description) == "" {
					errs.Check("description", rules.Invalid("Descrição é obrigatória"))
				}
				dto.Description = &description
			}
			if cmd.Flags().Changed("date") {
				parsed, dateErr := model.ParseDate(dateFlag)
				if dateErr != nil {
					errs.Check("date", rules.Invalid("Data inválida (use YYYY-MM-DD)"))
				} else {
					dto.Date = &parsed
				}
			}
			if cmd.Flags().Changed("type") {
				txType, parseErr := model.ParseTransactionType(typeFlag)
				if parseErr != nil {
					errs.Check("type", rules.Invalid("Tipo deve ser \"income\" ou \"expense\""))
				} else {
					dto.Type = &txType
				}
			}
			if cmd.Flags().Changed("person-id") {
				dto.PersonID = &personID
			}
			if cmd.Flags().Changed("category-id") {
				dto.CategoryID = &categoryID
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}
			if dto == (model.UpdateTransactionDTO{}) {
				return fmt.Errorf("nothing to update")
			}

			st, err := newStore()
			if err != nil {
				return err
			}

			// Resolve the effective person/category/type after the update
			// and re-check the cross-entity rules.
			if err := st.FetchTransactionByID(ctx, args[0]); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}
			current := st.Transactions().Snapshot().Selected
			if current == nil {
				return fmt.Errorf("transaction %q not loaded", args[0])
			}

			effectivePerson := current.PersonID
			if dto.PersonID != nil {
				effectivePerson = *dto.PersonID
			}
			effectiveCategory := current.CategoryID
			if dto.CategoryID != nil {
				effectiveCategory = *dto.CategoryID
			}
			effectiveType := current.Type
			if dto.Type != nil {
				effectiveType = *dto.Type
			}

			if err := checkTransactionRules(ctx, st, effectivePerson, effectiveCategory, effectiveType, now, errs); err != nil {
				return err
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			if partial {
				err = st.PartialUpdateTransaction(ctx, args[0], dto)
			} else {
				err = st.UpdateTransaction(ctx, args[0], dto)
			}
			if err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			printSuccess(st.Transactions().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&personID, "person-id", "", "new owning person id")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "new category id")
	cmd.Flags().Float64Var(&amount, "amount", 0, "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&typeFlag, "type", "", "new type: income or expense")
	cmd.Flags().BoolVar(&partial, "partial", false, "send a PATCH with only the given fields")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.DeleteTransaction(ctx, args[0]); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			printSuccess(st.Transactions().Snapshot().Success)
			return nil
		},
	}
}

// checkTransactionRules fetches the referenced person and category and
// records the category-type and minor rules into errs. A fetch failure
// is returned as its own error since the rules cannot be evaluated
// without the referenced entities.
func checkTransactionRules(ctx context.Context, st *store.Store, personID, categoryID string, txType model.TransactionType, now time.Time, errs rules.FieldErrors) error {
	if err := st.FetchCategoryByID(ctx, categoryID); err != nil {
		return storeFailure(err, st.Categories().Snapshot().Error)
	}
	category := st.Categories().Snapshot().Selected
	if category != nil {
		errs.Check("categoryId", rules.ValidateCategoryType(txType, category.Type))
	}

	if err := st.FetchPersonByID(ctx, personID); err != nil {
		return storeFailure(err, st.People().Snapshot().Error)
	}
	person := st.People().Snapshot().Selected
	if person != nil {
		errs.Check("type", rules.ValidateMinorTransaction(person.BirthDate.Time, now, txType))
	}
	return nil
}

// amountLabel colors an amount by direction.
func amountLabel(t model.TransactionType, amount float64) string {
	formatted := cli.FormatCurrency(amount)
	if t == model.TypeIncome {
		return cli.IncomeStyle.Render(formatted)
	}
	return cli.ExpenseStyle.Render(formatted)
}
