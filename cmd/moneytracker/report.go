package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"moneytracker/internal/cli"
	"moneytracker/internal/report"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute financial reports",
		Long:  `Compute the general (per-person) and per-category reports from the current data.`,
	}

	cmd.AddCommand(generalReportCmd())
	cmd.AddCommand(categoryReportCmd())

	return cmd
}

func generalReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "general",
		Short: "Totals per person and overall balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchPeople(ctx); err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}
			if err := st.FetchTransactions(ctx); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			general := report.ComputeGeneralReport(
				st.People().Snapshot().Items,
				st.Transactions().Snapshot().Items)

			fmt.Println(cli.TitleStyle.Render("Relatório Geral"))

			if len(general.PeopleReports) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma pessoa cadastrada."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Pessoa"),
				cli.HeaderStyle.Render("Receitas"),
				cli.HeaderStyle.Render("Despesas"),
				cli.HeaderStyle.Render("Saldo"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 24),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12))

			for _, r := range general.PeopleReports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					r.PersonName,
					cli.IncomeStyle.Render(cli.FormatCurrency(r.TotalIncome)),
					cli.ExpenseStyle.Render(cli.FormatCurrency(r.TotalExpense)),
					balanceLabel(r.Balance))
			}
			_ = w.Flush()

			fmt.Println()
			fmt.Printf("Receitas totais:  %s\n", cli.IncomeStyle.Render(cli.FormatCurrency(general.TotalIncome)))
			fmt.Printf("Despesas totais:  %s\n", cli.ExpenseStyle.Render(cli.FormatCurrency(general.TotalExpense)))
			fmt.Printf("Saldo líquido:    %s\n", balanceLabel(general.NetBalance))
			return nil
		},
	}
}

func categoryReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Totals per category",
		Long:  `Total amount and transaction count per category. Categories without transactions are omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchCategories(ctx); err != nil {
				return storeFailure(err, st.Categories().Snapshot().Error)
			}
			if err := st.FetchTransactions(ctx); err != nil {
				return storeFailure(err, st.Transactions().Snapshot().Error)
			}

			reports := report.ComputeCategoryReports(
				st.Categories().Snapshot().Items,
				st.Transactions().Snapshot().Items)

			fmt.Println(cli.TitleStyle.Render("Relatório por Categoria"))

			if len(reports) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma categoria com transações."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Categoria"),
				cli.HeaderStyle.Render("Tipo"),
				cli.HeaderStyle.Render("Total"),
				cli.HeaderStyle.Render("Transações"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 24),
				strings.Repeat("-", 8),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					r.CategoryName,
					typeLabel(r.Type),
					amountLabel(r.Type, r.Total),
					r.TransactionCount)
			}
			return nil
		},
	}
}

// balanceLabel colors a balance green when non-negative, red otherwise.
func balanceLabel(balance float64) string {
	formatted := cli.FormatCurrency(balance)
	if balance < 0 {
		return cli.ExpenseStyle.Render(formatted)
	}
	return cli.IncomeStyle.Render(formatted)
}
