package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"moneytracker/internal/cli"
	"moneytracker/internal/model"
	"moneytracker/internal/rules"
)

func peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage people",
		Long:  `List, inspect, add, update, and delete the people whose finances are tracked.`,
	}

	cmd.AddCommand(listPeopleCmd())
	cmd.AddCommand(getPersonCmd())
	cmd.AddCommand(addPersonCmd())
	cmd.AddCommand(updatePersonCmd())
	cmd.AddCommand(deletePersonCmd())

	return cmd
}

func listPeopleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all people",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchPeople(ctx); err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}

			snap := st.People().Snapshot()
			if len(snap.Items) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nenhuma pessoa cadastrada. Use 'moneytracker people add'."))
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Nome"),
				cli.HeaderStyle.Render("Nascimento"),
				cli.HeaderStyle.Render("Idade"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 6),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10),
				strings.Repeat("-", 5))

			for _, p := range snap.Items {
				age := rules.CalculateAge(p.BirthDate.Time, now)
				label := fmt.Sprintf("%d", age)
				if rules.IsMinor(p.BirthDate.Time, now) {
					label += cli.SubtleStyle.Render(" (menor)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					p.ID, p.Name, cli.FormatDate(p.BirthDate.Time), label)
			}
			return nil
		},
	}
}

func getPersonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.FetchPersonByID(ctx, args[0]); err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}

			p := st.People().Snapshot().Selected
			if p == nil {
				return fmt.Errorf("person %q not loaded", args[0])
			}

			fmt.Println(cli.TitleStyle.Render(p.Name))
			fmt.Printf("ID:          %s\n", p.ID)
			fmt.Printf("Nascimento:  %s\n", cli.FormatDate(p.BirthDate.Time))
			fmt.Printf("Idade:       %d\n", rules.CalculateAge(p.BirthDate.Time, time.Now()))
			return nil
		},
	}
}

func addPersonCmd() *cobra.Command {
	var (
		name      string
		birthDate string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new person",
		Long:  `Create a person. The name is limited to 200 characters and the birth date cannot be in the future.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			birth, errs := validatePersonInput(name, birthDate, time.Now())
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			st, err := newStore()
			if err != nil {
				return err
			}
			dto := model.CreatePersonDTO{Name: name, BirthDate: birth}
			if err := st.CreatePerson(ctx, dto); err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}

			printSuccess(st.People().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "person name (required)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth-date")

	return cmd
}

func updatePersonCmd() *cobra.Command {
	var (
		name      string
		birthDate string
		partial   bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a person",
		Long:  `Update a person. With --partial only the given flags are sent (PATCH); otherwise a full replace (PUT) is issued.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := time.Now()

			var dto model.UpdatePersonDTO
			errs := rules.FieldErrors{}

			if cmd.Flags().Changed("name") {
				errs.Check("name", rules.ValidatePersonName(name))
				dto.Name = &name
			}
			if cmd.Flags().Changed("birth-date") {
				birth, parseErr := model.ParseDate(birthDate)
				if parseErr != nil {
					errs.Check("birthDate", rules.Invalid("Data de nascimento inválida (use YYYY-MM-DD)"))
				} else {
					errs.Check("birthDate", rules.ValidateBirthDate(birth.Time, now))
					dto.BirthDate = &birth
				}
			}
			if dto.Name == nil && dto.BirthDate == nil && errs.OK() {
				return fmt.Errorf("nothing to update: pass --name and/or --birth-date")
			}
			if !errs.OK() {
				return fieldErrorsFailure(errs)
			}

			st, err := newStore()
			if err != nil {
				return err
			}

			if partial {
				err = st.PartialUpdatePerson(ctx, args[0], dto)
			} else {
				err = st.UpdatePerson(ctx, args[0], dto)
			}
			if err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}

			printSuccess(st.People().Snapshot().Success)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "new birth date, YYYY-MM-DD")
	cmd.Flags().BoolVar(&partial, "partial", false, "send a PATCH with only the given fields")

	return cmd
}

func deletePersonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a person",
		Long:  `Delete a person. The person's transactions are removed from the local view as well.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := newStore()
			if err != nil {
				return err
			}
			if err := st.DeletePerson(ctx, args[0]); err != nil {
				return storeFailure(err, st.People().Snapshot().Error)
			}

			printSuccess(st.People().Snapshot().Success)
			return nil
		},
	}
}

// validatePersonInput runs the person form rules, returning the parsed
// birth date when everything passes.
func validatePersonInput(name, birthDate string, now time.Time) (model.Date, rules.FieldErrors) {
	errs := rules.FieldErrors{}
	errs.Check("name", rules.ValidatePersonName(name))

	var birth model.Date
	if birthDate == "" {
		errs.Check("birthDate", rules.ValidateBirthDate(time.Time{}, now))
		return birth, errs
	}

	parsed, err := model.ParseDate(birthDate)
	if err != nil {
		errs.Check("birthDate", rules.Invalid("Data de nascimento inválida (use YYYY-MM-DD)"))
		return birth, errs
	}
	errs.Check("birthDate", rules.ValidateBirthDate(parsed.Time, now))
	return parsed, errs
}
