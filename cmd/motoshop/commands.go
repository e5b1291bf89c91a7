package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/motoshop/internal/editor"
	"github.com/MikeMC777/motoshop/internal/filter"
	"github.com/MikeMC777/motoshop/internal/listing"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

var errRegistrationPending = errors.New("регистрация ещё не завершена, попробуйте позже")

func newListCmd(a *app) *cobra.Command {
	var status, title, minPrice, maxPrice string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список мотоциклов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fetcher := listing.NewFetcher(a.bikes)
			defer fetcher.Close()

			fs := filter.New(nil)
			if status != "" {
				s, err := motorcycle.ParseStatus(status)
				if err != nil {
					return err
				}
				fs.ToggleStatus(s)
			}
			fs.SetTitle(title)
			fs.SetMinPrice(minPrice)
			fs.SetMaxPrice(maxPrice)

			items, err := fetcher.Fetch(cmd.Context(), fs.Criteria())
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), items, fs.HasActive())
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "available | reserved | sold | draft")
	cmd.Flags().StringVar(&title, "title", "", "поиск по названию")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "минимальная цена")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "максимальная цена")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Карточка мотоцикла",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.bikes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

// currentUser returns the user resolved on launch and reports a pending
// registration as an error of its own.
func (a *app) currentUser() (*user.User, error) {
	if a.me != nil {
		return a.me, nil
	}
	if a.resolver != nil && a.resolver.State().Registering {
		return nil, errRegistrationPending
	}
	return nil, a.meErr
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Текущий пользователь",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := a.currentUser()
			if err != nil {
				return err
			}
			printUser(cmd.OutOrStdout(), u)
			return nil
		},
	}
}

// openEditor loads the listing and the caller for an admin operation.
func openEditor(ctx context.Context, a *app, id string) (*editor.Editor, error) {
	u, err := a.currentUser()
	if err != nil {
		return nil, err
	}
	m, err := a.bikes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return editor.New(a.bikes, m, u), nil
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <field> <value>",
		Short: "Изменить поле (только для администраторов)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := editor.ParseField(args[1])
			if err != nil {
				return err
			}
			e, err := openEditor(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			if err := e.StartEdit(f); err != nil {
				return err
			}
			if err := e.Set(f, args[2]); err != nil {
				return err
			}
			m, err := e.SaveEdit(cmd.Context(), f)
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Изменить статус (только для администраторов)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := motorcycle.ParseStatus(args[1])
			if err != nil {
				return err
			}
			e, err := openEditor(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			m, err := e.SetStatus(cmd.Context(), s)
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Статистика посещений",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := a.recorder.Stats(cmd.Context())
			if st == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Статистика недоступна")
				return nil
			}
			printStats(cmd.OutOrStdout(), st)
			return nil
		},
	}
}
