// cmd/client/cmd/group/add.go
package group

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var addTags string

var AddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Добавить группу",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		groups, err := app.AddGroup(ctx, args[0], addTags)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Группа добавлена", fmt.Sprintf("всего групп: %d", len(groups)))
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addTags, "tags", "t", "", "теги группы")
}
