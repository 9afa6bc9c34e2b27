// cmd/client/cmd/page/add.go
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var AddCmd = &cobra.Command{
	Use:   "add <имя> <url>",
	Short: "Добавить страницу",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		pages, err := app.AddPage(ctx, args[0], args[1])
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Страница добавлена", fmt.Sprintf("всего страниц: %d", len(pages)))
		return nil
	},
}
