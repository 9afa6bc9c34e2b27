// cmd/client/cmd/history.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "История публикаций",
	Long:  `Показывает журнал выполненных публикаций: время, цель, статус и ссылку на опубликованный пост.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		data, err := app.SyncAll(ctx)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		fmt.Println("=== История публикаций ===")
		fmt.Println()
		fmt.Print(client.RenderHistory(data.PublicationLog))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
