// cmd/client/cmd/dashboard.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var dashboardFull bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Сводка панели управления",
	Long: `Загружает полный снимок данных с сервера и показывает сводку:
счетчики коллекций, состояние соединения и статус массовой публикации.

С флагом --full дополнительно выводятся все таблицы.`,
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

		connected := app.Dataset().Connected()
		publishing := app.Dataset().Publishing()
		fmt.Print(client.RenderSummary(data, app.ClientName(), connected, publishing))

		if dashboardFull {
			fmt.Println()
			fmt.Println("=== Тексты ===")
			fmt.Print(client.RenderTexts(data.Texts))
			fmt.Println()
			fmt.Println("=== Изображения ===")
			fmt.Print(client.RenderImages(data.Images, app.ImageURL))
			fmt.Println()
			fmt.Println("=== Группы ===")
			fmt.Print(client.RenderGroups(data.Groups))
			fmt.Println()
			fmt.Println("=== Страницы ===")
			fmt.Print(client.RenderPages(data.Pages))
			fmt.Println()
			fmt.Println("=== Запланированные публикации ===")
			fmt.Print(client.RenderScheduledPosts(data.ScheduledPosts))
		}

		return nil
	},
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardFull, "full", false, "показать все таблицы")
	rootCmd.AddCommand(dashboardCmd)
}
