// cmd/client/cmd/schedule/suggest.go
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var suggestPageID int

var SuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Подобрать контент для страницы",
	Long: `Запрашивает у сервера пару текст+изображение для публикации на
странице. Подбор ничего не меняет: полученные идентификаторы можно
использовать в schedule add.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		suggestion, err := app.SuggestContent(ctx, suggestPageID)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		if !suggestion.Success {
			msg := suggestion.Message
			if msg == "" {
				msg = "подходящий контент не найден"
			}
			client.NotifyWarning("Подбор контента", msg)
			return nil
		}

		fmt.Println("=== Предложенный контент ===")
		fmt.Println()
		if suggestion.Text != nil {
			fmt.Printf("Текст #%d:\n%s\n\n", suggestion.Text.ID, suggestion.Text.Content)
		}
		if suggestion.Image != nil {
			fmt.Printf("Изображение #%d: %s\n", suggestion.Image.ID, app.ImageURL(suggestion.Image.Path))
		} else {
			fmt.Println("Изображение: не подобрано")
		}
		fmt.Println()
		fmt.Printf("Для планирования: pubdeck schedule add --page %d", suggestPageID)
		if suggestion.Text != nil {
			fmt.Printf(" --text %q", suggestion.Text.Content)
		}
		if suggestion.Image != nil {
			fmt.Printf(" --image %d", suggestion.Image.ID)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	SuggestCmd.Flags().IntVarP(&suggestPageID, "page", "p", 0, "идентификатор страницы")
}
