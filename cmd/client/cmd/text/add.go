// cmd/client/cmd/text/add.go
package text

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var AddCmd = &cobra.Command{
	Use:   "add <текст>",
	Short: "Добавить текст",
	Long: `Добавляет текст вручную. Сервер возвращает обновленный список
текстов, который заменяет локальный целиком.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		content := strings.Join(args, " ")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		texts, err := app.AddText(ctx, content)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Текст добавлен", fmt.Sprintf("всего текстов: %d", len(texts)))
		return nil
	},
}
