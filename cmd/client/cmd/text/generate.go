// cmd/client/cmd/text/generate.go
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

var generateCount int

var GenerateCmd = &cobra.Command{
	Use:   "generate <тема>",
	Short: "Сгенерировать тексты по теме",
	Long: `Запрашивает у сервера генерацию текстов по заданной теме.
Генерация выполняется на сервере и может занять заметное время.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		topic := strings.Join(args, " ")

		fmt.Printf("Генерация %d текстов по теме %q...\n", generateCount, topic)

		// Генерация дольше обычного запроса
		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
		defer cancel()

		texts, err := app.GenerateAITexts(ctx, topic, generateCount)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Генерация завершена", fmt.Sprintf("всего текстов: %d", len(texts)))
		fmt.Println()
		fmt.Print(client.RenderTexts(texts))
		return nil
	},
}

func init() {
	GenerateCmd.Flags().IntVarP(&generateCount, "count", "n", 5, "количество текстов (1-50)")
}
