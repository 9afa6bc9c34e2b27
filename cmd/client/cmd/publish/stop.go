// cmd/client/cmd/publish/stop.go
package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var StopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Остановить массовую публикацию",
	Long: `Отправляет серверу команду остановки. Как и при запуске, ответ —
только подтверждение: остановка считается состоявшейся, когда сервер
пришлет событие о смене статуса.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		msg, err := app.StopPublishing(ctx)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		if msg == "" {
			msg = "команда принята сервером"
		}
		client.NotifySuccess("Публикация", msg)
		return nil
	},
}
