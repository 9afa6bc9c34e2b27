// cmd/client/cmd/publish/start.go
package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var (
	startGroupTags   string
	startContentTags string
)

var StartCmd = &cobra.Command{
	Use:   "start",
	Short: "Запустить массовую публикацию",
	Long: `Отправляет серверу команду начать публикацию контента с заданными
тегами в группы с заданными тегами. Ответ сервера — только подтверждение
приема команды: фактический статус публикации приходит событием по
push-каналу, следить за ним можно командой publish watch.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		msg, err := app.StartPublishing(ctx, startGroupTags, startContentTags)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		if msg == "" {
			msg = "команда принята сервером"
		}
		client.NotifySuccess("Публикация", msg)
		fmt.Println("За ходом публикации: pubdeck publish watch")
		return nil
	},
}

func init() {
	StartCmd.Flags().StringVarP(&startGroupTags, "group-tags", "g", "", "теги групп для публикации")
	StartCmd.Flags().StringVarP(&startContentTags, "content-tags", "c", "", "теги публикуемого контента")
}
