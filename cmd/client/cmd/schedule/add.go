// cmd/client/cmd/schedule/add.go
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var (
	addPageID  int
	addAt      string
	addText    string
	addImageID int
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Запланировать публикацию",
	Long: `Планирует публикацию на странице. Время задается в локальном
часовом поясе в формате "2006-01-02 15:04", на сервер уходит в UTC.
Изображение необязательно.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		var publishAt time.Time
		if addAt != "" {
			var err error
			publishAt, err = time.ParseInLocation("2006-01-02 15:04", addAt, time.Local)
			if err != nil {
				return fmt.Errorf("некорректное время %q, ожидается формат \"2006-01-02 15:04\"", addAt)
			}
		}

		if !publishAt.IsZero() && publishAt.Before(time.Now()) {
			client.NotifyWarning("Время в прошлом", "публикация может выполниться немедленно")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		posts, err := app.SchedulePost(ctx, addPageID, publishAt, addText, addImageID)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Публикация запланирована", fmt.Sprintf("всего публикаций: %d", len(posts)))
		return nil
	},
}

func init() {
	AddCmd.Flags().IntVarP(&addPageID, "page", "p", 0, "идентификатор страницы")
	AddCmd.Flags().StringVarP(&addAt, "at", "a", "", "время публикации (2006-01-02 15:04)")
	AddCmd.Flags().StringVarP(&addText, "text", "t", "", "текст публикации")
	AddCmd.Flags().IntVarP(&addImageID, "image", "i", 0, "идентификатор изображения (необязательно)")
}
