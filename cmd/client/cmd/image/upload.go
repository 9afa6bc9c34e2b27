// cmd/client/cmd/image/upload.go
package image

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pubdeck/cmd/client/cmd/types"
	"pubdeck/internal/app/client"
)

var uploadTags string

var UploadCmd = &cobra.Command{
	Use:   "upload <файл>...",
	Short: "Загрузить изображения",
	Long: `Загружает один или несколько файлов одним запросом. Теги
применяются ко всем загружаемым файлам.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Printf("Загрузка %d файлов...\n", len(args))

		// Файлы могут быть большими, таймаут шире обычного
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		images, err := app.UploadImages(ctx, args, uploadTags)
		if err != nil {
			client.NotifyFromError(err)
			return err
		}

		client.NotifySuccess("Загрузка завершена", fmt.Sprintf("всего изображений: %d", len(images)))
		return nil
	},
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadTags, "tags", "t", "", "теги для загружаемых изображений")
}
