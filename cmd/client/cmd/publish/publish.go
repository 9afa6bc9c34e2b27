package publish

import (
	"github.com/spf13/cobra"
)

// PublishCmd - родительская команда для массовой публикации по группам
var PublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Массовая публикация по группам",
	Long: `Запуск и остановка массовой публикации, наблюдение за ходом
через push-канал сервера.`,
}
