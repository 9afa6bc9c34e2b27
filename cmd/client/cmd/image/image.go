package image

import (
	"github.com/spf13/cobra"
)

// ImageCmd - родительская команда для операций с изображениями
var ImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Управление изображениями",
	Long:  `Загрузка и просмотр изображений для публикаций.`,
}
